package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/gmath/pkg/vector"
)

// Scenario is a named list of cases evaluated together.
type Scenario struct {
	Name  string
	Cases []Case
}

// Case applies Op to its operands. A case without Want is only evaluated.
type Case struct {
	Name   string
	Op     string
	A      vector.Vector[float64]
	B      vector.Vector[float64]
	Scalar float64
	Want   *Value
}

// Label is the case name, falling back to the op name.
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Op
}

// Expression renders the case the way its op prints it.
func (c Case) Expression() string {
	op, err := Lookup(c.Op)
	if err != nil {
		return c.Op
	}
	return op.Format(c)
}

// Evaluate runs the case's op and returns its result.
func Evaluate(c Case) (Value, error) {
	op, err := Lookup(c.Op)
	if err != nil {
		return Value{}, err
	}
	return op.Eval(c), nil
}

// Check evaluates c and compares the result with Want using exact equality.
// A case without Want passes once evaluated.
func Check(c Case) (Value, bool, error) {
	got, err := Evaluate(c)
	if err != nil {
		return Value{}, false, err
	}
	if c.Want == nil {
		return got, true, nil
	}
	if c.Want.Kind != got.Kind {
		return got, false, fmt.Errorf("%w: %s yields a %s, want is a %s", ErrInvalidExpectation, c.Op, got.Kind, c.Want.Kind)
	}
	return got, got.Equal(*c.Want), nil
}

// decodeWant reads node as a value of the given kind.
func decodeWant(node *yaml.Node, kind Kind) (*Value, error) {
	// A missing key leaves a zero node; `want:`, `want: ~` and `want: null`
	// resolve to a null scalar. Both mean the case is only evaluated.
	if node == nil || node.Kind == 0 || node.ShortTag() == "!!null" {
		return nil, nil
	}

	var (
		v   Value
		err error
	)
	switch kind {
	case KindVector:
		var vec vector.Vector[float64]
		err = node.Decode(&vec)
		v = VectorValue(vec)
	case KindScalar:
		var f float64
		err = node.Decode(&f)
		v = ScalarValue(f)
	case KindBool:
		var b bool
		err = node.Decode(&b)
		v = BoolValue(b)
	default:
		return nil, fmt.Errorf("%w: unsupported kind %d", ErrInvalidExpectation, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidExpectation, node.Line, err)
	}
	return &v, nil
}
