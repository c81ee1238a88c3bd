package scenario

import (
	"fmt"
	"sort"

	"github.com/zeusync/gmath/pkg/vector"
)

// Op is a named vector expression over the operands of a Case.
type Op struct {
	Name   string
	Kind   Kind
	Eval   func(c Case) Value
	Format func(c Case) string

	// Binary ops read B and scaling ops read Scalar; the rest ignore them.
	Binary     bool
	UsesScalar bool
}

var ops = map[string]Op{}

func register(op Op) {
	ops[op.Name] = op
}

// Lookup returns the op registered under name.
func Lookup(name string) (Op, error) {
	op, ok := ops[name]
	if !ok {
		return Op{}, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	return op, nil
}

// All returns the registered ops sorted by name.
func All() []Op {
	all := make([]Op, 0, len(ops))
	for _, op := range ops {
		all = append(all, op)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Ops lists the registered op names in sorted order.
func Ops() []string {
	all := All()
	names := make([]string, len(all))
	for i, op := range all {
		names[i] = op.Name
	}
	return names
}

func scalar(f float64) string { return vector.FormatScalar(f) }

func init() {
	register(Op{
		Name:   "add",
		Kind:   KindVector,
		Binary: true,
		Eval:   func(c Case) Value { return VectorValue(vector.Add(c.A, c.B)) },
		Format: func(c Case) string { return fmt.Sprintf("%s + %s", c.A, c.B) },
	})
	register(Op{
		Name:   "sub",
		Kind:   KindVector,
		Binary: true,
		Eval:   func(c Case) Value { return VectorValue(vector.Sub(c.A, c.B)) },
		Format: func(c Case) string { return fmt.Sprintf("%s - %s", c.A, c.B) },
	})
	register(Op{
		Name:       "scale",
		Kind:       KindVector,
		UsesScalar: true,
		Eval:       func(c Case) Value { return VectorValue(vector.Scale(c.A, c.Scalar)) },
		Format:     func(c Case) string { return fmt.Sprintf("%s * %s", c.A, scalar(c.Scalar)) },
	})
	register(Op{
		Name:       "lscale",
		Kind:       KindVector,
		UsesScalar: true,
		Eval:       func(c Case) Value { return VectorValue(vector.MulFloat64(c.Scalar, c.A)) },
		Format:     func(c Case) string { return fmt.Sprintf("%s * %s", scalar(c.Scalar), c.A) },
	})
	register(Op{
		Name:       "scale_add",
		Kind:       KindVector,
		Binary:     true,
		UsesScalar: true,
		Eval:       func(c Case) Value { return VectorValue(vector.MulFloat64(c.Scalar, c.A).Add(c.B)) },
		Format:     func(c Case) string { return fmt.Sprintf("%s * %s + %s", scalar(c.Scalar), c.A, c.B) },
	})
	register(Op{
		Name:   "dot",
		Kind:   KindScalar,
		Binary: true,
		Eval:   func(c Case) Value { return ScalarValue(vector.Dot(c.A, c.B)) },
		Format: func(c Case) string { return fmt.Sprintf("%s . %s", c.A, c.B) },
	})
	register(Op{
		Name:   "dot3",
		Kind:   KindScalar,
		Binary: true,
		Eval:   func(c Case) Value { return ScalarValue(c.A.Dot3(c.B)) },
		Format: func(c Case) string { return fmt.Sprintf("%s .3 %s", c.A, c.B) },
	})
	register(Op{
		Name:   "cross",
		Kind:   KindVector,
		Binary: true,
		Eval:   func(c Case) Value { return VectorValue(vector.Cross(c.A, c.B)) },
		Format: func(c Case) string { return fmt.Sprintf("%s x %s", c.A, c.B) },
	})
	register(Op{
		Name:   "length",
		Kind:   KindScalar,
		Eval:   func(c Case) Value { return ScalarValue(vector.Length(c.A)) },
		Format: func(c Case) string { return fmt.Sprintf("|%s|", c.A) },
	})
	register(Op{
		Name:   "is_zero",
		Kind:   KindBool,
		Eval:   func(c Case) Value { return BoolValue(vector.IsZero(c.A)) },
		Format: func(c Case) string { return fmt.Sprintf("%s is zero", c.A) },
	})
	register(Op{
		Name:   "equal",
		Kind:   KindBool,
		Binary: true,
		Eval:   func(c Case) Value { return BoolValue(c.A == c.B) },
		Format: func(c Case) string { return fmt.Sprintf("%s == %s", c.A, c.B) },
	})
	register(Op{
		Name:   "not_equal",
		Kind:   KindBool,
		Binary: true,
		Eval:   func(c Case) Value { return BoolValue(c.A != c.B) },
		Format: func(c Case) string { return fmt.Sprintf("%s != %s", c.A, c.B) },
	})
}
