package scenario

import (
	"strconv"

	"github.com/zeusync/gmath/pkg/vector"
)

// Kind is the shape of an operation result.
type Kind uint8

const (
	KindVector Kind = iota + 1
	KindScalar
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindScalar:
		return "scalar"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value holds one operation result. Only the member matching Kind is set.
type Value struct {
	Kind   Kind
	Vector vector.Vector[float64]
	Scalar float64
	Bool   bool
}

func VectorValue(v vector.Vector[float64]) Value {
	return Value{Kind: KindVector, Vector: v}
}

func ScalarValue(f float64) Value {
	return Value{Kind: KindScalar, Scalar: f}
}

func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// Equal compares exactly, with no floating point tolerance.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindVector:
		return v.Vector == o.Vector
	case KindScalar:
		return v.Scalar == o.Scalar
	case KindBool:
		return v.Bool == o.Bool
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindVector:
		return v.Vector.String()
	case KindScalar:
		return vector.FormatScalar(v.Scalar)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return "<none>"
	}
}
