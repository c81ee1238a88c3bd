package vector

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of component types a Vector can carry. Each of them
// supplies a zero value, addition, subtraction, multiplication and exact
// equality.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Real narrows Scalar to the types that have a square root. Only Length and
// IsZero require it.
type Real interface {
	constraints.Float
}

// Sqrt returns the square root of x.
// A float32 argument is widened to float64 and rounded back, which yields the
// correctly rounded float32 result.
func Sqrt[T Real](x T) T {
	return T(math.Sqrt(float64(x)))
}
