// Package vector provides a generic three component vector value type.
//
// A Vector is a plain value: every operation returns a new Vector and none of
// them mutate the receiver, so vectors may be shared between goroutines
// freely. Two dimensional vectors are represented with a zero Z component.
//
// Equality is exact. Two vectors are equal only when each pair of components
// compares equal with ==, so floating point vectors that differ in the last
// unit of precision are not equal.
package vector

// Vector is a point or displacement in 3D space over the scalar type T.
type Vector[T Scalar] struct {
	x, y, z T
}

// New creates a vector from three components.
func New[T Scalar](x, y, z T) Vector[T] {
	return Vector[T]{x: x, y: y, z: z}
}

// New2 creates a vector in the XY plane, Z is zero.
func New2[T Scalar](x, y T) Vector[T] {
	var zero T
	return New(x, y, zero)
}

// Zero returns the all-zero vector.
func Zero[T Scalar]() Vector[T] {
	return Vector[T]{}
}

// V returns the components in X, Y, Z order.
func (v Vector[T]) V() (x, y, z T) { return v.x, v.y, v.z }

func (v Vector[T]) X() T { return v.x }
func (v Vector[T]) Y() T { return v.y }
func (v Vector[T]) Z() T { return v.z }

// Equal reports whether every component of v equals the matching component
// of o. It is the same as v == o.
func (v Vector[T]) Equal(o Vector[T]) bool {
	return v.x == o.x && v.y == o.y && v.z == o.z
}
