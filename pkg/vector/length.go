package vector

// Length returns sqrt(v.Dot(v)).
// It follows Dot and so measures the XY projection of v.
func Length[T Real](v Vector[T]) T {
	return Sqrt(v.Dot(v))
}

// IsZero reports whether Length(v) is zero.
func IsZero[T Real](v Vector[T]) bool {
	return Length(v) == 0
}
