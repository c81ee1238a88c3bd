package vector

// Add returns the componentwise sum v + o.
func (v Vector[T]) Add(o Vector[T]) Vector[T] {
	return Vector[T]{v.x + o.x, v.y + o.y, v.z + o.z}
}

// Sub returns the componentwise difference v - o.
func (v Vector[T]) Sub(o Vector[T]) Vector[T] {
	return Vector[T]{v.x - o.x, v.y - o.y, v.z - o.z}
}

// Neg returns -v.
func (v Vector[T]) Neg() Vector[T] {
	return Vector[T]{-v.x, -v.y, -v.z}
}

// Scale multiplies every component by a (V * a).
// For the a * V direction see MulFloat64 and friends.
func (v Vector[T]) Scale(a T) Vector[T] {
	return Vector[T]{v.x * a, v.y * a, v.z * a}
}

// Dot returns the planar dot product x1*x2 + y1*y2.
// The Z components do not take part; use Dot3 for the full product.
func (v Vector[T]) Dot(o Vector[T]) T {
	return v.x*o.x + v.y*o.y
}

// Dot3 returns the dot product over all three components.
func (v Vector[T]) Dot3(o Vector[T]) T {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

// Cross returns the cross product v × o.
// When both operands lie in the XY plane only the Z component is non-zero.
func (v Vector[T]) Cross(o Vector[T]) Vector[T] {
	return Vector[T]{
		x: v.y*o.z - v.z*o.y,
		y: v.z*o.x - v.x*o.z,
		z: v.x*o.y - v.y*o.x,
	}
}

// Add is the function form of Vector.Add.
func Add[T Scalar](a, b Vector[T]) Vector[T] { return a.Add(b) }

// Sub is the function form of Vector.Sub.
func Sub[T Scalar](a, b Vector[T]) Vector[T] { return a.Sub(b) }

// Scale is the function form of Vector.Scale.
func Scale[T Scalar](v Vector[T], a T) Vector[T] { return v.Scale(a) }

// Dot is the function form of Vector.Dot.
func Dot[T Scalar](a, b Vector[T]) T { return a.Dot(b) }

// Cross is the function form of Vector.Cross.
func Cross[T Scalar](a, b Vector[T]) Vector[T] { return a.Cross(b) }
