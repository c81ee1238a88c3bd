package vector

// Left scalar multiplication (a * V). Go cannot put a method on a built-in
// scalar type, so each supported scalar type gets its own function. Integer
// scalars are converted to the vector's float type before multiplying.

// MulFloat64 returns a * v.
func MulFloat64(a float64, v Vector[float64]) Vector[float64] {
	return Vector[float64]{a * v.x, a * v.y, a * v.z}
}

// MulFloat32 returns a * v.
func MulFloat32(a float32, v Vector[float32]) Vector[float32] {
	return Vector[float32]{a * v.x, a * v.y, a * v.z}
}

// MulInt32 returns float64(a) * v. The conversion is exact.
func MulInt32(a int32, v Vector[float64]) Vector[float64] {
	return MulFloat64(float64(a), v)
}

// MulInt32Float32 returns float32(a) * v.
// Magnitudes above 2^24 round to the nearest float32.
func MulInt32Float32(a int32, v Vector[float32]) Vector[float32] {
	return MulFloat32(float32(a), v)
}
