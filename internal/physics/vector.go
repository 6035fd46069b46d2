package physics

// Float is the scalar precision the engine runs at. Use float32 for the
// lighter build and float64 otherwise.
type Float interface {
	~float32 | ~float64
}

// Vector3 is a mutable three component vector. Bodies hand the engine
// pointers to these and the engine writes through them.
type Vector3[T Float] struct {
	X, Y, Z T
}

// Add returns the component-wise sum.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v multiplied by s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Set overwrites v in place.
func (v *Vector3[T]) Set(x, y, z T) {
	v.X, v.Y, v.Z = x, y, z
}
