package physics

// CollisionBox holds the distance from a body's position to each of its six
// faces. Offsets are independent, so a box can reach further left than right.
type CollisionBox[T Float] struct {
	Left, Right T
	Bottom, Top T
	Near, Far   T
}

// NewCollisionBoxFromSize creates a box centred on the body position with the
// given full size.
func NewCollisionBoxFromSize[T Float](size Vector3[T]) CollisionBox[T] {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	return CollisionBox[T]{
		Left: hx, Right: hx,
		Bottom: hy, Top: hy,
		Near: hz, Far: hz,
	}
}

// Size returns the full extent of the box on each axis.
func (c CollisionBox[T]) Size() Vector3[T] {
	return Vector3[T]{
		X: c.Left + c.Right,
		Y: c.Bottom + c.Top,
		Z: c.Near + c.Far,
	}
}

// Center returns the world space centre of the box placed at pos.
func (c CollisionBox[T]) Center(pos Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: pos.X + (c.Right-c.Left)/2,
		Y: pos.Y + (c.Top-c.Bottom)/2,
		Z: pos.Z + (c.Far-c.Near)/2,
	}
}

// Bounds places the box at pos and returns its world space extents.
func (c CollisionBox[T]) Bounds(pos Vector3[T]) AABB[T] {
	return AABB[T]{
		Min: Vector3[T]{X: pos.X - c.Left, Y: pos.Y - c.Bottom, Z: pos.Z - c.Near},
		Max: Vector3[T]{X: pos.X + c.Right, Y: pos.Y + c.Top, Z: pos.Z + c.Far},
	}
}
