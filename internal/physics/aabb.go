package physics

// Axis identifies one of the three world axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

// AABB is a world space box described by its two extreme corners.
type AABB[T Float] struct {
	Min Vector3[T]
	Max Vector3[T]
}

// Intersects reports whether a and b overlap on all three axes. Boxes that
// only share a face do not intersect.
func (a AABB[T]) Intersects(b AABB[T]) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// Penetration describes the cheapest way to move a box out of another one.
type Penetration[T Float] struct {
	Axis  Axis
	Depth T
	// Positive is true when the box leaves through the other box's
	// right, top or far face.
	Positive bool
}

// Penetration returns the minimum translation that separates a from b.
// Ties between axes prefer x, then y. Within an axis an exact tie pushes
// towards the negative side. The result is meaningless unless a and b
// intersect.
func (a AABB[T]) Penetration(b AABB[T]) Penetration[T] {
	dx1 := b.Max.X - a.Min.X // push a in +X
	dx2 := a.Max.X - b.Min.X // push a in -X
	dy1 := b.Max.Y - a.Min.Y // push a in +Y
	dy2 := a.Max.Y - b.Min.Y // push a in -Y
	dz1 := b.Max.Z - a.Min.Z // push a in +Z
	dz2 := a.Max.Z - b.Min.Z // push a in -Z

	result := axisPenetration(AxisX, dx1, dx2)
	if y := axisPenetration(AxisY, dy1, dy2); y.Depth < result.Depth {
		result = y
	}
	if z := axisPenetration(AxisZ, dz1, dz2); z.Depth < result.Depth {
		result = z
	}
	return result
}

func axisPenetration[T Float](axis Axis, positive, negative T) Penetration[T] {
	if positive < negative {
		return Penetration[T]{Axis: axis, Depth: positive, Positive: true}
	}
	return Penetration[T]{Axis: axis, Depth: negative}
}

// PushOut moves pos along p.Axis so that a box c placed there is exactly
// flush with other. Only the chosen coordinate is written.
func (c CollisionBox[T]) PushOut(pos *Vector3[T], other AABB[T], p Penetration[T]) {
	switch p.Axis {
	case AxisX:
		if p.Positive {
			pos.X = other.Max.X + c.Left
		} else {
			pos.X = other.Min.X - c.Right
		}
	case AxisY:
		if p.Positive {
			pos.Y = other.Max.Y + c.Bottom
		} else {
			pos.Y = other.Min.Y - c.Top
		}
	case AxisZ:
		if p.Positive {
			pos.Z = other.Max.Z + c.Near
		} else {
			pos.Z = other.Min.Z - c.Far
		}
	}
}
