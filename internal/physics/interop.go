package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Mgl32 converts v to a mathgl single precision vector.
func (v Vector3[T]) Mgl32() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// CollisionBoxFromExtents builds a box from the minimum and maximum corner
// offsets relative to the body position. min is expected to be non-positive
// and max non-negative.
func CollisionBoxFromExtents[T Float](min, max mgl64.Vec3) CollisionBox[T] {
	return CollisionBox[T]{
		Left: T(-min[0]), Right: T(max[0]),
		Bottom: T(-min[1]), Top: T(max[1]),
		Near: T(-min[2]), Far: T(max[2]),
	}
}
