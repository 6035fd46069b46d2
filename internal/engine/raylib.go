package engine

import (
	"boxstep/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ToRaylib converts an engine vector for drawing.
func ToRaylib(v physics.Vector3[float32]) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// FromRaylib converts a raylib vector into engine storage.
func FromRaylib(v rl.Vector3) physics.Vector3[float32] {
	return physics.Vector3[float32]{X: v.X, Y: v.Y, Z: v.Z}
}

// BoundingBox returns the object's collision box as a raylib bounding box.
func (g *GameObject) BoundingBox() rl.BoundingBox {
	b := g.Bounds()
	return rl.NewBoundingBox(ToRaylib(b.Min), ToRaylib(b.Max))
}

// RenderCenter returns the centre of the collision box, which is where a
// cube of the box's size must be drawn. It differs from Position when the
// face offsets are asymmetric.
func (g *GameObject) RenderCenter() rl.Vector3 {
	return ToRaylib(g.Box.Center(g.Position))
}
