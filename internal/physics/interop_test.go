package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func TestMgl32(t *testing.T) {
	v := Vector3[float64]{X: 0.5, Y: 0.25, Z: -4}
	if v.Mgl32() != (mgl32.Vec3{0.5, 0.25, -4}) {
		t.Errorf("Unexpected mgl32 vector %v", v.Mgl32())
	}
}

func TestCollisionBoxFromExtents(t *testing.T) {
	box := CollisionBoxFromExtents[float64](mgl64.Vec3{-1, -0.5, -2}, mgl64.Vec3{3, 1.5, 0.25})
	want := CollisionBox[float64]{Left: 1, Right: 3, Bottom: 0.5, Top: 1.5, Near: 2, Far: 0.25}
	if box != want {
		t.Errorf("Expected %+v, got %+v", want, box)
	}
}
