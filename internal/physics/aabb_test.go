package physics

import "testing"

func unitBox() CollisionBox[float64] {
	return CollisionBox[float64]{Left: 1, Right: 1, Bottom: 1, Top: 1, Near: 1, Far: 1}
}

func TestCollisionBoxBounds(t *testing.T) {
	box := CollisionBox[float64]{Left: 1, Right: 2, Bottom: 3, Top: 4, Near: 5, Far: 6}
	b := box.Bounds(Vector3[float64]{X: 10, Y: 20, Z: 30})

	want := AABB[float64]{
		Min: Vector3[float64]{X: 9, Y: 17, Z: 25},
		Max: Vector3[float64]{X: 12, Y: 24, Z: 36},
	}
	if b != want {
		t.Errorf("Expected %+v, got %+v", want, b)
	}

	if size := box.Size(); size != (Vector3[float64]{X: 3, Y: 7, Z: 11}) {
		t.Errorf("Unexpected size %+v", size)
	}
}

func TestNewCollisionBoxFromSize(t *testing.T) {
	box := NewCollisionBoxFromSize(Vector3[float64]{X: 2, Y: 4, Z: 1})
	want := CollisionBox[float64]{Left: 1, Right: 1, Bottom: 2, Top: 2, Near: 0.5, Far: 0.5}
	if box != want {
		t.Errorf("Expected %+v, got %+v", want, box)
	}
	if c := box.Center(Vector3[float64]{X: 3}); c != (Vector3[float64]{X: 3}) {
		t.Errorf("Symmetric box should be centred on its position, got %+v", c)
	}
}

func TestAABBIntersects(t *testing.T) {
	box := unitBox()
	a := box.Bounds(Vector3[float64]{})

	tests := []struct {
		name string
		pos  Vector3[float64]
		want bool
	}{
		{"same position", Vector3[float64]{}, true},
		{"partial x overlap", Vector3[float64]{X: 1.5}, true},
		{"touching faces on x", Vector3[float64]{X: 2}, false},
		{"touching faces on y", Vector3[float64]{Y: -2}, false},
		{"separated on z only", Vector3[float64]{Z: 3}, false},
		{"overlap on all axes", Vector3[float64]{X: 0.5, Y: -0.5, Z: 1.9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := box.Bounds(tt.pos)
			if got := a.Intersects(b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := b.Intersects(a); got != tt.want {
				t.Errorf("Intersects is not symmetric for %s", tt.name)
			}
		})
	}
}

func TestPenetrationAxisChoice(t *testing.T) {
	box := unitBox()
	other := box.Bounds(Vector3[float64]{})

	tests := []struct {
		name     string
		pos      Vector3[float64]
		axis     Axis
		positive bool
		depth    float64
	}{
		{"x from the right", Vector3[float64]{X: 1.5}, AxisX, true, 0.5},
		{"x from the left", Vector3[float64]{X: -1.5}, AxisX, false, 0.5},
		{"y from above", Vector3[float64]{Y: 1.75}, AxisY, true, 0.25},
		{"z from the near side", Vector3[float64]{Z: -1.75}, AxisZ, false, 0.25},
		{"x and y tie picks x", Vector3[float64]{X: 1.5, Y: 1.5}, AxisX, true, 0.5},
		{"x and z tie picks x", Vector3[float64]{X: 1.5, Z: 1.5}, AxisX, true, 0.5},
		{"y and z tie picks y", Vector3[float64]{Y: 1.5, Z: 1.5}, AxisY, true, 0.5},
		{"z strictly smallest", Vector3[float64]{X: 1.5, Y: 1.5, Z: 1.75}, AxisZ, true, 0.25},
		{"exact centre pushes negative", Vector3[float64]{}, AxisX, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := box.Bounds(tt.pos).Penetration(other)
			if p.Axis != tt.axis {
				t.Errorf("Expected axis %v, got %v", tt.axis, p.Axis)
			}
			if p.Positive != tt.positive {
				t.Errorf("Expected positive=%v, got %v", tt.positive, p.Positive)
			}
			if p.Depth != tt.depth {
				t.Errorf("Expected depth %v, got %v", tt.depth, p.Depth)
			}
		})
	}
}

func TestPushOutLeavesBoxesFlush(t *testing.T) {
	other := unitBox().Bounds(Vector3[float64]{})
	mover := CollisionBox[float64]{Left: 0.25, Right: 2, Bottom: 1, Top: 1, Near: 1, Far: 1}
	pos := Vector3[float64]{X: 1.125, Y: 0, Z: 0}

	p := mover.Bounds(pos).Penetration(other)
	mover.PushOut(&pos, other, p)

	if pos.X != 1.25 {
		t.Errorf("Expected x = 1.25, got %v", pos.X)
	}
	if got := mover.Bounds(pos).Min.X; got != other.Max.X {
		t.Errorf("Expected zero gap, mover min x %v vs other max x %v", got, other.Max.X)
	}
	if pos.Y != 0 || pos.Z != 0 {
		t.Errorf("Only x should change, got %+v", pos)
	}
}

func TestAxisString(t *testing.T) {
	if AxisX.String() != "x" || AxisY.String() != "y" || AxisZ.String() != "z" {
		t.Error("Unexpected axis names")
	}
	if Axis(9).String() != "unknown" {
		t.Error("Out of range axis should be unknown")
	}
}
