package world

import (
	"boxstep/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Renderer struct {
	Camera    rl.Camera3D
	ShowWires bool
	GridSize  int32
}

func NewRenderer() *Renderer {
	return &Renderer{
		Camera: rl.Camera3D{
			Position:   rl.Vector3{X: 12, Y: 8, Z: 12},
			Target:     rl.Vector3{X: 0, Y: 1, Z: 0},
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       45,
			Projection: rl.CameraPerspective,
		},
		ShowWires: true,
		GridSize:  20,
	}
}

// Draw renders every active object as a cube matching its collision box.
// Must be called between rl.BeginDrawing and rl.EndDrawing.
func (r *Renderer) Draw(scene *engine.Scene) {
	rl.BeginMode3D(r.Camera)
	defer rl.EndMode3D()

	rl.DrawGrid(r.GridSize, 1)

	for _, g := range scene.GameObjects {
		if !g.Active {
			continue
		}
		size := g.Box.Size()
		center := g.RenderCenter()
		rl.DrawCube(center, size.X, size.Y, size.Z, lookupColor(g.Color))
		if r.ShowWires {
			rl.DrawBoundingBox(g.BoundingBox(), rl.DarkGray)
		}
	}
}
