package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudX     = 10
	hudWidth = 220
)

var (
	colorPanel = rl.NewColor(30, 30, 40, 220)
	colorText  = rl.NewColor(220, 220, 230, 255)
)

// hud is the raygui control panel drawn over the scene.
type hud struct {
	gravity        float32
	showWires      bool
	resetRequested bool
}

func (h *hud) init() {
	h.showWires = true
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
}

func (h *hud) draw(g *Game) {
	rl.DrawRectangle(hudX-5, 5, hudWidth+10, 190, colorPanel)

	gui.Label(rl.NewRectangle(hudX, 10, hudWidth, 20), g.World.Scene.Name)

	h.gravity = gui.Slider(rl.NewRectangle(hudX+60, 35, hudWidth-100, 20),
		"Gravity", fmt.Sprintf("%.2f", h.gravity), h.gravity, 0, 1)

	h.showWires = gui.CheckBox(rl.NewRectangle(hudX, 65, 20, 20), "Wireframe", h.showWires)
	g.World.Renderer.ShowWires = h.showWires

	paused := gui.CheckBox(rl.NewRectangle(hudX+110, 65, 20, 20), "Paused", g.World.Paused())
	if paused != g.World.Paused() {
		g.World.SetPaused(paused)
	}

	if gui.Button(rl.NewRectangle(hudX, 95, hudWidth, 25), "Reset (R)") {
		h.resetRequested = true
	}

	stats := g.World.Scene.Physics.Stats()
	lines := []string{
		fmt.Sprintf("Bodies %d  moved %d  rejected %d", stats.Bodies, stats.Integrated, stats.Rejected),
		fmt.Sprintf("Contacts %d (total %d)", stats.Contacts, g.collisions),
	}
	if g.DebugMode {
		lines = append(lines, fmt.Sprintf("Step %.2fms  Draw %.2fms  FPS %d", g.stepMs, g.drawMs, rl.GetFPS()))
	}
	for i, line := range lines {
		rl.DrawText(line, hudX, int32(130+i*18), 14, colorText)
	}
}
