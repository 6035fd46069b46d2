package world

import (
	"log"

	"boxstep/internal/engine"
)

// World drives a scene once per rendered frame.
type World struct {
	Scene    *engine.Scene
	Renderer *Renderer

	paused     bool
	stepErrors int
}

func New(scene *engine.Scene) *World {
	return &World{
		Scene:    scene,
		Renderer: NewRenderer(),
	}
}

// Update runs component updates and one physics step. Clock failures are
// logged and the frame is skipped; the next frame retries.
func (w *World) Update(frameTime float32) {
	if w.paused {
		return
	}

	w.Scene.Update(frameTime)
	if err := w.Scene.Step(); err != nil {
		w.stepErrors++
		log.Printf("Physics: step failed (%d so far): %v", w.stepErrors, err)
	}
}

// SetPaused stops or resumes simulation. On resume the physics clock is
// reseeded so the pause is not integrated as one long step.
func (w *World) SetPaused(paused bool) {
	if w.paused && !paused {
		w.Scene.Physics.Clock().Reset()
	}
	w.paused = paused
}

func (w *World) Paused() bool {
	return w.paused
}

// StepErrors returns how many physics steps failed since the world was created.
func (w *World) StepErrors() int {
	return w.stepErrors
}
