package world

import (
	"errors"
	"testing"
	"time"

	"boxstep/internal/physics"
)

func TestWorldUpdateSteps(t *testing.T) {
	src := physics.NewMockTimeSource(0)
	w := New(DefaultScene(physics.WithTimeSource(src)))
	ball := w.Scene.FindByName("Ball")

	w.Update(0.016)
	src.Advance(100 * time.Millisecond)
	w.Update(0.016)

	if ball.Position.Y >= 5 {
		t.Errorf("Expected ball to fall, got y = %v", ball.Position.Y)
	}
	if w.StepErrors() != 0 {
		t.Errorf("Expected no step errors, got %d", w.StepErrors())
	}
}

func TestWorldPauseReseedsClock(t *testing.T) {
	src := physics.NewMockTimeSource(0)
	w := New(DefaultScene(physics.WithTimeSource(src)))
	ball := w.Scene.FindByName("Ball")

	w.Update(0.016)
	w.SetPaused(true)
	if !w.Paused() {
		t.Fatal("World should be paused")
	}

	src.Advance(time.Hour)
	w.Update(0.016)
	if ball.Position.Y != 5 {
		t.Fatalf("Paused world should not move objects, got y = %v", ball.Position.Y)
	}

	w.SetPaused(false)
	w.Update(0.016)
	if ball.Position.Y != 5 {
		t.Errorf("First step after resume should use zero dt, got y = %v", ball.Position.Y)
	}
}

func TestWorldCountsStepErrors(t *testing.T) {
	src := physics.NewMockTimeSource(0)
	src.Fail(errors.New("no clock"))
	w := New(DefaultScene(physics.WithTimeSource(src)))

	w.Update(0.016)
	w.Update(0.016)

	if w.StepErrors() != 2 {
		t.Errorf("Expected 2 step errors, got %d", w.StepErrors())
	}
}
