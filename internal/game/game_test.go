package game

import (
	"path/filepath"
	"testing"
	"time"

	"boxstep/internal/physics"
	_ "boxstep/internal/scripts"
)

func TestNewDefaults(t *testing.T) {
	g := New(Config{})
	if g.Config.Width != 1280 || g.Config.Height != 720 {
		t.Errorf("Expected 1280x720, got %dx%d", g.Config.Width, g.Config.Height)
	}
}

func TestPhysicsOptions(t *testing.T) {
	cfg := Config{Capacity: 5, StopAtFirstStatic: true}
	e := physics.New[float32](cfg.PhysicsOptions()...)
	if e.Registry().Cap() != 5 {
		t.Errorf("Expected capacity 5, got %d", e.Registry().Cap())
	}
}

func TestLoadWorldCountsCollisions(t *testing.T) {
	g := New(Config{})
	src := physics.NewMockTimeSource(0)
	if err := g.LoadWorld(physics.WithTimeSource(src)); err != nil {
		t.Fatalf("LoadWorld failed: %v", err)
	}

	ball := g.World.Scene.FindByName("Ball")
	if ball == nil {
		t.Fatal("Default world should contain a ball")
	}

	for i := 0; i < 300 && g.Collisions() == 0; i++ {
		g.World.Update(0.016)
		src.Advance(16 * time.Millisecond)
	}

	if g.Collisions() == 0 {
		t.Fatal("Expected the ball to hit the ground")
	}
	if ball.Position.Y != 1.5 {
		t.Errorf("Expected ball at y = 1.5, got %v", ball.Position.Y)
	}
}

func TestLoadWorldFromFile(t *testing.T) {
	g := New(Config{ScenePath: filepath.Join("..", "..", "assets", "scenes", "boxdrop.json")})
	if err := g.LoadWorld(); err != nil {
		t.Fatalf("LoadWorld failed: %v", err)
	}
	if g.World.Scene.Name != "BoxDrop" {
		t.Errorf("Expected scene 'BoxDrop', got '%s'", g.World.Scene.Name)
	}
}

func TestLoadWorldMissingFile(t *testing.T) {
	g := New(Config{ScenePath: filepath.Join(t.TempDir(), "nope.json")})
	if err := g.LoadWorld(); err == nil {
		t.Error("Expected error for missing scene file")
	}
}

func TestRestingBallPlaysOneImpact(t *testing.T) {
	g := New(Config{})
	src := physics.NewMockTimeSource(0)
	if err := g.LoadWorld(physics.WithTimeSource(src)); err != nil {
		t.Fatalf("LoadWorld failed: %v", err)
	}

	for i := 0; i < 300 && g.Collisions() == 0; i++ {
		g.World.Update(0.016)
		src.Advance(16 * time.Millisecond)
	}
	if g.ImpactsPlayed() != 1 {
		t.Fatalf("Expected 1 impact on landing, got %d", g.ImpactsPlayed())
	}

	landed := g.Collisions()
	for i := 0; i < 10; i++ {
		g.World.Update(0.016)
		src.Advance(16 * time.Millisecond)
	}

	if g.Collisions() != landed+10 {
		t.Errorf("Expected a contact on every resting step, got %d after %d", g.Collisions(), landed)
	}
	if g.ImpactsPlayed() != 1 {
		t.Errorf("Expected resting ball to stay silent, got %d impacts", g.ImpactsPlayed())
	}

	ball := g.World.Scene.FindByName("Ball")
	ball.Position.Y = 5
	ball.Velocity.Y = 0
	for i := 0; i < 300 && g.ImpactsPlayed() == 1; i++ {
		g.World.Update(0.016)
		src.Advance(16 * time.Millisecond)
	}
	if g.ImpactsPlayed() != 2 {
		t.Errorf("Expected a new impact after the ball is dropped again, got %d", g.ImpactsPlayed())
	}
}
