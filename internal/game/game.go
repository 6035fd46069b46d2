package game

import (
	"fmt"
	"log"
	"time"

	"boxstep/internal/audio"
	"boxstep/internal/engine"
	"boxstep/internal/physics"
	"boxstep/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config holds the command line settings for a demo run.
type Config struct {
	ScenePath         string // empty means the built-in ground and ball scene
	Capacity          int
	StopAtFirstStatic bool
	LogCollisions     bool
	Width, Height     int32
}

type Game struct {
	Config    Config
	World     *world.World
	DebugMode bool

	// Debug timing (ms)
	stepMs float64
	drawMs float64

	collisions int
	hud        hud

	impacts audio.Impacts
	// Resting bodies report a contact every step, so a sound only plays
	// when an object had no contact in the previous step.
	steps         int
	lastContact   map[uint64]int
	impactsPlayed int
}

func New(cfg Config) *Game {
	if cfg.Width == 0 || cfg.Height == 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	return &Game{Config: cfg}
}

// PhysicsOptions translates the config into engine options.
func (c Config) PhysicsOptions() []physics.Option {
	var opts []physics.Option
	if c.Capacity > 0 {
		opts = append(opts, physics.WithCapacity(c.Capacity))
	}
	if c.StopAtFirstStatic {
		opts = append(opts, physics.WithStopAtFirstStatic(true))
	}
	return append(opts, physics.WithLogger(log.Default()))
}

// LoadWorld builds the world from the configured scene, replacing any
// previous one. Extra options are applied after the config's own.
func (g *Game) LoadWorld(extra ...physics.Option) error {
	opts := append(g.Config.PhysicsOptions(), extra...)

	var scene *engine.Scene
	if g.Config.ScenePath == "" {
		scene = world.DefaultScene(opts...)
	} else {
		var err error
		scene, err = world.LoadScene(g.Config.ScenePath, opts...)
		if err != nil {
			return fmt.Errorf("load world: %w", err)
		}
	}

	for _, obj := range scene.GameObjects {
		if obj.Static {
			continue
		}
		obj.OnCollision.AddListener(g.collisionLogger(obj))
	}

	scene.Start()
	g.World = world.New(scene)
	g.collisions = 0
	g.steps = 0
	g.lastContact = make(map[uint64]int)
	g.impactsPlayed = 0
	scene.OnStep.AddListener(func() { g.steps++ })
	g.hud.gravity = scene.Gravity
	return nil
}

// Collisions returns the number of collisions since the world was loaded.
func (g *Game) Collisions() int {
	return g.collisions
}

func (g *Game) collisionLogger(obj *engine.GameObject) func(*engine.GameObject) {
	return func(other *engine.GameObject) {
		g.collisions++
		g.playImpact(obj)
		if g.Config.LogCollisions && other != nil {
			log.Printf("Collision: %s -> %s at (%.2f, %.2f, %.2f)",
				obj.Name, other.Name, obj.Position.X, obj.Position.Y, obj.Position.Z)
		}
	}
}

// ImpactsPlayed returns how many impact sounds were triggered since the
// world was loaded.
func (g *Game) ImpactsPlayed() int {
	return g.impactsPlayed
}

func (g *Game) playImpact(obj *engine.GameObject) {
	prev, touching := g.lastContact[obj.UID]
	g.lastContact[obj.UID] = g.steps
	if touching && prev >= g.steps-1 {
		return
	}
	g.impactsPlayed++
	g.impacts.Play(obj.RenderCenter())
}

func (g *Game) updateListener() {
	cam := g.World.Renderer.Camera
	g.impacts.Listener = audio.NewListener(
		engine.FromRaylib(cam.Position).Mgl32(),
		engine.FromRaylib(cam.Target).Mgl32(),
		engine.FromRaylib(cam.Up).Mgl32(),
	)
}

func (g *Game) Run() error {
	if err := g.LoadWorld(); err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Config.Width, g.Config.Height, "boxstep")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	g.hud.init()

	g.impacts.Init()
	defer g.impacts.Close()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) Update() {
	if rl.IsKeyPressed(rl.KeyF3) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.World.SetPaused(!g.World.Paused())
	}
	if rl.IsKeyPressed(rl.KeyR) || g.hud.resetRequested {
		g.hud.resetRequested = false
		if err := g.LoadWorld(); err != nil {
			log.Printf("Reset failed: %v", err)
		}
		return
	}

	rl.UpdateCamera(&g.World.Renderer.Camera, rl.CameraOrbital)
	g.updateListener()

	g.World.Scene.Gravity = g.hud.gravity

	start := time.Now()
	g.World.Update(rl.GetFrameTime())
	g.stepMs = float64(time.Since(start).Microseconds()) / 1000
}

func (g *Game) Draw() {
	start := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	g.World.Renderer.Draw(g.World.Scene)
	g.hud.draw(g)

	rl.EndDrawing()

	g.drawMs = float64(time.Since(start).Microseconds()) / 1000
}
