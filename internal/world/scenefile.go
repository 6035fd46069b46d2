package world

import (
	"encoding/json"
	"fmt"
	"os"

	"boxstep/internal/engine"
	"boxstep/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// --- JSON types ---

type SceneFile struct {
	Name              string      `json:"name"`
	Gravity           *float32    `json:"gravity,omitempty"`
	Capacity          int         `json:"capacity,omitempty"`
	StopAtFirstStatic bool        `json:"stopAtFirstStatic,omitempty"`
	Objects           []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name     string      `json:"name"`
	Tags     []string    `json:"tags,omitempty"`
	Static   bool        `json:"static,omitempty"`
	Position [3]float32  `json:"position"`
	Velocity [3]float32  `json:"velocity,omitempty"`
	Size     [3]float32  `json:"size,omitempty"`
	Box      *boxDef     `json:"box,omitempty"`
	Extents  *extentsDef `json:"extents,omitempty"`
	Color    string      `json:"color,omitempty"`
	Scripts  []scriptDef `json:"scripts,omitempty"`
}

// boxDef lists the six face offsets explicitly. It wins over Extents and Size.
type boxDef struct {
	Left   float32 `json:"left"`
	Right  float32 `json:"right"`
	Bottom float32 `json:"bottom"`
	Top    float32 `json:"top"`
	Near   float32 `json:"near"`
	Far    float32 `json:"far"`
}

// extentsDef gives the box as min and max corners relative to the position,
// the way mesh bounds are usually exported.
type extentsDef struct {
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

type scriptDef struct {
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

// --- Loading ---

// LoadScene reads a scene file and builds a Scene from it. opts are applied
// after the file's own capacity and static handling settings.
func LoadScene(path string, opts ...physics.Option) (*engine.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(data, opts...)
}

// ParseScene builds a Scene from scene file JSON.
func ParseScene(data []byte, opts ...physics.Option) (*engine.Scene, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	var physicsOpts []physics.Option
	if sf.Capacity < 0 {
		return nil, fmt.Errorf("parse scene: negative capacity %d", sf.Capacity)
	}
	if sf.Capacity > 0 {
		physicsOpts = append(physicsOpts, physics.WithCapacity(sf.Capacity))
	}
	physicsOpts = append(physicsOpts, physics.WithStopAtFirstStatic(sf.StopAtFirstStatic))
	physicsOpts = append(physicsOpts, opts...)

	scene := engine.NewScene(sf.Name, physicsOpts...)
	if sf.Gravity != nil {
		scene.Gravity = *sf.Gravity
	}

	for _, objDef := range sf.Objects {
		g, err := buildObject(objDef)
		if err != nil {
			return nil, fmt.Errorf("parse scene: object %q: %w", objDef.Name, err)
		}
		scene.AddGameObject(g)
	}

	return scene, nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Static = def.Static
	g.Position = vec3(def.Position)
	g.Velocity = vec3(def.Velocity)

	switch {
	case def.Box != nil:
		g.Box = physics.CollisionBox[float32]{
			Left: def.Box.Left, Right: def.Box.Right,
			Bottom: def.Box.Bottom, Top: def.Box.Top,
			Near: def.Box.Near, Far: def.Box.Far,
		}
	case def.Extents != nil:
		lo, hi := mgl64.Vec3(def.Extents.Min), mgl64.Vec3(def.Extents.Max)
		for i := range 3 {
			if lo[i] > 0 || hi[i] < 0 {
				return nil, fmt.Errorf("invalid extents for %q: min %v max %v", def.Name, lo, hi)
			}
		}
		g.Box = physics.CollisionBoxFromExtents[float32](lo, hi)
	case def.Size != [3]float32{}:
		g.Box = physics.NewCollisionBoxFromSize(vec3(def.Size))
	}

	if def.Color != "" {
		if _, ok := colorByName[def.Color]; !ok {
			return nil, fmt.Errorf("unknown color %q", def.Color)
		}
		g.Color = def.Color
	}

	for _, s := range def.Scripts {
		c := engine.CreateScript(s.Name, s.Props)
		if c == nil {
			return nil, fmt.Errorf("unknown script %q", s.Name)
		}
		g.AddComponent(c)
	}

	return g, nil
}

func vec3(v [3]float32) physics.Vector3[float32] {
	return physics.Vector3[float32]{X: v[0], Y: v[1], Z: v[2]}
}

// DefaultScene is the ground and ball setup used when no scene file is given:
// a static ground whose top face is at y = 1 and a ball dropped from y = 5.
func DefaultScene(opts ...physics.Option) *engine.Scene {
	scene := engine.NewScene("Default", opts...)

	ground := engine.NewGameObject("Ground")
	ground.Tags = []string{"ground"}
	ground.Static = true
	ground.Box = physics.CollisionBox[float32]{Left: 10, Right: 10, Bottom: 1, Top: 1, Near: 10, Far: 10}
	ground.Color = "LightGray"

	ball := engine.NewGameObject("Ball")
	ball.Tags = []string{"ball"}
	ball.Position = physics.Vector3[float32]{Y: 5}
	ball.Color = "Red"

	scene.AddGameObject(ground)
	scene.AddGameObject(ball)
	return scene
}
