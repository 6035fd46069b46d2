package scripts

import (
	"boxstep/internal/engine"
	"boxstep/internal/physics"
)

// Respawn puts an object back at its starting position once it falls below
// KillY, for example after being pushed off the edge of the ground.
type Respawn struct {
	engine.BaseComponent
	KillY float32

	spawn physics.Vector3[float32]
}

func (r *Respawn) Start() {
	if g := r.GetGameObject(); g != nil {
		r.spawn = g.Position
	}
}

func (r *Respawn) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil || g.Position.Y >= r.KillY {
		return
	}
	g.Position = r.spawn
	g.Velocity = physics.Vector3[float32]{}
}

func init() {
	engine.RegisterScript("Respawn", respawnFactory)
}

func respawnFactory(props map[string]any) engine.Component {
	killY := float32(-20)
	if v, ok := props["killY"].(float64); ok {
		killY = float32(v)
	}
	return &Respawn{KillY: killY}
}
