package engine

import (
	"sync/atomic"

	"boxstep/internal/physics"
)

var nextUID atomic.Uint64

// GameObject owns the storage the physics engine borrows each step.
type GameObject struct {
	UID      uint64
	Name     string
	Tags     []string
	Active   bool
	Static   bool
	Position physics.Vector3[float32]
	Velocity physics.Vector3[float32]
	Box      physics.CollisionBox[float32]
	Color    string
	Scene    *Scene

	// OnCollision fires with the other object whenever this object moves
	// into it during a physics step.
	OnCollision EventWithArg[*GameObject]

	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:        nextUID.Add(1),
		Name:       name,
		Active:     true,
		Box:        physics.NewCollisionBoxFromSize(physics.Vector3[float32]{X: 1, Y: 1, Z: 1}),
		Color:      "White",
		components: make([]Component, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Bounds returns the object's collision box in world space.
func (g *GameObject) Bounds() physics.AABB[float32] {
	return g.Box.Bounds(g.Position)
}

// collide notifies listeners and collision handling components.
func (g *GameObject) collide(other *GameObject) {
	g.OnCollision.Invoke(other)
	for _, c := range g.components {
		if h, ok := c.(CollisionHandler); ok {
			h.OnCollision(other)
		}
	}
}
