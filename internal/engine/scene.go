package engine

import (
	"errors"
	"log"

	"boxstep/internal/physics"
)

// DefaultGravity is the per-step gravity magnitude used by new scenes.
const DefaultGravity float32 = 0.1

type Scene struct {
	Name        string
	GameObjects []*GameObject
	Physics     *physics.Engine[float32]
	Gravity     float32

	// OnStep fires after every successful physics step.
	OnStep Event

	uidIndex      map[uint64]*GameObject
	lastDropCount int // prevents logging the same overflow every frame
}

// NewScene creates an empty scene. opts configure its physics engine.
func NewScene(name string, opts ...physics.Option) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		Physics:     physics.New[float32](opts...),
		Gravity:     DefaultGravity,
		uidIndex:    make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidIndex[g.UID] = g
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.uidIndex, g.UID)
			g.Scene = nil
			return
		}
	}
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidIndex[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

// Step registers every active object with the physics engine, in scene order,
// and runs one tick. Objects that do not fit in the registry are skipped for
// this step. Collisions are delivered to the moving object's OnCollision
// listeners and CollisionHandler components.
func (s *Scene) Step() error {
	dropped := 0
	for _, g := range s.GameObjects {
		if !g.Active {
			continue
		}
		err := s.Physics.Add(&g.Box, g.Static, &g.Position, &g.Velocity, g)
		if errors.Is(err, physics.ErrCapacityExceeded) {
			dropped++
		}
	}

	if dropped != s.lastDropCount {
		if dropped > 0 {
			log.Printf("Physics: %d objects over capacity %d skipped", dropped, s.Physics.Registry().Cap())
		}
		s.lastDropCount = dropped
	}

	if err := s.Physics.Tick(s.Gravity, dispatchCollision); err != nil {
		// Objects are re-registered on the next Step.
		s.Physics.Reset()
		return err
	}

	s.OnStep.Invoke()
	return nil
}

func dispatchCollision(collider, collidee *physics.Body[float32]) {
	a, ok := collider.UserData.(*GameObject)
	if !ok {
		return
	}
	b, _ := collidee.UserData.(*GameObject)
	a.collide(b)
}
