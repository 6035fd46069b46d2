package physics

import (
	"log"
)

// CollisionFunc observes an overlap before it is resolved. collider is the
// body that just moved; collidee is the body it overlaps. Both point into the
// registry and are only valid during the call.
type CollisionFunc[T Float] func(collider, collidee *Body[T])

// Stats describes the last completed step.
type Stats struct {
	Bodies     int // bodies registered when the step ran
	Integrated int // non-static bodies that were moved
	Contacts   int // overlapping pairs that were resolved
	Rejected   int // Add calls refused since the previous step
}

// Engine owns a registry and a clock. It is not safe for concurrent use;
// the host adds bodies and then calls Tick once per frame from one goroutine.
type Engine[T Float] struct {
	registry *Registry[T]
	clock    *Clock

	stopAtFirstStatic bool
	logger            *log.Logger

	stats    Stats
	rejected int
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	capacity          int
	source            TimeSource
	stopAtFirstStatic bool
	logger            *log.Logger
}

// WithCapacity sets the maximum number of bodies per step.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithTimeSource replaces the monotonic clock, mainly for tests.
func WithTimeSource(ts TimeSource) Option {
	return func(o *options) { o.source = ts }
}

// WithStopAtFirstStatic makes the integration pass end at the first static
// body in registry order instead of skipping static bodies one by one.
// Dynamic bodies registered after that static body are neither moved nor
// resolved for the step.
func WithStopAtFirstStatic(stop bool) Option {
	return func(o *options) { o.stopAtFirstStatic = stop }
}

// WithLogger enables logging of rejected bodies and clock failures.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates an engine with an empty registry and an unseeded clock.
func New[T Float](opts ...Option) *Engine[T] {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine[T]{
		registry:          NewRegistry[T](o.capacity),
		clock:             NewClock(o.source),
		stopAtFirstStatic: o.stopAtFirstStatic,
		logger:            o.logger,
	}
}

// Add registers a body for the next Tick. The engine keeps the pointers, not
// copies, so the storage must outlive that Tick.
func (e *Engine[T]) Add(box *CollisionBox[T], static bool, position, velocity *Vector3[T], userData any) error {
	err := e.registry.Add(box, static, position, velocity, userData)
	if err != nil {
		if e.rejected == 0 && e.logger != nil {
			e.logger.Printf("Physics: registry full (%d bodies), dropping bodies until next tick", e.registry.Cap())
		}
		e.rejected++
	}
	return err
}

// Registry exposes the bodies queued for the next step.
func (e *Engine[T]) Registry() *Registry[T] {
	return e.registry
}

// Clock returns the engine's clock.
func (e *Engine[T]) Clock() *Clock {
	return e.clock
}

// Reset drops every registered body and the rejected count without
// stepping. Hosts that re-register all bodies after a failed Tick call it.
func (e *Engine[T]) Reset() {
	e.registry.Reset()
	e.rejected = 0
}

// Stats returns counters for the last completed step.
func (e *Engine[T]) Stats() Stats {
	return e.stats
}

// Tick advances the simulation by the time elapsed since the previous Tick
// and then empties the registry. The first Tick only seeds the clock and runs
// with a zero delta.
//
// If the clock cannot be read Tick returns an error wrapping
// ErrTimeQueryFailed without touching any body or the registry.
func (e *Engine[T]) Tick(gravity T, onCollision CollisionFunc[T]) error {
	delta, err := e.clock.Delta()
	if err != nil {
		if e.logger != nil {
			e.logger.Printf("Physics: tick skipped: %v", err)
		}
		return err
	}

	e.Step(Seconds[T](delta), gravity, onCollision)
	return nil
}

// Step runs one integration and collision pass with an explicit delta time
// in seconds, then empties the registry. The clock is not consulted.
func (e *Engine[T]) Step(dt, gravity T, onCollision CollisionFunc[T]) {
	e.stats = Stats{Bodies: e.registry.Len(), Rejected: e.rejected}

	for i := 0; i < e.registry.Len(); i++ {
		body := e.registry.At(i)
		if body.Static {
			if e.stopAtFirstStatic {
				break
			}
			continue
		}

		integrate(body, dt, gravity)
		e.stats.Integrated++

		e.resolveCollisions(i, onCollision)
	}

	e.Reset()
}

// integrate applies gravity and moves the body by its velocity. Gravity is
// only added while velocity.y is below the gravity magnitude, which caps the
// per step gain at one gravity unit.
func integrate[T Float](b *Body[T], dt, gravity T) {
	if b.Velocity.Y < gravity {
		b.Velocity.Y -= gravity
	}

	*b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// resolveCollisions tests body i against every other body in registry order
// and pushes body i out of each one it overlaps. There is no settling pass,
// so a push can leave body i inside a body that was already checked.
func (e *Engine[T]) resolveCollisions(i int, onCollision CollisionFunc[T]) {
	body := e.registry.At(i)

	for j := 0; j < e.registry.Len(); j++ {
		if j == i {
			continue
		}
		other := e.registry.At(j)

		self := body.Bounds()
		bounds := other.Bounds()
		if !self.Intersects(bounds) {
			continue
		}

		if onCollision != nil {
			onCollision(body, other)
		}
		e.stats.Contacts++

		// Resolve against whatever state the callback left behind.
		self = body.Bounds()
		bounds = other.Bounds()
		body.Box.PushOut(body.Position, bounds, self.Penetration(bounds))
	}
}
