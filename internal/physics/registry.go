package physics

// DefaultCapacity is the registry size used when no WithCapacity option is given.
const DefaultCapacity = 64

// Body is a per-step descriptor. It borrows the host's position, velocity and
// box storage; those must stay valid until the Tick that reads them returns.
// The engine writes Position and Velocity in place and never writes Box or
// UserData.
type Body[T Float] struct {
	Static   bool
	Position *Vector3[T]
	Velocity *Vector3[T]
	Box      *CollisionBox[T]
	UserData any
}

// Bounds returns the body's box in world space.
func (b *Body[T]) Bounds() AABB[T] {
	return b.Box.Bounds(*b.Position)
}

// Registry is a fixed capacity, ordered list of bodies. The backing array is
// allocated once; Reset only drops the count.
type Registry[T Float] struct {
	bodies []Body[T]
	count  int
}

// NewRegistry creates a registry holding at most capacity bodies. A
// non-positive capacity falls back to DefaultCapacity.
func NewRegistry[T Float](capacity int) *Registry[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry[T]{bodies: make([]Body[T], capacity)}
}

// Add appends a body. All capacity slots are usable; once they are taken Add
// returns ErrCapacityExceeded and leaves the registry unchanged.
func (r *Registry[T]) Add(box *CollisionBox[T], static bool, position, velocity *Vector3[T], userData any) error {
	if r.count >= len(r.bodies) {
		return ErrCapacityExceeded
	}

	r.bodies[r.count] = Body[T]{
		Static:   static,
		Position: position,
		Velocity: velocity,
		Box:      box,
		UserData: userData,
	}
	r.count++
	return nil
}

// Len returns the number of registered bodies.
func (r *Registry[T]) Len() int {
	return r.count
}

// Cap returns the maximum number of bodies.
func (r *Registry[T]) Cap() int {
	return len(r.bodies)
}

// At returns the i-th registered body. It panics if i is out of range.
func (r *Registry[T]) At(i int) *Body[T] {
	return &r.bodies[:r.count][i]
}

// Reset empties the registry. Stale descriptors are cleared so that the
// registry does not keep host storage alive.
func (r *Registry[T]) Reset() {
	clear(r.bodies[:r.count])
	r.count = 0
}
