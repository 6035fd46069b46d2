package physics

import (
	"fmt"
	"sync"
	"time"
)

// TimeSource yields monotonic readings. Only differences between readings
// are meaningful.
type TimeSource interface {
	Now() (time.Duration, error)
}

// MonotonicSource reads Go's monotonic clock, so wall clock adjustments do
// not affect it.
type MonotonicSource struct {
	origin time.Time
}

// NewMonotonicSource creates a source whose readings count from now.
func NewMonotonicSource() *MonotonicSource {
	return &MonotonicSource{origin: time.Now()}
}

// Now returns the time elapsed since the source was created. It never fails.
func (s *MonotonicSource) Now() (time.Duration, error) {
	return time.Since(s.origin), nil
}

// MockTimeSource provides a controllable time source for testing
type MockTimeSource struct {
	mu      sync.RWMutex
	current time.Duration
	err     error
}

// NewMockTimeSource creates a mock source starting at start
func NewMockTimeSource(start time.Duration) *MockTimeSource {
	return &MockTimeSource{current: start}
}

// Now returns the mocked reading, or the configured failure
func (m *MockTimeSource) Now() (time.Duration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return 0, m.err
	}
	return m.current, nil
}

// Set sets the current reading
func (m *MockTimeSource) Set(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = d
}

// Advance moves the reading forward by d
func (m *MockTimeSource) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current += d
}

// Fail makes every following Now call return err. Pass nil to recover.
func (m *MockTimeSource) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Clock turns successive TimeSource readings into per-step deltas.
type Clock struct {
	source   TimeSource
	seeded   bool
	previous time.Duration
}

// NewClock creates an unseeded clock reading from source. A nil source uses
// a fresh MonotonicSource.
func NewClock(source TimeSource) *Clock {
	if source == nil {
		source = NewMonotonicSource()
	}
	return &Clock{source: source}
}

// Seeded reports whether the clock has taken its first reading.
func (c *Clock) Seeded() bool {
	return c.seeded
}

// Reset returns the clock to the unseeded state, so the next Delta reports
// zero. Hosts call it after pausing.
func (c *Clock) Reset() {
	c.seeded = false
	c.previous = 0
}

// Delta returns the time since the previous successful call. The first
// successful call seeds the clock and returns zero. On failure the clock
// keeps its previous state and the error wraps ErrTimeQueryFailed.
func (c *Clock) Delta() (time.Duration, error) {
	now, err := c.source.Now()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTimeQueryFailed, err)
	}

	if !c.seeded {
		c.seeded = true
		c.previous = now
		return 0, nil
	}

	delta := now - c.previous
	c.previous = now
	return delta, nil
}

// Seconds converts a duration to the engine's scalar type.
func Seconds[T Float](d time.Duration) T {
	return T(d.Seconds())
}
