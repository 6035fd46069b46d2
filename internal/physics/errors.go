package physics

import "errors"

var (
	// ErrCapacityExceeded is returned by Add when the registry is full. The
	// body is not registered.
	ErrCapacityExceeded = errors.New("physics: registry capacity exceeded")

	// ErrTimeQueryFailed is returned by Tick when the time source could not
	// be read. No body state is touched in that case.
	ErrTimeQueryFailed = errors.New("physics: failed to read monotonic time")
)
