package engine

// Event notifies listeners in the order they subscribed.
type Event struct {
	listeners []func()
}

// AddListener subscribes callback. Nil callbacks are ignored.
func (e *Event) AddListener(callback func()) {
	if callback != nil {
		e.listeners = append(e.listeners, callback)
	}
}

func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

// EventWithArg is an Event whose listeners receive a value, such as the
// other object in a collision.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback != nil {
		e.listeners = append(e.listeners, callback)
	}
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}
