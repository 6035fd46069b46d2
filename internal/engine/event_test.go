package engine

import "testing"

func TestEventInvokeOrder(t *testing.T) {
	var e Event
	var order []int

	e.AddListener(func() { order = append(order, 1) })
	e.AddListener(nil)
	e.AddListener(func() { order = append(order, 2) })

	e.Invoke()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected listeners in order [1 2], got %v", order)
	}

	e.Invoke()
	if len(order) != 4 {
		t.Errorf("Expected listeners to run on every Invoke, got %v", order)
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[string]
	var got []string

	e.AddListener(func(s string) { got = append(got, s) })
	e.AddListener(nil)
	e.Invoke("hit")

	if len(got) != 1 || got[0] != "hit" {
		t.Errorf("Expected [hit], got %v", got)
	}
}
