package scripts

import "boxstep/internal/engine"

// HitFlash swaps the object's color for a short while after every collision.
type HitFlash struct {
	engine.BaseComponent
	Color    string
	Duration float32
	Hits     int

	original  string
	remaining float32
}

func (h *HitFlash) Start() {
	if g := h.GetGameObject(); g != nil {
		h.original = g.Color
	}
}

func (h *HitFlash) OnCollision(other *engine.GameObject) {
	g := h.GetGameObject()
	if g == nil {
		return
	}
	h.Hits++
	h.remaining = h.Duration
	g.Color = h.Color
}

func (h *HitFlash) Update(deltaTime float32) {
	if h.remaining <= 0 {
		return
	}
	h.remaining -= deltaTime
	if h.remaining <= 0 {
		if g := h.GetGameObject(); g != nil {
			g.Color = h.original
		}
	}
}

func init() {
	engine.RegisterScript("HitFlash", hitFlashFactory)
}

func hitFlashFactory(props map[string]any) engine.Component {
	h := &HitFlash{Color: "Yellow", Duration: 0.2}
	if v, ok := props["color"].(string); ok {
		h.Color = v
	}
	if v, ok := props["duration"].(float64); ok {
		h.Duration = float32(v)
	}
	return h
}
