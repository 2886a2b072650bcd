package chase

import "github.com/vovakirdan/maze-chase/internal/core"

// Frame is a read-only snapshot of the world handed to presentation.
// All slices are copies; changing them never affects the world.
type Frame struct {
	Number    uint64
	Bounds    Bounds
	Avatar    core.Box
	Pursuers  []core.Box
	Pickups   []core.Box // Active pickups only
	Obstacles []core.Box
	Terminal  Terminal
	Collected int
	Total     int
}

// Sink receives one frame per tick for drawing.
type Sink interface {
	Draw(f Frame)
}

// Frame captures the current world state.
func (w *World) Frame() Frame {
	f := Frame{
		Number:    w.frame,
		Bounds:    w.bounds,
		Avatar:    w.avatar.Box(),
		Pursuers:  make([]core.Box, len(w.pursuers)),
		Pickups:   make([]core.Box, len(w.pickups)),
		Obstacles: w.field.All(),
		Terminal:  w.terminal,
		Collected: w.Collected(),
		Total:     w.total,
	}
	for i := range w.pursuers {
		f.Pursuers[i] = w.pursuers[i].Box()
	}
	for i, p := range w.pickups {
		f.Pickups[i] = p.Box()
	}
	return f
}

// Render sends the current frame to the sink.
func (w *World) Render(s Sink) {
	s.Draw(w.Frame())
}
