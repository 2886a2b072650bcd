package chase

import (
	"fmt"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// Field is the immutable set of static walls that forms the maze.
type Field struct {
	boxes []core.Box
}

// NewField creates an obstacle field from the given boxes.
// The slice is copied; every box must have a positive size.
func NewField(boxes []core.Box) (*Field, error) {
	f := &Field{boxes: make([]core.Box, len(boxes))}
	for i, b := range boxes {
		if b.HalfW <= 0 || b.HalfH <= 0 {
			return nil, fmt.Errorf("chase: obstacle %d has non-positive size %gx%g", i, b.Width(), b.Height())
		}
		f.boxes[i] = b
	}
	return f, nil
}

// All returns a copy of every obstacle box.
func (f *Field) All() []core.Box {
	if f == nil {
		return nil
	}
	out := make([]core.Box, len(f.boxes))
	copy(out, f.boxes)
	return out
}

// Len returns the number of obstacles.
func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return len(f.boxes)
}

// Blocks reports whether b overlaps any obstacle.
func (f *Field) Blocks(b core.Box) bool {
	if f == nil {
		return false
	}
	for _, o := range f.boxes {
		if core.Overlaps(o, b) {
			return true
		}
	}
	return false
}
