// Package core provides fundamental types and utilities for the maze chase game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a point or displacement in world units.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector pointing along v.
// Returns ok=false for the zero vector, which has no direction.
func (v Vec) Normalize() (Vec, bool) {
	l := v.Len()
	if l == 0 {
		return Vec{}, false
	}
	return Vec{X: v.X / l, Y: v.Y / l}, true
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// Box is an axis-aligned bounding box stored as center plus half extents.
type Box struct {
	Center Vec
	HalfW  float64
	HalfH  float64
}

// NewBox creates a box of the given full width and height centered on c.
func NewBox(c Vec, w, h float64) Box {
	return Box{Center: c, HalfW: w / 2, HalfH: h / 2}
}

// BoxFromRect creates a box from a top-left corner and size.
func BoxFromRect(x, y, w, h float64) Box {
	return Box{
		Center: Vec{X: x + w/2, Y: y + h/2},
		HalfW:  w / 2,
		HalfH:  h / 2,
	}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Center.X - b.HalfW }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Center.X + b.HalfW }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Center.Y - b.HalfH }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Center.Y + b.HalfH }

// Width returns the full width of the box.
func (b Box) Width() float64 { return 2 * b.HalfW }

// Height returns the full height of the box.
func (b Box) Height() float64 { return 2 * b.HalfH }

// MovedTo returns a copy of b recentered on c.
func (b Box) MovedTo(c Vec) Box {
	b.Center = c
	return b
}

// Overlaps reports whether two boxes share a region of nonzero area.
// Boxes that only touch along an edge do not overlap.
func Overlaps(a, b Box) bool {
	// No overlap if one box is completely to the left, right, above, or below
	if a.Left() >= b.Right() || b.Left() >= a.Right() {
		return false
	}
	if a.Top() >= b.Bottom() || b.Top() >= a.Bottom() {
		return false
	}
	return true
}

// Overlaps is the method form of the package-level Overlaps.
func (b Box) Overlaps(other Box) bool {
	return Overlaps(b, other)
}

// WithinBounds reports whether the box center lies in [0, w) x [0, h).
func WithinBounds(b Box, w, h float64) bool {
	return b.Center.X >= 0 && b.Center.X < w && b.Center.Y >= 0 && b.Center.Y < h
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
