package core

import (
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edge (no overlap)",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching corner (no overlap)",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        BoxFromRect(0, 0, 20, 20),
			b:        BoxFromRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        BoxFromRect(0, 0, 10, 10),
			b:        BoxFromRect(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "center form matches rect form",
			a:        NewBox(V(5, 5), 10, 10),
			b:        BoxFromRect(9, 0, 2, 2),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestWithinBounds(t *testing.T) {
	tests := []struct {
		name     string
		center   Vec
		expected bool
	}{
		{"inside", V(320, 300), true},
		{"origin", V(0, 0), true},
		{"right edge (exclusive)", V(640, 300), false},
		{"bottom edge (exclusive)", V(320, 600), false},
		{"negative x", V(-0.5, 10), false},
		{"just inside far corner", V(639.9, 599.9), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBox(tc.center, 25, 25)
			if got := WithinBounds(b, 640, 600); got != tc.expected {
				t.Errorf("WithinBounds(%v) = %v, expected %v", tc.center, got, tc.expected)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(V(0, 0), V(3, 4)); d != 5 {
		t.Errorf("Distance = %v, expected 5", d)
	}
	if d := Distance(V(7, -2), V(7, -2)); d != 0 {
		t.Errorf("Distance to self = %v, expected 0", d)
	}
}

func TestNormalize(t *testing.T) {
	u, ok := V(3, 4).Normalize()
	if !ok {
		t.Fatal("Normalize of non-zero vector reported !ok")
	}
	if math.Abs(u.Len()-1) > 1e-12 {
		t.Errorf("Normalized length = %v, expected 1", u.Len())
	}
	if math.Abs(u.X-0.6) > 1e-12 || math.Abs(u.Y-0.8) > 1e-12 {
		t.Errorf("Normalize = %v, expected (0.6, 0.8)", u)
	}

	if _, ok := V(0, 0).Normalize(); ok {
		t.Error("Normalize of zero vector should report !ok")
	}
}

func TestBoxEdges(t *testing.T) {
	b := BoxFromRect(10, 20, 30, 40)

	if b.Left() != 10 || b.Top() != 20 || b.Right() != 40 || b.Bottom() != 60 {
		t.Errorf("edges = (%v,%v,%v,%v), expected (10,20,40,60)", b.Left(), b.Top(), b.Right(), b.Bottom())
	}
	if b.Width() != 30 || b.Height() != 40 {
		t.Errorf("size = %vx%v, expected 30x40", b.Width(), b.Height())
	}

	moved := b.MovedTo(V(0, 0))
	if moved.Left() != -15 || moved.Width() != 30 {
		t.Errorf("MovedTo changed size or misplaced box: %+v", moved)
	}
	if b.Center != V(25, 40) {
		t.Errorf("MovedTo mutated receiver: %+v", b)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
}
