package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 4, 20, 6)
	if r.Right() != 30 || r.Bottom() != 10 {
		t.Fatalf("Right(), Bottom() = %d, %d, expected 30, 10", r.Right(), r.Bottom())
	}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin cell", 10, 4, true},
		{"last cell", 29, 9, true},
		{"right edge is exclusive", 30, 5, false},
		{"bottom edge is exclusive", 12, 10, false},
		{"left of rect", 9, 5, false},
		{"above rect", 12, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"touching edges", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"fractional overlap", Box{0, 0, 10, 10}, Box{9.5, 9.5, 1, 1}, true},
		{"apart", Box{0, 0, 10, 10}, Box{20, 20, 1, 1}, false},
		{"contained", Box{0, 0, 100, 100}, Box{40, 40, 2, 2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCenteredBox(t *testing.T) {
	b := CenteredBox(180, 420, 40, 16)
	if b.X != 160 || b.Y != 412 || b.Right() != 200 || b.Bottom() != 428 {
		t.Errorf("CenteredBox() = %+v, expected x 160..200 y 412..428", b)
	}
	cx, cy := b.Center()
	if cx != 180 || cy != 420 {
		t.Errorf("Center() = (%v, %v), expected (180, 420)", cx, cy)
	}
	if b.ContainsPoint(160, 420) {
		t.Error("ContainsPoint() should exclude the left edge")
	}
	if !b.ContainsPoint(161, 420) {
		t.Error("ContainsPoint() should include interior points")
	}
}

func TestVecNormalize(t *testing.T) {
	v := Vec{X: 3, Y: -4}.Normalize(0.42)
	if math.Abs(v.Len()-0.42) > 1e-12 {
		t.Errorf("Normalize().Len() = %v, expected 0.42", v.Len())
	}
	if v.X <= 0 || v.Y >= 0 {
		t.Errorf("Normalize() changed direction: %+v", v)
	}

	zero := Vec{}.Normalize(5)
	if zero != (Vec{}) {
		t.Errorf("Normalize() of zero vector = %+v, expected zero", zero)
	}
}

func TestClamp(t *testing.T) {
	// Lane and column indices in the games are clamped this way.
	for _, tc := range []struct{ in, want int }{{-1, 0}, {0, 0}, {3, 3}, {4, 4}, {9, 4}} {
		if got := Clamp(tc.in, 0, 4); got != tc.want {
			t.Errorf("Clamp(%d, 0, 4) = %d, expected %d", tc.in, got, tc.want)
		}
	}

	if got := ClampF(-5.5, 46, 314); got != 46 {
		t.Errorf("ClampF() = %v, expected 46", got)
	}
}
