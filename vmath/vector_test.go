package vmath

import (
	"math"
	"testing"
)

const eps = 1e-12

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// TestNormalize verifies unit length and zero-safety
func TestNormalize(t *testing.T) {
	n := V2(3, 4).Normalize()
	if !near(n.Length(), 1, eps) {
		t.Errorf("Expected unit length, got %f", n.Length())
	}
	if !near(n.X, 0.6, eps) || !near(n.Y, 0.8, eps) {
		t.Errorf("Expected (0.6, 0.8), got (%f, %f)", n.X, n.Y)
	}

	if z := Zero.Normalize(); z != Zero {
		t.Errorf("Expected zero vector to stay zero, got %+v", z)
	}
}

// TestArithmeticDoesNotAlias verifies value semantics
func TestArithmeticDoesNotAlias(t *testing.T) {
	a := V2(1, 2)
	b := a.Add(V2(10, 10)).Scale(2).Sub(V2(1, 1))

	if a != V2(1, 2) {
		t.Errorf("Expected receiver unchanged, got %+v", a)
	}
	if b != V2(21, 23) {
		t.Errorf("Expected (21, 23), got %+v", b)
	}
}

// TestClampLength verifies direction is preserved and short vectors pass through
func TestClampLength(t *testing.T) {
	v, clamped := V2(30, 40).ClampLength(5)
	if !clamped {
		t.Error("Expected clamp to report true")
	}
	if !near(v.Length(), 5, eps) {
		t.Errorf("Expected length 5, got %f", v.Length())
	}
	if !near(v.X/v.Y, 0.75, eps) {
		t.Errorf("Expected direction preserved, got ratio %f", v.X/v.Y)
	}

	short := V2(1, 1)
	if got, clamped := short.ClampLength(5); clamped || got != short {
		t.Errorf("Expected short vector unchanged, got %+v (clamped=%v)", got, clamped)
	}

	exact := V2(3, 4)
	if _, clamped := exact.ClampLength(5); clamped {
		t.Error("Expected no clamp at exactly the limit")
	}
}

// TestClampLengthNonFinite verifies NaN never clamps and a negative limit flips
func TestClampLengthNonFinite(t *testing.T) {
	v := V2(1, 0)
	if got, clamped := v.ClampLength(math.NaN()); clamped || got != v {
		t.Errorf("Expected NaN limit to leave %+v untouched, got %+v", v, got)
	}

	got, clamped := V2(0.5, 0).ClampLength(-1)
	if !clamped || got != V2(-1, 0) {
		t.Errorf("Expected negative limit to give (-1, 0), got %+v (clamped=%v)", got, clamped)
	}

	if got, clamped := Zero.ClampLength(-1); !clamped || got != Zero {
		t.Errorf("Expected zero vector to stay zero, got %+v", got)
	}
}

// TestDirection verifies heading convention
func TestDirection(t *testing.T) {
	tests := []struct {
		deg  float64
		want Vec2
	}{
		{0, V2(1, 0)},
		{90, V2(0, 1)},
		{-90, V2(0, -1)},
		{180, V2(-1, 0)},
		{720, V2(1, 0)},
	}
	for _, tt := range tests {
		got := Direction(tt.deg)
		if !near(got.X, tt.want.X, 1e-9) || !near(got.Y, tt.want.Y, 1e-9) {
			t.Errorf("Direction(%v) = %+v, want %+v", tt.deg, got, tt.want)
		}
	}
}

// TestWrapRange verifies toroidal wrapping in both directions
func TestWrapRange(t *testing.T) {
	if got := WrapRange(12, 0, 10); !near(got, 2, eps) {
		t.Errorf("Expected 2, got %f", got)
	}
	if got := WrapRange(-3, 0, 10); !near(got, 7, eps) {
		t.Errorf("Expected 7, got %f", got)
	}
	if got := WrapRange(5, 3, 3); got != 3 {
		t.Errorf("Expected empty range to return min, got %f", got)
	}
}
