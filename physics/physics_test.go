package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/vmath"
)

// TestCapSpeed verifies clamping preserves direction and reports state
func TestCapSpeed(t *testing.T) {
	v := vmath.V2(6, 8)
	if !CapSpeed(&v, 5) {
		t.Fatal("Expected clamp on over-speed vector")
	}
	if math.Abs(v.Length()-5) > 1e-12 {
		t.Errorf("Expected length 5, got %f", v.Length())
	}
	if math.Abs(v.X-3) > 1e-12 || math.Abs(v.Y-4) > 1e-12 {
		t.Errorf("Expected (3, 4), got (%f, %f)", v.X, v.Y)
	}

	slow := vmath.V2(1, 1)
	if CapSpeed(&slow, 5) {
		t.Error("Expected no clamp under the limit")
	}

	exact := vmath.V2(3, 4)
	if CapSpeed(&exact, 5) {
		t.Error("Expected no clamp at exactly the limit")
	}
}

// TestCapSpeedNonFinite verifies a NaN limit leaves velocity alone and a negative one flips it
func TestCapSpeedNonFinite(t *testing.T) {
	v := vmath.V2(1, 0)
	if CapSpeed(&v, math.NaN()) || v != vmath.V2(1, 0) {
		t.Errorf("Expected NaN limit to keep (1, 0), got %+v", v)
	}

	neg := vmath.V2(0.5, 0)
	if !CapSpeed(&neg, -1) || neg != vmath.V2(-1, 0) {
		t.Errorf("Expected negative limit to give (-1, 0), got %+v", neg)
	}

	nan := vmath.V2(math.NaN(), 0)
	if CapSpeed(&nan, 5) || !math.IsNaN(nan.X) {
		t.Errorf("Expected NaN velocity to pass through, got %+v", nan)
	}
}

// TestDecayScalar verifies multiplicative decay and epsilon snapping
func TestDecayScalar(t *testing.T) {
	if got := DecayScalar(1, 0.5, 0.1); got != 0.5 {
		t.Errorf("Expected 0.5, got %f", got)
	}
	if got := DecayScalar(0.15, 0.5, 0.1); got != 0 {
		t.Errorf("Expected snap to 0, got %f", got)
	}
	if got := DecayScalar(-0.15, 0.5, 0.1); got != 0 {
		t.Errorf("Expected negative snap to 0, got %f", got)
	}
	if got := DecayScalar(-1, 0.5, 0.1); got != -0.5 {
		t.Errorf("Expected -0.5, got %f", got)
	}
}

// TestIntegrate verifies unit-step position update
func TestIntegrate(t *testing.T) {
	k := core.Kinetic{Pos: vmath.V2(1, 1), Vel: vmath.V2(0.5, -2)}
	ApplyImpulse(&k, vmath.V2(0.5, 0))
	p := Integrate(&k)
	if p != vmath.V2(2, -1) || k.Pos != p {
		t.Errorf("Expected (2, -1), got %+v", p)
	}

	SetImpulse(&k, vmath.Zero)
	if Integrate(&k) != vmath.V2(2, -1) {
		t.Error("Expected zero velocity to keep position")
	}
}

// TestWrapBounds verifies toroidal wrapping
func TestWrapBounds(t *testing.T) {
	k := core.Kinetic{Pos: vmath.V2(105, -5)}
	if !WrapBounds(&k, core.Rect{Width: 100, Height: 50}) {
		t.Error("Expected wrap to report true")
	}
	if math.Abs(k.Pos.X-5) > 1e-12 || math.Abs(k.Pos.Y-45) > 1e-12 {
		t.Errorf("Expected (5, 45), got %+v", k.Pos)
	}

	k.Pos = vmath.V2(10, 10)
	if WrapBounds(&k, core.Rect{Width: 100, Height: 50}) {
		t.Error("Expected in-bounds position to not wrap")
	}
}

// TestOverlaps covers overlap, edge contact and containment
func TestOverlaps(t *testing.T) {
	base := core.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name  string
		other core.Rect
		want  bool
	}{
		{"overlapping", core.Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"touching right edge", core.Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"touching bottom edge", core.Rect{X: 0, Y: 10, Width: 10, Height: 10}, false},
		{"touching corner", core.Rect{X: 10, Y: 10, Width: 5, Height: 5}, false},
		{"contained", core.Rect{X: 2, Y: 2, Width: 1, Height: 1}, true},
		{"disjoint", core.Rect{X: 50, Y: 50, Width: 1, Height: 1}, false},
		{"nan", core.Rect{X: math.NaN(), Y: 0, Width: 1, Height: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(base, tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.other, base); got != tt.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}
