package physics

import (
	"github.com/lixenwraith/vi-racer/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was rescaled; NaN maxSpeed never clamps, NaN velocity stays NaN
func CapSpeed(vel *vmath.Vec2, maxSpeed float64) bool {
	capped, ok := vel.ClampLength(maxSpeed)
	*vel = capped
	return ok
}

// ApplyDrag scales velocity by a per-tick multiplicative factor
func ApplyDrag(vel *vmath.Vec2, drag float64) {
	*vel = vel.Scale(drag)
}

// DecayScalar applies a per-tick multiplier and snaps to exactly zero below epsilon
func DecayScalar(v, factor, epsilon float64) float64 {
	v *= factor
	if v < epsilon && v > -epsilon {
		return 0
	}
	return v
}
