package physics

import (
	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Integrate advances position by one fixed tick: p = p + v
// Velocity is expected to be final for this tick (symplectic Euler)
func Integrate(k *core.Kinetic) vmath.Vec2 {
	k.Pos = k.Pos.Add(k.Vel)
	return k.Pos
}

// ApplyImpulse adds velocity delta (thrust along a direction)
func ApplyImpulse(k *core.Kinetic, dv vmath.Vec2) {
	k.Vel = k.Vel.Add(dv)
}

// SetImpulse overrides velocity (hard stop/redirect)
func SetImpulse(k *core.Kinetic, v vmath.Vec2) {
	k.Vel = v
}

// WrapBounds wraps position into the bounds rectangle, returns true if wrapped
func WrapBounds(k *core.Kinetic, bounds core.Rect) bool {
	x := vmath.WrapRange(k.Pos.X, bounds.X, bounds.Right())
	y := vmath.WrapRange(k.Pos.Y, bounds.Y, bounds.Bottom())
	wrapped := x != k.Pos.X || y != k.Pos.Y
	k.Pos = vmath.V2(x, y)
	return wrapped
}
