package vmath

import "math"

// Vec2 is a float64 2D vector
// Value receiver throughout: operations return new vectors and never alias
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector
var Zero = Vec2{}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Length returns Euclidean magnitude
func (v Vec2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Normalize returns unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l > 0 {
		return v.Scale(1 / l)
	}
	return v
}

// ClampLength rescales v to length max when its length exceeds max
// The comparison is a plain Length() > max: a NaN max never clamps,
// a negative max always does and flips the direction
func (v Vec2) ClampLength(max float64) (Vec2, bool) {
	if !(v.Length() > max) {
		return v, false
	}
	return v.Normalize().Scale(max), true
}
