package vmath

import "math"

// DegToRadFactor converts degrees to radians
const DegToRadFactor = math.Pi / 180

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 { return deg * DegToRadFactor }

// Direction returns the unit vector for a heading in degrees
// 0° points along +X, 90° along +Y (screen down)
func Direction(deg float64) Vec2 {
	rad := DegToRad(deg)
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// WrapRange maps v into [min, max), used for toroidal world edges
// Returns min if the range is empty
func WrapRange(v, min, max float64) float64 {
	span := max - min
	if span <= 0 {
		return min
	}
	r := math.Mod(v-min, span)
	if r < 0 {
		r += span
	}
	return min + r
}
