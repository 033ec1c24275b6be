package render

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/vi-racer/core"
)

// Point is a float32 pixel coordinate for GPU-side drawing
type Point struct {
	X, Y float32
}

// BodyOutline returns the corners of r rotated about its center to heading, scaled to pixels
// Order is front-left, front-right, rear-right, rear-left with +Y pointing down
func BodyOutline(r core.Rect, headingDeg float64, scale float32) [4]Point {
	cx := float32(r.X+r.Width/2) * scale
	cy := float32(r.Y+r.Height/2) * scale
	hw := float32(r.Width/2) * scale
	hh := float32(r.Height/2) * scale

	rad := float32(headingDeg) * math32.Pi / 180
	sin, cos := math32.Sin(rad), math32.Cos(rad)

	local := [4]Point{{hw, -hh}, {hw, hh}, {-hw, hh}, {-hw, -hh}}
	var out [4]Point
	for i, p := range local {
		out[i] = Point{
			X: cx + p.X*cos - p.Y*sin,
			Y: cy + p.X*sin + p.Y*cos,
		}
	}
	return out
}

// Nose returns the midpoint of the front edge of an outline
func Nose(outline [4]Point) Point {
	return Point{
		X: (outline[0].X + outline[1].X) / 2,
		Y: (outline[0].Y + outline[1].Y) / 2,
	}
}
