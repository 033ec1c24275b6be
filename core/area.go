package core

// Rect is an axis-aligned box anchored at its top-left corner
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Right returns the x coordinate of the far edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the far edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains reports whether the point lies inside r, edges inclusive
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}
