package physics

import "github.com/lixenwraith/vi-racer/core"

// Overlaps is the AABB test between two top-left anchored rectangles
// Strict inequalities: boxes sharing only an edge do not overlap
// NaN in any coordinate yields false
func Overlaps(a, b core.Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}
