// Package render draws an engine.World onto a tcell screen, one world unit per cell
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/constant"
	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vmath"
)

type cell struct {
	x, y int
}

// Scene keeps the per-frame visual state the world does not: the trail and collision flashes
type Scene struct {
	screen tcell.Screen
	trail  []cell
	flash  map[int]int // Obstacle index to remaining flash ticks
}

// NewScene creates a scene drawing to screen
func NewScene(screen tcell.Screen) *Scene {
	return &Scene{
		screen: screen,
		trail:  make([]cell, 0, constant.TrailLength),
		flash:  make(map[int]int),
	}
}

// Observe feeds one tick into the trail and flash counters
func (s *Scene) Observe(res engine.StepResult, footprint core.Rect) {
	for i, n := range s.flash {
		if n <= 1 {
			delete(s.flash, i)
		} else {
			s.flash[i] = n - 1
		}
	}
	for _, i := range res.Collisions {
		s.flash[i] = parameter.CollisionFlashTicks
	}

	c := toCell(footprint.Center())
	if res.Wrapped {
		s.trail = s.trail[:0]
	}
	if n := len(s.trail); n > 0 && s.trail[n-1] == c {
		return
	}
	if len(s.trail) == constant.TrailLength {
		copy(s.trail, s.trail[1:])
		s.trail = s.trail[:len(s.trail)-1]
	}
	s.trail = append(s.trail, c)
}

// Flashing reports whether obstacle i is still highlighted from a recent hit
func (s *Scene) Flashing(i int) bool {
	return s.flash[i] > 0
}

// TrailLen returns the number of trail cells
func (s *Scene) TrailLen() int { return len(s.trail) }

// Reset clears trail and flashes
func (s *Scene) Reset() {
	s.trail = s.trail[:0]
	clear(s.flash)
}

// Draw renders the world and status line, then shows the screen
func (s *Scene) Draw(w *engine.World, st Status) {
	s.screen.Clear()
	width, height := s.screen.Size()
	playHeight := height - constant.StatusBarHeight

	s.drawBounds(w.Bounds, width, playHeight)

	for i, o := range w.Obstacles {
		style := constant.ObstacleStyle
		if s.Flashing(i) {
			style = constant.CollisionStyle
		}
		s.fillRect(o.Rect, constant.ObstacleGlyph, style, width, playHeight)
	}

	// Oldest trail points fade toward black
	for i, c := range s.trail {
		intensity := int32(64 + 191*(i+1)/len(s.trail))
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, intensity, intensity))
		s.setCell(c.x, c.y, constant.TrailGlyph, style, width, playHeight)
	}

	v := w.Vehicle
	s.fillRect(v.Bounds(), HeadingGlyph(v.Heading()), constant.VehicleStyle, width, playHeight)

	statusStyle := constant.StatusStyle
	if st.Paused {
		statusStyle = constant.PausedStyle
	}
	line := StatusLine(v.Snapshot(), st)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		s.screen.SetContent(x, playHeight, r, nil, statusStyle)
	}

	s.screen.Show()
}

func (s *Scene) drawBounds(b core.Rect, width, height int) {
	if !(b.Width > 0) || !(b.Height > 0) {
		return
	}
	x0, x1 := cellSpan(b.X, b.Right(), width)
	y0, y1 := cellSpan(b.Y, b.Bottom(), height)
	for x := x0; x < x1; x++ {
		s.setCell(x, y1, constant.BoundsGlyph, constant.BoundsStyle, width, height)
	}
	for y := y0; y <= y1; y++ {
		s.setCell(x1, y, constant.BoundsGlyph, constant.BoundsStyle, width, height)
	}
}

func (s *Scene) fillRect(r core.Rect, glyph rune, style tcell.Style, width, height int) {
	x0, x1 := cellSpan(r.X, r.Right(), width)
	y0, y1 := cellSpan(r.Y, r.Bottom(), height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.setCell(x, y, glyph, style, width, height)
		}
	}
}

func (s *Scene) setCell(x, y int, r rune, style tcell.Style, width, height int) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

// cellSpan maps a world interval to the half-open cell range it touches
// Ends are clamped to [-1, limit+1] so off-screen extents cost nothing and stay off-screen
// A NaN end yields an empty span
func cellSpan(lo, hi float64, limit int) (int, int) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, 0
	}
	edge := float64(limit + 1)
	a := int(math.Floor(math.Max(-1, math.Min(lo, edge))))
	b := int(math.Ceil(math.Max(-1, math.Min(hi, edge))))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func toCell(x, y float64) cell {
	return cell{int(math.Floor(x)), int(math.Floor(y))}
}

// HeadingGlyph picks the arrow closest to a heading in degrees, +Y pointing down
func HeadingGlyph(deg float64) rune {
	norm := vmath.WrapRange(deg, 0, 360)
	octant := int(math.Floor((norm+22.5)/45)) % 8
	return constant.VehicleGlyphs[octant]
}
