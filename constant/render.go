package constant

import "github.com/gdamore/tcell/v2"

// Vehicle glyphs indexed by heading octant, octant 0 facing +X
var VehicleGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Scene glyphs
const (
	ObstacleGlyph = '█'
	BoundsGlyph   = '·'
	TrailGlyph    = '∙'
)

// Scene styles
var (
	VehicleStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	ObstacleStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	CollisionStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	BoundsStyle    = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	TrailStyle     = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	StatusStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	PausedStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

// TrailLength is the number of past positions kept for the trail
const TrailLength = 24

// StatusBarHeight is the rows reserved at the bottom of the screen
const StatusBarHeight = 1
