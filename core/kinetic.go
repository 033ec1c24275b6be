package core

import "github.com/lixenwraith/vi-racer/vmath"

// Kinetic holds positional state advanced once per fixed tick
type Kinetic struct {
	// Pos is the anchor point in world units
	Pos vmath.Vec2
	// Vel is displacement per tick
	Vel vmath.Vec2
}
