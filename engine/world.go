package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/vehicle"
	"github.com/lixenwraith/vi-racer/vmath"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names
var ErrUnknownPolicy = errors.New("unknown collision policy")

// CollisionPolicy selects how the world responds when the vehicle overlaps an obstacle
type CollisionPolicy uint8

const (
	// PolicyNone reports collisions and leaves motion untouched
	PolicyNone CollisionPolicy = iota
	// PolicyStop restores the pre-tick position and zeroes velocity and acceleration
	PolicyStop
	// PolicyBounce restores the pre-tick position and reverses half the velocity
	PolicyBounce
)

var policyNames = map[string]CollisionPolicy{
	"none":   PolicyNone,
	"stop":   PolicyStop,
	"bounce": PolicyBounce,
}

// ParsePolicy maps a config name to a policy, empty selects PolicyNone
func ParsePolicy(name string) (CollisionPolicy, error) {
	if name == "" {
		return PolicyNone, nil
	}
	p, ok := policyNames[name]
	if !ok {
		return PolicyNone, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return p, nil
}

func (p CollisionPolicy) String() string {
	for n, v := range policyNames {
		if v == p {
			return n
		}
	}
	return "unknown"
}

// bounceRestitution is the share of velocity kept, reversed, after a bounce
const bounceRestitution = 0.5

// Obstacle is static scene geometry
type Obstacle struct {
	Name string
	Rect core.Rect
}

// StepResult describes one world tick
type StepResult struct {
	Tick       uint64
	State      vehicle.State
	Collisions []int // Indices into World.Obstacles overlapping after the move
	Wrapped    bool
}

// World owns one vehicle and the static obstacles it can hit
// Not safe for concurrent use, the scheduler serializes access
type World struct {
	Vehicle   *vehicle.Vehicle
	Obstacles []Obstacle

	// Bounds is the playfield, Wrap maps the vehicle position back inside it each tick
	Bounds core.Rect
	Wrap   bool

	Policy CollisionPolicy

	spawn vmath.Vec2
	tick  uint64
}

// NewWorld creates a world around v, the current vehicle position becomes the spawn point
func NewWorld(v *vehicle.Vehicle, bounds core.Rect, policy CollisionPolicy) *World {
	return &World{
		Vehicle: v,
		Bounds:  bounds,
		Policy:  policy,
		spawn:   v.Position(),
	}
}

// AddObstacle appends a named obstacle and returns its index
func (w *World) AddObstacle(name string, r core.Rect) int {
	w.Obstacles = append(w.Obstacles, Obstacle{Name: name, Rect: r})
	return len(w.Obstacles) - 1
}

// Step advances the vehicle one tick under c and resolves collisions
func (w *World) Step(c input.Controls) StepResult {
	v := w.Vehicle
	prev := v.Position()

	v.Update(c)
	w.tick++

	res := StepResult{Tick: w.tick}

	for i := range w.Obstacles {
		if v.CheckCollision(w.Obstacles[i].Rect) {
			res.Collisions = append(res.Collisions, i)
		}
	}

	if len(res.Collisions) > 0 {
		switch w.Policy {
		case PolicyStop:
			v.SetPosition(prev)
			v.Stop()
		case PolicyBounce:
			vel := v.Velocity()
			v.SetPosition(prev)
			v.Stop()
			v.SetVelocity(vel.Scale(-bounceRestitution))
		}
	}

	if w.Wrap && w.Bounds.Width > 0 && w.Bounds.Height > 0 {
		k := core.Kinetic{Pos: v.Position(), Vel: v.Velocity()}
		if physics.WrapBounds(&k, w.Bounds) {
			v.SetPosition(k.Pos)
			res.Wrapped = true
		}
	}

	res.State = v.Snapshot()
	return res
}

// Tick returns the number of steps taken since construction or the last Reset
func (w *World) Tick() uint64 { return w.tick }

// Reset returns the vehicle to the spawn point at rest and zeroes the tick counter
func (w *World) Reset() {
	w.Vehicle.Reset(w.spawn)
	w.tick = 0
	log.Printf("world reset to spawn (%.1f, %.1f)", w.spawn.X, w.spawn.Y)
}

// SetSpawn changes the point Reset returns to
func (w *World) SetSpawn(p vmath.Vec2) { w.spawn = p }

// ObstacleRects returns obstacle geometry in index order
func (w *World) ObstacleRects() []core.Rect {
	rects := make([]core.Rect, len(w.Obstacles))
	for i := range w.Obstacles {
		rects[i] = w.Obstacles[i].Rect
	}
	return rects
}
