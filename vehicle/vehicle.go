package vehicle

import (
	"math"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Vehicle is a single 2D agent advanced once per fixed tick
// Not safe for concurrent use; independent instances share no state
type Vehicle struct {
	kin          core.Kinetic
	heading      float64 // Degrees, unbounded
	acceleration float64 // Signed thrust along heading
	width        float64
	height       float64
	tuning       Tuning
}

// Option configures a Vehicle at construction
type Option func(*Vehicle)

// WithTuning replaces the whole tuning set, heading is reset to its InitialHeading
func WithTuning(t Tuning) Option {
	return func(v *Vehicle) {
		v.tuning = t
		v.heading = t.InitialHeading
	}
}

func WithMaxSpeed(s float64) Option { return func(v *Vehicle) { v.tuning.MaxSpeed = s } }

func WithTurnRate(deg float64) Option { return func(v *Vehicle) { v.tuning.TurnRate = deg } }

func WithFriction(f float64) Option { return func(v *Vehicle) { v.tuning.Friction = f } }

func WithDrag(d float64) Option { return func(v *Vehicle) { v.tuning.Drag = d } }

// WithHeading sets the initial heading in degrees
func WithHeading(deg float64) Option {
	return func(v *Vehicle) {
		v.tuning.InitialHeading = deg
		v.heading = deg
	}
}

// New creates a vehicle at rest with its top-left corner at (x, y)
func New(x, y, width, height float64, opts ...Option) *Vehicle {
	t := DefaultTuning()
	v := &Vehicle{
		kin:     core.Kinetic{Pos: vmath.V2(x, y)},
		heading: t.InitialHeading,
		width:   width,
		height:  height,
		tuning:  t,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Update advances the vehicle by one tick
func (v *Vehicle) Update(c input.Controls) {
	t := &v.tuning

	if c.Gas {
		v.acceleration += t.ThrottleAccel
	}
	if c.Brake {
		v.acceleration -= t.BrakeAccel
	}
	v.acceleration = physics.DecayScalar(v.acceleration, t.Friction, t.Epsilon)

	// Bound drift carried over from earlier ticks before new thrust lands
	physics.CapSpeed(&v.kin.Vel, t.MaxSpeed)

	if c.TurnLeft {
		v.heading -= t.TurnRate
	}
	if c.TurnRight {
		v.heading += t.TurnRate
	}

	dir := vmath.Direction(v.heading)
	physics.ApplyImpulse(&v.kin, dir.Scale(v.acceleration))
	physics.ApplyDrag(&v.kin.Vel, t.Drag)
	physics.Integrate(&v.kin)

	physics.CapSpeed(&v.kin.Vel, t.MaxSpeed)
}

// UpdateInputs is Update with the four controls as separate flags
func (v *Vehicle) UpdateInputs(gas, brake, turnLeft, turnRight bool) {
	v.Update(input.Controls{Gas: gas, Brake: brake, TurnLeft: turnLeft, TurnRight: turnRight})
}

// CheckCollision reports AABB overlap with obstacle, vehicle position is its top-left corner
// Touching edges do not count
func (v *Vehicle) CheckCollision(obstacle core.Rect) bool {
	return physics.Overlaps(v.Bounds(), obstacle)
}

// Bounds returns the vehicle footprint
func (v *Vehicle) Bounds() core.Rect {
	return core.Rect{X: v.kin.Pos.X, Y: v.kin.Pos.Y, Width: v.width, Height: v.height}
}

func (v *Vehicle) Position() vmath.Vec2 { return v.kin.Pos }

func (v *Vehicle) Velocity() vmath.Vec2 { return v.kin.Vel }

// Heading returns degrees, accumulated without wraparound
func (v *Vehicle) Heading() float64 { return v.heading }

func (v *Vehicle) Acceleration() float64 { return v.acceleration }

// Speed returns velocity magnitude
func (v *Vehicle) Speed() float64 { return v.kin.Vel.Length() }

func (v *Vehicle) Size() (width, height float64) { return v.width, v.height }

func (v *Vehicle) Tuning() Tuning { return v.tuning }

// SetTuning retunes a live vehicle; motion state and heading are kept
func (v *Vehicle) SetTuning(t Tuning) { v.tuning = t }

// SetPosition moves the vehicle without touching velocity
func (v *Vehicle) SetPosition(p vmath.Vec2) { v.kin.Pos = p }

// SetVelocity overrides velocity, the cap is applied on the next Update
func (v *Vehicle) SetVelocity(vel vmath.Vec2) { physics.SetImpulse(&v.kin, vel) }

// Stop zeroes velocity and acceleration, heading is kept
func (v *Vehicle) Stop() {
	physics.SetImpulse(&v.kin, vmath.Zero)
	v.acceleration = 0
}

// Reset places the vehicle at rest at p facing the tuning's initial heading
func (v *Vehicle) Reset(p vmath.Vec2) {
	v.kin = core.Kinetic{Pos: p}
	v.acceleration = 0
	v.heading = v.tuning.InitialHeading
}

// State is an immutable snapshot of the motion state
type State struct {
	X, Y         float64
	VelX, VelY   float64
	Heading      float64
	Acceleration float64
	Speed        float64
}

// Snapshot captures the current state
func (v *Vehicle) Snapshot() State {
	return State{
		X:            v.kin.Pos.X,
		Y:            v.kin.Pos.Y,
		VelX:         v.kin.Vel.X,
		VelY:         v.kin.Vel.Y,
		Heading:      v.heading,
		Acceleration: v.acceleration,
		Speed:        v.kin.Vel.Length(),
	}
}

// HeadingNormalized returns heading mapped into [0, 360) for display
func (v *Vehicle) HeadingNormalized() float64 {
	h := math.Mod(v.heading, 360)
	if h < 0 {
		h += 360
	}
	return h
}
