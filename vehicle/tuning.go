package vehicle

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lixenwraith/vi-racer/parameter"
)

// ErrUnknownPreset is returned by PresetByName for names not in the preset table
var ErrUnknownPreset = errors.New("unknown vehicle preset")

// Tuning holds the per-instance constants shaping vehicle motion, all per tick
type Tuning struct {
	MaxSpeed float64 `toml:"max_speed" yaml:"max_speed" json:"max_speed"`
	// TurnRate is degrees of heading change per tick
	TurnRate float64 `toml:"turn_rate" yaml:"turn_rate" json:"turn_rate"`
	// Friction multiplies scalar acceleration, Drag multiplies velocity
	Friction      float64 `toml:"friction" yaml:"friction" json:"friction"`
	Drag          float64 `toml:"drag" yaml:"drag" json:"drag"`
	ThrottleAccel float64 `toml:"throttle_accel" yaml:"throttle_accel" json:"throttle_accel"`
	BrakeAccel    float64 `toml:"brake_accel" yaml:"brake_accel" json:"brake_accel"`
	// Epsilon is the magnitude below which acceleration snaps to exactly 0
	Epsilon float64 `toml:"epsilon" yaml:"epsilon" json:"epsilon"`
	// InitialHeading is in degrees, 0 faces +X
	InitialHeading float64 `toml:"initial_heading" yaml:"initial_heading" json:"initial_heading"`
}

// DefaultTuning returns the canonical parameter set
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:       parameter.VehicleMaxSpeed,
		TurnRate:       parameter.VehicleTurnRate,
		Friction:       parameter.VehicleFriction,
		Drag:           parameter.VehicleDrag,
		ThrottleAccel:  parameter.VehicleThrottleAccel,
		BrakeAccel:     parameter.VehicleBrakeAccel,
		Epsilon:        parameter.VehicleAccelEpsilon,
		InitialHeading: parameter.VehicleInitialHeading,
	}
}

var presets = map[string]func() Tuning{
	parameter.PresetDefault: DefaultTuning,
	parameter.PresetClassic: func() Tuning {
		t := DefaultTuning()
		t.Drag = parameter.ClassicDrag
		t.ThrottleAccel = parameter.ClassicThrottleAccel
		t.BrakeAccel = parameter.ClassicBrakeAccel
		t.Epsilon = parameter.ClassicAccelEpsilon
		t.InitialHeading = parameter.ClassicInitialHeading
		return t
	},
	parameter.PresetArcade: func() Tuning {
		t := DefaultTuning()
		t.Drag = parameter.ArcadeDrag
		t.ThrottleAccel = parameter.ArcadeThrottleAccel
		t.BrakeAccel = parameter.ArcadeBrakeAccel
		t.Epsilon = parameter.ArcadeAccelEpsilon
		return t
	},
}

// PresetByName returns a copy of the named preset, empty name selects default
func PresetByName(name string) (Tuning, error) {
	if name == "" {
		name = parameter.PresetDefault
	}
	mk, ok := presets[name]
	if !ok {
		return Tuning{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return mk(), nil
}

// PresetNames lists the available presets in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Stalls reports whether a single throttle tick decays below epsilon,
// in which case gas alone can never build acceleration
func (t Tuning) Stalls() bool {
	a := t.ThrottleAccel * t.Friction
	if a < 0 {
		a = -a
	}
	return a < t.Epsilon
}
