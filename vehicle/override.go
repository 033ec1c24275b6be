package vehicle

// TuningOverride carries optional per-field replacements applied on top of a preset
// Shared by the TOML config and YAML scenario formats
type TuningOverride struct {
	MaxSpeed       *float64 `toml:"max_speed,omitempty" yaml:"max_speed,omitempty"`
	TurnRate       *float64 `toml:"turn_rate,omitempty" yaml:"turn_rate,omitempty"`
	Friction       *float64 `toml:"friction,omitempty" yaml:"friction,omitempty"`
	Drag           *float64 `toml:"drag,omitempty" yaml:"drag,omitempty"`
	ThrottleAccel  *float64 `toml:"throttle_accel,omitempty" yaml:"throttle_accel,omitempty"`
	BrakeAccel     *float64 `toml:"brake_accel,omitempty" yaml:"brake_accel,omitempty"`
	Epsilon        *float64 `toml:"epsilon,omitempty" yaml:"epsilon,omitempty"`
	InitialHeading *float64 `toml:"initial_heading,omitempty" yaml:"initial_heading,omitempty"`
}

// Apply returns t with every non-nil override field replaced
func (o TuningOverride) Apply(t Tuning) Tuning {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&t.MaxSpeed, o.MaxSpeed)
	set(&t.TurnRate, o.TurnRate)
	set(&t.Friction, o.Friction)
	set(&t.Drag, o.Drag)
	set(&t.ThrottleAccel, o.ThrottleAccel)
	set(&t.BrakeAccel, o.BrakeAccel)
	set(&t.Epsilon, o.Epsilon)
	set(&t.InitialHeading, o.InitialHeading)
	return t
}

// Resolve looks up preset by name and applies the override on top
func (o TuningOverride) Resolve(preset string) (Tuning, error) {
	t, err := PresetByName(preset)
	if err != nil {
		return Tuning{}, err
	}
	return o.Apply(t), nil
}
