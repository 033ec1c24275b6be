package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/lixenwraith/vi-racer/vehicle"
)

// Float is a float64 that survives JSON encoding when non-finite
// NaN and ±Inf are written as the strings "NaN", "+Inf" and "-Inf"
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("float string %s: %w", s, err)
		}
		s = unq
	}
	// ParseFloat accepts "NaN", "+Inf" and "-Inf"
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("float %s: %w", s, err)
	}
	*f = Float(v)
	return nil
}

type logRowJSON struct {
	Tick         uint64 `json:"tick"`
	X            Float  `json:"x"`
	Y            Float  `json:"y"`
	VX           Float  `json:"vx"`
	VY           Float  `json:"vy"`
	Heading      Float  `json:"heading"`
	Acceleration Float  `json:"acceleration"`
	Speed        Float  `json:"speed"`
	Collisions   []int  `json:"collisions,omitempty"`
}

func (r LogRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(logRowJSON{
		Tick:         r.Tick,
		X:            Float(r.X),
		Y:            Float(r.Y),
		VX:           Float(r.VX),
		VY:           Float(r.VY),
		Heading:      Float(r.Heading),
		Acceleration: Float(r.Acceleration),
		Speed:        Float(r.Speed),
		Collisions:   r.Collisions,
	})
}

func (r *LogRow) UnmarshalJSON(data []byte) error {
	var j logRowJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*r = LogRow{
		Tick:         j.Tick,
		X:            float64(j.X),
		Y:            float64(j.Y),
		VX:           float64(j.VX),
		VY:           float64(j.VY),
		Heading:      float64(j.Heading),
		Acceleration: float64(j.Acceleration),
		Speed:        float64(j.Speed),
		Collisions:   j.Collisions,
	}
	return nil
}

type summaryJSON struct {
	Ticks          uint64 `json:"ticks"`
	MaxSpeed       Float  `json:"max_speed"`
	Distance       Float  `json:"distance"`
	CollisionTicks int    `json:"collision_ticks"`
	FirstCollision uint64 `json:"first_collision,omitempty"`
	Final          LogRow `json:"final"`
}

func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(summaryJSON{
		Ticks:          s.Ticks,
		MaxSpeed:       Float(s.MaxSpeed),
		Distance:       Float(s.Distance),
		CollisionTicks: s.CollisionTicks,
		FirstCollision: s.FirstCollision,
		Final:          s.Final,
	})
}

func (s *Summary) UnmarshalJSON(data []byte) error {
	var j summaryJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*s = Summary{
		Ticks:          j.Ticks,
		MaxSpeed:       float64(j.MaxSpeed),
		Distance:       float64(j.Distance),
		CollisionTicks: j.CollisionTicks,
		FirstCollision: j.FirstCollision,
		Final:          j.Final,
	}
	return nil
}

type tuningJSON struct {
	MaxSpeed       Float `json:"max_speed"`
	TurnRate       Float `json:"turn_rate"`
	Friction       Float `json:"friction"`
	Drag           Float `json:"drag"`
	ThrottleAccel  Float `json:"throttle_accel"`
	BrakeAccel     Float `json:"brake_accel"`
	Epsilon        Float `json:"epsilon"`
	InitialHeading Float `json:"initial_heading"`
}

func tuningToJSON(t vehicle.Tuning) tuningJSON {
	return tuningJSON{
		MaxSpeed:       Float(t.MaxSpeed),
		TurnRate:       Float(t.TurnRate),
		Friction:       Float(t.Friction),
		Drag:           Float(t.Drag),
		ThrottleAccel:  Float(t.ThrottleAccel),
		BrakeAccel:     Float(t.BrakeAccel),
		Epsilon:        Float(t.Epsilon),
		InitialHeading: Float(t.InitialHeading),
	}
}

func (j tuningJSON) tuning() vehicle.Tuning {
	return vehicle.Tuning{
		MaxSpeed:       float64(j.MaxSpeed),
		TurnRate:       float64(j.TurnRate),
		Friction:       float64(j.Friction),
		Drag:           float64(j.Drag),
		ThrottleAccel:  float64(j.ThrottleAccel),
		BrakeAccel:     float64(j.BrakeAccel),
		Epsilon:        float64(j.Epsilon),
		InitialHeading: float64(j.InitialHeading),
	}
}

type logJSON struct {
	Scenario string     `json:"scenario"`
	Preset   string     `json:"preset"`
	Tuning   tuningJSON `json:"tuning"`
	Rows     []LogRow   `json:"rows"`
	Summary  Summary    `json:"summary"`
}

func (l Log) MarshalJSON() ([]byte, error) {
	return json.Marshal(logJSON{
		Scenario: l.Scenario,
		Preset:   l.Preset,
		Tuning:   tuningToJSON(l.Tuning),
		Rows:     l.Rows,
		Summary:  l.Summary,
	})
}

func (l *Log) UnmarshalJSON(data []byte) error {
	var j logJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*l = Log{
		Scenario: j.Scenario,
		Preset:   j.Preset,
		Tuning:   j.Tuning.tuning(),
		Rows:     j.Rows,
		Summary:  j.Summary,
	}
	return nil
}
