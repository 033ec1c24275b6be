package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vehicle"
)

// Scenario validation errors
var (
	ErrEmptyScript   = errors.New("scenario script is empty")
	ErrNegativeTicks = errors.New("segment ticks must be positive")
	ErrTooManyTicks  = errors.New("scenario exceeds tick limit")
	ErrWrapNoBounds  = errors.New("wrap requires bounds with positive size")
)

// RectSpec is a rectangle as written in scenario files
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r RectSpec) Rect() core.Rect {
	return core.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// ObstacleSpec is a named obstacle in a scenario
type ObstacleSpec struct {
	Name     string `yaml:"name"`
	RectSpec `yaml:",inline"`
}

// Segment holds constant controls for a run of ticks
type Segment struct {
	Ticks int  `yaml:"ticks"`
	Gas   bool `yaml:"gas"`
	Brake bool `yaml:"brake"`
	Left  bool `yaml:"left"`
	Right bool `yaml:"right"`
}

func (s Segment) Controls() input.Controls {
	return input.Controls{Gas: s.Gas, Brake: s.Brake, TurnLeft: s.Left, TurnRight: s.Right}
}

// Scenario is a scripted headless run
type Scenario struct {
	Name        string                 `yaml:"name"`
	Preset      string                 `yaml:"preset"`
	Tuning      vehicle.TuningOverride `yaml:"tuning"`
	Vehicle     RectSpec               `yaml:"vehicle"`
	Bounds      *RectSpec              `yaml:"bounds"`
	Wrap        bool                   `yaml:"wrap"`
	Policy      string                 `yaml:"policy"`
	Obstacles   []ObstacleSpec         `yaml:"obstacles"`
	SampleEvery int                    `yaml:"sample_every"` // Log every Nth tick, 0 or 1 logs all
	Script      []Segment              `yaml:"script"`
}

// LogRow is one sampled tick
type LogRow struct {
	Tick         uint64  `json:"tick"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	VX           float64 `json:"vx"`
	VY           float64 `json:"vy"`
	Heading      float64 `json:"heading"`
	Acceleration float64 `json:"acceleration"`
	Speed        float64 `json:"speed"`
	Collisions   []int   `json:"collisions,omitempty"`
}

// Summary aggregates a whole run regardless of sampling
type Summary struct {
	Ticks          uint64  `json:"ticks"`
	MaxSpeed       float64 `json:"max_speed"`
	Distance       float64 `json:"distance"`
	CollisionTicks int     `json:"collision_ticks"`
	FirstCollision uint64  `json:"first_collision,omitempty"`
	Final          LogRow  `json:"final"`
}

// Log is the output of a scenario run
type Log struct {
	Scenario string         `json:"scenario"`
	Preset   string         `json:"preset"`
	Tuning   vehicle.Tuning `json:"tuning"`
	Rows     []LogRow       `json:"rows"`
	Summary  Summary        `json:"summary"`
}

// TotalTicks sums segment lengths
func (s *Scenario) TotalTicks() int {
	n := 0
	for _, seg := range s.Script {
		n += seg.Ticks
	}
	return n
}

// Validate checks the script shape and name lookups
func (s *Scenario) Validate() error {
	if len(s.Script) == 0 {
		return ErrEmptyScript
	}
	total := 0
	for i, seg := range s.Script {
		if seg.Ticks <= 0 {
			return fmt.Errorf("segment %d: %w (got %d)", i, ErrNegativeTicks, seg.Ticks)
		}
		total += seg.Ticks
		if total > parameter.ScenarioMaxTicks {
			return fmt.Errorf("%w: %d", ErrTooManyTicks, parameter.ScenarioMaxTicks)
		}
	}
	if s.Wrap && (s.Bounds == nil || !(s.Bounds.Width > 0) || !(s.Bounds.Height > 0)) {
		return ErrWrapNoBounds
	}
	if _, err := ParsePolicy(s.Policy); err != nil {
		return err
	}
	if _, err := vehicle.PresetByName(s.Preset); err != nil {
		return err
	}
	return nil
}

// BuildWorld constructs the world a scenario runs in
func (s *Scenario) BuildWorld() (*World, error) {
	tuning, err := s.Tuning.Resolve(s.Preset)
	if err != nil {
		return nil, fmt.Errorf("resolving tuning: %w", err)
	}
	policy, err := ParsePolicy(s.Policy)
	if err != nil {
		return nil, err
	}

	w, h := s.Vehicle.Width, s.Vehicle.Height
	if w == 0 && h == 0 {
		w, h = parameter.VehicleWidth, parameter.VehicleHeight
	}
	v := vehicle.New(s.Vehicle.X, s.Vehicle.Y, w, h, vehicle.WithTuning(tuning))

	var bounds core.Rect
	if s.Bounds != nil {
		bounds = s.Bounds.Rect()
	}
	world := NewWorld(v, bounds, policy)
	world.Wrap = s.Wrap
	for i, o := range s.Obstacles {
		name := o.Name
		if name == "" {
			name = fmt.Sprintf("obstacle-%d", i)
		}
		world.AddObstacle(name, o.Rect())
	}
	return world, nil
}

// RunScenario executes the script tick by tick and returns the sampled log
func RunScenario(s Scenario) (Log, error) {
	if err := s.Validate(); err != nil {
		return Log{}, err
	}
	world, err := s.BuildWorld()
	if err != nil {
		return Log{}, err
	}

	preset := s.Preset
	if preset == "" {
		preset = parameter.PresetDefault
	}
	out := Log{
		Scenario: s.Name,
		Preset:   preset,
		Tuning:   world.Vehicle.Tuning(),
	}

	sample := s.SampleEvery
	if sample < 1 {
		sample = 1
	}
	total := uint64(s.TotalTicks())

	prev := world.Vehicle.Position()
	for _, seg := range s.Script {
		c := seg.Controls()
		for i := 0; i < seg.Ticks; i++ {
			res := world.Step(c)
			row := rowFromResult(res)

			sum := &out.Summary
			if row.Speed > sum.MaxSpeed {
				sum.MaxSpeed = row.Speed
			}
			pos := world.Vehicle.Position()
			if d := pos.Sub(prev).Length(); !res.Wrapped && !math.IsNaN(d) {
				sum.Distance += d
			}
			prev = pos
			if len(res.Collisions) > 0 {
				sum.CollisionTicks++
				if sum.FirstCollision == 0 {
					sum.FirstCollision = res.Tick
				}
			}

			if res.Tick%uint64(sample) == 0 || res.Tick == total || len(res.Collisions) > 0 {
				out.Rows = append(out.Rows, row)
			}
			sum.Final = row
		}
	}
	out.Summary.Ticks = world.Tick()
	return out, nil
}

// ParseScenario decodes YAML, rejecting unknown fields
func ParseScenario(data []byte) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario: %w", err)
	}
	return s, nil
}

// RunYAML parses a YAML scenario, runs it, and returns the JSON-encoded log
func RunYAML(data []byte) ([]byte, error) {
	s, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}
	l, err := RunScenario(s)
	if err != nil {
		return nil, fmt.Errorf("running scenario %q: %w", s.Name, err)
	}
	out, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding log: %w", err)
	}
	return out, nil
}

func rowFromResult(res StepResult) LogRow {
	st := res.State
	return LogRow{
		Tick:         res.Tick,
		X:            st.X,
		Y:            st.Y,
		VX:           st.VelX,
		VY:           st.VelY,
		Heading:      st.Heading,
		Acceleration: st.Acceleration,
		Speed:        st.Speed,
		Collisions:   res.Collisions,
	}
}
