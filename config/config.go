// Package config loads the sandbox TOML configuration and keeps it current
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/vi-racer/audio"
	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/vehicle"
)

// Validation errors
var (
	ErrInvalidSize    = errors.New("width and height must be positive")
	ErrUnknownControl = errors.New("unknown control")
	ErrDuplicateKey   = errors.New("key bound to more than one control")
	ErrNegativeHold   = errors.New("hold time must not be negative")
)

// VehicleConfig is the spawn rectangle of the vehicle
type VehicleConfig struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// KeysConfig maps control names (gas, brake, left, right) to key names
// A missing or empty list keeps the default keys for that control
type KeysConfig map[string][]string

// InputConfig tunes the press-hold emulation of terminals without key-up events
// Zero keeps the built-in window
type InputConfig struct {
	InitialHoldMs int `toml:"initial_hold_ms"`
	RepeatHoldMs  int `toml:"repeat_hold_ms"`
}

// HoldTimings returns the configured windows with zero fields filled from parameter
func (ic InputConfig) HoldTimings() (initial, repeat time.Duration) {
	initial, repeat = parameter.InputInitialHold, parameter.InputRepeatHold
	if ic.InitialHoldMs > 0 {
		initial = time.Duration(ic.InitialHoldMs) * time.Millisecond
	}
	if ic.RepeatHoldMs > 0 {
		repeat = time.Duration(ic.RepeatHoldMs) * time.Millisecond
	}
	return initial, repeat
}

// ObstacleConfig is one [[obstacles]] entry
type ObstacleConfig struct {
	Name   string  `toml:"name"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Rect returns the obstacle box
func (o ObstacleConfig) Rect() core.Rect {
	return core.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// Config is the full sandbox configuration
type Config struct {
	Preset    string                 `toml:"preset"`
	Policy    string                 `toml:"policy"`
	Wrap      bool                   `toml:"wrap"`
	Vehicle   VehicleConfig          `toml:"vehicle"`
	Tuning    vehicle.TuningOverride `toml:"tuning"`
	Keys      KeysConfig             `toml:"keys"`
	Input     InputConfig            `toml:"input"`
	Audio     audio.AudioConfig      `toml:"audio"`
	Obstacles []ObstacleConfig       `toml:"obstacles"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Preset: parameter.PresetDefault,
		Policy: engine.PolicyStop.String(),
		Wrap:   true,
		Vehicle: VehicleConfig{
			X:      10,
			Y:      10,
			Width:  parameter.VehicleWidth,
			Height: parameter.VehicleHeight,
		},
		Audio: *audio.DefaultAudioConfig(),
	}
}

// Load reads path over the defaults, applies env overrides and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := Decode(data, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses TOML into cfg, rejecting unknown keys
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse toml: %w", err)
	}
	return nil
}

// Encode renders cfg as TOML
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return buf.Bytes(), nil
}

// ApplyEnv overrides fields from VI_RACER_* environment variables
func (c *Config) ApplyEnv() {
	if preset := os.Getenv("VI_RACER_PRESET"); preset != "" {
		c.Preset = preset
	}
	if policy := os.Getenv("VI_RACER_POLICY"); policy != "" {
		c.Policy = policy
	}
	if wrap := os.Getenv("VI_RACER_WRAP"); wrap != "" {
		if val, err := strconv.ParseBool(wrap); err == nil {
			c.Wrap = val
		}
	}
	c.Audio.ApplyEnv()
}

// Validate checks names and dimensions
func (c *Config) Validate() error {
	if _, err := c.ResolveTuning(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.CollisionPolicy(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Vehicle.Width <= 0 || c.Vehicle.Height <= 0 {
		return fmt.Errorf("config: vehicle: %w", ErrInvalidSize)
	}
	if err := c.Keys.validate(); err != nil {
		return fmt.Errorf("config: keys: %w", err)
	}
	if c.Input.InitialHoldMs < 0 || c.Input.RepeatHoldMs < 0 {
		return fmt.Errorf("config: input: %w", ErrNegativeHold)
	}
	for i, o := range c.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("config: obstacle %d (%s): %w", i, o.Name, ErrInvalidSize)
		}
	}
	return nil
}

// ResolveTuning applies the [tuning] overrides to the named preset
func (c *Config) ResolveTuning() (vehicle.Tuning, error) {
	return c.Tuning.Resolve(c.Preset)
}

// CollisionPolicy parses the policy name
func (c *Config) CollisionPolicy() (engine.CollisionPolicy, error) {
	return engine.ParsePolicy(c.Policy)
}

// validate rejects unknown control names and keys claimed by two controls
func (k KeysConfig) validate() error {
	owner := make(map[string]string)
	for name, keys := range k {
		if input.ParseControl(name) == input.ControlNone {
			return fmt.Errorf("%w %q", ErrUnknownControl, name)
		}
		for _, key := range keys {
			key = input.NormalizeKey(key)
			if prev, ok := owner[key]; ok && prev != name {
				return fmt.Errorf("%w: %q on %s and %s", ErrDuplicateKey, key, prev, name)
			}
			owner[key] = name
		}
	}
	return nil
}

// KeyTable returns the default table with [keys] rebindings applied
func (c *Config) KeyTable() *input.KeyTable {
	kt := input.DefaultKeyTable()
	for _, ctl := range input.DrivingControls {
		if keys := c.Keys[ctl.String()]; len(keys) > 0 {
			kt.Bind(ctl, keys...)
		}
	}
	return kt
}

// Warnings lists settings that load fine but will not behave as expected
func (c *Config) Warnings() []string {
	var warns []string
	if t, err := c.ResolveTuning(); err == nil && t.Stalls() {
		warns = append(warns, fmt.Sprintf(
			"preset %q: throttle %.4g x friction %.4g is below epsilon %.4g, acceleration snaps to zero every tick",
			c.Preset, t.ThrottleAccel, t.Friction, t.Epsilon))
	}
	kt := c.KeyTable()
	for _, ctl := range input.DrivingControls {
		if len(kt.KeysFor(ctl)) == 0 {
			warns = append(warns, fmt.Sprintf("control %s has no keys left after rebinding", ctl))
		}
	}
	spawn := c.SpawnRect()
	for _, o := range c.Obstacles {
		if physics.Overlaps(spawn, o.Rect()) {
			warns = append(warns, fmt.Sprintf("obstacle %q overlaps the vehicle spawn", o.Name))
		}
	}
	return warns
}

// SpawnRect is the vehicle rectangle at spawn
func (c *Config) SpawnRect() core.Rect {
	return core.Rect{X: c.Vehicle.X, Y: c.Vehicle.Y, Width: c.Vehicle.Width, Height: c.Vehicle.Height}
}

// BuildWorld creates the vehicle and world described by the config inside bounds
func (c *Config) BuildWorld(bounds core.Rect) (*engine.World, error) {
	t, err := c.ResolveTuning()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	policy, err := c.CollisionPolicy()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	v := vehicle.New(c.Vehicle.X, c.Vehicle.Y, c.Vehicle.Width, c.Vehicle.Height, vehicle.WithTuning(t))
	w := engine.NewWorld(v, bounds, policy)
	w.Wrap = c.Wrap
	for i, o := range c.Obstacles {
		name := o.Name
		if name == "" {
			name = fmt.Sprintf("obstacle-%d", i)
		}
		w.AddObstacle(name, o.Rect())
	}
	return w, nil
}
