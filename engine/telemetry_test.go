package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-racer/status"
	"github.com/lixenwraith/vi-racer/vehicle"
)

func TestTelemetryAccumulates(t *testing.T) {
	reg := status.NewRegistry()
	tel := NewTelemetry(reg)

	tel.Observe(StepResult{Tick: 1, State: vehicle.State{X: 0, Y: 0, Speed: 1}})
	tel.Observe(StepResult{Tick: 2, State: vehicle.State{X: 3, Y: 4, Speed: 5}, Collisions: []int{0}})
	tel.Observe(StepResult{Tick: 3, State: vehicle.State{X: 90, Y: 4, Speed: 2}, Wrapped: true})

	assert.Equal(t, int64(3), reg.Counter(MetricTicks).Load())
	assert.Equal(t, int64(1), reg.Counter(MetricCollisionTicks).Load())
	assert.Equal(t, int64(1), reg.Counter(MetricWraps).Load())
	assert.Equal(t, 2.0, reg.Gauge(MetricSpeed).Get())
	assert.Equal(t, 5.0, reg.Gauge(MetricMaxSpeed).Get())
	assert.InDelta(t, 5.0, reg.Gauge(MetricDistance).Get(), 1e-9, "wrap jumps are not travel")
}

func TestTelemetryRestart(t *testing.T) {
	reg := status.NewRegistry()
	tel := NewTelemetry(reg)

	tel.Observe(StepResult{State: vehicle.State{X: 50}})
	tel.Restart()
	tel.Observe(StepResult{State: vehicle.State{X: 0}})

	assert.Zero(t, reg.Gauge(MetricDistance).Get())
}

func TestTelemetryEach(t *testing.T) {
	reg := status.NewRegistry()
	tel := NewTelemetry(reg)
	tel.Observe(StepResult{State: vehicle.State{Speed: 1.5}})

	seen := map[string]string{}
	reg.Each(func(k, v string) { seen[k] = v })

	assert.Len(t, seen, 6)
	assert.Equal(t, 6, reg.Len())
	assert.Equal(t, "1", seen[MetricTicks])
	assert.Equal(t, "1.5000", seen[MetricMaxSpeed])
}

// TestTelemetrySharedRegistry verifies Telemetry reuses metrics registered under its names
func TestTelemetrySharedRegistry(t *testing.T) {
	reg := status.NewRegistry()
	ticks := reg.Counter(MetricTicks)
	tel := NewTelemetry(reg)

	tel.Observe(StepResult{Tick: 1})
	assert.Equal(t, int64(1), ticks.Load())
	assert.Panics(t, func() { reg.Gauge(MetricTicks) })
}
