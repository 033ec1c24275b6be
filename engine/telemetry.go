package engine

import (
	"log"
	"math"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vi-racer/status"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Metric names written by Telemetry
const (
	MetricTicks          = "ticks"
	MetricCollisionTicks = "collision_ticks"
	MetricWraps          = "wraps"
	MetricSpeed          = "speed"
	MetricMaxSpeed       = "max_speed"
	MetricDistance       = "distance"
)

// Telemetry mirrors step results into a status registry for live readout
type Telemetry struct {
	reg *status.Registry

	ticks          *atomic.Int64
	collisionTicks *atomic.Int64
	wraps          *atomic.Int64
	speed          *status.AtomicFloat
	maxSpeed       *status.AtomicFloat
	distance       *status.AtomicFloat

	mu      sync.Mutex // Guards last and hasLast
	last    vmath.Vec2
	hasLast bool
}

// NewTelemetry registers the run metrics in reg
func NewTelemetry(reg *status.Registry) *Telemetry {
	return &Telemetry{
		reg:            reg,
		ticks:          reg.Counter(MetricTicks),
		collisionTicks: reg.Counter(MetricCollisionTicks),
		wraps:          reg.Counter(MetricWraps),
		speed:          reg.Gauge(MetricSpeed),
		maxSpeed:       reg.Gauge(MetricMaxSpeed),
		distance:       reg.Gauge(MetricDistance),
	}
}

// Observe records one tick
func (t *Telemetry) Observe(res StepResult) {
	t.ticks.Add(1)
	if len(res.Collisions) > 0 {
		t.collisionTicks.Add(1)
	}
	if res.Wrapped {
		t.wraps.Add(1)
	}

	st := res.State
	t.speed.Set(st.Speed)
	t.maxSpeed.Max(st.Speed)

	pos := vmath.V2(st.X, st.Y)
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.hasLast && !res.Wrapped {
		if d := pos.Sub(t.last).Length(); !math.IsNaN(d) {
			t.distance.Add(d)
		}
	}
	t.last = pos
	t.hasLast = true
}

// Restart forgets the last position so a reset does not count as travel
func (t *Telemetry) Restart() {
	t.mu.Lock()
	t.hasLast = false
	t.mu.Unlock()
}

// Registry returns the backing registry
func (t *Telemetry) Registry() *status.Registry { return t.reg }

// LogMetrics writes every metric to the standard logger
func (t *Telemetry) LogMetrics(prefix string) {
	t.reg.Each(func(key, value string) {
		log.Printf("%s %s=%s", prefix, key, value)
	})
}
