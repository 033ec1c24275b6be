// Package status keeps live run metrics readable from any goroutine
package status

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Kind tells counters from gauges
type Kind uint8

const (
	KindCounter Kind = iota // Monotonic int64
	KindGauge               // Last or accumulated float64
)

func (k Kind) String() string {
	if k == KindCounter {
		return "counter"
	}
	return "gauge"
}

type metric struct {
	name    string
	kind    Kind
	counter *atomic.Int64
	gauge   *AtomicFloat
}

// Registry holds named metrics in registration order
// Writers register once and keep the returned pointer; hot paths then touch only atomics
type Registry struct {
	mu      sync.Mutex
	metrics []metric
	byName  map[string]int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Counter registers name as a counter, repeat calls return the same pointer
// Panics if name is already a gauge
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.register(name, KindCounter).counter
}

// Gauge registers name as a gauge, repeat calls return the same pointer
// Panics if name is already a counter
func (r *Registry) Gauge(name string) *AtomicFloat {
	return r.register(name, KindGauge).gauge
}

func (r *Registry) register(name string, kind Kind) metric {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.byName[name]; ok {
		m := r.metrics[i]
		if m.kind != kind {
			panic(fmt.Sprintf("status: metric %q registered as %s, requested as %s", name, m.kind, kind))
		}
		return m
	}

	m := metric{name: name, kind: kind}
	if kind == KindCounter {
		m.counter = new(atomic.Int64)
	} else {
		m.gauge = new(AtomicFloat)
	}
	r.byName[name] = len(r.metrics)
	r.metrics = append(r.metrics, m)
	return m
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.metrics)
}

// Each visits every metric formatted as text in registration order
func (r *Registry) Each(fn func(name, value string)) {
	r.mu.Lock()
	metrics := append([]metric(nil), r.metrics...)
	r.mu.Unlock()

	for _, m := range metrics {
		if m.kind == KindCounter {
			fn(m.name, fmt.Sprintf("%d", m.counter.Load()))
		} else {
			fn(m.name, fmt.Sprintf("%.4f", m.gauge.Get()))
		}
	}
}
