package status

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"
)

// TestAtomicFloatAddConcurrent verifies no lost updates under contention
func TestAtomicFloatAddConcurrent(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()

	if got := f.Get(); got != 4000 {
		t.Errorf("Expected 4000, got %f", got)
	}
}

// TestAtomicFloatMax verifies max only raises and ignores NaN
func TestAtomicFloatMax(t *testing.T) {
	var f AtomicFloat
	f.Max(3)
	f.Max(1)
	f.Max(math.NaN())
	if got := f.Get(); got != 3 {
		t.Errorf("Expected 3, got %f", got)
	}
}

// TestRegistryPointersStable verifies repeat registration returns the cached pointer
func TestRegistryPointersStable(t *testing.T) {
	r := NewRegistry()
	ticks := r.Counter("ticks")
	ticks.Store(7)

	if r.Counter("ticks") != ticks {
		t.Error("Expected cached pointer for repeat Counter")
	}
	if r.Counter("ticks").Load() != 7 {
		t.Error("Expected value visible through repeat lookup")
	}
	if r.Gauge("speed") != r.Gauge("speed") {
		t.Error("Expected cached pointer for repeat Gauge")
	}
	if r.Len() != 2 {
		t.Errorf("Expected 2 metrics, got %d", r.Len())
	}
}

// TestRegistryKindConflict verifies a name cannot change kind
func TestRegistryKindConflict(t *testing.T) {
	r := NewRegistry()
	r.Counter("ticks")

	defer func() {
		if recover() == nil {
			t.Error("Expected panic registering a counter name as gauge")
		}
	}()
	r.Gauge("ticks")
}

// TestRegistryEach verifies formatting and registration order
func TestRegistryEach(t *testing.T) {
	r := NewRegistry()
	r.Gauge("speed").Set(2.5)
	r.Counter("ticks").Store(12)

	var names, values []string
	r.Each(func(k, v string) {
		names = append(names, k)
		values = append(values, v)
	})
	if len(names) != 2 || names[0] != "speed" || names[1] != "ticks" {
		t.Errorf("Expected registration order [speed ticks], got %v", names)
	}
	if len(values) == 2 && (values[0] != "2.5000" || values[1] != "12") {
		t.Errorf("Unexpected formatting: %v", values)
	}
}

// TestRegistryConcurrentRegister verifies racing registrations share one metric
func TestRegistryConcurrentRegister(t *testing.T) {
	r := NewRegistry()
	ptrs := make([]*atomic.Int64, 8)
	var wg sync.WaitGroup
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = r.Counter("ticks")
			ptrs[i].Add(1)
		}(i)
	}
	wg.Wait()

	for _, p := range ptrs {
		if p != ptrs[0] {
			t.Fatal("Expected every goroutine to get the same counter")
		}
	}
	if got := ptrs[0].Load(); got != 8 {
		t.Errorf("Expected 8, got %d", got)
	}
}
