package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/vehicle"
)

func newTestScheduler(handled *atomic.Uint64) (*ClockScheduler, *World) {
	w := NewWorld(vehicle.New(0, 0, 4, 2), core.Rect{}, PolicyNone)
	src := func(time.Time) input.Controls { return input.Controls{Gas: true} }
	handler := func(StepResult) { handled.Add(1) }
	return NewClockScheduler(w, nil, time.Millisecond, src, handler), w
}

func TestClockSchedulerTicks(t *testing.T) {
	var handled atomic.Uint64
	cs, _ := newTestScheduler(&handled)

	cs.Start()
	require.Eventually(t, func() bool { return cs.TickCount() >= 20 }, 2*time.Second, time.Millisecond)
	cs.Stop()

	count := cs.TickCount()
	assert.Equal(t, count, handled.Load())
	cs.WithWorld(func(w *World) {
		assert.Equal(t, count, w.Tick())
		assert.Greater(t, w.Vehicle.Position().X, 0.0)
	})

	// Stop is idempotent and no ticks run afterwards
	cs.Stop()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, count, cs.TickCount())
}

func TestClockSchedulerPause(t *testing.T) {
	var handled atomic.Uint64
	cs, _ := newTestScheduler(&handled)
	cs.Start()
	defer cs.Stop()

	require.Eventually(t, func() bool { return cs.TickCount() >= 5 }, 2*time.Second, time.Millisecond)

	assert.True(t, cs.TogglePause())
	assert.True(t, cs.IsPaused())
	time.Sleep(5 * time.Millisecond) // Let an in-flight tick land
	paused := cs.TickCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, paused, cs.TickCount(), "no ticks while paused")

	assert.False(t, cs.TogglePause())
	require.Eventually(t, func() bool { return cs.TickCount() > paused }, 2*time.Second, time.Millisecond)
}

func TestClockSchedulerStopBeforeStart(t *testing.T) {
	var handled atomic.Uint64
	cs, _ := newTestScheduler(&handled)

	// An early Stop must not disarm the Stop that follows a later Start
	cs.Stop()
	cs.Start()
	require.Eventually(t, func() bool { return cs.TickCount() >= 5 }, 2*time.Second, time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		cs.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}

	count := cs.TickCount()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, count, cs.TickCount(), "loop exited")
}

func TestClockSchedulerRestart(t *testing.T) {
	var handled atomic.Uint64
	cs, _ := newTestScheduler(&handled)

	cs.Start()
	cs.Start()
	require.Eventually(t, func() bool { return cs.TickCount() >= 3 }, 2*time.Second, time.Millisecond)
	cs.Stop()
	first := cs.TickCount()

	cs.Start()
	require.Eventually(t, func() bool { return cs.TickCount() > first }, 2*time.Second, time.Millisecond)
	cs.Stop()

	count := cs.TickCount()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, count, cs.TickCount())
	assert.Equal(t, count, handled.Load())
}
