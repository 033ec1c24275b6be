package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/input"
)

// ControlSource supplies the driving input for the tick about to run
type ControlSource func(now time.Time) input.Controls

// StepHandler receives every tick result, called on the scheduler goroutine
type StepHandler func(StepResult)

// ClockScheduler steps a World on a fixed tick in real time
// The integration step never depends on wall-clock jitter: late ticks run back to back,
// a backlog beyond two intervals is dropped instead of replayed
type ClockScheduler struct {
	world *World
	clock *PausableClock

	source  ControlSource
	handler StepHandler

	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	mu        sync.Mutex // Guards world

	lifeMu   sync.Mutex // Guards stopChan and running, serializes Start and Stop
	stopChan chan struct{}
	running  bool
	wg       sync.WaitGroup
}

// NewClockScheduler creates a scheduler for world ticking at tickInterval
// source and handler may be nil
func NewClockScheduler(
	world *World,
	clock *PausableClock,
	tickInterval time.Duration,
	source ControlSource,
	handler StepHandler,
) *ClockScheduler {
	if clock == nil {
		clock = NewPausableClock()
	}
	return &ClockScheduler{
		world:        world,
		clock:        clock,
		source:       source,
		handler:      handler,
		tickInterval: tickInterval,
	}
}

// Start begins the scheduler loop, a no-op while already running
// A stopped scheduler can be started again
func (cs *ClockScheduler) Start() {
	cs.lifeMu.Lock()
	defer cs.lifeMu.Unlock()

	if cs.running {
		return
	}
	cs.running = true
	stop := make(chan struct{})
	cs.stopChan = stop
	cs.wg.Add(1)
	core.Go(func() { cs.schedulerLoop(stop) })
}

// Stop halts the scheduler loop and waits for the in-flight tick
// A no-op when not running
func (cs *ClockScheduler) Stop() {
	cs.lifeMu.Lock()
	defer cs.lifeMu.Unlock()

	if !cs.running {
		return
	}
	cs.running = false
	close(cs.stopChan)
	cs.wg.Wait()
}

// Pause freezes game time, no ticks run until Resume
func (cs *ClockScheduler) Pause() { cs.clock.Pause() }

// Resume continues ticking from where game time stopped
func (cs *ClockScheduler) Resume() { cs.clock.Resume() }

// TogglePause flips pause state, returns true if now paused
func (cs *ClockScheduler) TogglePause() bool {
	if cs.clock.IsPaused() {
		cs.clock.Resume()
		return false
	}
	cs.clock.Pause()
	return true
}

func (cs *ClockScheduler) IsPaused() bool { return cs.clock.IsPaused() }

// TickCount returns ticks executed since Start
func (cs *ClockScheduler) TickCount() uint64 { return cs.tickCount.Load() }

// WithWorld runs fn with exclusive access to the world, for resets and reads from other goroutines
func (cs *ClockScheduler) WithWorld(fn func(*World)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	fn(cs.world)
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop(stop <-chan struct{}) {
	defer cs.wg.Done()

	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.clock.IsPaused() {
			// Longer sleep while paused to save CPU
			sleepDuration = cs.tickInterval * 2
			// Game time is frozen, keep the deadline one interval ahead of it
			cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
		} else {
			gameNow := cs.clock.Now()

			if !gameNow.Before(cs.nextTickDeadline) {
				cs.processTick(gameNow)

				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				maxBehind := cs.tickInterval * 2
				if gameNow.Sub(cs.nextTickDeadline) > maxBehind {
					log.Printf("scheduler behind by %v, dropping backlog", gameNow.Sub(cs.nextTickDeadline))
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}
			}
			sleepDuration = cs.nextTickDeadline.Sub(cs.clock.Now())
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-stop:
				return
			}
		}
	}
}

// processTick runs one world step under the world lock
func (cs *ClockScheduler) processTick(now time.Time) {
	var c input.Controls
	if cs.source != nil {
		c = cs.source(now)
	}

	cs.mu.Lock()
	res := cs.world.Step(c)
	cs.mu.Unlock()

	cs.tickCount.Add(1)

	if cs.handler != nil {
		cs.handler(res)
	}
}
