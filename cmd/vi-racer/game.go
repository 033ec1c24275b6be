package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/audio"
	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/constant"
	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/render"
	"github.com/lixenwraith/vi-racer/status"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Game owns the terminal and everything feeding the world scheduler
type Game struct {
	screen    tcell.Screen
	machine   *input.Machine
	scheduler *engine.ClockScheduler
	sound     *audio.SoundManager
	telemetry *engine.Telemetry

	mu       sync.Mutex // Guards the fields below
	scene    *render.Scene
	cfg      *config.Config
	size     vmath.Vec2
	maxSpeed float64
	lastTick uint64
}

// NewGame builds the world from cfg sized to the screen
func NewGame(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager) (*Game, error) {
	width, height := screen.Size()
	bounds := playBounds(width, height)

	world, err := cfg.BuildWorld(bounds)
	if err != nil {
		return nil, err
	}
	if len(cfg.Obstacles) == 0 {
		addDefaultCourse(world)
	}

	tuning := world.Vehicle.Tuning()
	w, h := world.Vehicle.Size()
	g := &Game{
		screen:    screen,
		machine:   input.NewMachine(cfg.KeyTable()),
		sound:     sound,
		telemetry: engine.NewTelemetry(status.NewRegistry()),
		scene:     render.NewScene(screen),
		cfg:       cfg,
		size:      vmath.V2(w, h),
		maxSpeed:  tuning.MaxSpeed,
	}
	g.machine.SetHoldTimings(cfg.Input.HoldTimings())
	g.scheduler = engine.NewClockScheduler(world, nil, parameter.TickInterval, g.controls, g.onStep)
	return g, nil
}

func playBounds(width, height int) core.Rect {
	return core.Rect{
		Width:  float64(width),
		Height: float64(max(height-constant.StatusBarHeight, 1)),
	}
}

// addDefaultCourse drops a row of pillars across the playfield, skipping any on the spawn
func addDefaultCourse(w *engine.World) {
	b := w.Bounds
	spawn := w.Vehicle.Bounds()
	for i := 1; i <= 3; i++ {
		r := core.Rect{
			X:      b.Width * float64(i) / 4,
			Y:      b.Height * float64(i%2+1) / 3,
			Width:  2,
			Height: 3,
		}
		if physics.Overlaps(r, spawn) {
			continue
		}
		w.AddObstacle(fmt.Sprintf("pillar-%d", i), r)
	}
}

// controls is the scheduler's ControlSource; hold expiry runs on wall time since key events do
func (g *Game) controls(time.Time) input.Controls {
	return g.machine.Controls(time.Now())
}

// onStep runs on the scheduler goroutine after each tick
func (g *Game) onStep(res engine.StepResult) {
	g.telemetry.Observe(res)

	g.mu.Lock()
	footprint := core.Rect{X: res.State.X, Y: res.State.Y, Width: g.size.X, Height: g.size.Y}
	g.scene.Observe(res, footprint)
	g.lastTick = res.Tick
	maxSpeed := g.maxSpeed
	g.mu.Unlock()

	g.sound.SetSpeed(res.State.Speed, maxSpeed)
	if len(res.Collisions) > 0 {
		g.sound.Play(audio.SoundCollision)
	}
}

// handleEvent processes one terminal event, returns false to quit
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := g.machine.HandleKey(ev, time.Now())
		switch intent.Type {
		case input.IntentQuit:
			return false
		case input.IntentPause:
			paused := g.scheduler.TogglePause()
			if paused {
				g.machine.Reset()
			}
			log.Printf("paused=%v at tick %d", paused, g.scheduler.TickCount())
		case input.IntentReset:
			g.reset()
		case input.IntentToggleMute:
			log.Printf("muted=%v", g.sound.ToggleMute())
		}

	case *tcell.EventResize:
		g.screen.Sync()
		width, height := g.screen.Size()
		g.scheduler.WithWorld(func(w *engine.World) {
			w.Bounds = playBounds(width, height)
		})
	}
	return true
}

func (g *Game) reset() {
	g.scheduler.WithWorld(func(w *engine.World) { w.Reset() })
	g.telemetry.Restart()
	g.machine.Reset()
	g.mu.Lock()
	g.scene.Reset()
	g.mu.Unlock()
	g.sound.Play(audio.SoundReset)
}

// applyConfig retunes the running world from a reloaded config
func (g *Game) applyConfig(cfg *config.Config) error {
	tuning, err := cfg.ResolveTuning()
	if err != nil {
		return err
	}
	policy, err := cfg.CollisionPolicy()
	if err != nil {
		return err
	}

	g.scheduler.WithWorld(func(w *engine.World) {
		w.Vehicle.SetTuning(tuning)
		w.Policy = policy
		w.Wrap = cfg.Wrap
		if len(cfg.Obstacles) > 0 {
			w.Obstacles = nil
			for i, o := range cfg.Obstacles {
				name := o.Name
				if name == "" {
					name = fmt.Sprintf("obstacle-%d", i)
				}
				w.AddObstacle(name, o.Rect())
			}
		}
	})
	g.machine.SetTable(cfg.KeyTable())
	g.machine.SetHoldTimings(cfg.Input.HoldTimings())

	g.mu.Lock()
	g.cfg = cfg
	g.maxSpeed = tuning.MaxSpeed
	g.scene.Reset()
	g.mu.Unlock()

	for _, warn := range cfg.Warnings() {
		log.Printf("config warning: %s", warn)
	}
	log.Printf("applied config: preset=%s policy=%s wrap=%v", cfg.Preset, policy, cfg.Wrap)
	return nil
}

func (g *Game) status() render.Status {
	return render.Status{
		Preset: g.cfg.Preset,
		Policy: g.cfg.Policy,
		Tick:   g.lastTick,
		Paused: g.scheduler.IsPaused(),
		Muted:  g.sound.IsMuted(),
	}
}

func (g *Game) draw() {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.status()
	g.scheduler.WithWorld(func(w *engine.World) {
		g.scene.Draw(w, st)
	})
}

// run drives the frame loop until quit, ctx cancellation or a crash
func (g *Game) run(ctx context.Context, reloads <-chan *config.Config) {
	g.scheduler.Start()
	defer g.scheduler.Stop()
	g.sound.StartEngine()
	defer g.sound.StopEngine()

	defer g.telemetry.LogMetrics("session")

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}

		case cfg := <-reloads:
			if err := g.applyConfig(cfg); err != nil {
				log.Printf("config reload rejected: %v", err)
			}

		case <-ticker.C:
			g.draw()
		}
	}
}
