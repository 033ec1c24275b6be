// Command racer-window drives the vehicle in a desktop window with real key-up events
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/vi-racer/audio"
	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/render"
	"github.com/lixenwraith/vi-racer/status"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	presetFlag = flag.String("preset", "", "Tuning preset: classic, default, arcade")
	policyFlag = flag.String("policy", "", "Collision policy: none, stop, bounce")
	scaleFlag  = flag.Int("scale", 8, "Pixels per world unit")
	widthFlag  = flag.Int("width", 120, "Playfield width in world units")
	heightFlag = flag.Int("height", 70, "Playfield height in world units")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

var (
	backgroundColor = color.RGBA{0x10, 0x12, 0x18, 0xff}
	boundsColor     = color.RGBA{0x30, 0x40, 0x48, 0xff}
	obstacleColor   = color.RGBA{0x80, 0x80, 0x88, 0xff}
	collisionColor  = color.RGBA{0xe0, 0x30, 0x30, 0xff}
	footprintColor  = color.RGBA{0x40, 0x40, 0x20, 0xff}
	vehicleColor    = color.RGBA{0xf0, 0xd0, 0x30, 0xff}
	noseColor       = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// windowGame is the ebiten.Game; each Update is one fixed world tick
type windowGame struct {
	world  *engine.World
	table  *input.KeyTable
	state  *input.State
	sound  *audio.SoundManager
	cfg    *config.Config
	scale  float32
	paused bool

	flash     map[int]int
	last      engine.StepResult
	keysBuf   []ebiten.Key
	telemetry *engine.Telemetry
}

func (g *windowGame) Update() error {
	g.keysBuf = inpututil.AppendJustPressedKeys(g.keysBuf[:0])
	for _, k := range g.keysBuf {
		if quit := g.press(input.NormalizeKey(k.String())); quit {
			return ebiten.Termination
		}
	}
	g.keysBuf = inpututil.AppendJustReleasedKeys(g.keysBuf[:0])
	for _, k := range g.keysBuf {
		g.state.Release(input.NormalizeKey(k.String()))
	}

	if g.paused {
		return nil
	}

	res := g.world.Step(g.state.Controls())
	g.last = res
	g.telemetry.Observe(res)

	for i, n := range g.flash {
		if n <= 1 {
			delete(g.flash, i)
		} else {
			g.flash[i] = n - 1
		}
	}
	for _, i := range res.Collisions {
		g.flash[i] = parameter.CollisionFlashTicks
	}

	g.sound.SetSpeed(res.State.Speed, g.world.Vehicle.Tuning().MaxSpeed)
	if len(res.Collisions) > 0 {
		g.sound.Play(audio.SoundCollision)
	}
	return nil
}

// press routes a key-down edge, returns true on quit
func (g *windowGame) press(key string) bool {
	intent := g.table.Lookup(key)
	switch intent.Type {
	case input.IntentDrive:
		g.state.Press(key)
	case input.IntentQuit:
		return true
	case input.IntentPause:
		g.paused = !g.paused
		g.state.Reset()
	case input.IntentReset:
		g.world.Reset()
		g.state.Reset()
		g.telemetry.Restart()
		clear(g.flash)
		g.sound.Play(audio.SoundReset)
	case input.IntentToggleMute:
		g.sound.ToggleMute()
	}
	return false
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s := g.scale

	b := g.world.Bounds
	vector.StrokeRect(screen, float32(b.X)*s, float32(b.Y)*s, float32(b.Width)*s, float32(b.Height)*s, 1, boundsColor, false)

	for i, o := range g.world.Obstacles {
		clr := obstacleColor
		if g.flash[i] > 0 {
			clr = collisionColor
		}
		r := o.Rect
		vector.DrawFilledRect(screen, float32(r.X)*s, float32(r.Y)*s, float32(r.Width)*s, float32(r.Height)*s, clr, false)
	}

	// The axis-aligned footprint is what collides, the rotated body is cosmetic
	v := g.world.Vehicle
	fp := v.Bounds()
	vector.StrokeRect(screen, float32(fp.X)*s, float32(fp.Y)*s, float32(fp.Width)*s, float32(fp.Height)*s, 1, footprintColor, false)

	outline := render.BodyOutline(fp, v.Heading(), s)
	for i := range outline {
		a, c := outline[i], outline[(i+1)%len(outline)]
		vector.StrokeLine(screen, a.X, a.Y, c.X, c.Y, 2, vehicleColor, true)
	}
	nose := render.Nose(outline)
	vector.DrawFilledCircle(screen, nose.X, nose.Y, 2, noseColor, true)

	st := render.Status{
		Preset: g.cfg.Preset,
		Policy: g.cfg.Policy,
		Tick:   g.last.Tick,
		Paused: g.paused,
		Muted:  g.sound.IsMuted(),
	}
	ebitenutil.DebugPrint(screen, render.StatusLine(v.Snapshot(), st))
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.world.Bounds
	return int(float32(b.Width) * g.scale), int(float32(b.Height) * g.scale)
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *presetFlag != "" {
		cfg.Preset = *presetFlag
	}
	if *policyFlag != "" {
		cfg.Policy = *policyFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, warn := range cfg.Warnings() {
		log.Printf("warning: %s", warn)
	}

	bounds := core.Rect{Width: float64(*widthFlag), Height: float64(*heightFlag)}
	world, err := cfg.BuildWorld(bounds)
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(&cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	sound.StartEngine()

	table := cfg.KeyTable()
	g := &windowGame{
		world: world,
		table: table,
		state: input.NewState(table),
		sound: sound,
		cfg:   cfg,
		scale: float32(*scaleFlag),
		flash: make(map[int]int),

		telemetry: engine.NewTelemetry(status.NewRegistry()),
	}
	defer g.telemetry.LogMetrics("session")

	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("vi-racer")
	ebiten.SetWindowSize(w, h)
	// One ebiten tick is one fixed world tick
	ebiten.SetTPS(int(1000 / parameter.TickInterval.Milliseconds()))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "racer-window: %v\n", err)
		os.Exit(1)
	}
}
