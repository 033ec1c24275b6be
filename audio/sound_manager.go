package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-racer/constant"
)

// SoundManager owns the speaker, the engine hum and one-shot effects
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	engine      *EngineTone
	engineCtrl  *beep.Ctrl
	lastPlayed  [soundTypeCount]time.Time
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		engine: NewEngineTone(beep.SampleRate(cfg.SampleRate)),
	}
}

// Initialize opens the speaker; disabled audio is a silent no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker initialized at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup silences everything and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.engineCtrl != nil {
		sm.engineCtrl.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.engineCtrl = nil
	sm.initialized = false
}

// StartEngine begins the engine hum if not already running
func (sm *SoundManager) StartEngine() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.engineCtrl != nil {
		return
	}

	vol := sm.cfg.EngineVolume * sm.cfg.MasterVolume
	ctrl := &beep.Ctrl{Streamer: newVolume(sm.engine, vol), Paused: sm.muted}

	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
	sm.engineCtrl = ctrl
}

// StopEngine removes the engine hum
func (sm *SoundManager) StopEngine() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.engineCtrl == nil {
		return
	}
	speaker.Lock()
	sm.engineCtrl.Streamer = nil
	speaker.Unlock()
	sm.engineCtrl = nil
}

// SetSpeed retargets the engine hum from the vehicle speed
func (sm *SoundManager) SetSpeed(speed, maxSpeed float64) {
	sm.engine.SetSpeed(speed, maxSpeed)
}

// Engine exposes the hum streamer
func (sm *SoundManager) Engine() *EngineTone {
	return sm.engine
}

// Play queues a one-shot effect, dropping repeats closer than MinSoundGap
// Muted and dropped plays are not errors
func (sm *SoundManager) Play(st SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted || !sm.admit(st, time.Now()) {
		return nil
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return nil
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// admit records a play of st at now and reports whether the gap allows it
func (sm *SoundManager) admit(st SoundType, now time.Time) bool {
	if st < 0 || st >= soundTypeCount {
		return false
	}
	if last := sm.lastPlayed[st]; !last.IsZero() && now.Sub(last) < constant.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized && sm.engineCtrl != nil {
		speaker.Lock()
		sm.engineCtrl.Paused = sm.muted
		speaker.Unlock()
	}
	return sm.muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
