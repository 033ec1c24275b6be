package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/vi-racer/constant"
)

// TestSoundManagerGracefulDegradation verifies operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.StartEngine()
	sm.SetSpeed(3, 5)
	if err := sm.Play(SoundCollision); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if err := sm.Play(SoundReset); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	sm.StopEngine()
	sm.Cleanup()

	if sm.IsInitialized() {
		t.Error("Expected manager to remain uninitialized")
	}
}

// TestSoundManagerDisabled verifies disabled audio never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Errorf("Expected disabled init to succeed, got %v", err)
	}
	if sm.IsInitialized() {
		t.Error("Expected disabled manager to stay uninitialized")
	}
}

// TestSoundManagerInitialization verifies init and cleanup when a device exists
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker init fails without an audio device; audio is optional
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got error: %v", err)
	}
	sm.StartEngine()
	if err := sm.Play(SoundCollision); err != nil {
		t.Errorf("Expected play on open speaker to succeed, got %v", err)
	}
	sm.Cleanup()
}

// TestSoundManagerSetSpeed verifies speed reaches the engine tone
func TestSoundManagerSetSpeed(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.SetSpeed(5, 5)

	if sm.Engine().Target() != constant.EngineTopFreq {
		t.Errorf("Expected engine target %v, got %v", constant.EngineTopFreq, sm.Engine().Target())
	}
}

// TestSoundManagerToggleMute verifies mute flips
func TestSoundManagerToggleMute(t *testing.T) {
	sm := NewSoundManager(nil)

	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Error("Expected muted after first toggle")
	}
	if sm.ToggleMute() || sm.IsMuted() {
		t.Error("Expected unmuted after second toggle")
	}
}

// TestSoundManagerGap verifies repeats inside MinSoundGap are dropped per type
func TestSoundManagerGap(t *testing.T) {
	sm := NewSoundManager(nil)
	now := time.Now()

	if !sm.admit(SoundCollision, now) {
		t.Fatal("Expected first play admitted")
	}
	if sm.admit(SoundCollision, now.Add(constant.MinSoundGap/2)) {
		t.Error("Expected repeat inside gap dropped")
	}
	if !sm.admit(SoundReset, now.Add(constant.MinSoundGap/2)) {
		t.Error("Expected other sound type admitted")
	}
	if !sm.admit(SoundCollision, now.Add(constant.MinSoundGap)) {
		t.Error("Expected play after gap admitted")
	}
	if sm.admit(SoundType(-1), now) {
		t.Error("Expected invalid type rejected")
	}
}
