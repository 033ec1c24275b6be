package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 50 * time.Millisecond
)

// Engine Hum
const (
	// EngineIdleFreq is the hum pitch at rest
	EngineIdleFreq = 55.0
	// EngineTopFreq is the hum pitch at max speed
	EngineTopFreq = 165.0
	// EngineIdleVolume is the hum level at rest, scaled by master volume
	EngineIdleVolume = 0.08
	// EngineTopVolume is the hum level at max speed
	EngineTopVolume = 0.3
	// EngineGlideRate is the per-sample fraction the hum moves toward its target pitch
	EngineGlideRate = 0.0005
)

// Collision Sound
const (
	CollisionSoundDuration = 180 * time.Millisecond
	CollisionSoundAttack   = 3 * time.Millisecond
	CollisionSoundRelease  = 150 * time.Millisecond
	CollisionSoundFreq     = 70.0
)

// Reset Sound
const (
	ResetSoundNote1Duration = 60 * time.Millisecond
	ResetSoundNote2Duration = 140 * time.Millisecond
	ResetSoundAttack        = 5 * time.Millisecond
	ResetSoundNote1Release  = 30 * time.Millisecond
	ResetSoundNote2Release  = 100 * time.Millisecond
)

// MinSoundGap between consecutive one-shot sounds of the same type
const MinSoundGap = 100 * time.Millisecond
