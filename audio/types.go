package audio

import "errors"

// SoundType represents one-shot sound effects
type SoundType int

const (
	SoundCollision SoundType = iota // Vehicle hit an obstacle
	SoundReset                      // Vehicle returned to spawn
	soundTypeCount
)

// String returns the config key of the sound type
func (s SoundType) String() string {
	switch s {
	case SoundCollision:
		return "collision"
	case SoundReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ErrNotInitialized is returned by Play before the speaker is open
var ErrNotInitialized = errors.New("audio not initialized")
