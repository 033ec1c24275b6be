package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-racer/constant"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	EngineVolume float64 `toml:"engine_volume"`
	SampleRate   int     `toml:"sample_rate"`

	// Per-effect multipliers, applied on top of MasterVolume
	EffectVolumes map[SoundType]float64 `toml:"-"`
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EngineVolume: 1.0,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundCollision: 1.0,
			SoundReset:     0.6,
		},
	}
}

// ApplyEnv overrides fields from VI_RACER_* environment variables
func (cfg *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv("VI_RACER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv("VI_RACER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv("VI_RACER_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if cfg.EffectVolumes == nil {
				cfg.EffectVolumes = make(map[SoundType]float64)
			}
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("VI_RACER_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

// EffectVolume returns the effective level of a sound type
func (cfg *AudioConfig) EffectVolume(st SoundType) float64 {
	v, ok := cfg.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * cfg.MasterVolume
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
