package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-racer/constant"
	"github.com/lixenwraith/vi-racer/status"
)

// EngineTone is an endless hum that glides toward a pitch and level set from vehicle speed
// SetSpeed may be called from any goroutine; Stream runs on the speaker goroutine
type EngineTone struct {
	rate beep.SampleRate

	targetFreq  status.AtomicFloat
	targetLevel status.AtomicFloat
	current     status.AtomicFloat // Last streamed frequency

	freq  float64
	level float64
	phase float64
	sub   float64
}

// NewEngineTone creates a hum resting at idle pitch
func NewEngineTone(rate beep.SampleRate) *EngineTone {
	e := &EngineTone{
		rate:  rate,
		freq:  constant.EngineIdleFreq,
		level: constant.EngineIdleVolume,
	}
	e.targetFreq.Set(constant.EngineIdleFreq)
	e.targetLevel.Set(constant.EngineIdleVolume)
	e.current.Set(constant.EngineIdleFreq)
	return e
}

// EngineFrequency maps a speed ratio in [0, 1] to hum pitch, clamping outside values
func EngineFrequency(ratio float64) float64 {
	ratio = clampUnit(ratio)
	return constant.EngineIdleFreq + (constant.EngineTopFreq-constant.EngineIdleFreq)*ratio
}

// EngineLevel maps a speed ratio in [0, 1] to hum amplitude
func EngineLevel(ratio float64) float64 {
	ratio = clampUnit(ratio)
	return constant.EngineIdleVolume + (constant.EngineTopVolume-constant.EngineIdleVolume)*ratio
}

// SetSpeed retargets the hum; maxSpeed <= 0 or NaN speed idles it
func (e *EngineTone) SetSpeed(speed, maxSpeed float64) {
	ratio := 0.0
	if maxSpeed > 0 && !math.IsNaN(speed) {
		ratio = speed / maxSpeed
	}
	e.targetFreq.Set(EngineFrequency(ratio))
	e.targetLevel.Set(EngineLevel(ratio))
}

// Target returns the pitch the hum is gliding toward
func (e *EngineTone) Target() float64 {
	return e.targetFreq.Get()
}

// Frequency returns the pitch at the end of the last streamed buffer
func (e *EngineTone) Frequency() float64 {
	return e.current.Get()
}

func (e *EngineTone) Stream(samples [][2]float64) (n int, ok bool) {
	target := e.targetFreq.Get()
	level := e.targetLevel.Get()

	for i := range samples {
		e.freq += (target - e.freq) * constant.EngineGlideRate
		e.level += (level - e.level) * constant.EngineGlideRate

		// Saw body plus a sine one octave down
		val := 0.6*waveSample(WaveSaw, e.phase) + 0.4*waveSample(WaveSine, e.sub)
		val *= e.level

		samples[i][0] = val
		samples[i][1] = val

		e.phase = advancePhase(e.phase, e.freq, e.rate)
		e.sub = advancePhase(e.sub, e.freq/2, e.rate)
	}
	e.current.Set(e.freq)
	return len(samples), true
}

func (e *EngineTone) Err() error { return nil }
