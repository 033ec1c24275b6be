package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-racer/constant"
)

// TestEngineFrequencyMapping verifies pitch follows speed ratio and clamps
func TestEngineFrequencyMapping(t *testing.T) {
	tests := []struct {
		ratio float64
		want  float64
	}{
		{0, constant.EngineIdleFreq},
		{1, constant.EngineTopFreq},
		{0.5, (constant.EngineIdleFreq + constant.EngineTopFreq) / 2},
		{-3, constant.EngineIdleFreq},
		{7, constant.EngineTopFreq},
	}

	for _, tt := range tests {
		if got := EngineFrequency(tt.ratio); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EngineFrequency(%v): expected %v, got %v", tt.ratio, tt.want, got)
		}
	}
}

// TestEngineToneSetSpeed verifies target pitch and idle fallbacks
func TestEngineToneSetSpeed(t *testing.T) {
	e := NewEngineTone(beep.SampleRate(8000))

	e.SetSpeed(5, 5)
	if e.Target() != constant.EngineTopFreq {
		t.Errorf("Expected top pitch at max speed, got %v", e.Target())
	}

	e.SetSpeed(5, 0)
	if e.Target() != constant.EngineIdleFreq {
		t.Errorf("Expected idle pitch with zero max speed, got %v", e.Target())
	}

	e.SetSpeed(math.NaN(), 5)
	if e.Target() != constant.EngineIdleFreq {
		t.Errorf("Expected idle pitch for NaN speed, got %v", e.Target())
	}
}

// TestEngineToneGlide verifies the hum moves toward its target without overshoot
func TestEngineToneGlide(t *testing.T) {
	e := NewEngineTone(beep.SampleRate(8000))
	if e.Frequency() != constant.EngineIdleFreq {
		t.Fatalf("Expected idle start, got %v", e.Frequency())
	}

	e.SetSpeed(1, 1)
	buf := make([][2]float64, 512)

	prev := e.Frequency()
	for i := 0; i < 40; i++ {
		n, ok := e.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("Expected endless stream, got %d %v", n, ok)
		}
		f := e.Frequency()
		if f < prev || f > constant.EngineTopFreq {
			t.Fatalf("Expected monotonic glide below target, got %v after %v", f, prev)
		}
		prev = f
	}

	if math.Abs(prev-constant.EngineTopFreq) > 1 {
		t.Errorf("Expected hum near %v after gliding, got %v", constant.EngineTopFreq, prev)
	}
}

// TestEngineToneAmplitude verifies samples stay within the top level
func TestEngineToneAmplitude(t *testing.T) {
	e := NewEngineTone(beep.SampleRate(8000))
	e.SetSpeed(10, 5)

	buf := make([][2]float64, 4096)
	e.Stream(buf)
	for i := range buf {
		if math.Abs(buf[i][0]) > constant.EngineTopVolume+1e-9 {
			t.Fatalf("Sample %d exceeds top volume: %f", i, buf[i][0])
		}
	}
}
