package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain pulls a streamer to completion, returning the sample count. The cap
// guards against a streamer that never finishes.
func drain(t *testing.T, s beep.Streamer, capSamples int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
		if total > capSamples {
			t.Fatalf("Streamer exceeded %d samples without finishing", capSamples)
		}
	}
}

// TestOscillatorDuration verifies the oscillator emits exactly the requested
// sample count and then reports completion
func TestOscillatorDuration(t *testing.T) {
	const dur = 100 * time.Millisecond
	osc := newOscillator(440, dur, WaveSine, testRate)

	got := drain(t, osc, testRate.N(time.Second))
	want := testRate.N(dur)
	if got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}

	// A finished oscillator stays finished
	n, ok := osc.Stream(make([][2]float64, 8))
	if n != 0 || ok {
		t.Errorf("Expected a drained oscillator to emit nothing, got n=%d ok=%v", n, ok)
	}
}

// TestOscillatorAmplitudeBounds verifies every wave shape stays within the
// [-1, 1] sample range
func TestOscillatorAmplitudeBounds(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := newOscillator(440, 50*time.Millisecond, wave, testRate)
		buf := make([][2]float64, 256)
		for {
			n, ok := osc.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("Wave %d: sample %f out of range", wave, buf[i][0])
				}
				if buf[i][0] != buf[i][1] {
					t.Fatalf("Wave %d: expected identical stereo channels", wave)
				}
			}
			if !ok {
				break
			}
		}
	}
}

// TestEnvelopeShapesAmplitude verifies the attack starts silent and the
// sustain passes samples through at full volume
func TestEnvelopeShapesAmplitude(t *testing.T) {
	unit := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i][0] = 1
			samples[i][1] = 1
		}
		return len(samples), true
	})

	const dur = 100 * time.Millisecond
	env := newEnvelope(unit, dur, 10*time.Millisecond, 10*time.Millisecond, testRate)

	total := testRate.N(dur)
	buf := make([][2]float64, total)
	n, _ := env.Stream(buf)
	if n != total {
		t.Fatalf("Expected %d shaped samples, got %d", total, n)
	}

	if buf[0][0] != 0 {
		t.Errorf("Expected the first attack sample silent, got %f", buf[0][0])
	}
	mid := total / 2
	if buf[mid][0] != 1 {
		t.Errorf("Expected full volume mid-sustain, got %f", buf[mid][0])
	}
	if last := buf[total-1][0]; last > 0.1 {
		t.Errorf("Expected the release tail near silence, got %f", last)
	}
}

// TestEffectStreamersFinish verifies every synthesized effect terminates
func TestEffectStreamersFinish(t *testing.T) {
	effects := map[string]beep.Streamer{
		"crash":    CrashSound(testRate),
		"gameOver": GameOverSound(testRate),
		"victory":  VictorySound(testRate),
		"brake":    BrakeSound(testRate),
		"hum":      EngineHum(2400, true, testRate),
	}
	for name, s := range effects {
		if got := drain(t, s, testRate.N(5*time.Second)); got == 0 {
			t.Errorf("Effect %s produced no samples", name)
		}
	}
}
