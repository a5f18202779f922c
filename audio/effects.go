// Package audio is the sound reactor: it observes the one-shot cues and
// speed scalar the core publishes and synthesizes everything it plays.
// The core never waits on it and never hears back from it.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/term-racer/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// newOscillator creates an oscillator streamer for wave generation
func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// newEnvelope shapes a streamer with attack/sustain/release over duration
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer with a linear volume; zero means silent since
// math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// note is a shaped single-oscillator tone
func note(freq float64, dur time.Duration, wave WaveType, attack, release time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(freq, dur, wave, rate)
	return newVolume(newEnvelope(osc, dur, attack, release, rate), vol)
}

// CrashSound is a low descending saw thud
func CrashSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(150, constants.CrashSoundDuration/2, WaveSaw,
			constants.CrashSoundAttack, constants.CrashSoundRelease/2, 0.8, rate),
		note(100, constants.CrashSoundDuration, WaveSaw,
			constants.CrashSoundAttack, constants.CrashSoundRelease, 0.8, rate),
	)
}

// GameOverSound is a three-note falling square dirge
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(200, constants.GameOverNoteDuration, WaveSquare,
			constants.GameOverNoteAttack, constants.GameOverNoteRelease, 0.5, rate),
		note(150, constants.GameOverNoteDuration, WaveSquare,
			constants.GameOverNoteAttack, constants.GameOverNoteRelease, 0.5, rate),
		note(100, constants.GameOverNoteDuration+100*time.Millisecond, WaveSquare,
			constants.GameOverNoteAttack, constants.GameOverNoteRelease, 0.5, rate),
	)
}

// VictorySound is a rising C-major fanfare (C5 E5 G5 C6)
func VictorySound(rate beep.SampleRate) beep.Streamer {
	fanfare := []float64{523.25, 659.25, 783.99}
	var notes []beep.Streamer
	for _, f := range fanfare {
		notes = append(notes, note(f, constants.VictoryNoteDuration, WaveSquare,
			constants.VictoryNoteAttack, constants.VictoryNoteRelease, 0.6, rate))
	}
	notes = append(notes, note(1046.50, constants.VictoryFinalNote, WaveSquare,
		constants.VictoryNoteAttack, constants.VictoryNoteRelease, 0.6, rate))
	return beep.Seq(notes...)
}

// BrakeSound is a short tire screech: noise over a falling tone
func BrakeSound(rate beep.SampleRate) beep.Streamer {
	noise := note(0, constants.BrakeSoundDuration, WaveNoise,
		constants.BrakeSoundAttack, constants.BrakeSoundRelease, 0.35, rate)
	tone := note(300, constants.BrakeSoundDuration, WaveSaw,
		constants.BrakeSoundAttack, constants.BrakeSoundRelease, 0.25, rate)
	return beep.Mix(noise, tone)
}

// EngineHum is one burst of the engine tone at the given RPM: a base
// oscillator with its octave mixed in, brighter while accelerating
func EngineHum(rpm float64, accelerating bool, rate beep.SampleRate) beep.Streamer {
	freq := rpm / constants.EngineFreqDivisor
	if freq < constants.EngineFreqMin {
		freq = constants.EngineFreqMin
	}
	if freq > constants.EngineFreqMax {
		freq = constants.EngineFreqMax
	}

	baseVol, overVol := 0.30, 0.12
	if accelerating {
		baseVol, overVol = 0.40, 0.20
	}
	base := note(freq, constants.EngineHumDuration, WaveSaw,
		constants.EngineHumAttack, constants.EngineHumRelease, baseVol, rate)
	over := note(freq*2, constants.EngineHumDuration, WaveSine,
		constants.EngineHumAttack, constants.EngineHumRelease, overVol, rate)
	return beep.Mix(base, over)
}
