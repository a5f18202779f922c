package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/term-racer/constants"
	"github.com/lixenwraith/term-racer/core"
	"github.com/lixenwraith/term-racer/engine"
)

// Reactor converts the core's cues into playback. It polls on a fixed
// cadence, derives the engine RPM scalar from the published speed and plays
// synthesized bursts; with no speaker it still consumes cues so nothing
// latches, the game just runs silent.
type Reactor struct {
	ctx     *engine.Context
	rate    beep.SampleRate
	enabled bool

	lastRPM float64
	lastHum time.Time
}

// NewReactor creates a reactor bound to the simulation context
func NewReactor(ctx *engine.Context) *Reactor {
	return &Reactor{
		ctx:  ctx,
		rate: beep.SampleRate(constants.AudioSampleRate),
	}
}

// Init opens the speaker. Failure is non-fatal; the reactor stays silent.
func (r *Reactor) Init() error {
	err := speaker.Init(r.rate, r.rate.N(constants.AudioBufferLength))
	if err == nil {
		r.enabled = true
	}
	return err
}

// Close releases the speaker
func (r *Reactor) Close() {
	if r.enabled {
		speaker.Close()
	}
}

// Run is the audio thread body
func (r *Reactor) Run() {
	ticker := time.NewTicker(constants.AudioPollInterval)
	defer ticker.Stop()

	for r.ctx.Running.Load() {
		now := <-ticker.C
		r.Tick(now)
	}
}

// Tick processes one reactor cycle: RPM tracking while racing, then the
// one-shot cues
func (r *Reactor) Tick(now time.Time) {
	ctx := r.ctx
	cues := &ctx.Cues

	if ctx.State.Current() == core.StateRunning {
		speed := cues.Speed()
		accelerating := ctx.Sampler.Frame().Accelerate && speed < constants.MaxSpeed

		// RPM from speed: idle when barely moving up to the span at top
		// speed, boosted under acceleration, smoothed toward the target
		var target float64
		if speed > constants.MovingSpeedThreshold {
			target = constants.RPMIdle + speed/constants.MaxSpeed*constants.RPMSpan
			if accelerating {
				target += constants.RPMAccelBoost
			}
		}
		approach := constants.RPMApproachRate
		if speed <= constants.MovingSpeedThreshold {
			approach = constants.RPMDecayRate
		}
		rpm := r.lastRPM + (target-r.lastRPM)*approach
		if rpm < constants.RPMCutoff {
			rpm = 0
		}
		r.lastRPM = rpm
		cues.SetRPM(rpm)

		if r.enabled && rpm > constants.EngineHumGateRPM &&
			now.Sub(r.lastHum) > constants.EngineHumRetrigger {
			r.lastHum = now
			speaker.Play(EngineHum(rpm, accelerating, r.rate))
		}
	} else {
		r.lastRPM = 0
		cues.SetRPM(0)
	}

	// One-shots are consumed even when the speaker is disabled
	if cues.Brake.Take() && r.enabled {
		speaker.Play(BrakeSound(r.rate))
	}
	if cues.Crash.Take() && r.enabled {
		speaker.Play(CrashSound(r.rate))
	}
	if cues.GameOver.Take() && r.enabled {
		speaker.Play(GameOverSound(r.rate))
	}
	if cues.Victory.Take() && r.enabled {
		speaker.Play(VictorySound(r.rate))
	}
}
