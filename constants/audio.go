package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferLength is the speaker buffer duration
	AudioBufferLength = time.Second / 10
)

// Engine RPM Model
const (
	// RPMIdle is the base RPM once the vehicle is moving
	RPMIdle = 800.0

	// RPMSpan is added proportionally to speed/MaxSpeed on top of idle
	RPMSpan = 2700.0

	// RPMAccelBoost is added while the accelerator is held
	RPMAccelBoost = 500.0

	// RPM smoothing rates per reactor tick: normal approach and the faster
	// decay used once the vehicle has stopped
	RPMApproachRate = 0.3
	RPMDecayRate    = 0.5

	// RPMCutoff snaps the hum off entirely below this value
	RPMCutoff = 50.0

	// MovingSpeedThreshold is the speed above which the engine is audible
	// and steering onset triggers the brake screech
	MovingSpeedThreshold = 0.1

	// EngineHumGateRPM is the minimum RPM that produces an audible hum
	EngineHumGateRPM = 100.0

	// EngineHumRetrigger is the minimum spacing between hum bursts
	EngineHumRetrigger = 80 * time.Millisecond

	// EngineFreqDivisor, EngineFreqMin and EngineFreqMax map RPM onto the
	// hum's base oscillator frequency
	EngineFreqDivisor = 120.0
	EngineFreqMin     = 80.0
	EngineFreqMax     = 600.0
)

// Effect Envelopes
const (
	EngineHumDuration = 90 * time.Millisecond
	EngineHumAttack   = 10 * time.Millisecond
	EngineHumRelease  = 30 * time.Millisecond

	BrakeSoundDuration = 180 * time.Millisecond
	BrakeSoundAttack   = 5 * time.Millisecond
	BrakeSoundRelease  = 120 * time.Millisecond

	CrashSoundDuration = 350 * time.Millisecond
	CrashSoundAttack   = 2 * time.Millisecond
	CrashSoundRelease  = 250 * time.Millisecond

	GameOverNoteDuration = 300 * time.Millisecond
	GameOverNoteAttack   = 10 * time.Millisecond
	GameOverNoteRelease  = 150 * time.Millisecond

	VictoryNoteDuration = 200 * time.Millisecond
	VictoryFinalNote    = 400 * time.Millisecond
	VictoryNoteAttack   = 5 * time.Millisecond
	VictoryNoteRelease  = 80 * time.Millisecond
)
