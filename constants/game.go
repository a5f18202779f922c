package constants

import "time"

// Engine Timing
const (
	// PhysicsHz is the fixed physics integration frequency
	PhysicsHz = 240.0

	// PhysicsStep is the fixed physics timestep in seconds
	PhysicsStep = 1.0 / PhysicsHz

	// PhysicsInterval is the physics loop wake interval
	PhysicsInterval = time.Second / 240

	// FrameInterval is the render loop target interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// InputInitialHold is the hold granted by the first press of a
	// level-triggered key. Terminals deliver no key-release and the first
	// autorepeat event only arrives after the OS initial-repeat delay
	// (commonly 250-500ms), so this grant must outlast that gap.
	InputInitialHold = 600 * time.Millisecond

	// InputRepeatHold is the hold granted by autorepeat refreshes, which
	// arrive every few tens of milliseconds while the key stays down. The
	// shorter grant keeps the release latency low once repeats stop.
	InputRepeatHold = 150 * time.Millisecond

	// AudioPollInterval is the sound reactor cue-check cadence
	AudioPollInterval = 50 * time.Millisecond
)

// Road / Track Parameters
const (
	// RoadWidthLimit is the maximum absolute lateral offset before the shoulder
	RoadWidthLimit = 1.0

	// PlayerHalfWidth is half the car width in normalized road coordinates
	PlayerHalfWidth = 0.18

	// CameraLagDistance is how far the camera looks back behind the vehicle
	CameraLagDistance = 3.0

	// PolylineStep is the distance step for the overhead map walk
	PolylineStep = 1.0

	// PolylineCurveGain scales curvature into heading change per map step
	PolylineCurveGain = 0.01
)

// Vehicle Dynamics
const (
	MaxSpeed     = 50.0
	MinSpeed     = -15.0 // Reverse limit after braking through zero
	Acceleration = 17.0  // Units/sec while accelerating
	Deceleration = 20.0  // Units/sec while braking

	// Friction is applied once per physics tick, not per second.
	// Its effective strength is coupled to PhysicsHz; treat it as a tuning
	// constant, not a rate to rederive.
	Friction = 0.9999
)

// Steering / Lateral Control
const (
	LateralFactor     = 0.0004 // Curvature-induced slide gain
	SteerCompensation = 0.002  // Counter-force per unit of steer input
	SteerInputScale   = 0.5    // Discrete steer state to input magnitude
	LateralForceGain  = 40.0   // Net lateral force multiplier

	HeadingTurnSpeed   = 0.4   // Heading ramp rate under active steering (rad/s)
	HeadingDriftFactor = 0.004 // Heading-proportional drift gain
	HeadingDecay       = 0.95  // Per-tick heading decay with steering released

	// CurvatureApproachRate is the exponential-approach rate toward the
	// segment's target curvature (per second)
	CurvatureApproachRate = 3.0

	// ParallaxGain scales curvature*speed into the background accumulator
	ParallaxGain = 0.01
)

// Collision / Warning
const (
	// ObstacleHitWindow is the along-track half-window for overlap tests
	ObstacleHitWindow = 0.5

	// WarningRange is the lookahead distance for the obstacle warning scan
	WarningRange = 50.0
)
