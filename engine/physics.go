package engine

import (
	"time"

	"github.com/lixenwraith/term-racer/constants"
	"github.com/lixenwraith/term-racer/core"
	"github.com/lixenwraith/term-racer/input"
)

// Integrator advances the vehicle in fixed dt steps using a wall-clock
// accumulator: slow scheduling produces several whole steps per wake instead
// of one variable-size step, so the trajectory is frame-rate independent and
// bit-for-bit replayable from a frame script.
type Integrator struct {
	ctx         *Context
	accumulator float64
}

// NewIntegrator creates an integrator bound to the simulation context
func NewIntegrator(ctx *Context) *Integrator {
	return &Integrator{ctx: ctx}
}

// Advance consumes the elapsed wall-clock time in whole fixed steps,
// applying the same input frame to each. Returns the number of steps run.
func (it *Integrator) Advance(elapsed time.Duration, frame input.Frame) int {
	it.accumulator += elapsed.Seconds()
	steps := 0
	for it.accumulator >= constants.PhysicsStep {
		it.Step(frame)
		it.accumulator -= constants.PhysicsStep
		steps++
	}
	return steps
}

// Step runs one fixed integration step followed by the collision checks and
// the warning scan. Outside the Running state only the warning is cleared.
func (it *Integrator) Step(frame input.Frame) {
	ctx := it.ctx
	if ctx.State.Current() != core.StateRunning {
		ctx.Warning.Clear()
		return
	}

	it.integrate(frame)

	ctx.checkBoundary()
	ctx.checkObstacles()
	ctx.scanWarning()
}

// integrate applies one dt of vehicle dynamics under the vehicle lock
func (it *Integrator) integrate(frame input.Frame) {
	const dt = constants.PhysicsStep
	ctx := it.ctx
	trk := ctx.Track()
	v := &ctx.Vehicle

	v.mu.Lock()
	defer v.mu.Unlock()

	prevSteer := v.steer
	v.steer = frame.Steer

	// Braking onset cue: steering from straight while moving
	if v.steer != 0 && prevSteer == 0 && v.speed > constants.MovingSpeedThreshold {
		ctx.Cues.Brake.Raise()
	}

	if !v.crashed {
		if frame.Accelerate {
			v.speed += constants.Acceleration * dt
		} else {
			v.speed *= constants.Friction
		}
		if frame.Brake {
			v.speed -= constants.Deceleration * dt
		}
	} else {
		v.speed = 0
	}
	v.speed = clamp(v.speed, constants.MinSpeed, constants.MaxSpeed)

	v.distance += v.speed * dt
	if v.distance >= trk.TotalLength() {
		v.distance = trk.TotalLength()
		if ctx.State.Transition(core.StateRunning, core.StateWin) {
			ctx.Cues.Victory.Raise()
		}
	}

	// Exponential approach toward the containing segment's curvature
	target := trk.CurvatureAt(v.distance)
	v.curvature += (target - v.curvature) * dt * constants.CurvatureApproachRate
	v.bgCurvature += v.curvature * dt * v.speed * constants.ParallaxGain

	steerInput := float64(v.steer) * constants.SteerInputScale
	inertiaSlide := -v.curvature * v.speed * constants.LateralFactor
	compensation := steerInput * constants.SteerCompensation
	headingDrift := v.heading * v.speed * constants.HeadingDriftFactor
	netForce := (inertiaSlide + compensation + headingDrift) * constants.LateralForceGain
	v.offsetX += netForce * dt

	switch v.steer {
	case -1:
		v.heading -= constants.HeadingTurnSpeed * dt
	case 1:
		v.heading += constants.HeadingTurnSpeed * dt
	default:
		v.heading *= constants.HeadingDecay
	}

	ctx.Cues.SetSpeed(v.speed)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RunPhysics is the physics thread body: a fixed-rate wake feeding the
// accumulator until the running flag clears.
func (c *Context) RunPhysics() {
	it := NewIntegrator(c)
	ticker := time.NewTicker(constants.PhysicsInterval)
	defer ticker.Stop()

	last := time.Now()
	for c.Running.Load() {
		now := <-ticker.C
		it.Advance(now.Sub(last), c.Sampler.Frame())
		last = now
	}
}
