package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/term-racer/constants"
	"github.com/lixenwraith/term-racer/core"
	"github.com/lixenwraith/term-racer/input"
	"github.com/lixenwraith/term-racer/track"
)

// newRaceContext builds a context mid-race on the given track
func newRaceContext(trk *track.Track) *Context {
	ctx := NewContext()
	ctx.SetTrack(trk)
	ctx.State.Set(core.StateRunning)
	return ctx
}

func straightTrack(length float64) *track.Track {
	return track.New([]track.Segment{{Curvature: 0, Length: length}})
}

// TestAdvanceAccumulatesWholeSteps verifies the accumulator only ever runs
// whole fixed steps and carries the remainder between wakes
func TestAdvanceAccumulatesWholeSteps(t *testing.T) {
	ctx := newRaceContext(straightTrack(10000))
	it := NewIntegrator(ctx)
	frame := input.Frame{}

	// 10ms is 2.4 steps at 240Hz: two whole steps, 0.4 carried
	if steps := it.Advance(10*time.Millisecond, frame); steps != 2 {
		t.Errorf("First wake: expected 2 steps, got %d", steps)
	}
	// Carried 0.4 + 2.4 new accumulates to 2.8: two more steps
	if steps := it.Advance(10*time.Millisecond, frame); steps != 2 {
		t.Errorf("Second wake: expected 2 steps, got %d", steps)
	}
	// Carried 0.8 + 0.24 crosses one step boundary
	if steps := it.Advance(time.Millisecond, frame); steps != 1 {
		t.Errorf("Third wake: expected 1 step, got %d", steps)
	}
	// Nothing left over a sub-step wake
	if steps := it.Advance(time.Millisecond, frame); steps != 0 {
		t.Errorf("Fourth wake: expected 0 steps, got %d", steps)
	}
}

// TestAdvanceChunkingIndependence verifies the trajectory depends only on
// total elapsed time, not on how the wall clock was sliced into wakes
func TestAdvanceChunkingIndependence(t *testing.T) {
	trk := track.New([]track.Segment{
		{Curvature: 0, Length: 80},
		{Curvature: 0.3, Length: 250},
		{Curvature: -0.3, Length: 100},
	})
	ctxA := newRaceContext(trk)
	ctxB := newRaceContext(trk)
	itA := NewIntegrator(ctxA)
	itB := NewIntegrator(ctxB)
	frame := input.Frame{Accelerate: true, Steer: 1}

	stepsA, stepsB := 0, 0
	for i := 0; i < 60; i++ {
		stepsA += itA.Advance(10*time.Millisecond, frame)
	}
	for i := 0; i < 100; i++ {
		stepsB += itB.Advance(6*time.Millisecond, frame)
	}

	if stepsA != stepsB {
		t.Fatalf("Expected identical step counts for equal totals, got %d and %d", stepsA, stepsB)
	}
	snapA := ctxA.Vehicle.Snapshot()
	snapB := ctxB.Vehicle.Snapshot()
	if snapA != snapB {
		t.Errorf("Expected bit-identical snapshots, got\n%+v\n%+v", snapA, snapB)
	}
}

// TestStepReplayDeterminism verifies two independent runs over the same
// frame script end in identical vehicle state
func TestStepReplayDeterminism(t *testing.T) {
	trk := track.New([]track.Segment{
		{Curvature: 0.2, Length: 300},
		{Curvature: -0.4, Length: 300},
	})
	script := func(i int) input.Frame {
		f := input.Frame{Accelerate: i%7 != 0}
		switch i % 5 {
		case 1:
			f.Steer = 1
		case 3:
			f.Steer = -1
		}
		if i%11 == 0 {
			f.Brake = true
		}
		return f
	}

	run := func() Snapshot {
		ctx := newRaceContext(trk)
		it := NewIntegrator(ctx)
		for i := 0; i < 2400; i++ {
			it.Step(script(i))
		}
		return ctx.Vehicle.Snapshot()
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("Expected identical replays, got\n%+v\n%+v", first, second)
	}
}

// TestSpeedStaysWithinLimits verifies the speed clamp under sustained
// throttle and sustained braking
func TestSpeedStaysWithinLimits(t *testing.T) {
	ctx := newRaceContext(straightTrack(100000))
	it := NewIntegrator(ctx)

	for i := 0; i < 2000; i++ {
		it.Step(input.Frame{Accelerate: true})
		if s := ctx.Vehicle.Snapshot().Speed; s > constants.MaxSpeed {
			t.Fatalf("Step %d: speed %.3f exceeds max %.0f", i, s, constants.MaxSpeed)
		}
	}
	if s := ctx.Vehicle.Snapshot().Speed; s != constants.MaxSpeed {
		t.Errorf("Expected speed pinned at %.0f under full throttle, got %.3f", constants.MaxSpeed, s)
	}

	for i := 0; i < 3000; i++ {
		it.Step(input.Frame{Brake: true})
		if s := ctx.Vehicle.Snapshot().Speed; s < constants.MinSpeed {
			t.Fatalf("Step %d: speed %.3f below min %.0f", i, s, constants.MinSpeed)
		}
	}
	if s := ctx.Vehicle.Snapshot().Speed; s != constants.MinSpeed {
		t.Errorf("Expected speed pinned at %.0f under sustained braking, got %.3f", constants.MinSpeed, s)
	}
}

// TestDistanceMonotonicUnderThrottle verifies distance never decreases while
// the speed stays non-negative
func TestDistanceMonotonicUnderThrottle(t *testing.T) {
	ctx := newRaceContext(straightTrack(100000))
	it := NewIntegrator(ctx)

	prev := 0.0
	for i := 0; i < 2400; i++ {
		it.Step(input.Frame{Accelerate: i%3 != 0})
		d := ctx.Vehicle.Snapshot().Distance
		if d < prev {
			t.Fatalf("Step %d: distance decreased from %.4f to %.4f", i, prev, d)
		}
		prev = d
	}
}

// TestFullThrottleRunWins drives the reference 430-unit track flat out with
// no steering: the speed must settle at the cap and the run must finish
func TestFullThrottleRunWins(t *testing.T) {
	trk := track.New([]track.Segment{
		{Curvature: 0, Length: 80},
		{Curvature: 0.05, Length: 250},
		{Curvature: -0.05, Length: 100},
	})
	ctx := newRaceContext(trk)
	it := NewIntegrator(ctx)
	frame := input.Frame{Accelerate: true}

	reachedTop := false
	const maxSteps = 240 * 30 // 30 simulated seconds
	steps := 0
	for ; steps < maxSteps; steps++ {
		it.Step(frame)
		snap := ctx.Vehicle.Snapshot()
		if snap.Speed >= constants.MaxSpeed {
			reachedTop = true
		}
		if snap.Crashed {
			t.Fatalf("Step %d: unexpected crash at distance %.1f offset %.3f",
				steps, snap.Distance, snap.OffsetX)
		}
		if ctx.State.Current() == core.StateWin {
			break
		}
	}

	if !reachedTop {
		t.Error("Expected speed to reach the cap before the finish")
	}
	if ctx.State.Current() != core.StateWin {
		t.Fatalf("Expected Win within %d steps, still %s at distance %.1f",
			maxSteps, ctx.State.Current(), ctx.Vehicle.Snapshot().Distance)
	}
	if d := ctx.Vehicle.Snapshot().Distance; d != trk.TotalLength() {
		t.Errorf("Expected distance clamped to %.0f at the finish, got %.4f", trk.TotalLength(), d)
	}
	t.Logf("Won after %d steps (%.2fs simulated)", steps, float64(steps)/constants.PhysicsHz)
}

// TestWinTransitionExactlyOnce verifies the finish fires a single Win
// transition and a single victory cue, and freezes distance afterwards
func TestWinTransitionExactlyOnce(t *testing.T) {
	ctx := newRaceContext(straightTrack(5))
	it := NewIntegrator(ctx)
	frame := input.Frame{Accelerate: true}

	for i := 0; i < 2400 && ctx.State.Current() == core.StateRunning; i++ {
		it.Step(frame)
	}
	if ctx.State.Current() != core.StateWin {
		t.Fatalf("Expected Win, got %s", ctx.State.Current())
	}
	if !ctx.Cues.Victory.Take() {
		t.Error("Expected the victory cue to be raised")
	}

	// Further steps are no-ops outside Running: distance stays clamped and
	// the cue is not re-raised
	final := ctx.Vehicle.Snapshot()
	for i := 0; i < 100; i++ {
		it.Step(frame)
	}
	if snap := ctx.Vehicle.Snapshot(); snap != final {
		t.Errorf("Expected frozen state after Win, got\n%+v\n%+v", final, snap)
	}
	if ctx.Cues.Victory.Pending() {
		t.Error("Expected no second victory cue")
	}
	if final.Distance != 5 {
		t.Errorf("Expected distance clamped to 5, got %.4f", final.Distance)
	}
}

// TestBrakeCueOnSteerOnset verifies the screech cue fires on the transition
// from straight to steering while moving, and only on the transition
func TestBrakeCueOnSteerOnset(t *testing.T) {
	ctx := newRaceContext(straightTrack(100000))
	it := NewIntegrator(ctx)

	// Get moving first; no steering, no cue
	for i := 0; i < 240; i++ {
		it.Step(input.Frame{Accelerate: true})
	}
	if ctx.Cues.Brake.Pending() {
		t.Fatal("Expected no brake cue while driving straight")
	}

	it.Step(input.Frame{Accelerate: true, Steer: 1})
	if !ctx.Cues.Brake.Take() {
		t.Error("Expected brake cue on steering onset")
	}

	// Holding the steer must not retrigger
	for i := 0; i < 100; i++ {
		it.Step(input.Frame{Accelerate: true, Steer: 1})
	}
	if ctx.Cues.Brake.Pending() {
		t.Error("Expected no repeated cue while steering is held")
	}

	// Releasing and steering again is a fresh onset
	it.Step(input.Frame{Accelerate: true})
	it.Step(input.Frame{Accelerate: true, Steer: -1})
	if !ctx.Cues.Brake.Take() {
		t.Error("Expected brake cue on a fresh steering onset")
	}
}

// TestStepIgnoredOutsideRunning verifies no integration happens in menu
// states and any stale warning is cleared
func TestStepIgnoredOutsideRunning(t *testing.T) {
	ctx := newRaceContext(straightTrack(1000))
	it := NewIntegrator(ctx)
	ctx.Warning.Set(10, 0.5)
	ctx.State.Set(core.StateMapSelect)

	before := ctx.Vehicle.Snapshot()
	it.Step(input.Frame{Accelerate: true, Steer: 1})

	if snap := ctx.Vehicle.Snapshot(); snap != before {
		t.Errorf("Expected vehicle untouched outside Running, got\n%+v\n%+v", before, snap)
	}
	if active, _, _ := ctx.Warning.Get(); active {
		t.Error("Expected warning cleared outside Running")
	}
}
