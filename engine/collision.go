package engine

import (
	"github.com/lixenwraith/term-racer/constants"
	"github.com/lixenwraith/term-racer/core"
)

// crash zeroes speed, latches the crash flag and transitions to GameOver,
// raising the crash and game-over cues exactly once. Caller holds v.mu.
func (c *Context) crash() {
	v := &c.Vehicle
	if v.crashed {
		return
	}
	v.crashed = true
	v.speed = 0
	if c.State.Transition(core.StateRunning, core.StateGameOver) {
		c.Cues.Crash.Raise()
		c.Cues.GameOver.Raise()
	}
}

// checkBoundary crashes the vehicle when its half-width-expanded lateral
// extent leaves the road limits. Idempotent once crashed.
func (c *Context) checkBoundary() {
	v := &c.Vehicle
	v.mu.Lock()
	defer v.mu.Unlock()

	left := v.offsetX - constants.PlayerHalfWidth
	right := v.offsetX + constants.PlayerHalfWidth
	if left <= -constants.RoadWidthLimit || right >= constants.RoadWidthLimit {
		c.crash()
	}
}

// checkObstacles tests 1-D interval overlap against every obstacle of the
// current segment whose along-track position is within the hit window.
func (c *Context) checkObstacles() {
	trk := c.Track()
	v := &c.Vehicle
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.crashed {
		return
	}
	idx, inSeg := trk.Locate(v.distance)
	if idx >= len(trk.Segments) {
		return
	}
	for _, obs := range trk.Segments[idx].Obstacles {
		if inSeg < obs.SegDistance-constants.ObstacleHitWindow ||
			inSeg > obs.SegDistance+constants.ObstacleHitWindow {
			continue
		}
		playerLeft := v.offsetX - constants.PlayerHalfWidth
		playerRight := v.offsetX + constants.PlayerHalfWidth
		if max(playerLeft, obs.Left()) < min(playerRight, obs.Right()) {
			c.crash()
			return
		}
	}
}

// scanWarning looks strictly ahead for the nearest obstacle within the
// warning range. Level-triggered: recomputed every tick, cleared whenever
// nothing qualifies.
func (c *Context) scanWarning() {
	if c.State.Current() != core.StateRunning {
		c.Warning.Clear()
		return
	}
	trk := c.Track()
	playerDist := c.Vehicle.Snapshot().Distance

	for _, obs := range trk.GlobalObstacles() {
		if obs.SegDistance <= playerDist {
			continue
		}
		delta := obs.SegDistance - playerDist
		if delta <= constants.WarningRange {
			c.Warning.Set(delta, obs.OffsetX)
			return
		}
		// Track order: every later obstacle is farther still
		break
	}
	c.Warning.Clear()
}
