// Package engine owns the simulation: the shared vehicle state, the
// fixed-step physics integrator, collision detection and the context object
// that ties the concurrent loops together.
package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/term-racer/core"
	"github.com/lixenwraith/term-racer/input"
	"github.com/lixenwraith/term-racer/track"
)

// Context is the process-wide simulation context, created once and passed
// by reference to every loop. Write ownership per field:
//
//	State    - renderer (menus) and integrator/collision (Win, GameOver)
//	Running  - cleared once, by whoever observes Halt first
//	Vehicle  - physics integrator, under the vehicle lock
//	Cues     - integrator and collision checker raise; audio reactor takes
//	Warning  - collision scan, every physics tick
//	track    - renderer, on map-select confirm only
type Context struct {
	State   core.StateMachine
	Running atomic.Bool

	Vehicle Vehicle
	Cues    Cues
	Warning Warning
	Sampler *input.Sampler

	trk   atomic.Pointer[track.Track]
	mapID atomic.Int32
}

// NewContext creates a running context with map 1 loaded
func NewContext() *Context {
	ctx := &Context{}
	ctx.Running.Store(true)
	ctx.State.Set(core.StateBoot)
	ctx.LoadMap(1)
	return ctx
}

// LoadMap builds and installs the track for a map id. Called only from map
// selection, never mid-race.
func (c *Context) LoadMap(id int) {
	c.mapID.Store(int32(id))
	c.SetTrack(track.Build(id))
}

// SetTrack installs a track directly, bypassing the built-in map tables
func (c *Context) SetTrack(t *track.Track) {
	c.trk.Store(t)
}

// Track returns the currently loaded track
func (c *Context) Track() *track.Track {
	return c.trk.Load()
}

// MapID returns the currently loaded map id
func (c *Context) MapID() int {
	return int(c.mapID.Load())
}

// Stop clears the running flag; every loop observes it at its head and
// finishes its current sleep before exiting.
func (c *Context) Stop() {
	c.Running.Store(false)
}
