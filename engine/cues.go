package engine

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/term-racer/core"
)

// Cues is the audio reactor boundary: one-shot event signals plus continuous
// scalars. The core only writes here; it never waits on playback and gets no
// feedback from the audio side.
type Cues struct {
	Crash    core.Signal
	GameOver core.Signal
	Victory  core.Signal
	Brake    core.Signal

	speedBits atomic.Uint64
	rpmBits   atomic.Uint64
}

// SetSpeed publishes the current speed scalar
func (c *Cues) SetSpeed(v float64) {
	c.speedBits.Store(math.Float64bits(v))
}

// Speed returns the last published speed
func (c *Cues) Speed() float64 {
	return math.Float64frombits(c.speedBits.Load())
}

// SetRPM publishes the engine-rpm-equivalent derived from speed
func (c *Cues) SetRPM(v float64) {
	c.rpmBits.Store(math.Float64bits(v))
}

// RPM returns the last published engine rpm
func (c *Cues) RPM() float64 {
	return math.Float64frombits(c.rpmBits.Load())
}

// Warning is the level-triggered lookahead obstacle state, recomputed every
// physics tick. Unlike the cues above it is not edge-consumed: it simply
// reflects whether a qualifying obstacle is currently ahead.
type Warning struct {
	active     atomic.Bool
	distBits   atomic.Uint64
	offsetBits atomic.Uint64
}

// Set publishes an upcoming obstacle's distance delta and lateral offset
func (w *Warning) Set(dist, offsetX float64) {
	w.distBits.Store(math.Float64bits(dist))
	w.offsetBits.Store(math.Float64bits(offsetX))
	w.active.Store(true)
}

// Clear marks no obstacle in range
func (w *Warning) Clear() {
	w.active.Store(false)
}

// Get returns whether a warning is active and, if so, its parameters
func (w *Warning) Get() (bool, float64, float64) {
	if !w.active.Load() {
		return false, 0, 0
	}
	return true, math.Float64frombits(w.distBits.Load()), math.Float64frombits(w.offsetBits.Load())
}
