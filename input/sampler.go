// Package input turns tcell key events into the small signal vocabulary the
// engine consumes: level-triggered driving controls and one-shot menu edges.
package input

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-racer/constants"
	"github.com/lixenwraith/term-racer/core"
)

// Frame is one immutable sample of the level-triggered driving controls.
// The physics integrator consumes exactly one Frame per wake, which keeps
// its trajectory a pure function of the frame script.
type Frame struct {
	Steer      int // -1 left, 0 straight, +1 right
	Accelerate bool
	Brake      bool
}

// hold is a press-refreshed level signal. Terminals deliver no key-release,
// so a key counts as held until a deadline past its last press event. A
// press starting a new hold grants the long initial window, which must cover
// the OS autorepeat delay; once repeats are flowing each one grants only the
// short refresh window, keeping release latency low.
type hold struct {
	deadline atomic.Int64
}

func (h *hold) press(now time.Time) {
	grant := constants.InputRepeatHold
	if now.UnixNano() >= h.deadline.Load() {
		grant = constants.InputInitialHold
	}
	h.deadline.Store(now.Add(grant).UnixNano())
}

func (h *hold) heldAt(now time.Time) bool {
	return now.UnixNano() < h.deadline.Load()
}

// Sampler polls the terminal event stream and exposes the signals. One
// instance is shared by the physics integrator (Frame) and the renderer
// (edge signals).
type Sampler struct {
	screen  tcell.Screen
	running *atomic.Bool

	left, right  hold
	accel, brake hold

	Confirm core.Signal
	Up      core.Signal
	Down    core.Signal
	Digit1  core.Signal
	Digit2  core.Signal
	Digit3  core.Signal
	Escape  core.Signal
}

// NewSampler creates a sampler bound to the screen's event stream
func NewSampler(screen tcell.Screen, running *atomic.Bool) *Sampler {
	return &Sampler{screen: screen, running: running}
}

// Frame samples the level-triggered controls at the current time
func (s *Sampler) Frame() Frame {
	return s.FrameAt(time.Now())
}

// FrameAt samples the level-triggered controls at an explicit time
func (s *Sampler) FrameAt(now time.Time) Frame {
	steer := 0
	if s.left.heldAt(now) {
		steer = -1
	}
	if s.right.heldAt(now) {
		steer = 1
	}
	return Frame{
		Steer:      steer,
		Accelerate: s.accel.heldAt(now),
		Brake:      s.brake.heldAt(now),
	}
}

// Run pumps terminal events until the screen is finalized or the running
// flag clears. It blocks in PollEvent, so shutdown finalizes the screen to
// unblock it.
func (s *Sampler) Run() {
	for s.running.Load() {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			s.handleKey(key, time.Now())
		}
	}
}

// handleKey maps one key event onto the signal set. Arrow up/down double as
// accelerate/brake while racing and as menu navigation edges.
func (s *Sampler) handleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyLeft:
		s.left.press(now)
	case tcell.KeyRight:
		s.right.press(now)
	case tcell.KeyUp:
		s.accel.press(now)
		s.Up.Raise()
	case tcell.KeyDown:
		s.brake.press(now)
		s.Down.Raise()
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.Escape.Raise()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			s.left.press(now)
		case 'd', 'D':
			s.right.press(now)
		case 'w', 'W':
			s.accel.press(now)
		case 's', 'S':
			s.brake.press(now)
		case ' ':
			s.Confirm.Raise()
		case '1':
			s.Digit1.Raise()
		case '2':
			s.Digit2.Raise()
		case '3':
			s.Digit3.Raise()
		}
	}
}
