package input

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-racer/constants"
)

func newTestSampler() *Sampler {
	var running atomic.Bool
	running.Store(true)
	return NewSampler(nil, &running)
}

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

// TestHoldExpiry verifies a level-triggered key counts as held only within
// the initial window after a lone press
func TestHoldExpiry(t *testing.T) {
	s := newTestSampler()
	base := time.Now()

	s.handleKey(keyEvent(tcell.KeyRune, 'w'), base)

	if !s.FrameAt(base.Add(10 * time.Millisecond)).Accelerate {
		t.Error("Expected accelerate held just after the press")
	}
	if !s.FrameAt(base.Add(constants.InputInitialHold - time.Millisecond)).Accelerate {
		t.Error("Expected accelerate held just inside the window")
	}
	if s.FrameAt(base.Add(constants.InputInitialHold + time.Millisecond)).Accelerate {
		t.Error("Expected accelerate released past the window")
	}
}

// TestInitialHoldCoversAutorepeatDelay verifies a continuously held key does
// not flicker to released in the gap between the first press and the first
// autorepeat event, which terminals only deliver after their initial-repeat
// delay
func TestInitialHoldCoversAutorepeatDelay(t *testing.T) {
	s := newTestSampler()
	base := time.Now()

	s.handleKey(keyEvent(tcell.KeyLeft, 0), base)

	// No repeat yet at 500ms; the key is physically still down
	if got := s.FrameAt(base.Add(500 * time.Millisecond)).Steer; got != -1 {
		t.Errorf("Expected steer -1 across the autorepeat delay, got %d", got)
	}
}

// TestHoldRefreshedByRepeat verifies autorepeat presses extend the hold past
// the initial window, with the shorter refresh grant after the last repeat
func TestHoldRefreshedByRepeat(t *testing.T) {
	s := newTestSampler()
	base := time.Now()

	s.handleKey(keyEvent(tcell.KeyLeft, 0), base)
	s.handleKey(keyEvent(tcell.KeyLeft, 0), base.Add(550*time.Millisecond))

	// 650ms is past the initial window but inside the refreshed one
	if got := s.FrameAt(base.Add(650 * time.Millisecond)).Steer; got != -1 {
		t.Errorf("Expected steer -1 with the hold refreshed, got %d", got)
	}
	// One refresh window after the last repeat the key reads released
	if got := s.FrameAt(base.Add(550*time.Millisecond + constants.InputRepeatHold + time.Millisecond)).Steer; got != 0 {
		t.Errorf("Expected steer released after the refreshed window, got %d", got)
	}
}

// TestSteerRightWinsWhenBothHeld documents the tie-break with both steering
// keys inside their hold windows
func TestSteerRightWinsWhenBothHeld(t *testing.T) {
	s := newTestSampler()
	base := time.Now()

	s.handleKey(keyEvent(tcell.KeyRune, 'a'), base)
	s.handleKey(keyEvent(tcell.KeyRune, 'd'), base)

	if got := s.FrameAt(base.Add(10 * time.Millisecond)).Steer; got != 1 {
		t.Errorf("Expected right to win the tie, got %d", got)
	}
}

// TestKeyBindings verifies each binding lands on its signal
func TestKeyBindings(t *testing.T) {
	s := newTestSampler()
	base := time.Now()
	at := base.Add(10 * time.Millisecond)

	s.handleKey(keyEvent(tcell.KeyRight, 0), base)
	if got := s.FrameAt(at).Steer; got != 1 {
		t.Errorf("Right arrow: expected steer 1, got %d", got)
	}

	s.handleKey(keyEvent(tcell.KeyRune, 's'), base)
	if !s.FrameAt(at).Brake {
		t.Error("Expected 's' to brake")
	}

	// Arrow up doubles as accelerate and menu-up edge
	s.handleKey(keyEvent(tcell.KeyUp, 0), base)
	if !s.FrameAt(at).Accelerate {
		t.Error("Expected arrow up to accelerate")
	}
	if !s.Up.Take() {
		t.Error("Expected arrow up to raise the menu-up edge")
	}

	s.handleKey(keyEvent(tcell.KeyDown, 0), base)
	if !s.Down.Take() {
		t.Error("Expected arrow down to raise the menu-down edge")
	}

	s.handleKey(keyEvent(tcell.KeyRune, ' '), base)
	if !s.Confirm.Take() {
		t.Error("Expected space to raise confirm")
	}

	s.handleKey(keyEvent(tcell.KeyEscape, 0), base)
	if !s.Escape.Take() {
		t.Error("Expected escape to raise the escape edge")
	}
	s.handleKey(keyEvent(tcell.KeyCtrlC, 0), base)
	if !s.Escape.Take() {
		t.Error("Expected Ctrl+C to raise the escape edge")
	}

	s.handleKey(keyEvent(tcell.KeyRune, '2'), base)
	if !s.Digit2.Take() {
		t.Error("Expected '2' to raise the digit-2 edge")
	}
	if s.Digit1.Pending() || s.Digit3.Pending() {
		t.Error("Expected the other digit edges untouched")
	}
}

// TestEdgesConsumeOnce verifies menu edges are one-shot
func TestEdgesConsumeOnce(t *testing.T) {
	s := newTestSampler()
	s.handleKey(keyEvent(tcell.KeyRune, ' '), time.Now())

	if !s.Confirm.Take() {
		t.Fatal("Expected a pending confirm edge")
	}
	if s.Confirm.Take() {
		t.Error("Expected confirm consumed by the first Take")
	}
}
