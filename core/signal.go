package core

import "sync/atomic"

// Signal is a one-shot edge-triggered boolean. Raise sets it; Take reads and
// clears it in a single atomic operation, so each raised edge is consumed
// exactly once even with concurrent consumers.
type Signal struct {
	v atomic.Bool
}

// Raise marks the signal pending. Raising an already-pending signal
// coalesces into a single edge.
func (s *Signal) Raise() {
	s.v.Store(true)
}

// Take consumes the signal, reporting whether an edge was pending
func (s *Signal) Take() bool {
	return s.v.CompareAndSwap(true, false)
}

// Pending reports whether an edge is waiting without consuming it
func (s *Signal) Pending() bool {
	return s.v.Load()
}
