package core

import "sync/atomic"

// GameState is the process-wide game mode. Transitions come from exactly two
// writers: the renderer (menu navigation, confirm/escape) and the collision
// checker / physics integrator (GameOver, Win).
type GameState int32

const (
	StateBoot GameState = iota
	StateMapSelect
	StateRunning
	StateWin
	StateGameOver
	StateHalt
)

// String returns the state name for test failure messages
func (s GameState) String() string {
	switch s {
	case StateBoot:
		return "Boot"
	case StateMapSelect:
		return "MapSelect"
	case StateRunning:
		return "Running"
	case StateWin:
		return "Win"
	case StateGameOver:
		return "GameOver"
	case StateHalt:
		return "Halt"
	default:
		return "Unknown"
	}
}

// StateMachine holds the current GameState readable by every loop
type StateMachine struct {
	v atomic.Int32
}

// Current returns the current state
func (m *StateMachine) Current() GameState {
	return GameState(m.v.Load())
}

// Set transitions to the given state unconditionally
func (m *StateMachine) Set(s GameState) {
	m.v.Store(int32(s))
}

// Transition moves from one state to another only if the machine is still in
// the expected state, reporting whether the transition happened. Keeps
// failure/completion transitions single-shot under concurrent writers.
func (m *StateMachine) Transition(from, to GameState) bool {
	return m.v.CompareAndSwap(int32(from), int32(to))
}
