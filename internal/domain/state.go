package domain

import (
	"fmt"
	"strings"
)

// State represents the lifecycle state of a project.
type State string

const (
	StatePending   State = "PENDING"   // Registered, no employee assigned yet
	StateActive    State = "ACTIVE"    // At least one assignment made
	StateFinalized State = "FINALIZED" // Closed, cost locked
)

// AllStates returns all valid state values.
func AllStates() []State {
	return []State{StatePending, StateActive, StateFinalized}
}

// transitions defines the allowed state transitions.
// Flow: PENDING → ACTIVE → FINALIZED, and PENDING → FINALIZED for projects closed untouched.
var transitions = map[State][]State{
	StatePending:   {StateActive, StateFinalized},
	StateActive:    {StateFinalized},
	StateFinalized: {},
}

// CanTransitionTo returns true if the state can transition to the target state.
func (s State) CanTransitionTo(target State) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no transition leaves the state.
func (s State) IsTerminal() bool {
	return s == StateFinalized
}

// IsValid returns true if the state is a known value.
func (s State) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// ParseState parses a state name, case-insensitively.
func ParseState(v string) (State, error) {
	s := State(strings.ToUpper(strings.TrimSpace(v)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: unknown project state %q", ErrInvalidArgument, v)
	}
	return s, nil
}

// Display returns a human-readable representation of the state.
func (s State) Display() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateActive:
		return "Active"
	case StateFinalized:
		return "Finalized"
	default:
		return string(s)
	}
}
