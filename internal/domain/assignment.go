package domain

import (
	"fmt"
	"strings"
)

// AssignPolicy selects which employee takes a task.
type AssignPolicy string

const (
	PolicySpecific    AssignPolicy = "specific"     // Caller names the employee
	PolicyFirstFree   AssignPolicy = "first-free"   // Lowest id among free employees
	PolicyLeastDelays AssignPolicy = "least-delays" // Free employee with fewest delays, ties to lowest id
)

// ParseAssignPolicy parses a policy name. Empty input yields def.
func ParseAssignPolicy(s string, def AssignPolicy) (AssignPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def, nil
	}
	switch p := AssignPolicy(s); p {
	case PolicySpecific, PolicyFirstFree, PolicyLeastDelays:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown assignment policy %q", ErrInvalidArgument, s)
	}
}

// FirstFree returns the free employee with the lowest id.
func FirstFree(employees []*Employee) (*Employee, error) {
	var best *Employee
	for _, e := range employees {
		if !e.IsFree() {
			continue
		}
		if best == nil || e.ID() < best.ID() {
			best = e
		}
	}
	if best == nil {
		return nil, ErrNoFreeEmployee
	}
	return best, nil
}

// LeastDelayedFree returns the free employee with the fewest recorded delays.
func LeastDelayedFree(employees []*Employee) (*Employee, error) {
	var best *Employee
	for _, e := range employees {
		if !e.IsFree() {
			continue
		}
		if best == nil || e.Delays() < best.Delays() || (e.Delays() == best.Delays() && e.ID() < best.ID()) {
			best = e
		}
	}
	if best == nil {
		return nil, ErrNoFreeEmployee
	}
	return best, nil
}
