// Package planner implements simulation-based planners for discrete MDPs:
// a Monte Carlo Tree Search planner with UCT selection, an RTDP planner
// doing expected Bellman backups, and a uniform-random baseline.
package planner

import "errors"

// Planner picks an action for a state. Implementations are interchangeable
// from the caller's point of view, so harnesses can compare them head to
// head on the same environment.
type Planner[S, A comparable] interface {
	Search(state S) (A, error)
}

var (
	// ErrInvalidConfig marks a planner configuration rejected at
	// construction time.
	ErrInvalidConfig = errors.New("invalid planner configuration")

	// ErrInvalidRoot marks a Search call on a state that cannot be planned
	// from: a terminal state, or a non-terminal state with no actions.
	ErrInvalidRoot = errors.New("invalid root state")

	// ErrEnvironment marks an environment that broke its contract, e.g. a
	// non-terminal state with no legal actions reached mid-episode.
	ErrEnvironment = errors.New("environment contract violation")
)
