// Package mdp defines the contract between planners and the stochastic
// environments they plan against. States and actions are opaque to the
// planners: any comparable value works as either.
package mdp

import "golang.org/x/exp/rand"

// MDP is a discrete Markov Decision Process sampled one transition at a
// time. Implementations must draw all randomness from the supplied source
// so that seeded runs are reproducible.
type MDP[S, A comparable] interface {
	// InitialState returns the starting state of an episode.
	InitialState() S

	// Actions enumerates the actions available at state. The order must be
	// stable across calls for the same state. An empty result means the
	// state has no legal moves.
	Actions(state S) []A

	// IsTerminal reports whether state ends an episode.
	IsTerminal(state S) bool

	// SampleTransition draws one successor state and immediate reward for
	// taking action in state.
	SampleTransition(state S, action A, rng *rand.Rand) (next S, reward float64)
}

// Outcome is one entry of an enumerated transition distribution.
type Outcome[S comparable] struct {
	Next        S
	Probability float64
	Reward      float64
}

// Model is an MDP whose transition distribution can be enumerated exactly.
// Planners doing expected backups (RTDP) require a Model; sampling-only
// planners (MCTS) need just the MDP surface.
type Model[S, A comparable] interface {
	MDP[S, A]

	// Transitions returns the full successor distribution for taking action
	// in state. Probabilities sum to 1.
	Transitions(state S, action A) []Outcome[S]
}
