package planner

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/Speed-Demon/RL-Sem7-J011/mdp"
)

// ExplorationOnly is a pure-exploration multi-armed bandit: every arm is
// pulled with equal probability regardless of observed rewards. It exists
// as the weakest sensible baseline.
type ExplorationOnly struct {
	arms int
	rng  *rand.Rand
}

func NewExplorationOnly(arms int, rng *rand.Rand) (*ExplorationOnly, error) {
	if arms < 1 {
		return nil, fmt.Errorf("%w: need at least one arm, got %d", ErrInvalidConfig, arms)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	return &ExplorationOnly{arms: arms, rng: rng}, nil
}

// SelectArm returns an arm index in [0, arms).
func (e *ExplorationOnly) SelectArm() int {
	return e.rng.Intn(e.arms)
}

// Uniform is the exploration-only baseline lifted to sequential decisions:
// at every state it picks a legal action uniformly at random. Useful as a
// floor when comparing planners.
type Uniform[S, A comparable] struct {
	env mdp.MDP[S, A]
	rng *rand.Rand
}

func NewUniform[S, A comparable](env mdp.MDP[S, A], rng *rand.Rand) (*Uniform[S, A], error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil environment", ErrInvalidConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	return &Uniform[S, A]{env: env, rng: rng}, nil
}

func (u *Uniform[S, A]) Search(state S) (A, error) {
	var zero A
	if u.env.IsTerminal(state) {
		return zero, fmt.Errorf("%w: search from terminal state %v", ErrInvalidRoot, state)
	}
	actions := u.env.Actions(state)
	if len(actions) == 0 {
		return zero, fmt.Errorf("%w: non-terminal state %v has no actions", ErrInvalidRoot, state)
	}
	return actions[u.rng.Intn(len(actions))], nil
}
