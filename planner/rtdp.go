package planner

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/Speed-Demon/RL-Sem7-J011/mdp"
)

// Schedule maps an episode index to an exploration rate.
type Schedule interface {
	Epsilon(episode int) float64
}

// LinearDecay interpolates the exploration rate from Start at episode 0
// towards End, reaching it at episode Steps and staying there.
type LinearDecay struct {
	Start float64
	End   float64
	Steps int
}

func (d LinearDecay) Epsilon(episode int) float64 {
	if d.Steps <= 0 || episode >= d.Steps {
		return d.End
	}
	t := float64(episode) / float64(d.Steps)
	return d.Start + t*(d.End-d.Start)
}

// RTDPConfig holds the Real-Time Dynamic Programming hyperparameters.
type RTDPConfig struct {
	Gamma    float64  // discount factor, in (0, 1]
	Episodes int      // training episodes per Run call
	MaxSteps int      // step cap per episode
	Epsilon  Schedule // exploration schedule
}

func (c RTDPConfig) validate() error {
	if c.Gamma <= 0 || c.Gamma > 1 {
		return fmt.Errorf("%w: gamma must be in (0, 1], got %v", ErrInvalidConfig, c.Gamma)
	}
	if c.Episodes < 1 {
		return fmt.Errorf("%w: episodes must be positive, got %d", ErrInvalidConfig, c.Episodes)
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("%w: max steps must be positive, got %d", ErrInvalidConfig, c.MaxSteps)
	}
	if c.Epsilon == nil {
		return fmt.Errorf("%w: epsilon schedule is required", ErrInvalidConfig)
	}
	return nil
}

// RTDP is a Real-Time Dynamic Programming planner: it learns a value table
// over the states actually visited during epsilon-greedy episodes, backing
// each one up with an expected Bellman update. Unlike MCTS it needs an
// enumerable transition model, and its value table persists across calls.
type RTDP[S, A comparable] struct {
	env    mdp.Model[S, A]
	cfg    RTDPConfig
	rng    *rand.Rand
	values map[S]float64
}

func NewRTDP[S, A comparable](env mdp.Model[S, A], cfg RTDPConfig, rng *rand.Rand) (*RTDP[S, A], error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil environment", ErrInvalidConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &RTDP[S, A]{
		env:    env,
		cfg:    cfg,
		rng:    rng,
		values: make(map[S]float64),
	}, nil
}

// Run trains the value table for the configured number of episodes.
func (r *RTDP[S, A]) Run() {
	for ep := 0; ep < r.cfg.Episodes; ep++ {
		epsilon := r.cfg.Epsilon.Epsilon(ep)
		state := r.env.InitialState()
		for step := 0; step < r.cfg.MaxSteps && !r.env.IsTerminal(state); step++ {
			actions := r.env.Actions(state)
			if len(actions) == 0 {
				break
			}

			greedy, bestQ := r.greedy(state, actions)
			r.values[state] = bestQ // Bellman backup on the visited state

			action := greedy
			if r.rng.Float64() < epsilon {
				action = actions[r.rng.Intn(len(actions))]
			}
			state, _ = r.env.SampleTransition(state, action, r.rng)
		}
	}
}

// Search returns the greedy action under the current value table.
func (r *RTDP[S, A]) Search(state S) (A, error) {
	var zero A
	if r.env.IsTerminal(state) {
		return zero, fmt.Errorf("%w: search from terminal state %v", ErrInvalidRoot, state)
	}
	actions := r.env.Actions(state)
	if len(actions) == 0 {
		return zero, fmt.Errorf("%w: non-terminal state %v has no actions", ErrInvalidRoot, state)
	}
	action, _ := r.greedy(state, actions)
	return action, nil
}

// Value returns the current estimate for state, 0 if never backed up.
func (r *RTDP[S, A]) Value(state S) float64 {
	return r.values[state]
}

func (r *RTDP[S, A]) greedy(state S, actions []A) (A, float64) {
	best := actions[0]
	bestQ := math.Inf(-1)
	for _, action := range actions {
		if q := r.qValue(state, action); q > bestQ {
			bestQ = q
			best = action
		}
	}
	return best, bestQ
}

func (r *RTDP[S, A]) qValue(state S, action A) float64 {
	q := 0.0
	for _, outcome := range r.env.Transitions(state, action) {
		q += outcome.Probability * (outcome.Reward + r.cfg.Gamma*r.values[outcome.Next])
	}
	return q
}
