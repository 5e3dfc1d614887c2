package planner

import "fmt"

// Config holds the MCTS hyperparameters.
type Config struct {
	Gamma    float64 // discount factor, in (0, 1]
	CUCT     float64 // exploration constant, >= 0
	Rollouts int     // simulation budget per Search call
	MaxDepth int     // lookahead cap per simulation
}

func defaultConfig() Config {
	return Config{
		Gamma:    0.95,
		CUCT:     1.4,
		Rollouts: 200,
		MaxDepth: 200,
	}
}

func (c Config) validate() error {
	if c.Gamma <= 0 || c.Gamma > 1 {
		return fmt.Errorf("%w: gamma must be in (0, 1], got %v", ErrInvalidConfig, c.Gamma)
	}
	if c.CUCT < 0 {
		return fmt.Errorf("%w: exploration constant must be >= 0, got %v", ErrInvalidConfig, c.CUCT)
	}
	if c.Rollouts < 1 {
		return fmt.Errorf("%w: rollouts must be positive, got %d", ErrInvalidConfig, c.Rollouts)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

type settings struct {
	cfg     Config
	metrics Collector
}

// Option customizes an MCTS planner at construction time.
type Option func(*settings)

// WithGamma sets the per-step discount factor.
func WithGamma(gamma float64) Option {
	return func(s *settings) {
		s.cfg.Gamma = gamma
	}
}

// WithExploration sets the UCT exploration constant.
func WithExploration(c float64) Option {
	return func(s *settings) {
		s.cfg.CUCT = c
	}
}

// WithRollouts sets the simulation budget per Search call.
func WithRollouts(rollouts int) Option {
	return func(s *settings) {
		s.cfg.Rollouts = rollouts
	}
}

// WithMaxDepth caps the simulated lookahead depth, covering both the tree
// path and the rollout phase.
func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		s.cfg.MaxDepth = depth
	}
}

// WithMetrics attaches a collector recording per-search statistics. The
// caller keeps the reference and reads it back after Search.
func WithMetrics(c Collector) Option {
	return func(s *settings) {
		if c != nil {
			s.metrics = c
		}
	}
}
