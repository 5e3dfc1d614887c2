package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/Speed-Demon/RL-Sem7-J011/gridworld"
)

// smallGrid is a deterministic 3x3 board for convergence tests.
func smallGrid() *gridworld.Grid {
	return &gridworld.Grid{
		Rows:       3,
		Cols:       3,
		Start:      gridworld.State{Row: 2, Col: 0},
		Goal:       gridworld.State{Row: 0, Col: 2},
		Walls:      map[gridworld.State]bool{},
		Slip:       0,
		StepReward: -1,
		GoalReward: 10,
	}
}

func validRTDPConfig() RTDPConfig {
	return RTDPConfig{
		Gamma:    0.95,
		Episodes: 50,
		MaxSteps: 100,
		Epsilon:  LinearDecay{Start: 0.5, End: 0.05, Steps: 50},
	}
}

func TestLinearDecay(t *testing.T) {
	d := LinearDecay{Start: 0.5, End: 0.05, Steps: 50}

	require.Equal(t, 0.5, d.Epsilon(0), "episode 0 should use the starting rate")
	require.InDelta(t, 0.275, d.Epsilon(25), 1e-12, "the midpoint should be halfway between start and end")
	require.Equal(t, 0.05, d.Epsilon(50), "the end rate should be reached at Steps")
	require.Equal(t, 0.05, d.Epsilon(1000), "the end rate should persist after Steps")
}

func TestNewRTDPValidation(t *testing.T) {
	env := smallGrid()
	rng := rand.New(rand.NewSource(1))

	cases := []struct {
		name   string
		mutate func(*RTDPConfig)
	}{
		{"zero gamma", func(c *RTDPConfig) { c.Gamma = 0 }},
		{"gamma above one", func(c *RTDPConfig) { c.Gamma = 1.5 }},
		{"zero episodes", func(c *RTDPConfig) { c.Episodes = 0 }},
		{"zero max steps", func(c *RTDPConfig) { c.MaxSteps = 0 }},
		{"missing schedule", func(c *RTDPConfig) { c.Epsilon = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validRTDPConfig()
			tc.mutate(&cfg)
			_, err := NewRTDP[gridworld.State, gridworld.Action](env, cfg, rng)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("nil environment", func(t *testing.T) {
		_, err := NewRTDP[gridworld.State, gridworld.Action](nil, validRTDPConfig(), rng)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("nil random source", func(t *testing.T) {
		_, err := NewRTDP[gridworld.State, gridworld.Action](env, validRTDPConfig(), nil)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestRTDPSearchInvalidRoot(t *testing.T) {
	env := smallGrid()
	r, err := NewRTDP[gridworld.State, gridworld.Action](env, validRTDPConfig(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = r.Search(env.Goal)
	require.ErrorIs(t, err, ErrInvalidRoot, "searching from a terminal state should fail loudly")
}

func TestRTDPValueDefault(t *testing.T) {
	env := smallGrid()
	r, err := NewRTDP[gridworld.State, gridworld.Action](env, validRTDPConfig(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.Equal(t, 0.0, r.Value(env.Start), "states never backed up should estimate to zero")
}

func TestRTDPSolvesGrid(t *testing.T) {
	env := smallGrid()
	cfg := RTDPConfig{
		Gamma:    0.95,
		Episodes: 200,
		MaxSteps: 50,
		Epsilon:  LinearDecay{Start: 1.0, End: 0.05, Steps: 100},
	}
	r, err := NewRTDP[gridworld.State, gridworld.Action](env, cfg, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	r.Run()

	// The greedy policy should now walk the 4-step shortest path.
	rng := rand.New(rand.NewSource(8))
	state := env.InitialState()
	steps := 0
	for !env.IsTerminal(state) && steps < 10 {
		action, err := r.Search(state)
		require.NoError(t, err)
		state, _ = env.SampleTransition(state, action, rng)
		steps++
	}

	require.True(t, env.IsTerminal(state), "the greedy policy should reach the goal")
	require.Equal(t, 4, steps, "the greedy policy should take the shortest path")
	require.Greater(t, r.Value(env.Start), 0.0, "the start state should value the discounted goal reward above the step costs")
}
