package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewExplorationOnlyValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := NewExplorationOnly(0, rng)
	require.ErrorIs(t, err, ErrInvalidConfig, "a bandit needs at least one arm")

	_, err = NewExplorationOnly(3, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestExplorationOnlySelectArm(t *testing.T) {
	const arms = 4
	e, err := NewExplorationOnly(arms, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	pulled := make([]int, arms)
	for i := 0; i < 400; i++ {
		arm := e.SelectArm()
		require.GreaterOrEqual(t, arm, 0)
		require.Less(t, arm, arms)
		pulled[arm]++
	}

	for arm, count := range pulled {
		require.Greater(t, count, 0, "arm %d should be pulled by a pure-exploration bandit", arm)
	}
}

func TestUniformSearch(t *testing.T) {
	env := twoArm()
	u, err := NewUniform[string, string](env, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	t.Run("returns a legal action", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			action, err := u.Search("s")
			require.NoError(t, err)
			require.Contains(t, []string{"a", "b"}, action)
		}
	})

	t.Run("terminal state fails", func(t *testing.T) {
		_, err := u.Search("ta")
		require.ErrorIs(t, err, ErrInvalidRoot)
	})

	t.Run("dead end fails", func(t *testing.T) {
		d, err := NewUniform[string, string](deadEnd(), rand.New(rand.NewSource(3)))
		require.NoError(t, err)

		_, err = d.Search("s")
		require.ErrorIs(t, err, ErrInvalidRoot)
	})
}
