// Package experiments runs planners through full episodes against an
// environment and records what happened, so different planners can be
// compared on equal footing.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/Speed-Demon/RL-Sem7-J011/mdp"
	"github.com/Speed-Demon/RL-Sem7-J011/planner"
)

// PlannerConfig identifies one planner setup in an experiment's output.
type PlannerConfig struct {
	ID       int
	Name     string
	Rollouts int
	MaxDepth int
	Gamma    float64
	CUCT     float64
	Seed     uint64
}

// EpisodeRecord is the outcome of one complete episode.
type EpisodeRecord struct {
	Episode  int
	Steps    int
	Reward   float64
	Duration time.Duration
}

// RunEpisodes plays the given number of episodes with p choosing every
// action, up to maxSteps steps each. The rng drives the environment's
// transitions; the planner owns its own source.
func RunEpisodes[S, A comparable](env mdp.MDP[S, A], p planner.Planner[S, A], rng *rand.Rand, episodes, maxSteps int) ([]EpisodeRecord, error) {
	if episodes < 1 || maxSteps < 1 {
		return nil, fmt.Errorf("%w: episodes and max steps must be positive", planner.ErrInvalidConfig)
	}

	records := make([]EpisodeRecord, 0, episodes)
	for ep := 1; ep <= episodes; ep++ {
		start := time.Now()
		state := env.InitialState()
		steps := 0
		total := 0.0

		for !env.IsTerminal(state) && steps < maxSteps {
			if len(env.Actions(state)) == 0 {
				return records, fmt.Errorf("%w: non-terminal state %v has no actions", planner.ErrEnvironment, state)
			}
			action, err := p.Search(state)
			if err != nil {
				return records, fmt.Errorf("episode %d step %d: %w", ep, steps, err)
			}
			next, reward := env.SampleTransition(state, action, rng)
			total += reward
			state = next
			steps++
		}

		record := EpisodeRecord{
			Episode:  ep,
			Steps:    steps,
			Reward:   total,
			Duration: time.Since(start),
		}
		records = append(records, record)

		log.Info().
			Int("episode", ep).
			Int("steps", record.Steps).
			Float64("reward", record.Reward).
			Dur("duration", record.Duration).
			Msg("episode complete")
	}
	return records, nil
}

// Summary aggregates episode records across one planner configuration.
type Summary struct {
	Episodes   int
	MeanSteps  float64
	StdSteps   float64
	MeanReward float64
	StdReward  float64
}

// Summarize computes mean and sample standard deviation of steps and
// rewards over the given records.
func Summarize(records []EpisodeRecord) Summary {
	steps := make([]float64, len(records))
	rewards := make([]float64, len(records))
	for i, r := range records {
		steps[i] = float64(r.Steps)
		rewards[i] = r.Reward
	}

	meanSteps, stdSteps := stat.MeanStdDev(steps, nil)
	meanReward, stdReward := stat.MeanStdDev(rewards, nil)
	return Summary{
		Episodes:   len(records),
		MeanSteps:  meanSteps,
		StdSteps:   stdSteps,
		MeanReward: meanReward,
		StdReward:  stdReward,
	}
}
