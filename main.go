package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/Speed-Demon/RL-Sem7-J011/experiments"
	"github.com/Speed-Demon/RL-Sem7-J011/gridworld"
	"github.com/Speed-Demon/RL-Sem7-J011/planner"
)

type gridPlanner = planner.Planner[gridworld.State, gridworld.Action]

func main() {
	name := flag.String("planner", "all", "planner to run: mcts, rtdp, random or all")
	episodes := flag.Int("episodes", 20, "number of evaluation episodes")
	maxSteps := flag.Int("max-steps", 1000, "step cap per episode")
	rollouts := flag.Int("rollouts", 200, "MCTS simulations per decision")
	maxDepth := flag.Int("depth", 200, "MCTS lookahead cap per simulation")
	gamma := flag.Float64("gamma", 0.95, "discount factor")
	cUCT := flag.Float64("c", 1.4, "UCT exploration constant")
	seed := flag.Uint64("seed", 0, "random seed")
	csvDir := flag.String("csv", "", "directory to store CSV results in (disabled when empty)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	env := gridworld.DefaultGrid()

	var writer *experiments.Writer
	if *csvDir != "" {
		var err error
		writer, err = experiments.NewWriter(*csvDir, "gridworld")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create results writer")
		}
	}

	configs := []experiments.PlannerConfig{}
	id := 0
	runOne := func(plannerName string, p gridPlanner) {
		id++
		configs = append(configs, experiments.PlannerConfig{
			ID:       id,
			Name:     plannerName,
			Rollouts: *rollouts,
			MaxDepth: *maxDepth,
			Gamma:    *gamma,
			CUCT:     *cUCT,
			Seed:     *seed,
		})

		log.Info().Str("planner", plannerName).Int("episodes", *episodes).Msg("starting evaluation")
		envRNG := rand.New(rand.NewSource(*seed + 1))
		records, err := experiments.RunEpisodes[gridworld.State, gridworld.Action](env, p, envRNG, *episodes, *maxSteps)
		if err != nil {
			log.Fatal().Err(err).Str("planner", plannerName).Msg("evaluation failed")
		}

		summary := experiments.Summarize(records)
		log.Info().
			Str("planner", plannerName).
			Float64("mean_steps", summary.MeanSteps).
			Float64("std_steps", summary.StdSteps).
			Float64("mean_reward", summary.MeanReward).
			Float64("std_reward", summary.StdReward).
			Msg("evaluation complete")

		if writer != nil {
			if err := writer.WriteEpisodeRecords(id, records); err != nil {
				log.Fatal().Err(err).Msg("failed to store episode records")
			}
		}

		fmt.Printf("%s:\n%s\n", plannerName, env.Render(showcase(env, p, *seed, *maxSteps)))
	}

	if *name == "mcts" || *name == "all" {
		p, err := planner.NewMCTS[gridworld.State, gridworld.Action](
			env,
			rand.New(rand.NewSource(*seed)),
			planner.WithGamma(*gamma),
			planner.WithExploration(*cUCT),
			planner.WithRollouts(*rollouts),
			planner.WithMaxDepth(*maxDepth),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build MCTS planner")
		}
		runOne("mcts", p)
	}

	if *name == "rtdp" || *name == "all" {
		cfg := planner.RTDPConfig{
			Gamma:    *gamma,
			Episodes: 50,
			MaxSteps: *maxSteps,
			Epsilon:  planner.LinearDecay{Start: 0.5, End: 0.05, Steps: 50},
		}
		p, err := planner.NewRTDP[gridworld.State, gridworld.Action](env, cfg, rand.New(rand.NewSource(*seed)))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build RTDP planner")
		}
		log.Info().Int("episodes", cfg.Episodes).Msg("training RTDP value table")
		p.Run()
		runOne("rtdp", p)
	}

	if *name == "random" || *name == "all" {
		p, err := planner.NewUniform[gridworld.State, gridworld.Action](env, rand.New(rand.NewSource(*seed)))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build random planner")
		}
		runOne("random", p)
	}

	if writer != nil {
		if err := writer.WritePlannerConfigs(configs); err != nil {
			log.Fatal().Err(err).Msg("failed to store planner configs")
		}
		log.Info().Str("dir", writer.Dir()).Msg("stored CSV results")
	}

	if id == 0 {
		log.Fatal().Str("planner", *name).Msg("unknown planner")
	}
}

// showcase plays one extra episode and returns the visited cells for
// rendering.
func showcase(env *gridworld.Grid, p gridPlanner, seed uint64, maxSteps int) []gridworld.State {
	rng := rand.New(rand.NewSource(seed + 2))
	state := env.InitialState()
	path := []gridworld.State{state}
	for steps := 0; !env.IsTerminal(state) && steps < maxSteps; steps++ {
		action, err := p.Search(state)
		if err != nil {
			log.Fatal().Err(err).Msg("showcase episode failed")
		}
		state, _ = env.SampleTransition(state, action, rng)
		path = append(path, state)
	}
	return path
}
