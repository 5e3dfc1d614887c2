// Package gridworld implements a small stochastic grid MDP: an agent walks
// a rectangular board with walls, paying a step cost until it reaches the
// goal cell. Intended as the standard benchmark environment for the
// planners in this repository.
package gridworld

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/Speed-Demon/RL-Sem7-J011/mdp"
)

// State is a cell position on the board.
type State struct {
	Row int
	Col int
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Action is one of the four compass moves.
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
)

func (a Action) String() string {
	switch a {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

var allActions = []Action{Up, Down, Left, Right}

// deltas per action, indexed by Action value
var deltas = [4]State{
	Up:    {Row: -1, Col: 0},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
	Right: {Row: 0, Col: 1},
}

// perpendicular actions the agent may slip to, per intended action
var slips = [4][2]Action{
	Up:    {Left, Right},
	Down:  {Left, Right},
	Left:  {Up, Down},
	Right: {Up, Down},
}

// Grid is an immutable board description. All four actions are always
// legal at non-terminal cells; moving into a wall or off the board leaves
// the position unchanged. With probability Slip the agent moves
// perpendicular to the intended direction (uniformly over the two
// perpendiculars).
type Grid struct {
	Rows, Cols int
	Start      State
	Goal       State
	Walls      map[State]bool
	Slip       float64
	StepReward float64
	GoalReward float64
}

// DefaultGrid returns the benchmark board: 5x6 cells, start at the bottom
// left, goal at the top right, a partial vertical wall in between.
func DefaultGrid() *Grid {
	return &Grid{
		Rows:  5,
		Cols:  6,
		Start: State{Row: 4, Col: 0},
		Goal:  State{Row: 0, Col: 5},
		Walls: map[State]bool{
			{Row: 1, Col: 2}: true,
			{Row: 2, Col: 2}: true,
			{Row: 3, Col: 2}: true,
		},
		Slip:       0.1,
		StepReward: -1,
		GoalReward: 10,
	}
}

func (g *Grid) InitialState() State {
	return g.Start
}

func (g *Grid) IsTerminal(state State) bool {
	return state == g.Goal
}

func (g *Grid) Actions(state State) []Action {
	if g.IsTerminal(state) {
		return nil
	}
	return allActions
}

// move applies one deterministic step, bumping off walls and board edges.
func (g *Grid) move(state State, action Action) State {
	d := deltas[action]
	next := State{Row: state.Row + d.Row, Col: state.Col + d.Col}
	if next.Row < 0 || next.Row >= g.Rows || next.Col < 0 || next.Col >= g.Cols {
		return state
	}
	if g.Walls[next] {
		return state
	}
	return next
}

func (g *Grid) reward(next State) float64 {
	if next == g.Goal {
		return g.GoalReward
	}
	return g.StepReward
}

func (g *Grid) SampleTransition(state State, action Action, rng *rand.Rand) (State, float64) {
	actual := action
	if g.Slip > 0 && rng.Float64() < g.Slip {
		actual = slips[action][rng.Intn(2)]
	}
	next := g.move(state, actual)
	return next, g.reward(next)
}

// Transitions enumerates the successor distribution, merging outcomes that
// land on the same cell (e.g. intended and slip moves both blocked).
func (g *Grid) Transitions(state State, action Action) []mdp.Outcome[State] {
	type branch struct {
		action Action
		prob   float64
	}
	branches := []branch{{action: action, prob: 1 - g.Slip}}
	if g.Slip > 0 {
		for _, s := range slips[action] {
			branches = append(branches, branch{action: s, prob: g.Slip / 2})
		}
	}

	outcomes := make([]mdp.Outcome[State], 0, len(branches))
	for _, b := range branches {
		next := g.move(state, b.action)
		merged := false
		for i := range outcomes {
			if outcomes[i].Next == next {
				outcomes[i].Probability += b.prob
				merged = true
				break
			}
		}
		if !merged {
			outcomes = append(outcomes, mdp.Outcome[State]{
				Next:        next,
				Probability: b.prob,
				Reward:      g.reward(next),
			})
		}
	}
	return outcomes
}
