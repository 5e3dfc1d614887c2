package planner

import "golang.org/x/exp/rand"

// testMDP is a deterministic tabular environment for planner tests. States
// and actions are plain strings; transitions and rewards come from lookup
// tables.
type testMDP struct {
	initial  string
	actions  map[string][]string
	terminal map[string]bool
	next     map[string]map[string]string
	rewards  map[string]map[string]float64
	samples  int // SampleTransition call count
}

func (m *testMDP) InitialState() string {
	return m.initial
}

func (m *testMDP) Actions(state string) []string {
	return m.actions[state]
}

func (m *testMDP) IsTerminal(state string) bool {
	return m.terminal[state]
}

func (m *testMDP) SampleTransition(state, action string, _ *rand.Rand) (string, float64) {
	m.samples++
	return m.next[state][action], m.rewards[state][action]
}

// twoArm is a one-shot choice: arm "a" ends the episode with reward 10,
// arm "b" with reward 0.
func twoArm() *testMDP {
	return &testMDP{
		initial:  "s",
		actions:  map[string][]string{"s": {"a", "b"}},
		terminal: map[string]bool{"ta": true, "tb": true},
		next:     map[string]map[string]string{"s": {"a": "ta", "b": "tb"}},
		rewards:  map[string]map[string]float64{"s": {"a": 10, "b": 0}},
	}
}

// singleAction has exactly one legal move at its only decision state.
func singleAction() *testMDP {
	return &testMDP{
		initial:  "s",
		actions:  map[string][]string{"s": {"only"}},
		terminal: map[string]bool{"t": true},
		next:     map[string]map[string]string{"s": {"only": "t"}},
		rewards:  map[string]map[string]float64{"s": {"only": 1}},
	}
}

// chain is a fixed corridor s0 -> s1 -> s2 -> t paying 1 per step.
func chain() *testMDP {
	return &testMDP{
		initial:  "s0",
		actions:  map[string][]string{"s0": {"go"}, "s1": {"go"}, "s2": {"go"}},
		terminal: map[string]bool{"t": true},
		next: map[string]map[string]string{
			"s0": {"go": "s1"},
			"s1": {"go": "s2"},
			"s2": {"go": "t"},
		},
		rewards: map[string]map[string]float64{
			"s0": {"go": 1},
			"s1": {"go": 1},
			"s2": {"go": 1},
		},
	}
}

// deadEnd claims to be non-terminal but offers no actions at the root.
func deadEnd() *testMDP {
	return &testMDP{
		initial:  "s",
		actions:  map[string][]string{},
		terminal: map[string]bool{},
	}
}
