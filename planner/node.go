package planner

// node is one vertex of the search tree built during a single Search call.
// Children are kept in two parallel slices so that iteration follows
// insertion order, which makes every tie-break deterministic for a seeded
// random source.
type node[S, A comparable] struct {
	state    S
	parent   *node[S, A] // nil for the root
	action   A           // edge from parent; zero value for the root
	actions  []A         // tried actions, insertion order
	children []*node[S, A]
	visits   int
	valueSum float64
}

func newRoot[S, A comparable](state S) *node[S, A] {
	return &node[S, A]{state: state}
}

// child returns the node reached by action, if that action was tried.
func (n *node[S, A]) child(action A) (*node[S, A], bool) {
	for i, a := range n.actions {
		if a == action {
			return n.children[i], true
		}
	}
	return nil, false
}

// addChild appends a new child for an untried action.
func (n *node[S, A]) addChild(action A, state S) *node[S, A] {
	child := &node[S, A]{state: state, parent: n, action: action}
	n.actions = append(n.actions, action)
	n.children = append(n.children, child)
	return child
}

// mean is the average backed-up return, 0 for an unvisited node so that
// fresh children can be compared without special cases.
func (n *node[S, A]) mean() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.valueSum / float64(n.visits)
}

func (n *node[S, A]) record(value float64) {
	n.visits++
	n.valueSum += value
}
