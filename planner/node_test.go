package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeMean(t *testing.T) {
	n := newRoot[string, string]("s")

	require.Equal(t, 0.0, n.mean(), "an unvisited node should have a neutral mean")

	n.record(3)
	n.record(1)

	require.Equal(t, 2, n.visits)
	require.Equal(t, 4.0, n.valueSum)
	require.Equal(t, 2.0, n.mean())
}

func TestNodeChildren(t *testing.T) {
	root := newRoot[string, string]("s")

	first := root.addChild("a", "sa")
	second := root.addChild("b", "sb")

	require.Equal(t, []string{"a", "b"}, root.actions, "children should keep insertion order")
	require.Equal(t, []*node[string, string]{first, second}, root.children)
	require.Equal(t, root, first.parent, "a child should reference the node it was reached from")
	require.Equal(t, "a", first.action, "a child should record its incoming action")

	got, ok := root.child("b")
	require.True(t, ok)
	require.Equal(t, second, got)

	_, ok = root.child("c")
	require.False(t, ok, "an untried action should have no child")
}
