package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tripgraph/pkg/graph"
)

type place struct {
	Name string
}

func TestLabeledVertexLabels(t *testing.T) {
	g := graph.NewLabeled[place, string](graph.NewDirected())
	a := g.AddLabeled(place{"a"})
	b := g.Add()

	got, err := g.Label(a)
	require.NoError(t, err)
	assert.Equal(t, place{"a"}, got)

	got, err = g.Label(b)
	require.NoError(t, err, "unlabeled live vertex is not an error")
	assert.Zero(t, got)
	assert.False(t, g.HasLabel(b))

	require.NoError(t, g.SetLabel(b, place{"b"}))
	assert.True(t, g.HasLabel(b))

	err = g.SetLabel(99, place{"x"})
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)
	_, err = g.Label(99)
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)
}

func TestLabeledEdgeLabels(t *testing.T) {
	g := graph.NewLabeled[place, string](graph.NewDirected())
	a, b := g.Add(), g.Add()

	err := g.SetEdgeLabel(a, b, "road")
	assert.ErrorIs(t, err, graph.ErrInvalidEdge)

	_, err = g.AddLabeledEdge(a, b, "road")
	require.NoError(t, err)
	label, err := g.EdgeLabel(a, b)
	require.NoError(t, err)
	assert.Equal(t, "road", label)

	_, err = g.EdgeLabel(b, a)
	assert.ErrorIs(t, err, graph.ErrInvalidEdge)

	_, err = g.AddLabeledEdge(a, 42, "nowhere")
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)
}

func TestLabeledUndirectedSharesEdgeLabel(t *testing.T) {
	g := graph.NewLabeled[int, string](graph.NewUndirected())
	a, b := g.Add(), g.Add()
	_, err := g.AddLabeledEdge(a, b, "bridge")
	require.NoError(t, err)

	label, err := g.EdgeLabel(b, a)
	require.NoError(t, err)
	assert.Equal(t, "bridge", label)
}

func TestLabeledLabelsDoNotSurviveRemoval(t *testing.T) {
	g := graph.NewLabeled[string, string](graph.NewDirected())
	a := g.AddLabeled("a")
	b := g.AddLabeled("b")
	c := g.AddLabeled("c")
	_, _ = g.AddLabeledEdge(a, b, "ab")
	_, _ = g.AddLabeledEdge(c, b, "cb")
	_, _ = g.AddLabeledEdge(b, b, "bb")
	_, _ = g.AddLabeledEdge(a, c, "ac")

	g.Remove(b)
	assert.False(t, g.Contains(b))
	assert.Equal(t, 1, g.EdgeSize())

	// Recreate the vertex and edges; the old labels must not resurface even
	// though ids and edge identities are recycled.
	nb := g.Add()
	require.Equal(t, b, nb)
	label, err := g.Label(nb)
	require.NoError(t, err)
	assert.Empty(t, label)

	_, _ = g.AddEdge(a, nb)
	_, _ = g.AddEdge(nb, nb)
	for _, e := range [][2]int{{a, nb}, {nb, nb}} {
		label, err := g.EdgeLabel(e[0], e[1])
		require.NoError(t, err)
		assert.Empty(t, label)
	}

	g.RemoveEdge(a, c)
	_, _ = g.AddEdge(a, c)
	label, err = g.EdgeLabel(a, c)
	require.NoError(t, err)
	assert.Empty(t, label)
}

func TestLabeledIsAGraph(t *testing.T) {
	var g graph.Graph = graph.NewLabeled[int, int](graph.NewUndirected())
	a, b := g.Add(), g.Add()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	assert.True(t, g.ContainsEdge(b, a))
	assert.False(t, g.Directed())
}

func TestLabeledMutationThroughGraphInterface(t *testing.T) {
	l := graph.NewLabeled[string, string](graph.NewUndirected())
	x, y := l.Add(), l.Add()
	_, err := l.AddLabeledEdge(x, y, "xy")
	require.NoError(t, err)

	var g graph.Graph = l
	g.RemoveEdge(x, y)
	_, err = g.AddEdge(y, x)
	require.NoError(t, err)

	label, err := l.EdgeLabel(y, x)
	require.NoError(t, err)
	assert.Empty(t, label, "edge id is recycled but its old label is gone")

	g.Remove(y)
	z := l.Add()
	require.Equal(t, y, z)
	assert.False(t, l.HasLabel(z))
	assert.Equal(t, 2, g.VertexSize())
	assert.Zero(t, g.EdgeSize())
}
