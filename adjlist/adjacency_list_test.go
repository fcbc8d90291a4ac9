package adjlist_test

import (
	"testing"

	"github.com/katalvlaran/graphene/adjlist"
	"github.com/katalvlaran/graphene/graph"
	"github.com/stretchr/testify/require"
)

func idFn(idx int) string { return string(rune('a' + idx)) }

func TestAdjListDirectedBasics(t *testing.T) {
	g := adjlist.New[string, graph.Unit, int, graph.DirectedTag](idFn)

	a, err := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, err)
	b, err := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, err)

	require.NoError(t, g.AddEdgeWeighted(a, b, 7))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, g.VertexCount())

	var got int
	for w := range g.EdgesBetween(a, b) {
		got = *w
	}
	require.Equal(t, 7, got)

	// Directed: reverse direction has no edge.
	count := 0
	for range g.EdgesBetween(b, a) {
		count++
	}
	require.Zero(t, count)

	w, err := g.RemoveEdgeWhereWeight(a, b, func(w *int) bool { return *w == 7 })
	require.NoError(t, err)
	require.Equal(t, 7, w)
	require.Equal(t, 0, g.EdgeCount())

	_, err = g.RemoveEdgeWhereWeight(a, b, func(*int) bool { return true })
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)
}

func TestAdjListUndirectedMirrorsSharedWeight(t *testing.T) {
	g := adjlist.New[string, graph.Unit, int, graph.UndirectedTag](idFn)

	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 3))

	for w := range g.EdgesBetween(b, a) {
		*w = 99
	}
	for w := range g.EdgesBetween(a, b) {
		require.Equal(t, 99, *w)
	}
}

func TestAdjListRemoveVertexRemovesIncidentEdges(t *testing.T) {
	g := adjlist.New[string, graph.Unit, int, graph.UndirectedTag](idFn)

	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))

	_, err := g.RemoveVertex(a)
	require.NoError(t, err)
	require.False(t, graph.ContainsVertex[string, graph.Unit, int](g, a))
	require.Equal(t, 0, g.EdgeCount())

	_, err = g.RemoveVertex(a)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)

	_ = b
}
