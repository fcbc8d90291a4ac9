package graph_test

import (
	"testing"

	"github.com/katalvlaran/graphene/adjlist"
	"github.com/katalvlaran/graphene/graph"
	"github.com/stretchr/testify/require"
)

func idFn(idx int) string { return string(rune('a' + idx)) }

func TestDerivedUndirectedIncidence(t *testing.T) {
	g := adjlist.New[string, graph.Unit, int, graph.UndirectedTag](idFn)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	c, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))
	require.NoError(t, g.AddEdgeWeighted(b, c, 2))

	var neighbors []string
	for n := range graph.VertexNeighbors[string, graph.Unit, int](g, b) {
		neighbors = append(neighbors, n)
	}
	require.ElementsMatch(t, []string{a, c}, neighbors)

	require.True(t, graph.Neighbors[string, graph.Unit, int](g, a, b))
	require.False(t, graph.Neighbors[string, graph.Unit, int](g, a, c))
}

func TestDerivedDirectedSourceSinkSplit(t *testing.T) {
	g := adjlist.New[string, graph.Unit, int, graph.DirectedTag](idFn)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 5))

	var sourced, sinked int
	for range graph.EdgesSourcedIn[string, graph.Unit, int](g, a) {
		sourced++
	}
	for range graph.EdgesSinkedIn[string, graph.Unit, int](g, a) {
		sinked++
	}
	require.Equal(t, 1, sourced)
	require.Equal(t, 0, sinked)

	for range graph.EdgesSourcedIn[string, graph.Unit, int](g, b) {
		t.Fatal("b has no outgoing edges")
	}
	for range graph.EdgesSinkedIn[string, graph.Unit, int](g, b) {
		sinked++
	}
	require.Equal(t, 1, sinked)
}

func TestContainsVertexAndWeight(t *testing.T) {
	g := adjlist.New[string, int, graph.Unit, graph.DirectedTag](idFn)
	a, _ := g.NewVertexWeighted(42)

	require.True(t, graph.ContainsVertex[string, int, graph.Unit](g, a))
	w, ok := graph.VertexWeight[string, int, graph.Unit](g, a)
	require.True(t, ok)
	require.Equal(t, 42, *w)

	require.False(t, graph.ContainsVertex[string, int, graph.Unit](g, "nope"))
}
