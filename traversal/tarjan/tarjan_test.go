package tarjan_test

import (
	"testing"

	"github.com/katalvlaran/graphene/adjlist"
	"github.com/katalvlaran/graphene/graph"
	"github.com/katalvlaran/graphene/traversal/tarjan"
	"github.com/stretchr/testify/require"
)

func idFn(idx int) string { return string(rune('a' + idx)) }

// Scenario 3 (spec.md §8): G = ({a,b,c}, {(a,b),(b,c),(c,a)}) directed.
// Tarjan yields a single SCC containing all three vertices.
func TestTarjanSingleCycleIsOneSCC(t *testing.T) {
	g := adjlist.New[string, graph.Unit, int, graph.DirectedTag](idFn)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	c, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))
	require.NoError(t, g.AddEdgeWeighted(b, c, 1))
	require.NoError(t, g.AddEdgeWeighted(c, a, 1))

	sccs := tarjan.New[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g).All()
	require.Len(t, sccs, 1)

	members := make(map[string]bool)
	for v := range sccs[0].Members() {
		members[v] = true
	}
	require.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, members)
}

func TestTarjanChainIsThreeSingletonSCCsInReverseTopoOrder(t *testing.T) {
	g := adjlist.New[string, graph.Unit, int, graph.DirectedTag](idFn)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	c, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))
	require.NoError(t, g.AddEdgeWeighted(b, c, 1))

	sccs := tarjan.New[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g).All()
	require.Len(t, sccs, 3)

	var order []string
	for _, scc := range sccs {
		for v := range scc.Members() {
			order = append(order, v)
		}
	}
	// reverse topological order of a->b->c is c, b, a.
	require.Equal(t, []string{"c", "b", "a"}, order)
}

func TestTarjanTwoDisjointCycles(t *testing.T) {
	g := adjlist.New[string, graph.Unit, int, graph.DirectedTag](idFn)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	c, _ := g.NewVertexWeighted(graph.Unit{})
	d, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))
	require.NoError(t, g.AddEdgeWeighted(b, a, 1))
	require.NoError(t, g.AddEdgeWeighted(c, d, 1))
	require.NoError(t, g.AddEdgeWeighted(d, c, 1))

	sccs := tarjan.New[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g).All()
	require.Len(t, sccs, 2)
}
