package property_test

import (
	"testing"

	"github.com/katalvlaran/graphene/adjlist"
	"github.com/katalvlaran/graphene/ensure"
	"github.com/katalvlaran/graphene/graph"
	"github.com/katalvlaran/graphene/property"
	"github.com/stretchr/testify/require"
)

func idFn(idx int) string { return string(rune('a' + idx)) }

func newUndirected(t *testing.T) *adjlist.AdjList[string, graph.Unit, int, graph.UndirectedTag] {
	t.Helper()
	return adjlist.New[string, graph.Unit, int, graph.UndirectedTag](idFn)
}

func newDirected(t *testing.T) *adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag] {
	t.Helper()
	return adjlist.New[string, graph.Unit, int, graph.DirectedTag](idFn)
}

// Scenario 5 (spec.md §8): G = ({a,b}, {(a,b)}) undirected, wrapped
// Unique. add_edge_weighted(a,b,_) fails; graph unchanged.
func TestUniqueRejectsParallelEdge(t *testing.T) {
	g := newUndirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))

	u, err := property.EnsureUnique[*adjlist.AdjList[string, graph.Unit, int, graph.UndirectedTag], string, graph.Unit, int](g)
	require.NoError(t, err)

	err = u.AddEdgeWeighted(a, b, 2)
	require.ErrorIs(t, err, ensure.ErrInvariantViolation)
	require.Equal(t, 1, g.EdgeCount())
}

func TestUniqueConstructionRejectsExistingParallelEdges(t *testing.T) {
	g := newUndirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))
	require.NoError(t, g.AddEdgeWeighted(a, b, 2))

	_, err := property.EnsureUnique[*adjlist.AdjList[string, graph.Unit, int, graph.UndirectedTag], string, graph.Unit, int](g)
	require.ErrorIs(t, err, ensure.ErrConstructionRejected)
}

func TestNoLoopsRejectsLoop(t *testing.T) {
	g := newDirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})

	n, err := property.EnsureNoLoops[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g)
	require.NoError(t, err)

	err = n.AddEdgeWeighted(a, a, 1)
	require.ErrorIs(t, err, ensure.ErrInvariantViolation)
	require.Equal(t, 0, g.EdgeCount())
}

func TestReflexiveMaintainsExactlyOneLoop(t *testing.T) {
	g := newDirected(t)
	r, err := property.EnsureReflexive[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g)
	require.NoError(t, err)

	a, err := r.NewVertexWeighted(graph.Unit{})
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())

	_, err = r.RemoveEdgeWhereWeight(a, a, func(*int) bool { return true })
	require.ErrorIs(t, err, ensure.ErrInvariantViolation)
	require.Equal(t, 1, g.EdgeCount())
}

func TestSimpleRejectsLoopAndParallel(t *testing.T) {
	g := adjlist.New[string, graph.Unit, graph.Unit, graph.UndirectedTag](idFn)
	s, err := property.EnsureSimple[*adjlist.AdjList[string, graph.Unit, graph.Unit, graph.UndirectedTag], string, graph.Unit](g)
	require.NoError(t, err)

	a, _ := s.NewVertexWeighted(graph.Unit{})
	b, _ := s.NewVertexWeighted(graph.Unit{})

	require.ErrorIs(t, s.AddEdgeWeighted(a, a, graph.Unit{}), ensure.ErrInvariantViolation)
	require.NoError(t, s.AddEdgeWeighted(a, b, graph.Unit{}))
	require.ErrorIs(t, s.AddEdgeWeighted(a, b, graph.Unit{}), ensure.ErrInvariantViolation)
}

// Scenario 3 (spec.md §8): G = ({a,b,c}, {(a,b),(b,c),(c,a)}) directed.
// Acyclic validation fails.
func TestAcyclicRejectsDirectedCycle(t *testing.T) {
	g := newDirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	c, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))
	require.NoError(t, g.AddEdgeWeighted(b, c, 1))
	require.NoError(t, g.AddEdgeWeighted(c, a, 1))

	_, err := property.EnsureAcyclic[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g)
	require.ErrorIs(t, err, ensure.ErrConstructionRejected)
}

func TestAcyclicAddEdgeRejectsClosingCycle(t *testing.T) {
	g := newDirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	c, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))
	require.NoError(t, g.AddEdgeWeighted(b, c, 1))

	acy, err := property.EnsureAcyclic[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g)
	require.NoError(t, err)

	require.ErrorIs(t, acy.AddEdgeWeighted(c, a, 1), ensure.ErrInvariantViolation)
	require.NoError(t, acy.AddEdgeWeighted(a, c, 1))
}

func TestAcyclicUndirectedRejectsParallelEdgeAsCycle(t *testing.T) {
	g := newUndirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))

	_, err := property.EnsureAcyclic[*adjlist.AdjList[string, graph.Unit, int, graph.UndirectedTag], string, graph.Unit, int](g)
	require.NoError(t, err)

	require.NoError(t, g.AddEdgeWeighted(a, b, 2))
	_, err = property.EnsureAcyclic[*adjlist.AdjList[string, graph.Unit, int, graph.UndirectedTag], string, graph.Unit, int](g)
	require.ErrorIs(t, err, ensure.ErrConstructionRejected)
}

func TestHasVertexRefusesRemovingPinned(t *testing.T) {
	g := newDirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})

	hv, err := property.EnsureHasVertex[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g, a)
	require.NoError(t, err)

	_, err = hv.RemoveVertex(a)
	require.ErrorIs(t, err, ensure.ErrInvariantViolation)

	_, err = hv.RemoveVertex(b)
	require.NoError(t, err)
}

func TestRootedSetRoot(t *testing.T) {
	g := newDirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})

	rt, err := property.EnsureRooted[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g, a)
	require.NoError(t, err)
	require.True(t, rt.IsRoot(a))

	require.NoError(t, rt.SetRoot(b))
	require.True(t, rt.IsRoot(b))

	_, err = rt.RemoveVertex(b)
	require.ErrorIs(t, err, ensure.ErrInvariantViolation)
}

// Scenario 6 (spec.md §8): G = path a-b-c-d wrapped Connected.
// remove_edge_where_weight(b,c,_) fails; graph unchanged. Removing
// (a,b) is rejected because the result would be disconnected.
func TestConnectedRefusesDisconnectingEdgeRemoval(t *testing.T) {
	g := newUndirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	c, _ := g.NewVertexWeighted(graph.Unit{})
	d, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))
	require.NoError(t, g.AddEdgeWeighted(b, c, 1))
	require.NoError(t, g.AddEdgeWeighted(c, d, 1))

	conn, err := property.EnsureConnected[*adjlist.AdjList[string, graph.Unit, int, graph.UndirectedTag], string, graph.Unit, int](g)
	require.NoError(t, err)

	_, err = conn.RemoveEdgeWhereWeight(b, c, func(*int) bool { return true })
	require.ErrorIs(t, err, ensure.ErrInvariantViolation)
	require.Equal(t, 3, g.EdgeCount())

	_, err = conn.RemoveEdgeWhereWeight(a, b, func(*int) bool { return true })
	require.ErrorIs(t, err, ensure.ErrInvariantViolation)
	require.Equal(t, 3, g.EdgeCount())
}

func TestConnectedRejectsNewVertex(t *testing.T) {
	g := newUndirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))

	conn, err := property.EnsureConnected[*adjlist.AdjList[string, graph.Unit, int, graph.UndirectedTag], string, graph.Unit, int](g)
	require.NoError(t, err)

	_, err = conn.NewVertexWeighted(graph.Unit{})
	require.ErrorIs(t, err, ensure.ErrInvariantViolation)
}

func TestWeakVsConnectedDirected(t *testing.T) {
	// a -> b, c -> b: weakly connected but not Connected (b cannot reach a).
	g := newDirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	c, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))
	require.NoError(t, g.AddEdgeWeighted(c, b, 1))

	_, err := property.EnsureConnected[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g)
	require.ErrorIs(t, err, ensure.ErrConstructionRejected)

	_, err = property.EnsureWeak[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g)
	require.NoError(t, err)
}

func TestUnilateralChain(t *testing.T) {
	// a -> b -> c: every pair has at least a one-way path.
	g := newDirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	c, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))
	require.NoError(t, g.AddEdgeWeighted(b, c, 1))

	_, err := property.EnsureUnilateral[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g)
	require.NoError(t, err)
}

func TestUnilateralRejectsDisconnectedPair(t *testing.T) {
	g := newDirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	_, _ = g.NewVertexWeighted(graph.Unit{})
	_ = a

	_, err := property.EnsureUnilateral[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g)
	require.ErrorIs(t, err, ensure.ErrConstructionRejected)
}

// Exercises the Connected wrapper's eccentricity/diameter/radius/centers
// helpers on a small weighted digraph (distinct from spec.md §8's
// literal scenario 4, which is not itself connected in the Connected
// sense and so cannot feed Eccentricities' EnsureConnected precondition).
func TestConnectedMetrics(t *testing.T) {
	g := newDirected(t)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	c, _ := g.NewVertexWeighted(graph.Unit{})
	d, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))
	require.NoError(t, g.AddEdgeWeighted(b, c, 2))
	require.NoError(t, g.AddEdgeWeighted(a, c, 5))
	require.NoError(t, g.AddEdgeWeighted(c, d, 1))
	require.NoError(t, g.AddEdgeWeighted(d, a, 1))

	conn, err := property.EnsureConnected[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](g)
	require.NoError(t, err)

	project := func(_, _ string, w *int) int { return *w }

	eccA, err := property.Eccentricities[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int, int](conn, project)
	require.NoError(t, err)
	require.Equal(t, 4, eccA["a"])
	require.Equal(t, 4, eccA["b"])
	require.Equal(t, 3, eccA["c"])
	require.Equal(t, 4, eccA["d"])

	diam, err := property.Diameter[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int, int](conn, project)
	require.NoError(t, err)
	require.Equal(t, 4, diam)

	rad, err := property.Radius[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int, int](conn, project)
	require.NoError(t, err)
	require.Equal(t, 3, rad)

	centers, err := property.Centers[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int, int](conn, project)
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, centers)
}

func TestDirectedUndirectedWrappers(t *testing.T) {
	dg := newDirected(t)
	_, err := property.EnsureDirected[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](dg)
	require.NoError(t, err)
	_, err = property.EnsureUndirected[*adjlist.AdjList[string, graph.Unit, int, graph.DirectedTag], string, graph.Unit, int](dg)
	require.ErrorIs(t, err, ensure.ErrConstructionRejected)

	ug := newUndirected(t)
	_, err = property.EnsureUndirected[*adjlist.AdjList[string, graph.Unit, int, graph.UndirectedTag], string, graph.Unit, int](ug)
	require.NoError(t, err)
}
