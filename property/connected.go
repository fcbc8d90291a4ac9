package property

import (
	"github.com/katalvlaran/graphene/ensure"
	"github.com/katalvlaran/graphene/graph"
	"github.com/katalvlaran/graphene/proxy"
	"github.com/katalvlaran/graphene/traversal/bfs"
	"github.com/katalvlaran/graphene/traversal/dijkstra"
	"github.com/katalvlaran/graphene/traversal/tarjan"
)

// --- shared validation helpers, generic over any ID/Vw/Ew a proxy may
// present (not just the wrapper's own V), so the same functions serve
// both "is g itself connected/unilateral/weak" and "would the proxied
// result of a virtual mutation still be" checks. ---

func bfsReachesAll[G graph.Reader[ID, Vw, Ew], ID comparable, Vw any, Ew any](g G, start ID, total int) bool {
	b, err := bfs.New[G, ID, Vw, Ew](g, start)
	if err != nil {
		return false
	}
	count := 0
	for {
		if _, ok := b.Next(); !ok {
			break
		}
		count++
	}
	return count == total
}

// isConnectedGeneric implements spec.md §4.4's Connected validation:
// pick any vertex; a traversal from it reaches every other vertex; for a
// directed graph, a traversal on the reverse view does too.
func isConnectedGeneric[G graph.Reader[ID, Vw, Ew], ID comparable, Vw any, Ew any](g G) bool {
	var vs []ID
	for v := range graph.AllVertices[ID, Vw, Ew](g) {
		vs = append(vs, v)
	}
	if len(vs) == 0 {
		return true
	}
	start := vs[0]
	if !bfsReachesAll[G, ID, Vw, Ew](g, start, len(vs)) {
		return false
	}
	if g.Directed() {
		rp := proxy.NewReverseProxy[G, ID, Vw, Ew](g)
		if !bfsReachesAll[*proxy.ReverseProxy[G, ID, Vw, Ew], ID, Vw, Ew](rp, start, len(vs)) {
			return false
		}
	}
	return true
}

// isWeakGeneric implements Weak validation: ensure Connected over the
// undirected view of g.
func isWeakGeneric[G graph.Reader[ID, Vw, Ew], ID comparable, Vw any, Ew any](g G) bool {
	up := proxy.NewUndirectedProxy[G, ID, Vw, Ew](g)
	return isConnectedGeneric[*proxy.UndirectedProxy[G, ID, Vw, Ew], ID, Vw, Ew](up)
}

func hasEdgeBetweenSets[G graph.Reader[ID, Vw, Ew], ID comparable, Vw any, Ew any](
	g G, from, to *proxy.SubgraphProxy[G, ID, Vw, Ew],
) bool {
	for u := range from.Members() {
		for v := range to.Members() {
			if graph.Neighbors[ID, Vw, Ew](g, u, v) {
				return true
			}
		}
	}
	return false
}

// isUnilateralGeneric implements spec.md §4.4's Unilateral validation:
// compute the SCC DAG via Tarjan; verify that the reverse-topological
// sequence Tarjan emits has an edge from scc[i+1] to scc[i] for every
// adjacent pair, meaning the SCC DAG is a total chain.
func isUnilateralGeneric[G graph.Reader[ID, Vw, Ew], ID comparable, Vw any, Ew any](g G) bool {
	sccs := tarjan.New[G, ID, Vw, Ew](g).All()
	for i := 0; i < len(sccs)-1; i++ {
		if !hasEdgeBetweenSets[G, ID, Vw, Ew](g, sccs[i+1], sccs[i]) {
			return false
		}
	}
	return true
}

// --- Connected ---

// Connected asserts every vertex of the graph is mutually reachable
// from every other (for a directed graph: both forward and along the
// reverse of every edge; for an undirected graph: ordinary
// connectivity). It carries no payload.
type Connected[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
}

// EnsureConnected validates that g is currently connected.
func EnsureConnected[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any](g G) (Connected[G, V, Vw, Ew], error) {
	var zero Connected[G, V, Vw, Ew]
	if !isConnectedGeneric[G, V, Vw, Ew](g) {
		return zero, ensure.ErrConstructionRejected
	}
	return Connected[G, V, Vw, Ew]{G: g}, nil
}

// Release peels the Connected wrapper back to the inner graph.
func (c Connected[G, V, Vw, Ew]) Release() G {
	return c.G
}

// NewVertexWeighted always refuses: a fresh isolated vertex would
// violate connectedness (spec.md §4.4).
func (c Connected[G, V, Vw, Ew]) NewVertexWeighted(Vw) (V, error) {
	var zero V
	return zero, ensure.ErrInvariantViolation
}

// RemoveVertex removes v iff the graph would remain connected without
// it and its incident edges, decided by the generic proxy-validation
// recipe of spec.md §4.3.
func (c Connected[G, V, Vw, Ew]) RemoveVertex(v V) (Vw, error) {
	vp := proxy.NewVertexProxy[G, V, Vw, Ew](c.G)
	if _, err := vp.RemoveVertex(proxy.VertexID[V]{Inner: v}); err != nil {
		var zero Vw
		return zero, err
	}
	if !isConnectedGeneric[*proxy.VertexProxy[G, V, Vw, Ew], proxy.VertexID[V], Vw, Ew](vp) {
		var zero Vw
		return zero, ensure.ErrInvariantViolation
	}
	return c.G.RemoveVertex(v)
}

// RemoveEdgeWhereWeight removes a matching edge iff the graph would
// remain connected without it.
func (c Connected[G, V, Vw, Ew]) RemoveEdgeWhereWeight(u, v V, pred func(*Ew) bool) (Ew, error) {
	ep := proxy.NewEdgeProxy[G, V, Vw, Ew](c.G)
	if _, err := ep.RemoveEdgeWhereWeight(u, v, pred); err != nil {
		var zero Ew
		return zero, err
	}
	if !isConnectedGeneric[*proxy.EdgeProxy[G, V, Vw, Ew], V, Vw, Ew](ep) {
		var zero Ew
		return zero, ensure.ErrInvariantViolation
	}
	return c.G.RemoveEdgeWhereWeight(u, v, pred)
}

// Eccentricities computes, via Dijkstra over an edge-weight-mapped proxy
// of c's inner graph, the eccentricity of every vertex: the maximum
// shortest-path distance from that vertex to any other.
func Eccentricities[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any, D dijkstra.Dist](
	c Connected[G, V, Vw, Ew], project func(u, v V, w *Ew) D,
) (map[V]D, error) {
	out := make(map[V]D)
	for v := range graph.AllVertices[V, Vw, Ew](c.G) {
		order, dist, err := dijkstra.Distances[G, V, Vw, Ew, D](c.G, v, project)
		if err != nil {
			return nil, err
		}
		var max D
		first := true
		for _, u := range order {
			d := dist[u]
			if first || d > max {
				max = d
				first = false
			}
		}
		out[v] = max
	}
	return out, nil
}

// Diameter is the maximum eccentricity over all vertices.
func Diameter[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any, D dijkstra.Dist](
	c Connected[G, V, Vw, Ew], project func(u, v V, w *Ew) D,
) (D, error) {
	eccs, err := Eccentricities[G, V, Vw, Ew, D](c, project)
	if err != nil {
		var zero D
		return zero, err
	}
	var max D
	first := true
	for _, e := range eccs {
		if first || e > max {
			max = e
			first = false
		}
	}
	return max, nil
}

// Radius is the minimum eccentricity over all vertices.
func Radius[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any, D dijkstra.Dist](
	c Connected[G, V, Vw, Ew], project func(u, v V, w *Ew) D,
) (D, error) {
	eccs, err := Eccentricities[G, V, Vw, Ew, D](c, project)
	if err != nil {
		var zero D
		return zero, err
	}
	var min D
	first := true
	for _, e := range eccs {
		if first || e < min {
			min = e
			first = false
		}
	}
	return min, nil
}

// Centers is every vertex whose eccentricity equals the radius.
func Centers[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any, D dijkstra.Dist](
	c Connected[G, V, Vw, Ew], project func(u, v V, w *Ew) D,
) ([]V, error) {
	eccs, err := Eccentricities[G, V, Vw, Ew, D](c, project)
	if err != nil {
		return nil, err
	}
	var min D
	first := true
	for _, e := range eccs {
		if first || e < min {
			min = e
			first = false
		}
	}
	var centers []V
	for v, e := range eccs {
		if e == min {
			centers = append(centers, v)
		}
	}
	return centers, nil
}

// --- Unilateral ---

// Unilateral asserts that for every pair of vertices, at least one is
// reachable from the other: the SCC DAG forms a total chain. It carries
// no payload.
type Unilateral[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
}

// EnsureUnilateral validates that g is currently unilaterally connected.
func EnsureUnilateral[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any](g G) (Unilateral[G, V, Vw, Ew], error) {
	var zero Unilateral[G, V, Vw, Ew]
	if !isUnilateralGeneric[G, V, Vw, Ew](g) {
		return zero, ensure.ErrConstructionRejected
	}
	return Unilateral[G, V, Vw, Ew]{G: g}, nil
}

// Release peels the Unilateral wrapper back to the inner graph.
func (u Unilateral[G, V, Vw, Ew]) Release() G {
	return u.G
}

// NewVertexWeighted always refuses, for the same reason as Connected's.
func (u Unilateral[G, V, Vw, Ew]) NewVertexWeighted(Vw) (V, error) {
	var zero V
	return zero, ensure.ErrInvariantViolation
}

// RemoveVertex removes v iff the graph would remain unilaterally
// connected without it.
func (u Unilateral[G, V, Vw, Ew]) RemoveVertex(v V) (Vw, error) {
	vp := proxy.NewVertexProxy[G, V, Vw, Ew](u.G)
	if _, err := vp.RemoveVertex(proxy.VertexID[V]{Inner: v}); err != nil {
		var zero Vw
		return zero, err
	}
	if !isUnilateralGeneric[*proxy.VertexProxy[G, V, Vw, Ew], proxy.VertexID[V], Vw, Ew](vp) {
		var zero Vw
		return zero, ensure.ErrInvariantViolation
	}
	return u.G.RemoveVertex(v)
}

// RemoveEdgeWhereWeight removes a matching edge iff the graph would
// remain unilaterally connected without it.
func (u Unilateral[G, V, Vw, Ew]) RemoveEdgeWhereWeight(a, b V, pred func(*Ew) bool) (Ew, error) {
	ep := proxy.NewEdgeProxy[G, V, Vw, Ew](u.G)
	if _, err := ep.RemoveEdgeWhereWeight(a, b, pred); err != nil {
		var zero Ew
		return zero, err
	}
	if !isUnilateralGeneric[*proxy.EdgeProxy[G, V, Vw, Ew], V, Vw, Ew](ep) {
		var zero Ew
		return zero, ensure.ErrInvariantViolation
	}
	return u.G.RemoveEdgeWhereWeight(a, b, pred)
}

// --- Weak ---

// Weak asserts the graph would be connected if every edge were treated
// as undirected. It carries no payload.
type Weak[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
}

// EnsureWeak validates that g is currently weakly connected.
func EnsureWeak[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any](g G) (Weak[G, V, Vw, Ew], error) {
	var zero Weak[G, V, Vw, Ew]
	if !isWeakGeneric[G, V, Vw, Ew](g) {
		return zero, ensure.ErrConstructionRejected
	}
	return Weak[G, V, Vw, Ew]{G: g}, nil
}

// Release peels the Weak wrapper back to the inner graph.
func (w Weak[G, V, Vw, Ew]) Release() G {
	return w.G
}

// NewVertexWeighted always refuses, for the same reason as Connected's.
func (w Weak[G, V, Vw, Ew]) NewVertexWeighted(Vw) (V, error) {
	var zero V
	return zero, ensure.ErrInvariantViolation
}

// RemoveVertex removes v iff the graph would remain weakly connected
// without it.
func (w Weak[G, V, Vw, Ew]) RemoveVertex(v V) (Vw, error) {
	vp := proxy.NewVertexProxy[G, V, Vw, Ew](w.G)
	if _, err := vp.RemoveVertex(proxy.VertexID[V]{Inner: v}); err != nil {
		var zero Vw
		return zero, err
	}
	if !isWeakGeneric[*proxy.VertexProxy[G, V, Vw, Ew], proxy.VertexID[V], Vw, Ew](vp) {
		var zero Vw
		return zero, ensure.ErrInvariantViolation
	}
	return w.G.RemoveVertex(v)
}

// RemoveEdgeWhereWeight removes a matching edge iff the graph would
// remain weakly connected without it.
func (w Weak[G, V, Vw, Ew]) RemoveEdgeWhereWeight(a, b V, pred func(*Ew) bool) (Ew, error) {
	ep := proxy.NewEdgeProxy[G, V, Vw, Ew](w.G)
	if _, err := ep.RemoveEdgeWhereWeight(a, b, pred); err != nil {
		var zero Ew
		return zero, err
	}
	if !isWeakGeneric[*proxy.EdgeProxy[G, V, Vw, Ew], V, Vw, Ew](ep) {
		var zero Ew
		return zero, ensure.ErrInvariantViolation
	}
	return w.G.RemoveEdgeWhereWeight(a, b, pred)
}
