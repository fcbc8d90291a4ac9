package property

import (
	"github.com/katalvlaran/graphene/ensure"
	"github.com/katalvlaran/graphene/graph"
	"github.com/katalvlaran/graphene/traversal/bfs"
	"github.com/katalvlaran/graphene/traversal/dfs"
)

// Acyclic asserts the graph contains no cycle: no directed cycle for a
// directed inner graph, no cycle at all (including a 2-cycle formed by a
// parallel edge) for an undirected one. It carries no payload.
type Acyclic[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
}

type acyclicDirectedPayload[V comparable] struct {
	onStack map[V]bool
	cyclic  bool
}

type acyclicUndirectedPayload[V comparable] struct {
	parent    map[V]V
	hasParent map[V]bool
	cyclic    bool
}

func countEdgesBetween[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G, u, v V) int {
	n := 0
	for range g.EdgesBetween(u, v) {
		n++
	}
	return n
}

func isAcyclic[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G) bool {
	if g.Directed() {
		return isAcyclicDirected[G, V, Vw, Ew](g)
	}
	return isAcyclicUndirected[G, V, Vw, Ew](g)
}

func isAcyclicDirected[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G) bool {
	hooks := dfs.Hooks[G, V, Vw, Ew, acyclicDirectedPayload[V]]{
		OnVisit: func(_ *dfs.DFS[G, V, Vw, Ew, acyclicDirectedPayload[V]], v V, pl *acyclicDirectedPayload[V]) {
			pl.onStack[v] = true
		},
		OnExit: func(_ *dfs.DFS[G, V, Vw, Ew, acyclicDirectedPayload[V]], v V, pl *acyclicDirectedPayload[V]) {
			pl.onStack[v] = false
		},
		OnExplore: func(_ *dfs.DFS[G, V, Vw, Ew, acyclicDirectedPayload[V]], _ V, sink V, _ *Ew, pl *acyclicDirectedPayload[V]) {
			if pl.onStack[sink] {
				pl.cyclic = true
			}
		},
	}
	d := dfs.New[G, V, Vw, Ew, acyclicDirectedPayload[V]](g, hooks, acyclicDirectedPayload[V]{onStack: make(map[V]bool)})
	for v := range graph.AllVertices[V, Vw, Ew](g) {
		if d.Visited(v) {
			continue
		}
		d.ContinueFrom(v)
		for {
			if _, ok := d.Next(); !ok {
				break
			}
		}
	}
	return !d.Payload.cyclic
}

func isAcyclicUndirected[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G) bool {
	hooks := dfs.Hooks[G, V, Vw, Ew, acyclicUndirectedPayload[V]]{
		OnExplore: func(d *dfs.DFS[G, V, Vw, Ew, acyclicUndirectedPayload[V]], source V, sink V, _ *Ew, pl *acyclicUndirectedPayload[V]) {
			if !d.Visited(sink) {
				pl.parent[sink] = source
				pl.hasParent[sink] = true
				return
			}
			if pl.hasParent[source] && pl.parent[source] == sink {
				if countEdgesBetween[G, V, Vw, Ew](d.Graph, source, sink) > 1 {
					pl.cyclic = true
				}
				return
			}
			pl.cyclic = true
		},
	}
	p := acyclicUndirectedPayload[V]{parent: make(map[V]V), hasParent: make(map[V]bool)}
	d := dfs.New[G, V, Vw, Ew, acyclicUndirectedPayload[V]](g, hooks, p)
	for v := range graph.AllVertices[V, Vw, Ew](g) {
		if d.Visited(v) {
			continue
		}
		d.ContinueFrom(v)
		for {
			if _, ok := d.Next(); !ok {
				break
			}
		}
	}
	return !d.Payload.cyclic
}

// reachable reports whether dst is reachable from src by a (possibly
// zero-length) path, following edge direction on a directed graph and
// any incident edge on an undirected one.
func reachable[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G, src, dst V) bool {
	b, err := bfs.New[G, V, Vw, Ew](g, src)
	if err != nil {
		return false
	}
	for {
		v, ok := b.Next()
		if !ok {
			return false
		}
		if v == dst {
			return true
		}
	}
}

// EnsureAcyclic validates that g currently contains no cycle.
func EnsureAcyclic[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any](g G) (Acyclic[G, V, Vw, Ew], error) {
	var zero Acyclic[G, V, Vw, Ew]
	if !isAcyclic[G, V, Vw, Ew](g) {
		return zero, ensure.ErrConstructionRejected
	}
	return Acyclic[G, V, Vw, Ew]{G: g}, nil
}

// Release peels the Acyclic wrapper back to the inner graph.
func (a Acyclic[G, V, Vw, Ew]) Release() G {
	return a.G
}

// AddEdgeWeighted rejects the insertion iff it would close a cycle: a
// self-loop always does; otherwise, for a directed graph, iff a path
// from sink to src already exists (which the new edge src->sink would
// close into a cycle); for an undirected graph, iff src and sink are
// already connected by any path.
func (a Acyclic[G, V, Vw, Ew]) AddEdgeWeighted(src, sink V, w Ew) error {
	if src == sink {
		return ensure.ErrInvariantViolation
	}
	if a.G.Directed() {
		if reachable[G, V, Vw, Ew](a.G, sink, src) {
			return ensure.ErrInvariantViolation
		}
	} else if reachable[G, V, Vw, Ew](a.G, src, sink) {
		return ensure.ErrInvariantViolation
	}
	return a.G.AddEdgeWeighted(src, sink, w)
}
