package proxy

import (
	"iter"

	"github.com/katalvlaran/graphene/graph"
)

// SubgraphProxy restricts an inner graph to a user-grown vertex set,
// tracking exit edges (edges whose source is inside the member set and
// sink is outside) incrementally as the set grows, the way
// original_source/src/core/proxy/subgraph_proxy.rs does rather than
// recomputing exit edges from scratch on every query. Tarjan's SCC
// emission (traversal/tarjan) grows one of these per finished
// component.
type SubgraphProxy[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G

	members map[V]bool
	order   []V
	exits   []graph.IncidentEdge[V, Ew]
}

// NewSubgraphProxy starts a subgraph containing only seed.
func NewSubgraphProxy[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G, seed V) *SubgraphProxy[G, V, Vw, Ew] {
	sp := &SubgraphProxy[G, V, Vw, Ew]{
		G:       g,
		members: map[V]bool{seed: true},
		order:   []V{seed},
	}
	sp.recomputeExitsFor(seed)
	return sp
}

// Grow adds v to the member set, if not already present, and updates the
// exit-edge bookkeeping incrementally: v's own outward edges that leave
// the (now larger) member set become new exit edges, and any previously
// recorded exit edge that happened to land on v is dropped (it is now an
// interior edge).
func (s *SubgraphProxy[G, V, Vw, Ew]) Grow(v V) {
	if s.members[v] {
		return
	}
	s.members[v] = true
	s.order = append(s.order, v)

	kept := s.exits[:0]
	for _, e := range s.exits {
		if e.Other != v {
			kept = append(kept, e)
		}
	}
	s.exits = kept

	s.recomputeExitsFor(v)
}

func (s *SubgraphProxy[G, V, Vw, Ew]) recomputeExitsFor(v V) {
	for ie := range graph.EdgesSourcedIn[V, Vw, Ew](s.G, v) {
		if !s.members[ie.Other] {
			s.exits = append(s.exits, ie)
		}
	}
}

// Members yields every member vertex in the order it joined the
// subgraph, seed first.
func (s *SubgraphProxy[G, V, Vw, Ew]) Members() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range s.order {
			if !yield(v) {
				return
			}
		}
	}
}

// AllVerticesWeighted yields only the grown member vertices.
func (s *SubgraphProxy[G, V, Vw, Ew]) AllVerticesWeighted() iter.Seq2[V, *Vw] {
	return func(yield func(V, *Vw) bool) {
		for _, v := range s.order {
			w, ok := graph.VertexWeight[V, Vw, Ew](s.G, v)
			if !ok {
				continue
			}
			if !yield(v, w) {
				return
			}
		}
	}
}

// EdgesBetween reports inner edges only when both endpoints are members.
func (s *SubgraphProxy[G, V, Vw, Ew]) EdgesBetween(u, v V) iter.Seq[*Ew] {
	return func(yield func(*Ew) bool) {
		if !s.members[u] || !s.members[v] {
			return
		}
		for w := range s.G.EdgesBetween(u, v) {
			if !yield(w) {
				return
			}
		}
	}
}

// ExitEdges is the Subgraph capability: every edge whose source is a
// member and whose sink is not.
func (s *SubgraphProxy[G, V, Vw, Ew]) ExitEdges() iter.Seq[graph.IncidentEdge[V, Ew]] {
	return func(yield func(graph.IncidentEdge[V, Ew]) bool) {
		for _, e := range s.exits {
			if !yield(e) {
				return
			}
		}
	}
}
