package property

import (
	"github.com/katalvlaran/graphene/ensure"
	"github.com/katalvlaran/graphene/graph"
)

// Simple asserts the conjunction of NoLoops and Unique on an undirected
// graph with the degenerate unit edge weight (spec.md §4.4: "the
// conjunction of NoLoops and Unique on an undirected graph with unit
// edge weight"). It is realized as one wrapper rather than a literal
// Unique[NoLoops[G]] stack; its validation runs the loop check and the
// parallel-edge check one after the other.
type Simple[G graph.Full[V, Vw, graph.Unit], V comparable, Vw any] struct {
	G
}

// EnsureSimple validates that g is undirected, loop-free, and carries no
// parallel edges.
func EnsureSimple[G graph.Full[V, Vw, graph.Unit], V comparable, Vw any](g G) (Simple[G, V, Vw], error) {
	var zero Simple[G, V, Vw]
	if g.Directed() {
		return zero, ensure.ErrConstructionRejected
	}
	if hasLoop[G, V, Vw, graph.Unit](g) {
		return zero, ensure.ErrConstructionRejected
	}
	if hasParallelEdge[G, V, Vw, graph.Unit](g) {
		return zero, ensure.ErrConstructionRejected
	}
	return Simple[G, V, Vw]{G: g}, nil
}

// Release peels the Simple wrapper back to the inner graph.
func (s Simple[G, V, Vw]) Release() G {
	return s.G
}

// AddEdgeWeighted rejects a loop or a parallel edge; otherwise delegates
// to the inner graph.
func (s Simple[G, V, Vw]) AddEdgeWeighted(src, sink V, w graph.Unit) error {
	if src == sink {
		return ensure.ErrInvariantViolation
	}
	if graph.Neighbors[V, Vw, graph.Unit](s.G, src, sink) {
		return ensure.ErrInvariantViolation
	}
	return s.G.AddEdgeWeighted(src, sink, w)
}
