package property

import (
	"github.com/katalvlaran/graphene/ensure"
	"github.com/katalvlaran/graphene/graph"
)

// Unique asserts at most one edge between any ordered pair (directed)
// graph or unordered pair (undirected graph); a loop counts once. It
// carries no payload.
type Unique[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
}

// EnsureUnique validates that g currently has no parallel edges.
func EnsureUnique[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any](g G) (Unique[G, V, Vw, Ew], error) {
	var zero Unique[G, V, Vw, Ew]
	if hasParallelEdge[G, V, Vw, Ew](g) {
		return zero, ensure.ErrConstructionRejected
	}
	return Unique[G, V, Vw, Ew]{G: g}, nil
}

// Release peels the Unique wrapper back to the inner graph.
func (u Unique[G, V, Vw, Ew]) Release() G {
	return u.G
}

// AddEdgeWeighted rejects the insertion if an edge already exists
// between u and v (ErrInvariantViolation); otherwise delegates to the
// inner graph.
func (u Unique[G, V, Vw, Ew]) AddEdgeWeighted(src, sink V, w Ew) error {
	if graph.Neighbors[V, Vw, Ew](u.G, src, sink) {
		return ensure.ErrInvariantViolation
	}
	return u.G.AddEdgeWeighted(src, sink, w)
}
