package property

import (
	"github.com/katalvlaran/graphene/ensure"
	"github.com/katalvlaran/graphene/graph"
)

// NoLoops asserts no edge has source == sink. It carries no payload.
type NoLoops[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
}

// EnsureNoLoops validates that g currently has no self-loops.
func EnsureNoLoops[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any](g G) (NoLoops[G, V, Vw, Ew], error) {
	var zero NoLoops[G, V, Vw, Ew]
	if hasLoop[G, V, Vw, Ew](g) {
		return zero, ensure.ErrConstructionRejected
	}
	return NoLoops[G, V, Vw, Ew]{G: g}, nil
}

// Release peels the NoLoops wrapper back to the inner graph.
func (n NoLoops[G, V, Vw, Ew]) Release() G {
	return n.G
}

// AddEdgeWeighted rejects the insertion if src == sink (ErrInvariantViolation).
func (n NoLoops[G, V, Vw, Ew]) AddEdgeWeighted(src, sink V, w Ew) error {
	if src == sink {
		return ensure.ErrInvariantViolation
	}
	return n.G.AddEdgeWeighted(src, sink, w)
}
