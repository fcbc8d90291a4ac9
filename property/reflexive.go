package property

import (
	"github.com/katalvlaran/graphene/ensure"
	"github.com/katalvlaran/graphene/graph"
)

// Reflexive asserts every vertex carries exactly one self-loop. It
// carries no payload.
type Reflexive[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
}

// EnsureReflexive validates that every vertex of g currently has exactly
// one self-loop.
func EnsureReflexive[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any](g G) (Reflexive[G, V, Vw, Ew], error) {
	var zero Reflexive[G, V, Vw, Ew]
	if !everyVertexHasExactlyOneLoop[G, V, Vw, Ew](g) {
		return zero, ensure.ErrConstructionRejected
	}
	return Reflexive[G, V, Vw, Ew]{G: g}, nil
}

// Release peels the Reflexive wrapper back to the inner graph.
func (r Reflexive[G, V, Vw, Ew]) Release() G {
	return r.G
}

// NewVertexWeighted inserts a fresh vertex and automatically adds its
// self-loop with the zero value of Ew, maintaining the reflexive
// invariant for the new vertex.
func (r Reflexive[G, V, Vw, Ew]) NewVertexWeighted(w Vw) (V, error) {
	id, err := r.G.NewVertexWeighted(w)
	if err != nil {
		return id, err
	}
	var zeroEw Ew
	if err := r.G.AddEdgeWeighted(id, id, zeroEw); err != nil {
		return id, err
	}
	return id, nil
}

// RemoveVertex removes v; the inner graph's RemoveVertex already drops
// every edge incident on v, including its self-loop, so no extra
// bookkeeping is needed here.
func (r Reflexive[G, V, Vw, Ew]) RemoveVertex(v V) (Vw, error) {
	return r.G.RemoveVertex(v)
}

// RemoveEdgeWhereWeight refuses to remove a self-loop (u == v): doing so
// would leave the vertex with zero loops, breaking the reflexive
// invariant, since Reflexive guarantees exactly one. Edges between
// distinct vertices are unaffected by this property and pass through.
func (r Reflexive[G, V, Vw, Ew]) RemoveEdgeWhereWeight(u, v V, pred func(*Ew) bool) (Ew, error) {
	if u == v {
		var zero Ew
		return zero, ensure.ErrInvariantViolation
	}
	return r.G.RemoveEdgeWhereWeight(u, v, pred)
}
