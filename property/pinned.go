package property

import (
	"github.com/katalvlaran/graphene/ensure"
	"github.com/katalvlaran/graphene/graph"
)

// HasVertex asserts the inner graph contains a specific, pinned vertex.
// Its payload is that vertex's identity.
type HasVertex[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
	pinned V
}

// EnsureHasVertex validates that v is currently a vertex of g.
func EnsureHasVertex[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any](g G, v V) (HasVertex[G, V, Vw, Ew], error) {
	var zero HasVertex[G, V, Vw, Ew]
	if !graph.ContainsVertex[V, Vw, Ew](g, v) {
		return zero, ensure.ErrConstructionRejected
	}
	return HasVertex[G, V, Vw, Ew]{G: g, pinned: v}, nil
}

// Release peels the HasVertex wrapper back to (inner graph, pinned vertex).
func (h HasVertex[G, V, Vw, Ew]) Release() (G, V) {
	return h.G, h.pinned
}

// Pinned reports the vertex this wrapper pins.
func (h HasVertex[G, V, Vw, Ew]) Pinned() V {
	return h.pinned
}

// RemoveVertex refuses to remove the pinned vertex; any other vertex is
// removed normally.
func (h HasVertex[G, V, Vw, Ew]) RemoveVertex(v V) (Vw, error) {
	if v == h.pinned {
		var zero Vw
		return zero, ensure.ErrInvariantViolation
	}
	return h.G.RemoveVertex(v)
}

// VertexInGraph pins N vertices (N fixed by the length of the slice
// passed at construction, since Go generics have no const-N parameter),
// optionally requiring them to be pairwise distinct (UNIQUE in spec.md
// §4.4's "VertexInGraph<G, N, UNIQUE>"). Its payload is the pinned
// vertex slice.
type VertexInGraph[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
	pinned []V
	unique bool
}

// EnsureVertexInGraph validates that every vertex in vs is currently in
// g, and, if unique is true, that the vertices in vs are pairwise
// distinct.
func EnsureVertexInGraph[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any](g G, vs []V, unique bool) (VertexInGraph[G, V, Vw, Ew], error) {
	var zero VertexInGraph[G, V, Vw, Ew]
	for _, v := range vs {
		if !graph.ContainsVertex[V, Vw, Ew](g, v) {
			return zero, ensure.ErrConstructionRejected
		}
	}
	if unique {
		seen := make(map[V]bool, len(vs))
		for _, v := range vs {
			if seen[v] {
				return zero, ensure.ErrConstructionRejected
			}
			seen[v] = true
		}
	}
	pinned := make([]V, len(vs))
	copy(pinned, vs)
	return VertexInGraph[G, V, Vw, Ew]{G: g, pinned: pinned, unique: unique}, nil
}

// Release peels the VertexInGraph wrapper back to (inner graph, pinned vertices).
func (v VertexInGraph[G, V, Vw, Ew]) Release() (G, []V) {
	return v.G, v.pinned
}

// PinnedVertices returns the currently pinned vertex identities.
func (v VertexInGraph[G, V, Vw, Ew]) PinnedVertices() []V {
	out := make([]V, len(v.pinned))
	copy(out, v.pinned)
	return out
}

// RemoveVertex refuses to remove any of the pinned vertices.
func (v VertexInGraph[G, V, Vw, Ew]) RemoveVertex(x V) (Vw, error) {
	for _, p := range v.pinned {
		if x == p {
			var zero Vw
			return zero, ensure.ErrInvariantViolation
		}
	}
	return v.G.RemoveVertex(x)
}

// SetVertex swaps the vertex pinned at index i for a different in-graph
// vertex, refusing if nv is absent or, under uniqueness, already pinned
// at another index.
func (v *VertexInGraph[G, V, Vw, Ew]) SetVertex(i int, nv V) error {
	if !graph.ContainsVertex[V, Vw, Ew](v.G, nv) {
		return ensure.ErrConstructionRejected
	}
	if v.unique {
		for j, p := range v.pinned {
			if j != i && p == nv {
				return ensure.ErrConstructionRejected
			}
		}
	}
	v.pinned[i] = nv
	return nil
}

// Rooted is VertexInGraph with N=1, plus accessors naming the pinned
// vertex's semantic role as the graph's root.
type Rooted[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
	root V
}

// EnsureRooted validates that r is currently a vertex of g.
func EnsureRooted[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any](g G, r V) (Rooted[G, V, Vw, Ew], error) {
	var zero Rooted[G, V, Vw, Ew]
	if !graph.ContainsVertex[V, Vw, Ew](g, r) {
		return zero, ensure.ErrConstructionRejected
	}
	return Rooted[G, V, Vw, Ew]{G: g, root: r}, nil
}

// Release peels the Rooted wrapper back to (inner graph, root vertex).
func (r Rooted[G, V, Vw, Ew]) Release() (G, V) {
	return r.G, r.root
}

// IsRoot reports whether v is the pinned root.
func (r Rooted[G, V, Vw, Ew]) IsRoot(v V) bool {
	return v == r.root
}

// Root returns the pinned root vertex.
func (r Rooted[G, V, Vw, Ew]) Root() V {
	return r.root
}

// SetRoot repins the root to nv, refusing if nv is not currently a
// vertex of the inner graph.
func (r *Rooted[G, V, Vw, Ew]) SetRoot(nv V) error {
	if !graph.ContainsVertex[V, Vw, Ew](r.G, nv) {
		return ensure.ErrConstructionRejected
	}
	r.root = nv
	return nil
}

// RemoveVertex refuses to remove the root vertex.
func (r Rooted[G, V, Vw, Ew]) RemoveVertex(v V) (Vw, error) {
	if v == r.root {
		var zero Vw
		return zero, ensure.ErrInvariantViolation
	}
	return r.G.RemoveVertex(v)
}
