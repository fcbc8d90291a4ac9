package graph

import "iter"

// Reader is the read capability every graph type must provide. It is
// deliberately minimal: two primitives (AllVerticesWeighted,
// EdgesBetween) from which every derived convenience in derived.go is
// built.
type Reader[V comparable, Vw any, Ew any] interface {
	Directedness

	// AllVerticesWeighted yields every vertex paired with a mutable
	// pointer to its weight, in unspecified but finite order. Two calls
	// against an unmutated graph need not yield the same sequence (the
	// adjlist reference storage, for one, follows Go map order).
	AllVerticesWeighted() iter.Seq2[V, *Vw]

	// EdgesBetween yields the weight of every edge with endpoints {u, v}
	// (unordered) or u->v (directed). One element per parallel edge.
	EdgesBetween(u, v V) iter.Seq[*Ew]
}

// VertexAdder is the à la carte capability to mint a fresh vertex.
type VertexAdder[V comparable, Vw any] interface {
	// NewVertexWeighted inserts a fresh vertex with weight w and returns
	// its newly minted identity.
	NewVertexWeighted(w Vw) (V, error)
}

// VertexRemover is the à la carte capability to delete a vertex.
type VertexRemover[V comparable, Vw any] interface {
	// RemoveVertex deletes v and every edge incident on it, returning v's
	// weight. ErrVertexNotFound if v does not exist.
	RemoveVertex(v V) (Vw, error)
}

// EdgeAdder is the à la carte capability to insert an edge.
type EdgeAdder[V comparable, Ew any] interface {
	// AddEdgeWeighted inserts an edge between two currently existing
	// vertices. Parallel edges are permitted at this layer.
	AddEdgeWeighted(u, v V, w Ew) error
}

// EdgeRemover is the à la carte capability to delete a matching edge.
type EdgeRemover[V comparable, Ew any] interface {
	// RemoveEdgeWhereWeight removes and returns the weight of some one
	// edge with endpoints (u, v) (or {u, v} if undirected) whose weight
	// satisfies pred. ErrEdgeNotFound if no such edge exists.
	RemoveEdgeWhereWeight(u, v V, pred func(*Ew) bool) (Ew, error)
}

// Counter reports finite cardinalities.
type Counter interface {
	VertexCount() int
	EdgeCount() int
}

// Full is the conjunction of every capability: the type a BaseGraph and
// every property wrapper in property/ must satisfy.
type Full[V comparable, Vw any, Ew any] interface {
	Reader[V, Vw, Ew]
	VertexAdder[V, Vw]
	VertexRemover[V, Vw]
	EdgeAdder[V, Ew]
	EdgeRemover[V, Ew]
	Counter
}
