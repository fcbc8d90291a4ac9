package property

import (
	"github.com/katalvlaran/graphene/ensure"
	"github.com/katalvlaran/graphene/graph"
)

// Directed asserts its inner graph's directedness tag is Directed. It
// carries no payload and adds no mutation contract of its own -- all
// mutations pass through to the inner graph untouched, per
// spec.md §4.4 ("All mutations pass through unchanged").
type Directed[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
}

// EnsureDirected validates that g reports Directed() == true.
func EnsureDirected[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any](g G) (Directed[G, V, Vw, Ew], error) {
	var zero Directed[G, V, Vw, Ew]
	if !g.Directed() {
		return zero, ensure.ErrConstructionRejected
	}
	return Directed[G, V, Vw, Ew]{G: g}, nil
}

// Release peels the Directed wrapper back to the inner graph.
func (d Directed[G, V, Vw, Ew]) Release() G {
	return d.G
}

// Undirected asserts its inner graph's directedness tag is Undirected.
type Undirected[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
}

// EnsureUndirected validates that g reports Directed() == false.
func EnsureUndirected[G graph.Full[V, Vw, Ew], V comparable, Vw any, Ew any](g G) (Undirected[G, V, Vw, Ew], error) {
	var zero Undirected[G, V, Vw, Ew]
	if g.Directed() {
		return zero, ensure.ErrConstructionRejected
	}
	return Undirected[G, V, Vw, Ew]{G: g}, nil
}

// Release peels the Undirected wrapper back to the inner graph.
func (u Undirected[G, V, Vw, Ew]) Release() G {
	return u.G
}
