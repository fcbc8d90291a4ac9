package proxy

import (
	"iter"

	"github.com/katalvlaran/graphene/graph"
)

// ReverseProxy swaps source and sink in every edge reported, over a
// directed inner graph. Used by the Connected validation's second,
// reverse-direction reachability pass.
type ReverseProxy[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
}

// NewReverseProxy wraps g with source and sink swapped.
func NewReverseProxy[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G) *ReverseProxy[G, V, Vw, Ew] {
	return &ReverseProxy[G, V, Vw, Ew]{G: g}
}

// EdgesBetween(u, v) reports the inner graph's edges v -> u.
func (p *ReverseProxy[G, V, Vw, Ew]) EdgesBetween(u, v V) iter.Seq[*Ew] {
	return p.G.EdgesBetween(v, u)
}
