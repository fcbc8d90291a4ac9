package proxy

import (
	"iter"

	"github.com/katalvlaran/graphene/graph"
)

// UndirectedProxy reinterprets a directed graph's edges as undirected:
// EdgesBetween(u, v) reports both inner directions. Used by the Weak
// connectedness validation (property.Weak ensures Connected over this
// view).
type UndirectedProxy[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G
}

// NewUndirectedProxy wraps g as an undirected view.
func NewUndirectedProxy[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G) *UndirectedProxy[G, V, Vw, Ew] {
	return &UndirectedProxy[G, V, Vw, Ew]{G: g}
}

// Directed always reports false: this view is undirected by construction
// regardless of what the inner graph's own tag says.
func (p *UndirectedProxy[G, V, Vw, Ew]) Directed() bool { return false }

// EdgesBetween reports inner edges in either direction between u and v.
func (p *UndirectedProxy[G, V, Vw, Ew]) EdgesBetween(u, v V) iter.Seq[*Ew] {
	return func(yield func(*Ew) bool) {
		for w := range p.G.EdgesBetween(u, v) {
			if !yield(w) {
				return
			}
		}
		if u != v {
			for w := range p.G.EdgesBetween(v, u) {
				if !yield(w) {
					return
				}
			}
		}
	}
}
