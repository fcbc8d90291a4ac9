package proxy

import (
	"iter"

	"github.com/katalvlaran/graphene/graph"
)

// EdgeProxy overlays a set of virtually added edges and a set of
// virtually removed edges over an inner graph, without mutating it. It
// is the mechanism the wrappers in property/ use to ask "what would
// edges_between report if we committed this AddEdgeWeighted or
// RemoveEdgeWhereWeight call?" without actually committing it.
type EdgeProxy[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G

	added   map[V]map[V][]*Ew
	removed map[*Ew]bool
}

// NewEdgeProxy wraps g with an initially-empty overlay.
func NewEdgeProxy[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G) *EdgeProxy[G, V, Vw, Ew] {
	return &EdgeProxy[G, V, Vw, Ew]{
		G:       g,
		added:   make(map[V]map[V][]*Ew),
		removed: make(map[*Ew]bool),
	}
}

// EdgesBetween reports the inner edges minus any marked virtually
// removed (each removal marker hides only the one specific parallel
// edge it targeted, by pointer identity), plus any edges added to the
// overlay.
func (p *EdgeProxy[G, V, Vw, Ew]) EdgesBetween(u, v V) iter.Seq[*Ew] {
	return func(yield func(*Ew) bool) {
		for w := range p.G.EdgesBetween(u, v) {
			if p.removed[w] {
				continue
			}
			if !yield(w) {
				return
			}
		}
		for _, w := range p.added[u][v] {
			if !yield(w) {
				return
			}
		}
	}
}

// AddEdgeWeighted inserts an edge into the overlay only.
func (p *EdgeProxy[G, V, Vw, Ew]) AddEdgeWeighted(u, v V, w Ew) error {
	if p.added[u] == nil {
		p.added[u] = make(map[V][]*Ew)
	}
	wc := w
	p.added[u][v] = append(p.added[u][v], &wc)
	return nil
}

// RemoveEdgeWhereWeight removes, from the overlay's point of view, some
// one edge between u and v whose weight satisfies pred: preferring an
// overlay-added edge (so overlay churn undoes itself without touching
// the inner graph's marker set), then falling back to marking an inner
// edge virtually removed.
func (p *EdgeProxy[G, V, Vw, Ew]) RemoveEdgeWhereWeight(u, v V, pred func(*Ew) bool) (Ew, error) {
	var zero Ew
	if list := p.added[u][v]; len(list) > 0 {
		for i, w := range list {
			if pred(w) {
				p.added[u][v] = append(list[:i], list[i+1:]...)
				return *w, nil
			}
		}
	}
	for w := range p.G.EdgesBetween(u, v) {
		if p.removed[w] {
			continue
		}
		if pred(w) {
			p.removed[w] = true
			return *w, nil
		}
	}
	return zero, graph.ErrEdgeNotFound
}
