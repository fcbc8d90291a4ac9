package proxy

import (
	"iter"

	"github.com/katalvlaran/graphene/graph"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// VertexID is the sum type a VertexProxy's vertices are identified by:
// either an existing vertex of the inner graph, or a fresh one minted by
// the proxy's own NewVertexWeighted and not yet known to the inner
// graph.
type VertexID[V comparable] struct {
	Inner   V
	Fresh   int
	IsFresh bool
}

// VertexProxy overlays a set of virtually added and virtually removed
// vertices over an inner graph, without mutating it. Edges are reported
// only between two inner (non-fresh) vertices neither of which has been
// virtually removed; a freshly added vertex has no edges until the
// overlay is committed.
type VertexProxy[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	G

	removed   map[V]bool
	added     map[int]*Vw
	nextFresh int
}

// NewVertexProxy wraps g with an initially-empty overlay.
func NewVertexProxy[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G) *VertexProxy[G, V, Vw, Ew] {
	return &VertexProxy[G, V, Vw, Ew]{
		G:       g,
		removed: make(map[V]bool),
		added:   make(map[int]*Vw),
	}
}

// AllVerticesWeighted yields every inner vertex not virtually removed,
// then every virtually added vertex in the order it was minted (fresh
// IDs are sorted, since the map they're held in has no stable iteration
// order of its own).
func (p *VertexProxy[G, V, Vw, Ew]) AllVerticesWeighted() iter.Seq2[VertexID[V], *Vw] {
	return func(yield func(VertexID[V], *Vw) bool) {
		for id, w := range p.G.AllVerticesWeighted() {
			if p.removed[id] {
				continue
			}
			if !yield(VertexID[V]{Inner: id}, w) {
				return
			}
		}
		freshIDs := maps.Keys(p.added)
		slices.Sort(freshIDs)
		for _, i := range freshIDs {
			if !yield(VertexID[V]{Fresh: i, IsFresh: true}, p.added[i]) {
				return
			}
		}
	}
}

// EdgesBetween delegates to the inner graph when both endpoints are
// existing, non-removed inner vertices; a fresh or virtually removed
// endpoint has no edges.
func (p *VertexProxy[G, V, Vw, Ew]) EdgesBetween(u, v VertexID[V]) iter.Seq[*Ew] {
	return func(yield func(*Ew) bool) {
		if u.IsFresh || v.IsFresh || p.removed[u.Inner] || p.removed[v.Inner] {
			return
		}
		for w := range p.G.EdgesBetween(u.Inner, v.Inner) {
			if !yield(w) {
				return
			}
		}
	}
}

// NewVertexWeighted mints a fresh vertex in the overlay only.
func (p *VertexProxy[G, V, Vw, Ew]) NewVertexWeighted(w Vw) (VertexID[V], error) {
	id := p.nextFresh
	p.nextFresh++
	wc := w
	p.added[id] = &wc
	return VertexID[V]{Fresh: id, IsFresh: true}, nil
}

// RemoveVertex removes v in the overlay only: a fresh vertex is dropped
// from the added set, an inner vertex is marked virtually removed.
func (p *VertexProxy[G, V, Vw, Ew]) RemoveVertex(v VertexID[V]) (Vw, error) {
	var zero Vw
	if v.IsFresh {
		w, ok := p.added[v.Fresh]
		if !ok {
			return zero, graph.ErrVertexNotFound
		}
		delete(p.added, v.Fresh)
		return *w, nil
	}
	if p.removed[v.Inner] {
		return zero, graph.ErrVertexNotFound
	}
	w, ok := graph.VertexWeight[V, Vw, Ew](p.G, v.Inner)
	if !ok {
		return zero, graph.ErrVertexNotFound
	}
	p.removed[v.Inner] = true
	return *w, nil
}
