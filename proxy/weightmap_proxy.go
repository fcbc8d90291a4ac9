package proxy

import (
	"iter"

	"github.com/katalvlaran/graphene/graph"
)

// WeightMapProxy re-types edge weights through a user function, leaving
// vertex weights untouched. Dijkstra (traversal/dijkstra) uses this to
// project an arbitrary application edge-weight type down to an ordered
// distance type.
type WeightMapProxy[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any, Ew2 any] struct {
	G

	Project func(u, v V, w *Ew) Ew2
}

// NewWeightMapProxy wraps g, mapping each edge weight through project.
func NewWeightMapProxy[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any, Ew2 any](
	g G, project func(u, v V, w *Ew) Ew2,
) *WeightMapProxy[G, V, Vw, Ew, Ew2] {
	return &WeightMapProxy[G, V, Vw, Ew, Ew2]{G: g, Project: project}
}

// EdgesBetween yields the projected weight of every inner edge between
// u and v.
func (p *WeightMapProxy[G, V, Vw, Ew, Ew2]) EdgesBetween(u, v V) iter.Seq[*Ew2] {
	return func(yield func(*Ew2) bool) {
		for w := range p.G.EdgesBetween(u, v) {
			mapped := p.Project(u, v, w)
			if !yield(&mapped) {
				return
			}
		}
	}
}
