package dijkstra

import (
	"github.com/katalvlaran/graphene/graph"
	"github.com/katalvlaran/graphene/proxy"
)

// Dijkstra computes single-source shortest paths over any graph.Reader,
// pulled one vertex at a time via Next in non-decreasing distance order.
// Edge weights are threaded through an internal proxy.WeightMapProxy
// projecting the application edge-weight type Ew to the ordered,
// addable distance type D.
type Dijkstra[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any, D Dist] struct {
	inner    *proxy.WeightMapProxy[G, V, Vw, Ew, D]
	frontier []frontierEntry[V, Ew, D]
	visited  map[V]bool
	dist     map[V]D
	parent   map[V]V
	hasPar   map[V]bool
}

// New constructs a Dijkstra rooted at start, projecting each edge's
// weight through project. ErrStartVertexNotFound if start is not a
// vertex of g.
func New[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any, D Dist](
	g G, start V, project func(u, v V, w *Ew) D,
) (*Dijkstra[G, V, Vw, Ew, D], error) {
	if !graph.ContainsVertex[V, Vw, Ew](g, start) {
		return nil, ErrStartVertexNotFound
	}
	dk := &Dijkstra[G, V, Vw, Ew, D]{
		inner:   proxy.NewWeightMapProxy[G, V, Vw, Ew, D](g, project),
		visited: make(map[V]bool),
		dist:    make(map[V]D),
		parent:  make(map[V]V),
		hasPar:  make(map[V]bool),
	}
	dk.visit(start, start, 0)
	return dk, nil
}

// visit marks v visited at accumulated distance d (from predecessor
// par, ignored for the seed where par == v) and relaxes every edge out
// of v into the frontier.
func (dk *Dijkstra[G, V, Vw, Ew, D]) visit(par, v V, d D) {
	dk.visited[v] = true
	dk.dist[v] = d
	if par != v {
		dk.parent[v] = par
		dk.hasPar[v] = true
	}
	for ie := range graph.EdgesSourcedIn[V, Vw, D](dk.inner, v) {
		if dk.visited[ie.Other] {
			continue
		}
		nd := d + *ie.Weight
		dk.relax(v, ie.Other, ie.Weight, nd)
	}
}

// relax inserts or updates the frontier entry for sink, keeping the
// slice sorted descending by distance (minimum at the end) so Next's
// pop is a cheap slice truncation.
func (dk *Dijkstra[G, V, Vw, Ew, D]) relax(source, sink V, w *Ew, nd D) {
	for i := range dk.frontier {
		if dk.frontier[i].sink == sink {
			if nd < dk.frontier[i].dist {
				dk.frontier = append(dk.frontier[:i], dk.frontier[i+1:]...)
				break
			}
			return
		}
	}
	entry := frontierEntry[V, Ew, D]{dist: nd, source: source, sink: sink, weight: w}
	i := 0
	for i < len(dk.frontier) && dk.frontier[i].dist > nd {
		i++
	}
	dk.frontier = append(dk.frontier, frontierEntry[V, Ew, D]{})
	copy(dk.frontier[i+1:], dk.frontier[i:])
	dk.frontier[i] = entry
}

// Next pops the minimum-distance frontier entry, visits its sink, and
// returns (sink, cumulative distance, true). Returns (zero, zero, false)
// once the frontier is exhausted.
func (dk *Dijkstra[G, V, Vw, Ew, D]) Next() (V, D, bool) {
	for len(dk.frontier) > 0 {
		n := len(dk.frontier) - 1
		e := dk.frontier[n]
		dk.frontier = dk.frontier[:n]
		if dk.visited[e.sink] {
			continue
		}
		dk.visit(e.source, e.sink, e.dist)
		return e.sink, e.dist, true
	}
	var zeroV V
	var zeroD D
	return zeroV, zeroD, false
}

// Distance reports the cumulative distance to v and whether v has been
// visited yet.
func (dk *Dijkstra[G, V, Vw, Ew, D]) Distance(v V) (D, bool) {
	d, ok := dk.dist[v]
	return d, ok
}

// Predecessor reports v's predecessor on the shortest-path tree, and
// false if v is the start vertex or unvisited.
func (dk *Dijkstra[G, V, Vw, Ew, D]) Predecessor(v V) (V, bool) {
	p, ok := dk.hasPar[v]
	return dk.parent[v], ok && p
}

// Distances drains the whole traversal and returns every (vertex,
// cumulative distance) pair in non-decreasing distance order, including
// the seed vertex at distance zero.
func Distances[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any, D Dist](
	g G, start V, project func(u, v V, w *Ew) D,
) ([]V, map[V]D, error) {
	dk, err := New[G, V, Vw, Ew, D](g, start, project)
	if err != nil {
		return nil, nil, err
	}
	order := []V{start}
	for {
		v, _, ok := dk.Next()
		if !ok {
			break
		}
		order = append(order, v)
	}
	return order, dk.dist, nil
}
