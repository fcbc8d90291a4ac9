package bfs

import (
	"github.com/katalvlaran/graphene/graph"
	"github.com/katalvlaran/graphene/traversal/internal/frontier"
)

type queueItem[V comparable] struct {
	vertex V
	depth  int
}

// BFS is a breadth-first search pinned to a start vertex, pulled one
// vertex at a time via Next. EdgesSourcedIn is used for expansion, so
// directed graphs only follow outgoing edges and undirected graphs
// follow every incident edge, matching spec.md §4.5.
type BFS[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	graph   G
	opts    Options[V]
	queue   []queueItem[V]
	visited *frontier.Set[V]
	depth   map[V]int
	parent  map[V]V
	hasPar  map[V]bool
}

// New constructs a BFS rooted at start. ErrStartVertexNotFound if start
// is not a vertex of g.
func New[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G, start V, opts ...Option[V]) (*BFS[G, V, Vw, Ew], error) {
	if !graph.ContainsVertex[V, Vw, Ew](g, start) {
		return nil, ErrStartVertexNotFound
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	b := &BFS[G, V, Vw, Ew]{
		graph:   g,
		opts:    o,
		visited: frontier.New[V](),
		depth:   make(map[V]int),
		parent:  make(map[V]V),
		hasPar:  make(map[V]bool),
	}
	b.enqueue(start, 0)
	return b, nil
}

func (b *BFS[G, V, Vw, Ew]) enqueue(v V, depth int) {
	if !b.visited.Visit(v) {
		return
	}
	b.depth[v] = depth
	b.opts.OnEnqueue(v, depth)
	b.queue = append(b.queue, queueItem[V]{vertex: v, depth: depth})
}

// Next pops the next vertex in BFS order, enqueueing its unvisited
// neighbors before returning it. Returns (zero, false) once the queue is
// exhausted.
func (b *BFS[G, V, Vw, Ew]) Next() (V, bool) {
	select {
	case <-b.opts.Ctx.Done():
		var zero V
		return zero, false
	default:
	}

	if len(b.queue) == 0 {
		var zero V
		return zero, false
	}
	item := b.queue[0]
	b.queue = b.queue[1:]

	if b.opts.MaxDepth <= 0 || item.depth < b.opts.MaxDepth {
		for ie := range graph.EdgesSourcedIn[V, Vw, Ew](b.graph, item.vertex) {
			if !b.visited.Has(ie.Other) {
				b.parent[ie.Other] = item.vertex
				b.hasPar[ie.Other] = true
				b.enqueue(ie.Other, item.depth+1)
			}
		}
	}
	return item.vertex, true
}

// Depth reports the hop count from the start vertex to v, and whether v
// has been visited yet.
func (b *BFS[G, V, Vw, Ew]) Depth(v V) (int, bool) {
	d, ok := b.depth[v]
	return d, ok
}

// Predecessor reports v's predecessor in the BFS tree, and false if v is
// the start vertex or unvisited.
func (b *BFS[G, V, Vw, Ew]) Predecessor(v V) (V, bool) {
	p, ok := b.hasPar[v]
	return b.parent[v], ok && p
}

// Drain runs the BFS to completion and returns every emitted vertex in
// visit order.
func (b *BFS[G, V, Vw, Ew]) Drain() []V {
	var out []V
	for {
		v, ok := b.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
