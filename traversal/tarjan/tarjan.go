package tarjan

import (
	"github.com/katalvlaran/graphene/graph"
	"github.com/katalvlaran/graphene/proxy"
	"github.com/katalvlaran/graphene/traversal/dfs"
)

type payload[V comparable] struct {
	index     map[V]int
	lowlink   map[V]int
	onStack   map[V]bool
	parent    map[V]V
	hasParent map[V]bool
	sideStack []V
	counter   int
	sccs      [][]V
}

// Tarjan computes the strongly connected components of a directed
// graph, pulled one SCC at a time via Next in reverse topological order
// of the SCC DAG. The whole DFS forest is driven to completion once, at
// construction, since low-link propagation from a child to its parent
// only ever happens on the child's exit -- an online step-by-step
// interleaving would need to expose the DFS's own stack, which
// traversal/dfs deliberately keeps private.
type Tarjan[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any] struct {
	graph G
	sccs  [][]V
	next  int
}

// New computes every SCC of g and returns a Tarjan ready to yield them
// one at a time via Next, in reverse topological order of the SCC DAG.
func New[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G) *Tarjan[G, V, Vw, Ew] {
	p := payload[V]{
		index:     make(map[V]int),
		lowlink:   make(map[V]int),
		onStack:   make(map[V]bool),
		parent:    make(map[V]V),
		hasParent: make(map[V]bool),
	}
	hooks := dfs.Hooks[G, V, Vw, Ew, payload[V]]{
		OnVisit: func(_ *dfs.DFS[G, V, Vw, Ew, payload[V]], v V, pl *payload[V]) {
			pl.index[v] = pl.counter
			pl.lowlink[v] = pl.counter
			pl.counter++
			pl.sideStack = append(pl.sideStack, v)
			pl.onStack[v] = true
		},
		OnExplore: func(d *dfs.DFS[G, V, Vw, Ew, payload[V]], source, sink V, _ *Ew, pl *payload[V]) {
			if !d.Visited(sink) {
				pl.parent[sink] = source
				pl.hasParent[sink] = true
				return
			}
			if pl.onStack[sink] {
				if pl.index[sink] < pl.lowlink[source] {
					pl.lowlink[source] = pl.index[sink]
				}
			}
		},
		OnExit: func(_ *dfs.DFS[G, V, Vw, Ew, payload[V]], v V, pl *payload[V]) {
			if pl.hasParent[v] {
				u := pl.parent[v]
				if pl.lowlink[v] < pl.lowlink[u] {
					pl.lowlink[u] = pl.lowlink[v]
				}
			}
			if pl.lowlink[v] == pl.index[v] {
				var scc []V
				for {
					n := len(pl.sideStack) - 1
					top := pl.sideStack[n]
					pl.sideStack = pl.sideStack[:n]
					pl.onStack[top] = false
					scc = append(scc, top)
					if top == v {
						break
					}
				}
				pl.sccs = append(pl.sccs, scc)
			}
		},
	}
	d := dfs.New[G, V, Vw, Ew, payload[V]](g, hooks, p)
	for v := range graph.AllVertices[V, Vw, Ew](g) {
		if d.Visited(v) {
			continue
		}
		d.ContinueFrom(v)
		for {
			if _, ok := d.Next(); !ok {
				break
			}
		}
	}
	return &Tarjan[G, V, Vw, Ew]{graph: g, sccs: d.Payload.sccs}
}

// Next pops the next SCC, wrapped as a read-only SubgraphProxy over the
// underlying graph, in reverse topological order of the SCC DAG.
// Returns (nil, false) once every SCC has been yielded.
func (t *Tarjan[G, V, Vw, Ew]) Next() (*proxy.SubgraphProxy[G, V, Vw, Ew], bool) {
	if t.next >= len(t.sccs) {
		return nil, false
	}
	members := t.sccs[t.next]
	t.next++

	sp := proxy.NewSubgraphProxy[G, V, Vw, Ew](t.graph, members[0])
	for _, m := range members[1:] {
		sp.Grow(m)
	}
	return sp, true
}

// All drains every SCC into a slice of subgraph proxies, in reverse
// topological order of the SCC DAG.
func (t *Tarjan[G, V, Vw, Ew]) All() []*proxy.SubgraphProxy[G, V, Vw, Ew] {
	var out []*proxy.SubgraphProxy[G, V, Vw, Ew]
	for {
		sp, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, sp)
	}
}
