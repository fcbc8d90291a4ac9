package dfs

import "github.com/katalvlaran/graphene/graph"

// VisitFunc is called the moment v is first discovered.
type VisitFunc[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any, P any] func(d *DFS[G, V, Vw, Ew, P], v V, payload *P)

// ExploreFunc is called for every outgoing edge considered from source,
// regardless of whether sink has already been visited.
type ExploreFunc[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any, P any] func(d *DFS[G, V, Vw, Ew, P], source, sink V, w *Ew, payload *P)

// ExitFunc is called when v is popped, having exhausted its subtree.
type ExitFunc[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any, P any] func(d *DFS[G, V, Vw, Ew, P], v V, payload *P)

// Hooks bundles the three pluggable DFS callbacks. Each is a plain
// function value threading an explicit *P payload rather than a closure
// capturing outer state, per spec.md §4.5 and §9 -- deliberately
// narrower than the teacher's own bfs.Option/dfs.Option closures, so
// that a DFS value (and anything built on one, like tarjan) stays a
// concrete, nameable, embeddable type.
type Hooks[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any, P any] struct {
	OnVisit   VisitFunc[G, V, Vw, Ew, P]
	OnExplore ExploreFunc[G, V, Vw, Ew, P]
	OnExit    ExitFunc[G, V, Vw, Ew, P]
}
