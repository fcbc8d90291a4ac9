// Package adjlist is the reference concrete storage layout satisfying
// graph.Full. Concrete storage is explicitly out of scope for the core
// design (spec.md §1: "treated as any type satisfying the capability
// interfaces") but the property and traversal layers need at least one
// real implementation to be built, tested, and demonstrated against, so
// this package plays that role the way core/adjacency_list.go plays it
// for the teacher's own bfs/dfs/dijkstra packages.
//
// AdjList is generic over vertex identity V, vertex weight Vw, edge
// weight Ew, and the compile-time directedness tag D (graph.DirectedTag
// or graph.UndirectedTag), embedding D so Directed() is free. Mutations
// take a sync.RWMutex, following the teacher's core.Graph locking
// discipline, even though the layers above (proxy, property, traversal)
// are themselves single-threaded per spec.md §5.
package adjlist
