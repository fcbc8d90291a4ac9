// Package dfs implements depth-first search over any graph.Reader, with
// three pluggable hooks (OnVisit, OnExplore, OnExit) and an explicit
// vertex stack, per spec.md §4.5 and §9.
//
// The hooks are plain function values taking an explicit *Payload
// argument rather than closures capturing state, so a DFS value stays a
// concrete, embeddable type -- the same reasoning the teacher's own
// bfs/dfs packages apply with their OnVisit/OnEnqueue closures, pushed
// one step further here because traversal/tarjan drives a DFS over its
// own named payload type and needs that type nameable without an
// interface{} escape hatch.
package dfs
