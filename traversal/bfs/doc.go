// Package bfs implements breadth-first search over any graph.Reader,
// pinned to a start vertex, following the teacher's bfs package shape
// (functional Options; depth and parent lookups, here via Depth and
// Predecessor, with Drain returning the visit order) generalized
// from core.Graph to the graph.Reader capability interface and from
// string-keyed vertices to any comparable V, per spec.md §4.5.
package bfs
