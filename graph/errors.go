package graph

import "errors"

// Sentinel errors for the missing-entity error kind (spec-level kind 1):
// a method was invoked on a vertex or edge not present in the graph.
var (
	// ErrVertexNotFound is returned when an operation references a vertex
	// that does not currently exist in the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound is returned when an operation references an edge
	// (or endpoint pair, or weight predicate) that matches nothing.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)
