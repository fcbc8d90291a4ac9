package dijkstra

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrStartVertexNotFound is returned when the start vertex is absent
// from the graph.
var ErrStartVertexNotFound = errors.New("dijkstra: start vertex not found")

// Dist is the constraint a projected distance type D must satisfy:
// addable and totally ordered, matching the teacher's non-negative
// numeric distance convention generalized to any integer or float type.
// constraints.Ordered alone is too weak -- it also admits string -- so
// Dist is pinned to the numeric half of the ecosystem's constraint set.
type Dist interface {
	constraints.Integer | constraints.Float
}

type frontierEntry[V comparable, Ew any, D Dist] struct {
	dist   D
	source V
	sink   V
	weight *Ew
}
