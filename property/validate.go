package property

import "github.com/katalvlaran/graphene/graph"

// hasParallelEdge reports whether any ordered pair (directed) or
// unordered pair (undirected) reachable from some vertex's own
// source-side view has more than one edge between the pair, including
// loops counted once. A single pass per vertex over EdgesSourcedIn
// suffices: for undirected graphs EdgesSourcedIn already delegates to
// EdgesIncidentOn, which reports the full multiplicity of {u, v} from
// either endpoint's perspective; for directed graphs it reports exactly
// the ordered pair (u, v).
func hasParallelEdge[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G) bool {
	for u := range graph.AllVertices[V, Vw, Ew](g) {
		seen := make(map[V]int)
		for ie := range graph.EdgesSourcedIn[V, Vw, Ew](g, u) {
			seen[ie.Other]++
			if seen[ie.Other] > 1 {
				return true
			}
		}
	}
	return false
}

// hasLoop reports whether any vertex has a self-loop.
func hasLoop[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G) bool {
	for v := range graph.AllVertices[V, Vw, Ew](g) {
		if graph.Neighbors[V, Vw, Ew](g, v, v) {
			return true
		}
	}
	return false
}

// everyVertexHasExactlyOneLoop reports whether every vertex of g carries
// exactly one self-loop.
func everyVertexHasExactlyOneLoop[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any](g G) bool {
	for v := range graph.AllVertices[V, Vw, Ew](g) {
		n := 0
		for range g.EdgesBetween(v, v) {
			n++
		}
		if n != 1 {
			return false
		}
	}
	return true
}
