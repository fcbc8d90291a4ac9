// Package graph defines the abstract graph data model and the capability
// interfaces (C1/C2 in the design) that every concrete storage type and
// every property wrapper in this module build on.
//
// Nothing here owns storage. Vertex identity is the bare type parameter V;
// a graph value is anything implementing Reader (read-only) or Full
// (read plus à la carte mutation). Directedness is a compile-time tag
// (DirectedTag / UndirectedTag) rather than a runtime flag, so algorithms
// that only have one code path for directed graphs never pay for a branch
// they don't need.
//
// The "derived" conveniences (AllVertices, VertexWeight, EdgesSourcedIn,
// ...) are free functions over Reader, not interface methods: Go has no
// default trait methods, so every convenience the original design gets
// "for free" from a trait default becomes its own top-level function here.
package graph
