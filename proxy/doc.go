// Package proxy implements the read-only overlay and reinterpretation
// views (C4) that the property wrappers use to simulate a mutation
// before committing it, and that the traversal cores use to project a
// graph's structure (undirected view of a directed graph, reversed
// edges, a weight-mapped view, a growing vertex subset with its exit
// edges).
//
// Every proxy embeds its inner graph.Reader anonymously and overrides
// only the methods its view changes -- AllVerticesWeighted and/or
// EdgesBetween, and sometimes Directed() -- so every other capability of
// the inner graph (including mutation capabilities on graphs that
// support them) passes through untouched, per spec.md §4.1's "a wrapper
// passes a capability through iff compatible."
//
// None of these proxies mutate the graph they wrap; EdgeProxy and
// VertexProxy accept virtual add/remove calls that only touch their own
// overlay state.
package proxy
