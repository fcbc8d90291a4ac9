// Package tarjan computes strongly connected components on top of
// traversal/dfs, per spec.md §4.5: a side-stack of (vertex, low-link)
// tracks each vertex's low-link as DFS proceeds, and a finished SCC is
// recognized exactly when an exiting vertex's low-link equals its own
// discovery index. SCCs are emitted in reverse topological order of the
// SCC DAG, the property traversal/tarjan's only consumer outside this
// package (property.Unilateral) relies on.
package tarjan
