// Package dijkstra computes single-source shortest paths, per spec.md
// §4.5: a visited set and a priority-ordered frontier of tentative
// (distance, edge) entries, sorted so the minimum is at the end for
// cheap popping via slice truncation. Arbitrary application edge-weight
// types are projected to an ordered, addable distance type D through a
// proxy.WeightMapProxy, so the algorithm itself only ever adds values of
// D.
package dijkstra
