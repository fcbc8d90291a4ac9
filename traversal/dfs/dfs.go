package dfs

import (
	"iter"

	"github.com/katalvlaran/graphene/graph"
)

type frame[V comparable, Ew any] struct {
	vertex V
	next   func() (graph.IncidentEdge[V, Ew], bool)
	stop   func()
}

// DFS is a depth-first search over any graph.Reader, driven by an
// explicit vertex stack and three pluggable Hooks. A DFS is not started
// against any vertex at construction time; call ContinueFrom to seed (or
// re-seed, for forest-DFS over disconnected graphs) exploration.
type DFS[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any, P any] struct {
	Graph   G
	Hooks   Hooks[G, V, Vw, Ew, P]
	Payload P

	visited map[V]bool
	stack   []frame[V, Ew]
}

// New constructs an unstarted DFS over g.
func New[G graph.Reader[V, Vw, Ew], V comparable, Vw any, Ew any, P any](g G, hooks Hooks[G, V, Vw, Ew, P], payload P) *DFS[G, V, Vw, Ew, P] {
	return &DFS[G, V, Vw, Ew, P]{
		Graph:   g,
		Hooks:   hooks,
		Payload: payload,
		visited: make(map[V]bool),
	}
}

// Visited reports whether v has already been discovered.
func (d *DFS[G, V, Vw, Ew, P]) Visited(v V) bool {
	return d.visited[v]
}

// ContinueFrom pushes start onto the stack and fires OnVisit, unless
// start has already been visited. Returns false in the latter case.
func (d *DFS[G, V, Vw, Ew, P]) ContinueFrom(start V) bool {
	if d.visited[start] {
		return false
	}
	d.pushVisit(start)
	return true
}

func (d *DFS[G, V, Vw, Ew, P]) pushVisit(v V) {
	d.visited[v] = true
	seq := graph.EdgesSourcedIn[V, Vw, Ew](d.Graph, v)
	next, stop := iter.Pull(seq)
	d.stack = append(d.stack, frame[V, Ew]{vertex: v, next: next, stop: stop})
	if d.Hooks.OnVisit != nil {
		d.Hooks.OnVisit(d, v, &d.Payload)
	}
}

type stepKind int

const (
	stepDone stepKind = iota
	stepDiscover
	stepExit
)

// step advances by exactly one edge-exploration or one frame-pop,
// whichever the top of the stack currently needs, firing OnExplore and
// (on discovery) OnVisit, or (on pop) OnExit as appropriate.
func (d *DFS[G, V, Vw, Ew, P]) step() (V, stepKind) {
	for len(d.stack) > 0 {
		top := &d.stack[len(d.stack)-1]
		ie, ok := top.next()
		if !ok {
			top.stop()
			exited := top.vertex
			d.stack = d.stack[:len(d.stack)-1]
			if d.Hooks.OnExit != nil {
				d.Hooks.OnExit(d, exited, &d.Payload)
			}
			return exited, stepExit
		}
		if d.Hooks.OnExplore != nil {
			d.Hooks.OnExplore(d, top.vertex, ie.Other, ie.Weight, &d.Payload)
		}
		if !d.visited[ie.Other] {
			d.pushVisit(ie.Other)
			return ie.Other, stepDiscover
		}
	}
	var zero V
	return zero, stepDone
}

// Next advances the DFS until a new vertex is discovered (draining any
// exit-marked frames along the way, firing OnExit for each in
// stack-reverse order) and returns it, or (zero, false) once the whole
// current stack is exhausted.
func (d *DFS[G, V, Vw, Ew, P]) Next() (V, bool) {
	for {
		v, kind := d.step()
		switch kind {
		case stepDiscover:
			return v, true
		case stepDone:
			var zero V
			return zero, false
		}
	}
}

// AdvanceNextExit drives the DFS forward without ever stopping to report
// a freshly discovered vertex, collecting every vertex popped (in the
// order it is popped: stack-reverse of discovery) until the stack is
// exhausted, so a whole DFS tree runs to completion while every OnExit
// firing is still observed through the hooks.
func (d *DFS[G, V, Vw, Ew, P]) AdvanceNextExit() []V {
	var exited []V
	for {
		v, kind := d.step()
		switch kind {
		case stepExit:
			exited = append(exited, v)
		case stepDone:
			return exited
		}
	}
}

// StackDepth reports how many frames are currently on the traversal
// stack (the exploration depth of the vertex currently being expanded).
func (d *DFS[G, V, Vw, Ew, P]) StackDepth() int {
	return len(d.stack)
}
