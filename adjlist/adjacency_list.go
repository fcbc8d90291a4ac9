package adjlist

import (
	"iter"
	"sync"

	"github.com/katalvlaran/graphene/graph"
)

// AdjList is a thread-safe, in-memory adjacency-list graph: a concrete
// BaseGraph. It supports parallel edges and loops at this layer (any
// property forbidding either is enforced by the wrapper stack built on
// top, not here) and fixes its directedness at construction via the D
// type parameter.
type AdjList[V comparable, Vw any, Ew any, D graph.Directedness] struct {
	D

	mu sync.RWMutex

	idGen   func(idx int) V
	nextIdx int

	vertices map[V]*Vw
	// adjacency[u][v] holds one *Ew per parallel edge with source u and
	// sink v (directed), or every edge touching the unordered pair
	// {u, v} (undirected) -- stored under both adjacency[u][v] and
	// adjacency[v][u] as the *same* pointer, so mutating the weight
	// through either view mutates the one logical edge.
	adjacency map[V]map[V][]*Ew

	edgeCount int
}

// New constructs an empty AdjList. idGen mints a fresh vertex identity
// from a zero-based call counter; an identity already in use is skipped
// and the counter advanced again.
func New[V comparable, Vw any, Ew any, D graph.Directedness](idGen func(idx int) V) *AdjList[V, Vw, Ew, D] {
	return &AdjList[V, Vw, Ew, D]{
		idGen:     idGen,
		vertices:  make(map[V]*Vw),
		adjacency: make(map[V]map[V][]*Ew),
	}
}

// AllVerticesWeighted yields every vertex with a mutable pointer to its
// weight. The snapshot is taken under a read lock and then released
// before any element is yielded, so a caller iterating this sequence may
// safely call other AdjList methods (e.g. to mutate) without deadlocking
// -- though doing so mid-traversal is outside the contract spec.md §5
// assumes of callers.
func (a *AdjList[V, Vw, Ew, D]) AllVerticesWeighted() iter.Seq2[V, *Vw] {
	a.mu.RLock()
	snap := make([]struct {
		id V
		w  *Vw
	}, 0, len(a.vertices))
	for id, w := range a.vertices {
		snap = append(snap, struct {
			id V
			w  *Vw
		}{id, w})
	}
	a.mu.RUnlock()

	return func(yield func(V, *Vw) bool) {
		for _, e := range snap {
			if !yield(e.id, e.w) {
				return
			}
		}
	}
}

// EdgesBetween yields the weight of every edge with endpoints {u, v}
// (only the edges u -> v on a directed graph).
func (a *AdjList[V, Vw, Ew, D]) EdgesBetween(u, v V) iter.Seq[*Ew] {
	a.mu.RLock()
	var snap []*Ew
	if nbrs, ok := a.adjacency[u]; ok {
		snap = append(snap, nbrs[v]...)
	}
	a.mu.RUnlock()

	return func(yield func(*Ew) bool) {
		for _, w := range snap {
			if !yield(w) {
				return
			}
		}
	}
}

// Directed reports the graph's fixed directedness; promoted from D, kept
// here only as documentation -- no override.

// NewVertexWeighted inserts a fresh vertex with weight w and returns its
// newly minted identity.
func (a *AdjList[V, Vw, Ew, D]) NewVertexWeighted(w Vw) (V, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var id V
	for {
		id = a.idGen(a.nextIdx)
		a.nextIdx++
		if _, exists := a.vertices[id]; !exists {
			break
		}
	}
	wc := w
	a.vertices[id] = &wc
	a.adjacency[id] = make(map[V][]*Ew)

	return id, nil
}

// RemoveVertex deletes v and every edge incident on it, returning v's
// weight.
func (a *AdjList[V, Vw, Ew, D]) RemoveVertex(v V) (Vw, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	w, ok := a.vertices[v]
	if !ok {
		var zero Vw
		return zero, graph.ErrVertexNotFound
	}

	for to := range a.adjacency[v] {
		a.edgeCount -= len(a.adjacency[v][to])
	}
	delete(a.adjacency, v)
	var d D
	for from := range a.adjacency {
		if es, ok := a.adjacency[from][v]; ok {
			// On an undirected graph AddEdgeWeighted stores every edge
			// symmetrically (adjacency[u][v] and adjacency[v][u] both hold
			// it), so the first loop above already counted it once via
			// v's own entry; only a directed graph's incoming edges are a
			// disjoint set still needing to be counted here.
			if d.Directed() {
				a.edgeCount -= len(es)
			}
			delete(a.adjacency[from], v)
		}
	}
	delete(a.vertices, v)

	return *w, nil
}

// AddEdgeWeighted inserts an edge between two currently existing
// vertices. Both endpoints must exist; parallel edges are permitted.
func (a *AdjList[V, Vw, Ew, D]) AddEdgeWeighted(u, v V, w Ew) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.vertices[u]; !ok {
		return graph.ErrVertexNotFound
	}
	if _, ok := a.vertices[v]; !ok {
		return graph.ErrVertexNotFound
	}

	wc := w
	a.adjacency[u][v] = append(a.adjacency[u][v], &wc)
	var d D
	if !d.Directed() && u != v {
		a.adjacency[v][u] = append(a.adjacency[v][u], &wc)
	}
	a.edgeCount++

	return nil
}

// RemoveEdgeWhereWeight removes and returns the weight of some one edge
// with endpoints (u, v) whose weight satisfies pred.
func (a *AdjList[V, Vw, Ew, D]) RemoveEdgeWhereWeight(u, v V, pred func(*Ew) bool) (Ew, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var zero Ew
	nbrs, ok := a.adjacency[u]
	if !ok {
		return zero, graph.ErrEdgeNotFound
	}
	list := nbrs[v]
	idx := -1
	for i, w := range list {
		if pred(w) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, graph.ErrEdgeNotFound
	}
	target := list[idx]
	a.adjacency[u][v] = append(list[:idx], list[idx+1:]...)

	var d D
	if !d.Directed() && u != v {
		mirror := a.adjacency[v][u]
		for i, w := range mirror {
			if w == target {
				a.adjacency[v][u] = append(mirror[:i], mirror[i+1:]...)
				break
			}
		}
	}
	a.edgeCount--

	return *target, nil
}

// VertexCount reports the number of vertices in the graph.
func (a *AdjList[V, Vw, Ew, D]) VertexCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.vertices)
}

// EdgeCount reports the number of logical edges in the graph (an
// undirected edge between two distinct vertices counts once).
func (a *AdjList[V, Vw, Ew, D]) EdgeCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.edgeCount
}
