package bfs

import (
	"context"
	"errors"
)

// ErrStartVertexNotFound is returned when the start vertex is absent
// from the graph.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// Option configures a BFS via functional arguments, mirroring the
// teacher's bfs.Option shape.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks customizing a BFS run.
type Options[V comparable] struct {
	// Ctx allows cancellation mid-traversal; checked once per Next.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before it is
	// popped and emitted.
	OnEnqueue func(v V, depth int)

	// MaxDepth, if > 0, stops enqueueing beyond this depth. Zero means
	// no limit.
	MaxDepth int
}

// DefaultOptions returns an Options with sane defaults: a background
// context, no depth limit, and a no-op enqueue hook.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:       context.Background(),
		OnEnqueue: func(V, int) {},
		MaxDepth:  0,
	}
}

// WithContext sets a custom cancellation context.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback run each time a vertex is enqueued.
func WithOnEnqueue[V comparable](fn func(v V, depth int)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithMaxDepth bounds exploration to the given depth (inclusive). Zero
// or negative disables the limit.
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *Options[V]) {
		if d > 0 {
			o.MaxDepth = d
		}
	}
}
