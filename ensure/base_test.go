package ensure_test

import (
	"testing"

	"github.com/katalvlaran/graphene/adjlist"
	"github.com/katalvlaran/graphene/ensure"
	"github.com/katalvlaran/graphene/graph"
	"github.com/stretchr/testify/require"
)

func idFn(idx int) string { return string(rune('a' + idx)) }

func TestBaseIsTransparent(t *testing.T) {
	g := adjlist.New[string, graph.Unit, int, graph.DirectedTag](idFn)
	a, _ := g.NewVertexWeighted(graph.Unit{})
	b, _ := g.NewVertexWeighted(graph.Unit{})
	require.NoError(t, g.AddEdgeWeighted(a, b, 1))

	base := ensure.Ensure(g)
	require.Equal(t, 2, base.VertexCount())
	require.Equal(t, 1, base.EdgeCount())

	released := base.Release()
	require.Same(t, g, released)
}
