package csr_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgesort/builder"
	"github.com/katalvlaran/edgesort/core"
	"github.com/katalvlaran/edgesort/counting"
	"github.com/katalvlaran/edgesort/csr"
)

func TestBFS_ShuffledCycle(t *testing.T) {
	el, err := builder.BuildEdges(
		[]builder.BuilderOption{builder.WithSeed(4), builder.WithShuffle()},
		builder.Cycle(6),
	)
	require.NoError(t, err)

	g, err := csr.Build(el.Edges, el.NumVertices, counting.Sort)
	require.NoError(t, err)

	res, err := g.BFS(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5, 0, 1}, res.Order)
	assert.Equal(t, []int{4, 5, 0, 1, 2, 3}, res.Depth)
	assert.Equal(t, []int{5, 0, csr.Unreached, 2, 3, 4}, res.Parent)
}

func TestBFS_Unreachable(t *testing.T) {
	sorted := []core.Edge{core.E(0, 1), core.E(0, 2), core.E(2, 1)}
	g, err := csr.FromSorted(sorted, 4)
	require.NoError(t, err)

	res, err := g.BFS(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 1, csr.Unreached}, res.Depth)
	assert.Equal(t, []int{csr.Unreached, 0, 0, csr.Unreached}, res.Parent)
}

func TestBFS_Errors(t *testing.T) {
	g, err := csr.FromSorted([]core.Edge{core.E(0, 1)}, 2)
	require.NoError(t, err)

	_, err = g.BFS(context.Background(), 2)
	assert.ErrorIs(t, err, csr.ErrStartVertexNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.BFS(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
