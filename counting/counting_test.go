package counting_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgesort/builder"
	"github.com/katalvlaran/edgesort/core"
	"github.com/katalvlaran/edgesort/counting"
)

// scenario is the reference fixture: groups ascend, intra-group order is kept.
var (
	scenarioIn   = []core.Edge{core.E(3, 1), core.E(1, 2), core.E(3, 4), core.E(0, 5), core.E(1, 6)}
	scenarioWant = []core.Edge{core.E(0, 5), core.E(1, 2), core.E(1, 6), core.E(3, 1), core.E(3, 4)}
)

func TestSort_Scenario(t *testing.T) {
	in := append([]core.Edge(nil), scenarioIn...)
	out := make([]core.Edge, len(in))

	require.NoError(t, counting.Sort(out, in, 4, len(in)))
	assert.Equal(t, scenarioWant, out)
	assert.Equal(t, scenarioIn, in, "input must not be modified")
}

func TestSort_Empty(t *testing.T) {
	assert.NoError(t, counting.Sort(nil, nil, 0, 0))
	assert.NoError(t, counting.Sort(nil, nil, 10, 0))
	assert.NoError(t, counting.Sort([]core.Edge{}, []core.Edge{core.E(5, 5)}, 1, 0))
}

func TestSort_SingleVertexKeepsOrder(t *testing.T) {
	in := []core.Edge{core.E(0, 3), core.E(0, 1), core.E(0, 2), core.E(0, 0)}
	out := make([]core.Edge, len(in))

	require.NoError(t, counting.Sort(out, in, 1, len(in)))
	assert.Equal(t, in, out)
}

func TestSort_Idempotent(t *testing.T) {
	once := make([]core.Edge, len(scenarioWant))
	require.NoError(t, counting.Sort(once, scenarioWant, 4, len(scenarioWant)))
	assert.Equal(t, scenarioWant, once)
}

func TestSort_PrefixOnly(t *testing.T) {
	// Only the first numEdges edges are sorted; the tail of sorted is untouched.
	in := []core.Edge{core.E(2, 0), core.E(1, 0), core.E(0, 0), core.E(99, 99)}
	sentinel := core.E(-7, -7)
	out := []core.Edge{sentinel, sentinel, sentinel, sentinel, sentinel}

	require.NoError(t, counting.Sort(out, in, 3, 3))
	assert.Equal(t, []core.Edge{core.E(0, 0), core.E(1, 0), core.E(2, 0), sentinel, sentinel}, out)
}

func TestSort_RandomStablePermutation(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		el, err := builder.BuildEdges(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomEdges(37, 2000),
		)
		require.NoError(t, err)

		out := make([]core.Edge, el.NumEdges())
		require.NoError(t, counting.Sort(out, el.Edges, el.NumVertices, el.NumEdges()))
		assert.True(t, core.IsSortedBySource(out), "seed %d", seed)
		assert.True(t, core.IsStablePermutation(out, el.Edges), "seed %d", seed)
	}
}

func TestSort_StarReversesSources(t *testing.T) {
	el, err := builder.BuildEdges(nil, builder.Star(6))
	require.NoError(t, err)

	out := make([]core.Edge, el.NumEdges())
	require.NoError(t, counting.Sort(out, el.Edges, el.NumVertices, el.NumEdges()))
	assert.Equal(t, []core.Edge{core.E(1, 0), core.E(2, 0), core.E(3, 0), core.E(4, 0), core.E(5, 0)}, out)
}

func TestSort_Errors(t *testing.T) {
	in := []core.Edge{core.E(0, 1), core.E(4, 1)}
	sentinel := core.E(-1, -1)

	cases := []struct {
		name        string
		out         []core.Edge
		numVertices int
		numEdges    int
		want        error
	}{
		{"key out of range", []core.Edge{sentinel, sentinel}, 4, 2, core.ErrInvalidKey},
		{"short output", []core.Edge{sentinel}, 5, 2, core.ErrCapacityMismatch},
		{"negative vertices", []core.Edge{sentinel, sentinel}, -3, 2, core.ErrInvalidCount},
		{"too many edges", []core.Edge{sentinel, sentinel, sentinel}, 5, 3, core.ErrInvalidCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := counting.Sort(tc.out, in, tc.numVertices, tc.numEdges)
			require.ErrorIs(t, err, tc.want)
			for _, e := range tc.out {
				assert.Equal(t, sentinel, e, "no write may happen before validation passes")
			}
		})
	}
}

func TestSort_OutOfMemory(t *testing.T) {
	in := []core.Edge{core.E(0, 0)}
	err := counting.Sort(make([]core.Edge, 1), in, math.MaxInt, 1)
	assert.ErrorIs(t, err, core.ErrOutOfMemory)
	assert.Contains(t, err.Error(), "counting.Sort")
}

func TestOffsets(t *testing.T) {
	off, err := counting.Offsets(scenarioIn, 4, len(scenarioIn))
	require.NoError(t, err)
	// v=0:1 edge, v=1:2 edges, v=2:0 edges, v=3:2 edges
	assert.Equal(t, []int{0, 1, 3, 3, 5}, off)

	off, err = counting.Offsets(nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, off)

	_, err = counting.Offsets(scenarioIn, 3, len(scenarioIn))
	assert.ErrorIs(t, err, core.ErrInvalidKey)

	_, err = counting.Offsets(scenarioIn, 4, 6)
	assert.ErrorIs(t, err, core.ErrInvalidCount)
}
