package workerpool_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgesort/workerpool"
)

func TestNew_DefaultsToGOMAXPROCS(t *testing.T) {
	p := workerpool.New(0)
	defer p.Close()
	assert.Positive(t, p.NumWorkers())
}

func TestParallelFor_CoversRangeOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 4, 7} {
		p := workerpool.New(workers)
		for _, n := range []int{1, 2, 5, 10, 101} {
			hits := make([]int32, n)
			p.ParallelFor(n, func(_, start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			})
			for i, h := range hits {
				require.EqualValues(t, 1, h, "workers=%d n=%d index %d", workers, n, i)
			}
		}
		p.Close()
	}
}

func TestParallelFor_WorkerIndexBoundsAndOrder(t *testing.T) {
	p := workerpool.New(4)
	defer p.Close()

	const n = 10
	chunks := p.Chunks(n)
	require.Equal(t, 4, chunks)

	starts := make([]int, chunks)
	ends := make([]int, chunks)
	p.ParallelFor(n, func(w, start, end int) {
		assert.GreaterOrEqual(t, w, 0)
		assert.Less(t, w, chunks)
		starts[w], ends[w] = start, end
	})

	// Chunks tile [0,n) in worker order.
	assert.Equal(t, 0, starts[0])
	for w := 1; w < chunks; w++ {
		assert.Equal(t, ends[w-1], starts[w])
	}
	assert.Equal(t, n, ends[chunks-1])
}

func TestChunks(t *testing.T) {
	p := workerpool.New(4)
	defer p.Close()

	assert.Equal(t, 0, p.Chunks(0))
	assert.Equal(t, 1, p.Chunks(1))
	assert.Equal(t, 3, p.Chunks(3))
	assert.Equal(t, 4, p.Chunks(100))
	// 5 items over 4 workers: chunk size 2 → 3 chunks.
	assert.Equal(t, 3, p.Chunks(5))
}

func TestParallelFor_ZeroAndClosed(t *testing.T) {
	p := workerpool.New(3)
	called := false
	p.ParallelFor(0, func(_, _, _ int) { called = true })
	assert.False(t, called)

	p.Close()
	p.Close()

	// Same split as an open pool, run in chunk order on the caller.
	var got [][3]int
	p.ParallelFor(7, func(w, start, end int) {
		got = append(got, [3]int{w, start, end})
	})
	assert.Equal(t, [][3]int{{0, 0, 3}, {1, 3, 6}, {2, 6, 7}}, got)
	assert.Equal(t, 3, p.Chunks(7))
}

func TestParallelForAtomic(t *testing.T) {
	p := workerpool.New(4)
	defer p.Close()

	const n = 1000
	var sum atomic.Int64
	p.ParallelForAtomic(n, func(i int) { sum.Add(int64(i)) })
	assert.EqualValues(t, n*(n-1)/2, sum.Load())

	p.ParallelForAtomic(0, func(int) { t.Fatal("must not be called") })
}
