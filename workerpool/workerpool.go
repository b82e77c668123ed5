// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0
// Modified for edgesort: worker-indexed chunks and sequential fallback.

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of goroutines that execute chunks of parallel loops.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one chunk of a parallel region plus the barrier it reports to.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines; numWorkers ≤ 0 means GOMAXPROCS.
// The goroutines live until Close.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of goroutines in the pool. It is also the
// upper bound (exclusive) of the worker index passed to ParallelFor callbacks.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending chunks finish. Safe to call twice.
// A closed pool still accepts ParallelFor calls and runs their chunks
// sequentially on the calling goroutine, with the same chunk boundaries.
// Close must not run concurrently with a parallel region.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Chunks returns how many chunks ParallelFor(n, ...) will run, i.e. the number
// of distinct worker indices a callback can observe. Zero when n ≤ 0.
// The result depends only on n and NumWorkers.
func (p *Pool) Chunks(n int) int {
	if n <= 0 {
		return 0
	}
	chunkSize := p.chunkSize(n)

	return (n + chunkSize - 1) / chunkSize
}

func (p *Pool) chunkSize(n int) int {
	workers := min(p.numWorkers, n)

	return (n + workers - 1) / workers
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous chunks and runs
// fn(worker, start, end) for each chunk, where worker is the chunk index in
// [0, Chunks(n)). Chunk w covers lower indices than chunk w+1, and the split
// is the same for every call with the same n. Blocks until every chunk has
// returned.
func (p *Pool) ParallelFor(n int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}

	chunkSize := p.chunkSize(n)
	chunks := (n + chunkSize - 1) / chunkSize

	if chunks == 1 || p.closed.Load() {
		for w := range chunks {
			start := w * chunkSize
			fn(w, start, min(start+chunkSize, n))
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(chunks)
	for w := range chunks {
		start := w * chunkSize
		end := min(start+chunkSize, n)
		p.workC <- workItem{
			fn:      func() { fn(w, start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomic runs fn(i) for every i in [0, n), handing out indices by
// atomic work stealing. Suited to a handful of independent items such as the
// buckets of a digit table. Blocks until all items complete.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
