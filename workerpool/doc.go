// Package workerpool provides a persistent fork-join pool for the data-parallel
// regions of the radix sorter: per-worker digit counting, per-bucket reduction
// and buffer transfer.
//
// A Pool is created once and may be reused across many sort calls, so worker
// goroutines are not respawned for every digit pass:
//
//	pool := workerpool.New(4)
//	defer pool.Close()
//
//	pool.ParallelFor(len(edges), func(worker, start, end int) {
//	    for i := start; i < end; i++ {
//	        rows[worker][digit(edges[i])]++
//	    }
//	})
//
// Every ParallelFor call is a barrier: it returns only after all chunks have
// run. No locks are taken by callers; disjoint chunks and per-worker rows keep
// the regions race-free.
package workerpool
