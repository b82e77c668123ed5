// Package radix orders directed edges by source vertex id with a least
// significant digit radix sort whose digit passes count in parallel.
//
// What:
//
//   - Sort: stable sort of edges[:numEdges] by Source into sorted[:numEdges].
//     The key is decomposed into TotalDigits(numVertices, Base) digits; each
//     pass is a stable counting sort on one digit, least significant first.
//   - Each pass counts digit occurrences in parallel (one private, cache-line
//     padded bucket row per worker), reduces the rows bucket by bucket,
//     prefix-sums the merged table and places edges sequentially from the last
//     index to the first. The pass result is then transferred back into the
//     call's working buffer for the next pass.
//   - WithParallelScatter replaces the sequential placement with a parallel one:
//     per-worker bucket offsets come from a bucket-major scan over the rows and
//     every worker scatters its own chunk. The output is identical.
//
// Key bound:
//
//	The number of passes is derived from numVertices, not from the largest
//	source id actually present. A vertex count much larger than the ids in use
//	costs extra passes that leave the order unchanged.
//
// Configuration:
//
//	Config{Base: 10, WorkerCount: 4} by default; see WithBase, WithWorkerCount,
//	WithParallelScatter, WithConfig and WithPool (reuse a persistent pool).
//
// Complexity:
//
//   - Sort: Time O(D·(E + B·W)), Memory O(E + B·W)
//     (D = passes, B = base, W = workers)
//
// Errors:
//
//   - ErrInvalidConfig          Base < 2, Base > MaxBase or WorkerCount < 1
//   - core.ErrInvalidCount      bad numVertices/numEdges
//   - core.ErrCapacityMismatch  output shorter than numEdges
//   - core.ErrInvalidKey        a source id outside [0, numVertices)
//   - core.ErrOutOfMemory       working buffer or bucket rows not allocatable
package radix
