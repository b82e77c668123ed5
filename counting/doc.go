// Package counting orders directed edges by source vertex id with a
// single-pass counting sort.
//
// What:
//
//   - Sort: stable O(V+E) sort of an edge array by Source into a caller-owned
//     output buffer. The backward placement pass is what keeps edges with equal
//     sources in their original relative order.
//   - Offsets: the prefix table produced by the counting and prefix-sum steps,
//     i.e. the CSR row offsets of the sorted array.
//
// Complexity:
//
//   - Sort:    Time O(V+E), Memory O(V)
//   - Offsets: Time O(V+E), Memory O(V)
//
// Errors (all from package core, wrapped with "counting.Sort" / "counting.Offsets"):
//
//   - core.ErrInvalidCount      bad numVertices/numEdges
//   - core.ErrCapacityMismatch  output shorter than numEdges
//   - core.ErrInvalidKey        a source id outside [0, numVertices)
//   - core.ErrOutOfMemory       the count table could not be allocated
package counting
