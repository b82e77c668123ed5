// Package core defines the edge record shared by every sorting strategy in
// edgesort, together with the argument validation, count-table allocation and
// debug printing that the strategies have in common.
//
// What:
//
//   - Edge: a directed edge {Source, Destination} between integer vertex ids.
//     Edges are plain values; an edge array is simply []Edge.
//   - ValidateArgs: the shared precondition check run by counting.Sort and
//     radix.Sort before a single element of the output is written.
//   - MakeCounts / MakeEdges: auxiliary allocations that report exhaustion as
//     ErrOutOfMemory instead of crashing the caller.
//   - IsSortedBySource / IsStablePermutation: postcondition predicates used by
//     tests, the csr package and the edgesort command.
//   - Fprint: line-oriented debug dump, one "source -> destination" per line.
//
// Invariants (for a successful sort):
//
//   - 0 ≤ numEdges ≤ len(edges) and numVertices ≥ 0.
//   - every edges[i].Source, i < numEdges, lies in [0, numVertices).
//   - len(sorted) ≥ numEdges; only sorted[:numEdges] is written.
//   - sorted[:numEdges] is a stable permutation of edges[:numEdges].
//
// Errors:
//
//   - ErrInvalidKey        a source id lies outside [0, numVertices)
//   - ErrInvalidCount      numVertices < 0, numEdges < 0 or numEdges > len(edges)
//   - ErrCapacityMismatch  output buffer shorter than numEdges
//   - ErrOutOfMemory       an auxiliary table could not be allocated
//
// Complexity:
//
//   - ValidateArgs:     Time O(E), Memory O(1)
//   - IsSortedBySource: Time O(E), Memory O(1)
//   - Fprint:           Time O(E), Memory O(1)
package core
