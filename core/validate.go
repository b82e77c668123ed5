package core

import "fmt"

// ValidateArgs checks the shared sort contract and reports the first violation.
//
// Checks run in a fixed order so that callers see a deterministic error:
//  1. numVertices ≥ 0, 0 ≤ numEdges ≤ len(edges)  → ErrInvalidCount
//  2. len(sorted) ≥ numEdges                       → ErrCapacityMismatch
//  3. every edges[i].Source ∈ [0, numVertices)     → ErrInvalidKey
//
// method prefixes the returned error, e.g. "counting.Sort".
// Complexity: O(numEdges) time, O(1) space.
func ValidateArgs(method string, sorted, edges []Edge, numVertices, numEdges int) error {
	if numVertices < 0 {
		return fmt.Errorf("%s: numVertices=%d < 0: %w", method, numVertices, ErrInvalidCount)
	}
	if numEdges < 0 || numEdges > len(edges) {
		return fmt.Errorf("%s: numEdges=%d not in [0,%d]: %w", method, numEdges, len(edges), ErrInvalidCount)
	}
	if len(sorted) < numEdges {
		return fmt.Errorf("%s: len(sorted)=%d < numEdges=%d: %w", method, len(sorted), numEdges, ErrCapacityMismatch)
	}

	return ValidateKeys(method, edges[:numEdges], numVertices)
}

// ValidateKeys reports ErrInvalidKey for the first edge whose Source lies
// outside [0, numVertices).
func ValidateKeys(method string, edges []Edge, numVertices int) error {
	for i, e := range edges {
		if e.Source < 0 || e.Source >= numVertices {
			return fmt.Errorf("%s: edges[%d].Source=%d not in [0,%d): %w",
				method, i, e.Source, numVertices, ErrInvalidKey)
		}
	}

	return nil
}

// IsSortedBySource reports whether edges are in non-decreasing Source order.
func IsSortedBySource(edges []Edge) bool {
	for i := 1; i < len(edges); i++ {
		if edges[i-1].Source > edges[i].Source {
			return false
		}
	}

	return true
}

// IsStablePermutation reports whether sorted is exactly the stable
// source-ordering of in: same length, sorted by Source, and, for every source
// id, the same subsequence of edges in the same relative order as in the input.
//
// Complexity: O(E + V) time and O(V + E) space where V is max(Source)+1.
func IsStablePermutation(sorted, in []Edge) bool {
	if len(sorted) != len(in) || !IsSortedBySource(sorted) {
		return false
	}

	// Group the input by source, preserving order.
	groups := make(map[int][]Edge)
	for _, e := range in {
		groups[e.Source] = append(groups[e.Source], e)
	}

	// Walk the output; each edge must be the next pending edge of its group.
	next := make(map[int]int, len(groups))
	for _, e := range sorted {
		g := groups[e.Source]
		k := next[e.Source]
		if k >= len(g) || g[k] != e {
			return false
		}
		next[e.Source] = k + 1
	}

	return true
}
