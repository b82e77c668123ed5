package counting

import (
	"fmt"

	"github.com/katalvlaran/edgesort/core"
)

const (
	methodSort    = "counting.Sort"
	methodOffsets = "counting.Offsets"
)

// Sort writes edges[:numEdges] into sorted[:numEdges] ordered by Source,
// ascending, keeping the input order among edges with the same source.
//
// Arguments are validated before anything is written; the input slice is
// never modified. numVertices bounds the keys: every Source must lie in
// [0, numVertices).
func Sort(sorted, edges []core.Edge, numVertices, numEdges int) error {
	if err := core.ValidateArgs(methodSort, sorted, edges, numVertices, numEdges); err != nil {
		return err
	}
	if numEdges == 0 {
		return nil
	}

	counts, err := core.MakeCounts(numVertices)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSort, err)
	}

	// Occurrences of each source id.
	for i := 0; i < numEdges; i++ {
		counts[edges[i].Source]++
	}

	// counts[k] becomes the number of edges with source ≤ k.
	for k := 1; k < numVertices; k++ {
		counts[k] += counts[k-1]
	}

	// Backward placement: the last edge of a group lands in the group's last slot.
	var key, pos int
	for i := numEdges - 1; i >= 0; i-- {
		key = edges[i].Source
		pos = counts[key] - 1
		sorted[pos] = edges[i]
		counts[key] = pos
	}

	return nil
}

// Offsets returns the exclusive prefix table of source counts: a slice of
// length numVertices+1 where the edges with source v occupy
// [off[v], off[v+1]) of the array that Sort would produce.
func Offsets(edges []core.Edge, numVertices, numEdges int) ([]int, error) {
	if numVertices < 0 || numEdges < 0 || numEdges > len(edges) {
		return nil, fmt.Errorf("%s: numVertices=%d numEdges=%d len(edges)=%d: %w",
			methodOffsets, numVertices, numEdges, len(edges), core.ErrInvalidCount)
	}
	if err := core.ValidateKeys(methodOffsets, edges[:numEdges], numVertices); err != nil {
		return nil, err
	}

	off, err := core.MakeCounts(numVertices + 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodOffsets, err)
	}
	for i := 0; i < numEdges; i++ {
		off[edges[i].Source+1]++
	}
	for v := 1; v <= numVertices; v++ {
		off[v] += off[v-1]
	}

	return off, nil
}
