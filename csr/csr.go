// Package csr builds compressed sparse row adjacency from edge arrays sorted
// by source, the form downstream graph kernels iterate over.
//
// Offsets has NumVertices+1 entries; the out-neighbors of v are
// Targets[Offsets[v]:Offsets[v+1]], in the order the sorted array listed them.
package csr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/edgesort/core"
)

// ErrNotSorted indicates that FromSorted received edges out of source order.
var ErrNotSorted = errors.New("csr: edges not sorted by source")

// ErrNilSorter indicates that Build was called without a sort function.
var ErrNilSorter = errors.New("csr: sort function is nil")

// SortFunc matches counting.Sort and, through a closure, radix.Sort.
type SortFunc func(sorted, edges []core.Edge, numVertices, numEdges int) error

// Graph is a read-only CSR adjacency structure.
type Graph struct {
	Offsets []int
	Targets []int
}

// FromSorted builds a Graph from edges already ordered by Source.
// Both endpoints of every edge must lie in [0, numVertices).
// Complexity: O(V+E) time and space.
func FromSorted(sorted []core.Edge, numVertices int) (*Graph, error) {
	if numVertices < 0 {
		return nil, fmt.Errorf("FromSorted: numVertices=%d: %w", numVertices, core.ErrInvalidCount)
	}
	if err := core.ValidateKeys("FromSorted", sorted, numVertices); err != nil {
		return nil, err
	}
	for i, e := range sorted {
		if e.Destination < 0 || e.Destination >= numVertices {
			return nil, fmt.Errorf("FromSorted: edges[%d].Destination=%d not in [0,%d): %w",
				i, e.Destination, numVertices, core.ErrInvalidKey)
		}
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Source > sorted[i].Source {
			return nil, fmt.Errorf("FromSorted: edges[%d].Source=%d after %d: %w",
				i, sorted[i].Source, sorted[i-1].Source, ErrNotSorted)
		}
	}

	offsets, err := core.MakeCounts(numVertices + 1)
	if err != nil {
		return nil, fmt.Errorf("FromSorted: %w", err)
	}
	targets := make([]int, len(sorted))
	for i, e := range sorted {
		offsets[e.Source+1]++
		targets[i] = e.Destination
	}
	for v := 1; v <= numVertices; v++ {
		offsets[v] += offsets[v-1]
	}

	return &Graph{Offsets: offsets, Targets: targets}, nil
}

// Build sorts edges with sortFn and converts the result with FromSorted.
func Build(edges []core.Edge, numVertices int, sortFn SortFunc) (*Graph, error) {
	if sortFn == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilSorter)
	}
	sorted := make([]core.Edge, len(edges))
	if err := sortFn(sorted, edges, numVertices, len(edges)); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return FromSorted(sorted, numVertices)
}

// NumVertices returns the vertex bound.
func (g *Graph) NumVertices() int {
	return len(g.Offsets) - 1
}

// NumEdges returns the number of stored edges.
func (g *Graph) NumEdges() int {
	return len(g.Targets)
}

// Degree returns the out-degree of v, or 0 for v outside [0, NumVertices).
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.NumVertices() {
		return 0
	}

	return g.Offsets[v+1] - g.Offsets[v]
}

// Neighbors returns the out-neighbors of v as a sub-slice of Targets (do not
// modify), or nil for v outside [0, NumVertices).
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.NumVertices() {
		return nil
	}

	return g.Targets[g.Offsets[v]:g.Offsets[v+1]:g.Offsets[v+1]]
}
