// SPDX-License-Identifier: MIT
// Package: edgesort/builder
//
// impl_topology.go - Path, Cycle, Star and Complete constructors.
//
// Contract:
//   • Vertices are numbered 0..n-1; edges are directed.
//   • Emission order is fixed and documented per constructor.
//   • Returns only sentinel errors; never panics.
//
// Complexity:
//   • Path/Cycle/Star: O(n) edges.   Complete: O(n²) edges.

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path returns a Constructor emitting 0→1, 1→2, …, (n-2)→(n-1).
func Path(n int) Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		el.grow(n)
		for i := 1; i < n; i++ {
			el.add(i-1, i)
		}

		return nil
	}
}

// Cycle returns a Constructor emitting the Path edges followed by (n-1)→0.
func Cycle(n int) Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		el.grow(n)
		for i := 1; i < n; i++ {
			el.add(i-1, i)
		}
		// closing edge
		el.add(n-1, 0)

		return nil
	}
}

// Star returns a Constructor emitting leaf→hub spokes i→0 for i = n-1 down to 1.
// Every edge shares the hub as destination, so the source order is strictly
// descending: the worst case for a sort that expects presorted input.
func Star(n int) Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		el.grow(n)
		for i := n - 1; i >= 1; i-- {
			el.add(i, 0)
		}

		return nil
	}
}

// Complete returns a Constructor emitting every ordered pair i→j, i asc then
// j asc, skipping i==j unless WithLoops is set.
func Complete(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		el.grow(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				el.add(i, j)
			}
		}

		return nil
	}
}
