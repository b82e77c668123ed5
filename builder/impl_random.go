// SPDX-License-Identifier: MIT
// Package: edgesort/builder
//
// impl_random.go - RandomSparse(n, p) and RandomEdges(n, m).
//
// Determinism:
//   • RandomSparse trials run in fixed order: i asc, then j asc.
//   • RandomEdges draws (src, dst) pairs in sequence from cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgesort/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodRandomEdges  = "RandomEdges"

	minRandomNodes = 1
	probMin        = 0.0
	probMax        = 1.0
)

// RandomSparse returns a Constructor that includes every ordered pair i→j
// independently with probability p (Erdős–Rényi on directed pairs).
// An RNG is required unless p ∈ {0, 1}.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		el.grow(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				switch {
				case p == probMax:
					el.add(i, j)
				case p == probMin:
				case cfg.rng.Float64() < p:
					el.add(i, j)
				}
			}
		}

		return nil
	}
}

// RandomEdges returns a Constructor that appends m edges with source and
// destination drawn uniformly from [0, n). Self-loops and duplicates occur
// naturally, which makes the output a good stability fixture.
// Complexity: O(m).
func RandomEdges(n, m int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomEdges, n, minRandomNodes, ErrTooFewVertices)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d < 0: %w", methodRandomEdges, m, ErrBadSize)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomEdges, ErrNeedRandSource)
		}

		el.grow(n)
		if cap(el.Edges)-len(el.Edges) < m {
			grown := make([]core.Edge, len(el.Edges), len(el.Edges)+m)
			copy(grown, el.Edges)
			el.Edges = grown
		}
		for k := 0; k < m; k++ {
			el.add(cfg.rng.Intn(n), cfg.rng.Intn(n))
		}

		return nil
	}
}
