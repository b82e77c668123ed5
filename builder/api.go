// SPDX-License-Identifier: MIT
// Package: edgesort/builder
//
// api.go - public entry-point and shared types.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgesort/core"
)

// EdgeList is the product of BuildEdges: an edge array plus the vertex count
// bounding every id in it.
type EdgeList struct {
	// NumVertices bounds every Source and Destination: ids lie in [0, NumVertices).
	NumVertices int
	// Edges in emission order (or shuffled, with WithShuffle).
	Edges []core.Edge
}

// NumEdges returns len(Edges).
func (el *EdgeList) NumEdges() int {
	return len(el.Edges)
}

// Clone returns a deep copy of el.
func (el *EdgeList) Clone() *EdgeList {
	out := &EdgeList{NumVertices: el.NumVertices, Edges: make([]core.Edge, len(el.Edges))}
	copy(out.Edges, el.Edges)

	return out
}

// grow raises the vertex bound to at least n.
func (el *EdgeList) grow(n int) {
	if n > el.NumVertices {
		el.NumVertices = n
	}
}

// add appends u→v.
func (el *EdgeList) add(u, v int) {
	el.Edges = append(el.Edges, core.Edge{Source: u, Destination: v})
}

// Constructor appends a deterministic set of edges to el using cfg.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(el *EdgeList, cfg builderConfig) error

// BuildEdges resolves opts, applies cons in order to a fresh EdgeList and,
// with WithShuffle, permutes the result. Constructor errors are wrapped as
// "BuildEdges: %w".
func BuildEdges(opts []BuilderOption, cons ...Constructor) (*EdgeList, error) {
	cfg := newBuilderConfig(opts...)
	el := &EdgeList{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(el, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	if cfg.shuffle {
		if cfg.rng == nil {
			return nil, fmt.Errorf("BuildEdges: shuffle: %w", ErrNeedRandSource)
		}
		cfg.rng.Shuffle(len(el.Edges), func(i, j int) {
			el.Edges[i], el.Edges[j] = el.Edges[j], el.Edges[i]
		})
	}

	return el, nil
}
