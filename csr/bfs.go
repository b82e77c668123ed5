package csr

import (
	"context"
	"errors"
	"fmt"
)

// ErrStartVertexNotFound indicates a BFS start outside [0, NumVertices).
var ErrStartVertexNotFound = errors.New("csr: start vertex not found")

// Unreached marks Depth and Parent entries of vertices BFS did not reach.
const Unreached = -1

// BFSResult holds the outcome of a breadth-first traversal.
type BFSResult struct {
	// Order lists vertices in the order they were dequeued.
	Order []int

	// Depth[v] is the hop distance from the start, or Unreached.
	Depth []int

	// Parent[v] is the vertex v was discovered from; Unreached for the start
	// and for vertices not reached.
	Parent []int
}

// BFS walks g breadth-first from start, following out-edges in row order.
// The context is checked once per dequeued vertex.
// Complexity: O(V+E) time, O(V) memory.
func (g *Graph) BFS(ctx context.Context, start int) (*BFSResult, error) {
	n := g.NumVertices()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("BFS: start=%d not in [0,%d): %w", start, n, ErrStartVertexNotFound)
	}

	res := &BFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for v := range res.Depth {
		res.Depth[v] = Unreached
		res.Parent[v] = Unreached
	}

	queue := make([]int, 0, n)
	queue = append(queue, start)
	res.Depth[start] = 0

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		u := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, u)

		for _, v := range g.Neighbors(u) {
			if res.Depth[v] != Unreached {
				continue
			}
			res.Depth[v] = res.Depth[u] + 1
			res.Parent[v] = u
			queue = append(queue, v)
		}
	}

	return res, nil
}
