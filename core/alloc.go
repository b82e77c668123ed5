package core

import "fmt"

// MakeCounts returns a zero-initialised count table of length n.
//
// Allocation failures that the runtime reports as panics (for example
// "makeslice: len out of range" for absurd vertex counts) are converted into
// ErrOutOfMemory so that sorting entry points can propagate them.
// Complexity: O(n) time and space.
func MakeCounts(n int) ([]int, error) {
	return alloc[int]("MakeCounts", n)
}

// MakeEdges returns an edge buffer of length n; see MakeCounts for failure modes.
func MakeEdges(n int) ([]Edge, error) {
	return alloc[Edge]("MakeEdges", n)
}

func alloc[T any](method string, n int) (buf []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d < 0: %w", method, n, ErrInvalidCount)
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%s: n=%d: %v: %w", method, n, r, ErrOutOfMemory)
		}
	}()

	return make([]T, n), nil
}
