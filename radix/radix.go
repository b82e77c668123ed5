package radix

import (
	"fmt"

	"github.com/katalvlaran/edgesort/core"
	"github.com/katalvlaran/edgesort/workerpool"
)

const methodSort = "radix.Sort"

// Sort writes edges[:numEdges] into sorted[:numEdges] ordered by Source,
// ascending, keeping the input order among edges with the same source.
//
// The configuration and the arguments are validated before anything is
// written. The input slice is never modified: passes ping-pong between
// sorted and a private working copy, and the final pass lands in sorted.
func Sort(sorted, edges []core.Edge, numVertices, numEdges int, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Config.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodSort, err)
	}
	if err := core.ValidateArgs(methodSort, sorted, edges, numVertices, numEdges); err != nil {
		return err
	}

	passes := TotalDigits(numVertices, o.Base)
	if numEdges == 0 || passes == 0 {
		return nil
	}

	work, err := core.MakeEdges(numEdges)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSort, err)
	}

	pool := o.Pool
	if pool == nil {
		pool = workerpool.New(o.WorkerCount)
		defer pool.Close()
	}
	transfer(work, edges[:numEdges], pool)

	s, err := newDigitSorter(o.Config, pool)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSort, err)
	}

	out := sorted[:numEdges]
	for digit := 1; digit <= passes; digit++ {
		s.countSortByDigit(out, work, digit)
		if digit < passes {
			transfer(work, out, pool)
		}
	}

	return nil
}
