// Package edgesort orders directed graph edges by source vertex id so that
// every source owns one contiguous range of the output, the layout CSR
// adjacency construction needs.
//
// What is in the box?
//
//	core/       - Edge type, shared validation, error taxonomy, debug printer
//	counting/   - stable O(V+E) counting sort by source id
//	radix/      - LSD radix sort, configurable base, parallel per-digit counting
//	workerpool/ - persistent fork-join pool behind the radix passes
//	csr/        - offsets/targets adjacency from a source-sorted edge array
//	builder/    - deterministic synthetic edge lists (paths, stars, random)
//	config/     - TOML/YAML settings for the command
//	logger/     - zap logger construction for the command
//	cli/        - the edgesort command (sort, compare, csr)
//
// Both strategies share one contract:
//
//	Sort(sorted, edges []core.Edge, numVertices, numEdges int) error
//
// The caller owns and sizes the output buffer; the input is never modified;
// edges with equal sources keep their input order. Counting sort and radix
// sort produce identical output for identical input.
//
// Quick example:
//
//	in  : (3,1) (1,2) (3,4) (0,5) (1,6)       numVertices = 4
//	out : (0,5) (1,2) (1,6) (3,1) (3,4)
//
//	go install github.com/katalvlaran/edgesort/cmd/edgesort@latest
package edgesort
