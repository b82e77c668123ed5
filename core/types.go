package core

import "errors"

// Sentinel errors shared by all sorting strategies.
var (
	// ErrInvalidKey indicates that an edge's source id lies outside [0, numVertices).
	ErrInvalidKey = errors.New("core: source id out of range")

	// ErrInvalidCount indicates a negative vertex/edge count or an edge count
	// larger than the supplied edge array.
	ErrInvalidCount = errors.New("core: invalid vertex or edge count")

	// ErrCapacityMismatch indicates that the output buffer cannot hold numEdges edges.
	ErrCapacityMismatch = errors.New("core: output buffer too small")

	// ErrOutOfMemory indicates that an auxiliary table or buffer could not be allocated.
	ErrOutOfMemory = errors.New("core: auxiliary allocation failed")
)

// Edge is a directed edge Source→Destination between two vertex ids.
//
// Edges carry no identity beyond their two fields and are copied by value.
// Sorting strategies key on Source only; Destination is payload.
type Edge struct {
	// Source is the originating vertex id and the sort key.
	Source int

	// Destination is the target vertex id.
	Destination int
}

// E is shorthand for Edge{Source: src, Destination: dst}, handy in fixtures.
func E(src, dst int) Edge {
	return Edge{Source: src, Destination: dst}
}
