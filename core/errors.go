package core

import "errors"

// Sentinel errors for graph substrate operations.
var (
	// ErrSelfLoop indicates create_edge was called with from == to.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEdgeAlreadyExists indicates a directed edge already exists from the
	// same source to the same real target. Sentinel edges are never
	// deduplicated and never trigger this error.
	ErrEdgeAlreadyExists = errors.New("core: edge already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent cell.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrIndexOutOfBounds indicates a direction index fell outside a cell's
	// neighbour list.
	ErrIndexOutOfBounds = errors.New("core: index out of bounds")

	// ErrCapacityExhausted indicates a fixed-capacity Grid ran out of room
	// for new cells or edges.
	ErrCapacityExhausted = errors.New("core: capacity exhausted")
)
