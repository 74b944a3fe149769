package tileset

import "errors"

// Sentinel errors for tile catalogue operations.
var (
	// ErrWrongEdgeCount indicates AddTile was called with a number of edge
	// labels different from the catalogue's direction count.
	ErrWrongEdgeCount = errors.New("tileset: wrong edge count")

	// ErrInvalidWeight indicates AddTile was called with weight <= 0.
	ErrInvalidWeight = errors.New("tileset: weight must be positive")

	// ErrTileNotFound indicates an operation referenced an unknown tile id.
	ErrTileNotFound = errors.New("tileset: tile not found")

	// ErrWrongCandidateCount indicates Judge was called with a
	// neighbourCandidates or opposites slice whose length does not match
	// the catalogue's direction count.
	ErrWrongCandidateCount = errors.New("tileset: wrong candidate slice length")
)
