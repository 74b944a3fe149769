package builder

import "errors"

// Sentinel errors for builder constructors.
var (
	// ErrTooFewCells indicates a constructor was asked for a non-positive
	// grid dimension or path length.
	ErrTooFewCells = errors.New("builder: dimensions must be >= 1")
)
