package wfc

import (
	"errors"
	"fmt"
)

// Sentinel errors for WFC engine operations.
var (
	// ErrNoUncollapsedCells indicates a selection was attempted with an
	// empty frontier. Not an error at natural termination; only surfaced
	// when a caller invokes selection explicitly.
	ErrNoUncollapsedCells = errors.New("wfc: no uncollapsed cells")

	// ErrCellNotFound indicates an operation referenced an unknown cell id.
	ErrCellNotFound = errors.New("wfc: cell not found")

	// ErrTileNotFound indicates an operation referenced an unknown tile id.
	ErrTileNotFound = errors.New("wfc: tile not found")

	// ErrCellAlreadyCollapsed indicates PreCollapse was called on a cell
	// that is no longer Uncollapsed.
	ErrCellAlreadyCollapsed = errors.New("wfc: cell already collapsed")

	// ErrInvalidTileChoice indicates PreCollapse was asked to collapse a
	// cell to a tile that is not currently one of its candidates.
	ErrInvalidTileChoice = errors.New("wfc: tile is not a current candidate")

	// ErrUnresolvableConflicts is the only terminal error Run/RunStep emit
	// under a well-formed input: the repair engine found no consistent
	// assignment before it ran out of layers to grow or of recursion budget.
	ErrUnresolvableConflicts = errors.New("wfc: unresolvable conflicts")

	// ErrInconsistentState must never be observed by a well-formed caller;
	// it indicates an invariant violation and is fatal.
	ErrInconsistentState = errors.New("wfc: inconsistent state")

	// ErrInitializationFailed wraps an application-supplied initializer's
	// failure message.
	ErrInitializationFailed = errors.New("wfc: initialization failed")

	// ErrCellNotCollapsed indicates GetCollapsedTile was called on a cell
	// that has not reached the Collapsed state. Not one of §7's enumerated
	// kinds; a convenience for the Export/GetCollapsedTile accessors.
	ErrCellNotCollapsed = errors.New("wfc: cell not collapsed")
)

// wrapInitError wraps msg under ErrInitializationFailed, matching the
// corpus's fmt.Errorf("%w: ...") wrapping convention.
func wrapInitError(msg string) error {
	return fmt.Errorf("%w: %s", ErrInitializationFailed, msg)
}
