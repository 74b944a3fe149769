package wfc

import "github.com/amazcuter/rlwfc/tileset"

// CellState is a non-sentinel cell's collapse status.
type CellState int

const (
	// Uncollapsed means candidates is non-empty and the cell has not been
	// collapsed yet. Propagation or a one-tile catalogue can leave an
	// Uncollapsed cell with a single candidate; it stays Uncollapsed until
	// a collapse step picks that tile.
	Uncollapsed CellState = iota
	// Collapsed means candidates is exactly one tile.
	Collapsed
	// Conflict means candidates is empty.
	Conflict
)

// String names the state for diagnostics.
func (s CellState) String() string {
	switch s {
	case Uncollapsed:
		return "Uncollapsed"
	case Collapsed:
		return "Collapsed"
	case Conflict:
		return "Conflict"
	default:
		return "Unknown"
	}
}

// CellRecord is the per-cell WFC state record described in §3 of the
// specification this module implements.
type CellRecord struct {
	State      CellState
	Candidates map[tileset.TileID]struct{}
	Entropy    float64
	Tiebreak   int64
}

// clone returns a deep copy of r, used when snapshotting the state table.
func (r CellRecord) clone() CellRecord {
	cp := make(map[tileset.TileID]struct{}, len(r.Candidates))
	for t := range r.Candidates {
		cp[t] = struct{}{}
	}
	return CellRecord{State: r.State, Candidates: cp, Entropy: r.Entropy, Tiebreak: r.Tiebreak}
}

// StepResult is the outcome of one RunStep call.
type StepResult int

const (
	// StepCollapsed means one cell was selected, collapsed, and propagated.
	StepCollapsed StepResult = iota
	// StepConflictsResolved means the frontier was empty, conflicts existed,
	// and the repair engine found a consistent assignment.
	StepConflictsResolved
	// StepConflictResolutionFailed means the repair engine found no
	// consistent assignment, either because no further layer could be grown
	// or because its recursion budget ran out; the accompanying error is
	// ErrUnresolvableConflicts, or the error the repair itself returned.
	StepConflictResolutionFailed
	// StepComplete means the frontier was empty and no conflicts remained.
	StepComplete
)

// String names the result for diagnostics.
func (s StepResult) String() string {
	switch s {
	case StepCollapsed:
		return "Collapsed"
	case StepConflictsResolved:
		return "ConflictsResolved"
	case StepConflictResolutionFailed:
		return "ConflictResolutionFailed"
	case StepComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// EngineStats is a read-only diagnostic snapshot of an Engine's run.
type EngineStats struct {
	Cells              int
	CompletedCount     int
	RepairAttempts     int
	RepairDepthReached int
	RandomSeed         int64
}
