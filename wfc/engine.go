package wfc

import (
	"fmt"
	"math/rand"

	"github.com/amazcuter/rlwfc/core"
	"github.com/amazcuter/rlwfc/direction"
	"github.com/amazcuter/rlwfc/tileset"
)

// Engine drives one solve over a Grid and a TileSet. It owns the per-cell
// state table, the RNG, and exclusive mutation rights over both the table
// and (transiently, during a repair attempt) the RNG's draw sequence.
// Engine is not safe for concurrent use; the specification's concurrency
// model is single-threaded cooperative (see package doc).
type Engine[EdgeData any] struct {
	grid       *core.Grid
	tiles      *tileset.TileSet[EdgeData]
	directions []direction.Direction
	opposites  []int // opposites[d.Index()] = opposite(d).Index(), or -1

	records        []CellRecord
	completedCount int

	rng *rand.Rand
	cfg config

	repairAttempts     int
	repairDepthReached int
}

// NewEngine constructs an Engine over grid and tiles, using directions as
// the canonical direction set both were built against. len(directions) must
// equal tiles.Directions().
func NewEngine[EdgeData any](grid *core.Grid, tiles *tileset.TileSet[EdgeData], directions []direction.Direction, opts ...Option) (*Engine[EdgeData], error) {
	if len(directions) != tiles.Directions() {
		return nil, fmt.Errorf("wfc: %d directions, tileset built for %d: %w", len(directions), tiles.Directions(), ErrInconsistentState)
	}

	cfg := newConfig(opts...)
	e := &Engine[EdgeData]{
		grid:       grid,
		tiles:      tiles,
		directions: directions,
		opposites:  buildOpposites(directions),
		rng:        rand.New(rand.NewSource(cfg.randomSeed)),
		cfg:        cfg,
	}
	return e, nil
}

// buildOpposites precomputes, for each direction index, the index of its
// opposite direction (or -1 if the direction set defines none), so Judge
// calls never need to re-derive it from the Direction capability.
func buildOpposites(directions []direction.Direction) []int {
	opp := make([]int, len(directions))
	for i := range opp {
		opp[i] = -1
	}
	for _, d := range directions {
		idx := d.Index()
		if idx < 0 || idx >= len(opp) {
			continue
		}
		if o, ok := d.Opposite(); ok {
			opp[idx] = o.Index()
		}
	}
	return opp
}

// Initialize populates every real cell's state record (status Uncollapsed,
// candidates = every tile id, a fresh tiebreak drawn from the engine RNG,
// entropy over that full candidate set), then invokes init.Seed so the
// caller may impose pre-collapses on top of that baseline. A nil init is
// treated as DefaultInitializer.
func (e *Engine[EdgeData]) Initialize(init Initializer[EdgeData]) error {
	if init == nil {
		init = DefaultInitializer[EdgeData]{}
	}

	n := e.grid.CellCount()
	e.records = make([]CellRecord, n)
	allTiles := e.tiles.AllTileIDs()

	for c := 0; c < n; c++ {
		candidates := make(map[tileset.TileID]struct{}, len(allTiles))
		for _, t := range allTiles {
			candidates[t] = struct{}{}
		}
		e.records[c] = CellRecord{
			State:      Uncollapsed,
			Candidates: candidates,
			Entropy:    entropy(e.tiles, candidates),
			Tiebreak:   e.rng.Int63(),
		}
	}
	e.completedCount = 0
	e.repairAttempts = 0
	e.repairDepthReached = 0

	stats := e.grid.Stats()
	e.cfg.logger.Infof("wfc: initialized %d cells, %d edges (%d sentinel), seed=%d",
		stats.Cells, stats.Edges, stats.SentinelEdges, e.cfg.randomSeed)

	if err := init.Seed(e); err != nil {
		return wrapInitError(err.Error())
	}
	return nil
}

// PreCollapse forces cell to tile, which must currently be one of cell's
// candidates, then propagates the consequences. Used by initializers and by
// callers driving manual scenarios (Scenario D).
func (e *Engine[EdgeData]) PreCollapse(cell core.CellID, tile tileset.TileID) error {
	rec, err := e.record(cell)
	if err != nil {
		return err
	}
	if rec.State != Uncollapsed {
		return fmt.Errorf("wfc: pre-collapse cell %d: %w", cell, ErrCellAlreadyCollapsed)
	}
	if _, ok := rec.Candidates[tile]; !ok {
		return fmt.Errorf("wfc: pre-collapse cell %d to tile %d: %w", cell, tile, ErrInvalidTileChoice)
	}
	e.collapseTo(cell, tile)
	return e.propagate(cell)
}

// record returns a copy of cell's state record, validating cell's bounds.
func (e *Engine[EdgeData]) record(cell core.CellID) (CellRecord, error) {
	if int(cell) < 0 || int(cell) >= len(e.records) {
		return CellRecord{}, fmt.Errorf("wfc: cell %d: %w", cell, ErrCellNotFound)
	}
	return e.records[cell], nil
}

// collapseTo forces cell's record to a singleton candidate set, crediting
// completedCount unless cell was already Collapsed (recoverCell can cross a
// cell back into Collapsed ahead of a later collapseTo call, during repair's
// layer recovery). Callers must have already validated tile is a legal
// choice for cell.
func (e *Engine[EdgeData]) collapseTo(cell core.CellID, tile tileset.TileID) {
	rec := e.records[cell]
	wasCollapsed := rec.State == Collapsed
	rec.State = Collapsed
	rec.Candidates = map[tileset.TileID]struct{}{tile: {}}
	rec.Entropy = 0
	e.records[cell] = rec
	if !wasCollapsed {
		e.completedCount++
	}
}

// IsComplete reports whether every real cell has reached Collapsed.
func (e *Engine[EdgeData]) IsComplete() bool {
	return e.completedCount == len(e.records)
}

// HasConflicts reports whether any cell currently has status Conflict.
func (e *Engine[EdgeData]) HasConflicts() bool {
	for _, rec := range e.records {
		if rec.State == Conflict {
			return true
		}
	}
	return false
}

// GetCellState returns cell's current status.
func (e *Engine[EdgeData]) GetCellState(cell core.CellID) (CellState, error) {
	rec, err := e.record(cell)
	if err != nil {
		return 0, err
	}
	return rec.State, nil
}

// GetCollapsedTile returns the single tile cell has collapsed to.
func (e *Engine[EdgeData]) GetCollapsedTile(cell core.CellID) (tileset.TileID, error) {
	rec, err := e.record(cell)
	if err != nil {
		return 0, err
	}
	if rec.State != Collapsed {
		return 0, fmt.Errorf("wfc: cell %d: %w", cell, ErrCellNotCollapsed)
	}
	for t := range rec.Candidates {
		return t, nil
	}
	return 0, fmt.Errorf("wfc: cell %d: %w", cell, ErrInconsistentState)
}

// Stats reports diagnostic counters for the current run.
func (e *Engine[EdgeData]) Stats() EngineStats {
	return EngineStats{
		Cells:              len(e.records),
		CompletedCount:     e.completedCount,
		RepairAttempts:     e.repairAttempts,
		RepairDepthReached: e.repairDepthReached,
		RandomSeed:         e.cfg.randomSeed,
	}
}

// Export returns the solved (cell id -> tile id) map, keyed by cell id; as a
// Go map it carries no iteration order. It is an error to call Export before
// every cell has reached Collapsed.
func Export[EdgeData any](e *Engine[EdgeData]) (map[core.CellID]tileset.TileID, error) {
	out := make(map[core.CellID]tileset.TileID, len(e.records))
	for i, rec := range e.records {
		if rec.State != Collapsed {
			return nil, fmt.Errorf("wfc: cell %d: %w", i, ErrCellNotCollapsed)
		}
		for t := range rec.Candidates {
			out[core.CellID(i)] = t
			break
		}
	}
	return out, nil
}
