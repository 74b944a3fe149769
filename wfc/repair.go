package wfc

import (
	"sort"

	"github.com/amazcuter/rlwfc/core"
	"github.com/amazcuter/rlwfc/tileset"
)

// Snapshot is a value copy of the state table, scoped to a single repair
// call frame. It never outlives the call that created it (§5 "Resource
// acquisition"). The graph, catalogue, and RNG are not part of a snapshot —
// the RNG advances monotonically regardless of rollback.
type Snapshot struct {
	records        []CellRecord
	completedCount int
}

// snapshot captures the full state table and completed_count.
func (e *Engine[EdgeData]) snapshot() Snapshot {
	recs := make([]CellRecord, len(e.records))
	for i, r := range e.records {
		recs[i] = r.clone()
	}
	return Snapshot{records: recs, completedCount: e.completedCount}
}

// restore reinstates exactly the values snap captured.
func (e *Engine[EdgeData]) restore(snap Snapshot) {
	for i, r := range snap.records {
		e.records[i] = r.clone()
	}
	e.completedCount = snap.completedCount
}

// recoverCell recomputes c's candidate set from scratch against the current
// state of its real neighbours (§4.5 step a): a neighbour's own candidate
// set if Uncollapsed, the singleton {tile} if Collapsed, empty if sentinel.
// Status is re-derived from the resulting set. completedCount is adjusted
// if recovery crosses the Collapsed boundary in either direction; crossing
// back into Collapsed here (rather than via collapseTo) is why collapseTo
// itself must be idempotent about the count.
func (e *Engine[EdgeData]) recoverCell(c core.CellID) error {
	sets, err := e.neighbourCandidateSets(c)
	if err != nil {
		return err
	}

	recovered := make(map[tileset.TileID]struct{})
	for _, t := range e.tiles.AllTileIDs() {
		ok, err := e.tiles.Judge(sets, e.opposites, t)
		if err != nil {
			return err
		}
		if ok {
			recovered[t] = struct{}{}
		}
	}

	was := e.records[c].State
	rec := e.records[c]
	rec.Candidates = recovered
	rec.Entropy = entropy(e.tiles, recovered)
	switch {
	case len(recovered) == 0:
		rec.State = Conflict
	case len(recovered) == 1:
		rec.State = Collapsed
	default:
		rec.State = Uncollapsed
	}
	e.records[c] = rec

	if was != Collapsed && rec.State == Collapsed {
		e.completedCount++
	} else if was == Collapsed && rec.State != Collapsed {
		e.completedCount--
	}
	return nil
}

// resolveConflicts implements §4.5's layered repair algorithm. It returns
// (true, nil) if a consistent assignment was found (state left in the
// resolved configuration) or (false, nil) if every repair layer was
// exhausted without success (Unresolvable; state left as it was before
// resolveConflicts was called, modulo the final failed recover pass).
func (e *Engine[EdgeData]) resolveConflicts() (bool, error) {
	layer0 := e.conflictCells()
	if len(layer0) == 0 {
		return true, nil
	}

	e.cfg.logger.Warnf("wfc: %d cell(s) in conflict, starting layered repair", len(layer0))

	layers := [][]core.CellID{layer0}
	seen := map[core.CellID]bool{}
	for _, c := range layer0 {
		seen[c] = true
	}

	for depth := 0; depth < e.cfg.maxRecursionDepth; depth++ {
		e.repairAttempts++
		e.repairDepthReached = depth
		e.cfg.logger.Debugf("wfc: repair depth %d, %d cell(s) in scope", depth, len(flattenLayers(layers)))

		// Step a: recover outermost layer to innermost.
		for li := len(layers) - 1; li >= 0; li-- {
			for _, c := range layers[li] {
				if err := e.recoverCell(c); err != nil {
					return false, err
				}
			}
		}

		// Step b: attempt a bounded DFS over the union of all layers.
		sequence := flattenLayers(layers)
		snap := e.snapshot()
		if e.backtrack(sequence, 0) {
			e.cfg.logger.Infof("wfc: repair resolved at depth %d", depth)
			return true, nil
		}
		e.restore(snap)

		// Step c: grow the next layer from the outermost layer's
		// collapsed real neighbours not already recruited, pulling their
		// previously-fixed assignment back into the search space.
		next := e.nextLayer(layers[len(layers)-1], seen)
		if len(next) == 0 {
			e.cfg.logger.Warnf("wfc: repair exhausted at depth %d, no further layer to grow", depth)
			return false, nil
		}
		for _, c := range next {
			seen[c] = true
		}
		layers = append(layers, next)
	}

	e.cfg.logger.Warnf("wfc: repair exhausted recursion budget (%d)", e.cfg.maxRecursionDepth)
	return false, nil
}

// conflictCells returns every cell currently in Conflict, ascending by id.
func (e *Engine[EdgeData]) conflictCells() []core.CellID {
	var out []core.CellID
	for i, rec := range e.records {
		if rec.State == Conflict {
			out = append(out, core.CellID(i))
		}
	}
	return out
}

// nextLayer collects cur's real collapsed neighbours not already present in
// any layer, deduplicated and sorted by cell id for deterministic layer
// growth (§5). Recruiting a Collapsed neighbour, rather than only the
// uncollapsed/conflict cells already swept into L0, is what gives depth>0
// recovery any power at all: by the time repair runs the frontier is fully
// drained (§4.4 step 1), so every non-conflict cell is Collapsed and growth
// restricted to uncollapsed-or-conflict neighbours would never find one.
func (e *Engine[EdgeData]) nextLayer(cur []core.CellID, seen map[core.CellID]bool) []core.CellID {
	added := map[core.CellID]bool{}
	var next []core.CellID
	for _, c := range cur {
		neighbours, err := e.grid.Neighbours(c)
		if err != nil {
			continue
		}
		for _, n := range neighbours {
			if e.grid.IsSentinel(n) || seen[n] || added[n] {
				continue
			}
			if e.records[n].State == Collapsed {
				next = append(next, n)
				added[n] = true
			}
		}
	}
	sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
	return next
}

// flattenLayers concatenates layers in insertion order (L0 first), the
// ordered sequence backtrack explores.
func flattenLayers(layers [][]core.CellID) []core.CellID {
	var out []core.CellID
	for _, layer := range layers {
		out = append(out, layer...)
	}
	return out
}

// backtrack is the bounded DFS of §4.5: try every candidate of
// sequence[i], in stable ascending order, tentatively collapsing and
// propagating; recurse only if propagation left no new conflict among the
// cells still to be visited. Every branch is scoped by its own snapshot so
// failure never leaks state into the next candidate.
func (e *Engine[EdgeData]) backtrack(sequence []core.CellID, i int) bool {
	if i == len(sequence) {
		return true
	}
	c := sequence[i]
	rec := e.records[c]
	if len(rec.Candidates) == 0 {
		return false
	}

	snap := e.snapshot()
	for _, t := range sortedTileIDs(rec.Candidates) {
		if !e.compatibleWithCollapsedNeighbours(c, t) {
			continue
		}

		e.collapseTo(c, t)
		if err := e.propagate(c); err != nil {
			e.restore(snap)
			continue
		}

		if !e.anyConflictAmong(sequence[i+1:]) && e.backtrack(sequence, i+1) {
			return true
		}
		e.restore(snap)
	}
	return false
}

// compatibleWithCollapsedNeighbours checks candidate t directly against
// every currently-Collapsed real neighbour of c, under the match predicate
// in the corresponding directions.
func (e *Engine[EdgeData]) compatibleWithCollapsedNeighbours(c core.CellID, t tileset.TileID) bool {
	tile, err := e.tiles.GetTile(t)
	if err != nil {
		return false
	}
	for _, d := range e.directions {
		idx := d.Index()
		n, ok, err := e.grid.GetNeighbourByDirection(c, d)
		if err != nil || !ok || e.grid.IsSentinel(n) {
			continue
		}
		rec := e.records[n]
		if rec.State != Collapsed {
			continue
		}
		oppIdx := e.opposites[idx]
		if oppIdx < 0 {
			continue
		}
		var neighbourTileID tileset.TileID
		for id := range rec.Candidates {
			neighbourTileID = id
		}
		neighbourTile, err := e.tiles.GetTile(neighbourTileID)
		if err != nil {
			return false
		}
		if !e.tiles.Match(tile.Edges[idx], neighbourTile.Edges[oppIdx]) {
			return false
		}
	}
	return true
}

// anyConflictAmong reports whether any of cells is currently in Conflict.
func (e *Engine[EdgeData]) anyConflictAmong(cells []core.CellID) bool {
	for _, c := range cells {
		if e.records[c].State == Conflict {
			return true
		}
	}
	return false
}
