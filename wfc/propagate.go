package wfc

import (
	"github.com/amazcuter/rlwfc/core"
	"github.com/amazcuter/rlwfc/tileset"
)

// neighbourCandidateSets builds, for each direction, the current candidate
// set of cell's neighbour lying in that direction: the neighbour's own
// candidates if Uncollapsed, a singleton if Collapsed, or empty if the
// neighbour is the sentinel or itself in Conflict. This is the shared
// building block behind both propagation (§4.4) and repair recovery
// (§4.5 step a).
func (e *Engine[EdgeData]) neighbourCandidateSets(cell core.CellID) ([]map[tileset.TileID]struct{}, error) {
	sets := make([]map[tileset.TileID]struct{}, len(e.directions))
	for _, d := range e.directions {
		idx := d.Index()
		n, ok, err := e.grid.GetNeighbourByDirection(cell, d)
		if err != nil {
			return nil, err
		}
		if !ok || e.grid.IsSentinel(n) {
			sets[idx] = map[tileset.TileID]struct{}{}
			continue
		}
		rec := e.records[n]
		cp := make(map[tileset.TileID]struct{}, len(rec.Candidates))
		for t := range rec.Candidates {
			cp[t] = struct{}{}
		}
		sets[idx] = cp
	}
	return sets, nil
}

// propagate runs the breadth-first constraint shrinkage described in §4.4,
// seeded with the just-collapsed (or just-recovered) cell. It maintains a
// FIFO queue and an "in-queue" set so a cell already pending is never
// enqueued twice, but may be re-enqueued after it is dequeued if a later
// update shrinks it again.
func (e *Engine[EdgeData]) propagate(seed core.CellID) error {
	queue := []core.CellID{seed}
	inQueue := map[core.CellID]bool{seed: true}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		inQueue[c] = false

		for _, d := range e.directions {
			n, ok, err := e.grid.GetNeighbourByDirection(c, d)
			if err != nil {
				return err
			}
			if !ok || e.grid.IsSentinel(n) {
				continue
			}
			rec := e.records[n]
			if rec.State != Uncollapsed {
				continue
			}

			sets, err := e.neighbourCandidateSets(n)
			if err != nil {
				return err
			}

			shrunk := make(map[tileset.TileID]struct{}, len(rec.Candidates))
			for t := range rec.Candidates {
				ok, err := e.tiles.Judge(sets, e.opposites, t)
				if err != nil {
					return err
				}
				if ok {
					shrunk[t] = struct{}{}
				}
			}

			if len(shrunk) == len(rec.Candidates) {
				continue
			}

			rec.Candidates = shrunk
			rec.Entropy = entropy(e.tiles, shrunk)
			if len(shrunk) == 0 {
				rec.State = Conflict
			}
			e.records[n] = rec

			if !inQueue[n] {
				queue = append(queue, n)
				inQueue[n] = true
			}
		}
	}
	return nil
}
