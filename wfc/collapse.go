package wfc

import (
	"math"
	"math/rand"
	"sort"

	"github.com/amazcuter/rlwfc/core"
	"github.com/amazcuter/rlwfc/tileset"
)

// entropy computes Shannon entropy over candidates' weighted distribution,
// per §4.4: H(S) = -Σ p(t) log₂ p(t), p(t) = weight(t) / Σ weight(s). A
// singleton or empty set has entropy 0; a set whose weights are all zero
// (degenerate input) falls back to log₂|S|.
func entropy[EdgeData any](ts *tileset.TileSet[EdgeData], candidates map[tileset.TileID]struct{}) float64 {
	n := len(candidates)
	if n <= 1 {
		return 0
	}

	total := 0
	for t := range candidates {
		tile, err := ts.GetTile(t)
		if err != nil {
			continue
		}
		total += tile.Weight
	}
	if total == 0 {
		return math.Log2(float64(n))
	}

	h := 0.0
	for _, t := range sortedTileIDs(candidates) {
		tile, err := ts.GetTile(t)
		if err != nil {
			continue
		}
		p := float64(tile.Weight) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// findMinEntropyCell selects the Uncollapsed cell minimising (entropy,
// tiebreak, cell_id) lexicographically, per §4.4 step 2.
func (e *Engine[EdgeData]) findMinEntropyCell() (core.CellID, bool) {
	best := -1
	for c, rec := range e.records {
		if rec.State != Uncollapsed {
			continue
		}
		if best == -1 || lessRecord(rec, core.CellID(c), e.records[best], core.CellID(best)) {
			best = c
		}
	}
	if best == -1 {
		return 0, false
	}
	return core.CellID(best), true
}

// lessRecord orders two cells by (entropy, tiebreak, cell_id).
func lessRecord(a CellRecord, aID core.CellID, b CellRecord, bID core.CellID) bool {
	if a.Entropy != b.Entropy {
		return a.Entropy < b.Entropy
	}
	if a.Tiebreak != b.Tiebreak {
		return a.Tiebreak < b.Tiebreak
	}
	return aID < bID
}

// sortedTileIDs returns m's keys in ascending order, giving every caller
// that samples or iterates a candidate set a stable, reproducible ordering.
func sortedTileIDs(m map[tileset.TileID]struct{}) []tileset.TileID {
	ids := make([]tileset.TileID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// chooseTileByWeight samples one tile from candidates by weight, using
// inverse-CDF sampling over the stable ascending-id ordering so a fixed RNG
// draw always yields the same tile for a fixed candidate set.
func chooseTileByWeight[EdgeData any](ts *tileset.TileSet[EdgeData], candidates map[tileset.TileID]struct{}, rng *rand.Rand) tileset.TileID {
	ids := sortedTileIDs(candidates)

	total := int64(0)
	for _, id := range ids {
		tile, _ := ts.GetTile(id)
		total += int64(tile.Weight)
	}

	draw := rng.Int63n(total)
	var cumulative int64
	for _, id := range ids {
		tile, _ := ts.GetTile(id)
		cumulative += int64(tile.Weight)
		if draw < cumulative {
			return id
		}
	}
	return ids[len(ids)-1]
}

// collapseStep selects the minimum-entropy cell, samples a tile for it by
// weight, and propagates the consequence. §4.4 steps 2-4.
func (e *Engine[EdgeData]) collapseStep() error {
	cell, ok := e.findMinEntropyCell()
	if !ok {
		return ErrNoUncollapsedCells
	}
	rec := e.records[cell]
	tile := chooseTileByWeight(e.tiles, rec.Candidates, e.rng)
	e.cfg.logger.Debugf("wfc: collapse cell %d -> tile %d (entropy %.3f, %d candidates)",
		cell, tile, rec.Entropy, len(rec.Candidates))
	e.collapseTo(cell, tile)
	return e.propagate(cell)
}
