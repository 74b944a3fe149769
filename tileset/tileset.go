package tileset

import "fmt"

// TileSet owns the tile data for one grid's direction set and delegates
// compatibility decisions to an injected MatchFunc. The data owner and the
// compatibility predicate are kept separate on purpose: the catalogue never
// hard-codes what "compatible" means.
type TileSet[EdgeData any] struct {
	match      MatchFunc[EdgeData]
	directions int
	tiles      []Tile[EdgeData]
}

// NewTileSet creates an empty catalogue for a direction set of the given
// size, using match to decide edge-label compatibility.
func NewTileSet[EdgeData any](match MatchFunc[EdgeData], directions int) *TileSet[EdgeData] {
	return &TileSet[EdgeData]{
		match:      match,
		directions: directions,
	}
}

// AddTile appends a tile with one edge label per direction and a positive
// weight, returning its newly issued TileID. IDs are issued in insertion
// order starting at 0.
func (ts *TileSet[EdgeData]) AddTile(edges []EdgeData, weight int) (TileID, error) {
	if len(edges) != ts.directions {
		return 0, fmt.Errorf("tileset: add tile with %d edges, want %d: %w", len(edges), ts.directions, ErrWrongEdgeCount)
	}
	if weight <= 0 {
		return 0, fmt.Errorf("tileset: add tile with weight %d: %w", weight, ErrInvalidWeight)
	}

	id := TileID(len(ts.tiles))
	labels := make([]EdgeData, len(edges))
	copy(labels, edges)
	ts.tiles = append(ts.tiles, Tile[EdgeData]{ID: id, Weight: weight, Edges: labels})
	return id, nil
}

// GetTile returns the tile stored under id.
func (ts *TileSet[EdgeData]) GetTile(id TileID) (Tile[EdgeData], error) {
	if int(id) < 0 || int(id) >= len(ts.tiles) {
		return Tile[EdgeData]{}, fmt.Errorf("tileset: get tile %d: %w", id, ErrTileNotFound)
	}
	return ts.tiles[id], nil
}

// TileCount returns the number of tiles in the catalogue.
func (ts *TileSet[EdgeData]) TileCount() int {
	return len(ts.tiles)
}

// Directions returns the direction count this catalogue was built for.
func (ts *TileSet[EdgeData]) Directions() int {
	return ts.directions
}

// Match exposes the injected compatibility predicate directly, for callers
// that need a single pairwise check (e.g. the repair engine validating a
// tentative collapse against an already-Collapsed neighbour) rather than
// Judge's neighbour-set scan.
func (ts *TileSet[EdgeData]) Match(a, b EdgeData) bool {
	return ts.match(a, b)
}

// AllTileIDs returns every tile id in insertion order.
func (ts *TileSet[EdgeData]) AllTileIDs() []TileID {
	ids := make([]TileID, len(ts.tiles))
	for i := range ts.tiles {
		ids[i] = TileID(i)
	}
	return ids
}

// Judge reports whether candidate is compatible with every direction's
// neighbour candidate set. neighbourCandidates[i] is the set of tile ids
// still possible for the neighbour lying in direction i; opposites[i] is
// the index of direction i's opposite, used to look up the edge label the
// neighbour exposes back toward this cell. Both slices must have length
// Directions(). A direction whose neighbourCandidates[i] is empty (sentinel
// neighbour, or an unconstrained query) is skipped — it imposes no
// constraint.
func (ts *TileSet[EdgeData]) Judge(neighbourCandidates []map[TileID]struct{}, opposites []int, candidate TileID) (bool, error) {
	if len(neighbourCandidates) != ts.directions || len(opposites) != ts.directions {
		return false, fmt.Errorf("tileset: judge with %d/%d slices, want %d: %w",
			len(neighbourCandidates), len(opposites), ts.directions, ErrWrongCandidateCount)
	}

	c, err := ts.GetTile(candidate)
	if err != nil {
		return false, err
	}

	for i, candidates := range neighbourCandidates {
		if len(candidates) == 0 {
			continue
		}
		opp := opposites[i]
		ok := false
		for t := range candidates {
			neighbourTile, err := ts.GetTile(t)
			if err != nil {
				return false, err
			}
			if ts.match(c.Edges[i], neighbourTile.Edges[opp]) {
				ok = true
				break
			}
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
