package core

import (
	"fmt"

	"github.com/amazcuter/rlwfc/direction"
)

// AddCell appends a cell carrying payload and returns its new CellID.
// Complexity: O(1) amortised.
func (g *Grid) AddCell(payload any) (CellID, error) {
	g.muCells.Lock()
	defer g.muCells.Unlock()

	if g.frozen && g.cellCap > 0 && len(g.cells) >= g.cellCap {
		return 0, ErrCapacityExhausted
	}

	id := CellID(len(g.cells))
	g.cells = append(g.cells, payload)

	g.muEdges.Lock()
	g.outEdges = append(g.outEdges, nil)
	g.muEdges.Unlock()

	return id, nil
}

// CreateEdge appends a directed edge from a real cell to either another real
// cell or, when to is nil, the shared boundary sentinel. Returns ErrSelfLoop
// if to points back at from, and ErrEdgeAlreadyExists if a directed edge
// already exists from from to a real to (sentinel edges are never
// deduplicated, so repeated boundary edges from the same cell are allowed).
func (g *Grid) CreateEdge(from CellID, to *CellID) (EdgeID, error) {
	g.muCells.RLock()
	frozen := g.frozen
	if !g.cellExistsLocked(from) {
		g.muCells.RUnlock()
		return 0, fmt.Errorf("core: create edge from %d: %w", from, ErrNodeNotFound)
	}
	if to != nil && !g.cellExistsLocked(*to) {
		g.muCells.RUnlock()
		return 0, fmt.Errorf("core: create edge to %d: %w", *to, ErrNodeNotFound)
	}
	g.muCells.RUnlock()

	target := SentinelID
	if to != nil {
		target = *to
	}
	if to != nil && from == *to {
		return 0, ErrSelfLoop
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if frozen && g.edgeCap > 0 && len(g.edges) >= g.edgeCap {
		return 0, ErrCapacityExhausted
	}

	if to != nil {
		key := [2]CellID{from, target}
		if _, exists := g.edgeIdx[key]; exists {
			return 0, ErrEdgeAlreadyExists
		}
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, From: from, To: target})
	g.outEdges[from] = append(g.outEdges[from], id)

	if to != nil {
		g.edgeIdx[[2]CellID{from, target}] = id
	}

	return id, nil
}

// cellExistsLocked reports whether id names a real cell. Callers must hold
// muCells for reading.
func (g *Grid) cellExistsLocked(id CellID) bool {
	return id >= 0 && int(id) < len(g.cells)
}

// Neighbours returns cell's neighbour list in the reverse of edge-creation
// order. The slice always has length equal to the number of edges created
// from cell, including sentinel targets.
func (g *Grid) Neighbours(cell CellID) ([]CellID, error) {
	g.muCells.RLock()
	ok := g.cellExistsLocked(cell)
	g.muCells.RUnlock()
	if !ok {
		return nil, fmt.Errorf("core: neighbours of %d: %w", cell, ErrNodeNotFound)
	}

	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := g.outEdges[cell]
	result := make([]CellID, len(out))
	for i, eid := range out {
		result[len(out)-1-i] = g.edges[eid].To
	}
	return result, nil
}

// GetNeighbourByDirection resolves cell's neighbour lying in direction d,
// using d.Index() against the neighbour list Neighbours would return.
// Returns ok=false if d's index falls outside the neighbour list.
func (g *Grid) GetNeighbourByDirection(cell CellID, d direction.Direction) (CellID, bool, error) {
	neighbours, err := g.Neighbours(cell)
	if err != nil {
		return 0, false, err
	}
	idx := d.Index()
	if idx < 0 || idx >= len(neighbours) {
		return 0, false, fmt.Errorf("core: direction %s on cell %d: %w", d, cell, ErrIndexOutOfBounds)
	}
	return neighbours[idx], true, nil
}

// FindEdge returns the edge id of the directed edge from from to to, if one
// exists. Sentinel targets are never indexed, so FindEdge never reports a
// sentinel edge even if one exists; use Neighbours to discover those.
func (g *Grid) FindEdge(from, to CellID) (EdgeID, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	id, ok := g.edgeIdx[[2]CellID{from, to}]
	return id, ok
}

// IsSentinel reports whether id is the shared boundary sentinel identity.
func (g *Grid) IsSentinel(id CellID) bool {
	return id == SentinelID
}

// CellCount returns the number of real cells in the grid.
func (g *Grid) CellCount() int {
	g.muCells.RLock()
	defer g.muCells.RUnlock()
	return len(g.cells)
}

// EdgeCount returns the number of directed edges created so far, including
// sentinel edges.
func (g *Grid) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	return len(g.edges)
}

// Payload returns the payload stored at cell, if any.
func (g *Grid) Payload(cell CellID) (any, error) {
	g.muCells.RLock()
	defer g.muCells.RUnlock()
	if !g.cellExistsLocked(cell) {
		return nil, fmt.Errorf("core: payload of %d: %w", cell, ErrNodeNotFound)
	}
	return g.cells[cell], nil
}

// Stats is a read-only structural snapshot of a Grid.
type Stats struct {
	Cells         int
	Edges         int
	SentinelEdges int
}

// Stats reports cell/edge counts, including how many edges target the
// boundary sentinel.
func (g *Grid) Stats() Stats {
	g.muCells.RLock()
	cells := len(g.cells)
	g.muCells.RUnlock()

	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	sentinelEdges := 0
	for _, e := range g.edges {
		if e.To == SentinelID {
			sentinelEdges++
		}
	}
	return Stats{Cells: cells, Edges: len(g.edges), SentinelEdges: sentinelEdges}
}

// ValidateStructure checks every real cell's neighbour list is well-formed:
// every edge target is either the sentinel or an existing cell. It exists
// as a diagnostic for builders; a Grid populated only through AddCell and
// CreateEdge can never violate this on its own.
func (g *Grid) ValidateStructure() error {
	g.muCells.RLock()
	nCells := len(g.cells)
	g.muCells.RUnlock()

	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	for _, e := range g.edges {
		if e.To == SentinelID {
			continue
		}
		if int(e.To) < 0 || int(e.To) >= nCells {
			return fmt.Errorf("core: edge %d targets %d: %w", e.ID, e.To, ErrNodeNotFound)
		}
	}
	return nil
}
