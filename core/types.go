package core

import "sync"

// CellID identifies a cell by its position in the grid's cell table. IDs are
// issued in insertion order starting at 0 and are never reused.
type CellID int

// EdgeID identifies a directed edge by its position in the grid's edge
// table. IDs are issued in insertion order starting at 0.
type EdgeID int

// SentinelID is the shared boundary sentinel's identity. A Grid never stores
// a cell record for it; IsSentinel compares directly against this value.
const SentinelID CellID = -1

// Edge is an ordered connection created by CreateEdge. Edges are never
// removed once created.
type Edge struct {
	ID   EdgeID
	From CellID
	To   CellID // SentinelID if this edge targets the boundary
}

// GridOption configures a Grid before use.
type GridOption func(*Grid)

// WithCapacity records a capacity for the given number of cells and edges.
// Exceeding the recorded capacity never fails outright (Go slices grow);
// WithCapacity exists so callers with a known, fixed topology size can opt
// into ErrCapacityExhausted instead of unbounded growth, by also calling
// Freeze after population.
func WithCapacity(cells, edges int) GridOption {
	return func(g *Grid) {
		g.cellCap = cells
		g.edgeCap = edges
	}
}

// Grid is the graph substrate: cells plus directed edges, including edges to
// the shared boundary sentinel. The zero value is not usable; construct with
// NewGrid.
type Grid struct {
	muCells sync.RWMutex // guards cells
	muEdges sync.RWMutex // guards edges, outEdges, edgeIdx

	cellCap int // 0 means unbounded
	edgeCap int // 0 means unbounded
	frozen  bool

	cells []any // payload per cell, indexed by CellID

	edges    []Edge               // all edges, indexed by EdgeID
	outEdges [][]EdgeID           // outEdges[c] = edges created from cell c, in creation order
	edgeIdx  map[[2]CellID]EdgeID // (from,to) -> edge id, real targets only
}

// NewGrid creates an empty Grid.
func NewGrid(opts ...GridOption) *Grid {
	g := &Grid{
		edgeIdx: make(map[[2]CellID]EdgeID),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Freeze makes subsequent AddCell/CreateEdge calls beyond the capacity
// reserved by WithCapacity fail with ErrCapacityExhausted instead of growing
// unboundedly. Calling Freeze without WithCapacity is a no-op.
func (g *Grid) Freeze() {
	g.muCells.Lock()
	defer g.muCells.Unlock()
	g.frozen = true
}
