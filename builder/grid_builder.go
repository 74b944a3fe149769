package builder

import (
	"fmt"

	"github.com/amazcuter/rlwfc/core"
)

// Coordinate is the payload Orthogonal2D stores at each cell: its row/column
// position in the source grid.
type Coordinate struct {
	Row, Col int
}

// Orthogonal2D builds a rows x cols grid with 4-connectivity. Edges are
// created from every cell in East, South, West, North order — matching
// direction.Orthogonal4's canonical creation order — with a sentinel edge
// substituted for any neighbour that would fall outside the grid, so every
// cell's neighbour list has length 4 regardless of position.
//
// Returns the grid and a row-major table of cell ids, so callers can address
// cells by (row, col) when seeding tiles or pre-collapses.
func Orthogonal2D(rows, cols int) (*core.Grid, [][]core.CellID, error) {
	if rows < 1 || cols < 1 {
		return nil, nil, fmt.Errorf("builder: Orthogonal2D(%d, %d): %w", rows, cols, ErrTooFewCells)
	}

	g := core.NewGrid()
	ids := make([][]core.CellID, rows)
	for r := 0; r < rows; r++ {
		ids[r] = make([]core.CellID, cols)
		for c := 0; c < cols; c++ {
			id, err := g.AddCell(Coordinate{Row: r, Col: c})
			if err != nil {
				return nil, nil, fmt.Errorf("builder: Orthogonal2D: AddCell(%d,%d): %w", r, c, err)
			}
			ids[r][c] = id
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := ids[r][c]

			// East, South, West, North: the canonical creation order.
			targets := []*core.CellID{
				gridNeighbour(ids, r, c+1),
				gridNeighbour(ids, r+1, c),
				gridNeighbour(ids, r, c-1),
				gridNeighbour(ids, r-1, c),
			}
			for _, target := range targets {
				if _, err := g.CreateEdge(cell, target); err != nil {
					return nil, nil, fmt.Errorf("builder: Orthogonal2D: CreateEdge(%d): %w", cell, err)
				}
			}
		}
	}

	return g, ids, nil
}

// gridNeighbour returns a pointer to ids[r][c]'s cell id if (r,c) is inside
// the grid, or nil (sentinel) otherwise.
func gridNeighbour(ids [][]core.CellID, r, c int) *core.CellID {
	if r < 0 || r >= len(ids) || c < 0 || c >= len(ids[r]) {
		return nil
	}
	return &ids[r][c]
}

// Path builds a linear chain of n cells with 2-connectivity (East, West):
// cell i connects East to i+1 and West to i-1, with sentinel edges at both
// ends. Useful for the minimal two-cell scenarios the specification's
// worked examples use.
func Path(n int) (*core.Grid, []core.CellID, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("builder: Path(%d): %w", n, ErrTooFewCells)
	}

	g := core.NewGrid()
	ids := make([]core.CellID, n)
	for i := 0; i < n; i++ {
		id, err := g.AddCell(i)
		if err != nil {
			return nil, nil, fmt.Errorf("builder: Path: AddCell(%d): %w", i, err)
		}
		ids[i] = id
	}

	for i := 0; i < n; i++ {
		var east, west *core.CellID
		if i+1 < n {
			east = &ids[i+1]
		}
		if i-1 >= 0 {
			west = &ids[i-1]
		}
		if _, err := g.CreateEdge(ids[i], east); err != nil {
			return nil, nil, fmt.Errorf("builder: Path: CreateEdge east(%d): %w", ids[i], err)
		}
		if _, err := g.CreateEdge(ids[i], west); err != nil {
			return nil, nil, fmt.Errorf("builder: Path: CreateEdge west(%d): %w", ids[i], err)
		}
	}

	return g, ids, nil
}
