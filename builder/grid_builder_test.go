package builder_test

import (
	"errors"
	"testing"

	"github.com/amazcuter/rlwfc/builder"
	"github.com/amazcuter/rlwfc/core"
	"github.com/amazcuter/rlwfc/direction"
)

// TestOrthogonal2D_CellAndEdgeCounts verifies a rows x cols grid has
// rows*cols cells and exactly 4 outgoing edges per cell (sentinel edges
// substituted at the boundary).
func TestOrthogonal2D_CellAndEdgeCounts(t *testing.T) {
	g, ids, err := builder.Orthogonal2D(3, 4)
	if err != nil {
		t.Fatalf("Orthogonal2D: %v", err)
	}
	if got := g.CellCount(); got != 12 {
		t.Errorf("CellCount() = %d; want 12", got)
	}
	for r := range ids {
		for _, id := range ids[r] {
			neighbours, err := g.Neighbours(id)
			if err != nil {
				t.Fatalf("Neighbours(%d): %v", id, err)
			}
			if len(neighbours) != 4 {
				t.Errorf("cell (%d): len(Neighbours) = %d; want 4", id, len(neighbours))
			}
		}
	}
}

// TestOrthogonal2D_InteriorNeighboursMatchCoordinates verifies a non-corner
// cell's neighbours in each Orthogonal4 direction land on the expected
// adjacent (row, col).
func TestOrthogonal2D_InteriorNeighboursMatchCoordinates(t *testing.T) {
	g, ids, err := builder.Orthogonal2D(3, 3)
	if err != nil {
		t.Fatalf("Orthogonal2D: %v", err)
	}

	cell := ids[1][1] // dead center: all four neighbours are real cells.
	cases := []struct {
		d        direction.Orthogonal4
		wantCell core.CellID
	}{
		{direction.East, ids[1][2]},
		{direction.South, ids[2][1]},
		{direction.West, ids[1][0]},
		{direction.North, ids[0][1]},
	}
	for _, c := range cases {
		got, ok, err := g.GetNeighbourByDirection(cell, c.d)
		if err != nil {
			t.Fatalf("GetNeighbourByDirection(%s): %v", c.d, err)
		}
		if !ok {
			t.Fatalf("GetNeighbourByDirection(%s): not ok", c.d)
		}
		if got != c.wantCell {
			t.Errorf("GetNeighbourByDirection(%s) = %d; want %d", c.d, got, c.wantCell)
		}
	}
}

// TestOrthogonal2D_CornerHasSentinelNeighbours verifies the (0,0) cell's
// North and West neighbours are the sentinel, not real cells.
func TestOrthogonal2D_CornerHasSentinelNeighbours(t *testing.T) {
	g, ids, err := builder.Orthogonal2D(2, 2)
	if err != nil {
		t.Fatalf("Orthogonal2D: %v", err)
	}

	corner := ids[0][0]
	for _, d := range []direction.Orthogonal4{direction.North, direction.West} {
		got, ok, err := g.GetNeighbourByDirection(corner, d)
		if err != nil {
			t.Fatalf("GetNeighbourByDirection(%s): %v", d, err)
		}
		if !ok {
			t.Fatalf("GetNeighbourByDirection(%s): not ok", d)
		}
		if !g.IsSentinel(got) {
			t.Errorf("GetNeighbourByDirection(%s) = %d; want sentinel", d, got)
		}
	}
}

// TestOrthogonal2D_RejectsNonPositiveDimensions verifies dimension
// validation.
func TestOrthogonal2D_RejectsNonPositiveDimensions(t *testing.T) {
	if _, _, err := builder.Orthogonal2D(0, 3); !errors.Is(err, builder.ErrTooFewCells) {
		t.Errorf("Orthogonal2D(0, 3) error = %v; want ErrTooFewCells", err)
	}
	if _, _, err := builder.Orthogonal2D(3, -1); !errors.Is(err, builder.ErrTooFewCells) {
		t.Errorf("Orthogonal2D(3, -1) error = %v; want ErrTooFewCells", err)
	}
}

// TestPath_EndsHaveSentinelNeighbours verifies a path's two ends each carry
// exactly one sentinel edge.
func TestPath_EndsHaveSentinelNeighbours(t *testing.T) {
	g, ids, err := builder.Path(4)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if g.CellCount() != 4 {
		t.Fatalf("CellCount() = %d; want 4", g.CellCount())
	}

	first, err := g.Neighbours(ids[0])
	if err != nil {
		t.Fatalf("Neighbours(first): %v", err)
	}
	if len(first) != 2 || !g.IsSentinel(first[0]) {
		t.Errorf("Neighbours(first) = %v; want one sentinel then the real neighbour", first)
	}

	last, err := g.Neighbours(ids[len(ids)-1])
	if err != nil {
		t.Fatalf("Neighbours(last): %v", err)
	}
	if len(last) != 2 {
		t.Fatalf("Neighbours(last) has %d entries; want 2", len(last))
	}
	foundSentinel := false
	for _, n := range last {
		if g.IsSentinel(n) {
			foundSentinel = true
		}
	}
	if !foundSentinel {
		t.Errorf("Neighbours(last) = %v; want a sentinel entry", last)
	}
}

// TestPath_RejectsNonPositiveLength verifies length validation.
func TestPath_RejectsNonPositiveLength(t *testing.T) {
	if _, _, err := builder.Path(0); !errors.Is(err, builder.ErrTooFewCells) {
		t.Errorf("Path(0) error = %v; want ErrTooFewCells", err)
	}
}
