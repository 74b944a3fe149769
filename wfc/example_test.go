package wfc_test

import (
	"fmt"

	"github.com/amazcuter/rlwfc/builder"
	"github.com/amazcuter/rlwfc/direction"
	"github.com/amazcuter/rlwfc/tileset"
	"github.com/amazcuter/rlwfc/wfc"
)

// ExampleEngine_singleTileCatalogue demonstrates the simplest possible solve:
// one tile, no way to conflict, every cell in a 2x2 grid collapses to it.
func ExampleEngine_singleTileCatalogue() {
	grid, ids, _ := builder.Orthogonal2D(2, 2)
	ts := tileset.NewTileSet(tileset.Equal[string], 4)
	_, _ = ts.AddTile([]string{"x", "x", "x", "x"}, 1)

	e, _ := wfc.NewEngine(grid, ts, direction.Orthogonal4Directions(), wfc.WithRandomSeed(1))
	_ = e.Initialize(wfc.DefaultInitializer[string]{})
	_ = e.Run()

	fmt.Println(e.IsComplete(), e.Stats().RepairAttempts)
	for r := range ids {
		for _, id := range ids[r] {
			tile, _ := e.GetCollapsedTile(id)
			fmt.Println(tile)
		}
	}
	// Output:
	// true 0
	// 0
	// 0
	// 0
	// 0
}

// ExampleEngine_forcedConflict demonstrates the forced-conflict case: a
// single tile whose two edges disagree can never tile a two-cell path, so
// Run reports ErrUnresolvableConflicts once repair exhausts every layer.
func ExampleEngine_forcedConflict() {
	grid, _, _ := builder.Path(2)
	ts := tileset.NewTileSet(tileset.Equal[string], 2)
	_, _ = ts.AddTile([]string{"a", "b"}, 1)

	e, _ := wfc.NewEngine(grid, ts, direction.Linear2Directions(), wfc.WithRandomSeed(1))
	_ = e.Initialize(wfc.DefaultInitializer[string]{})
	err := e.Run()

	fmt.Println(err)
	// Output:
	// wfc: unresolvable conflicts
}

// ExampleEngine_repairRecoversAtDepthOne demonstrates the layered repair
// engine recovering from a conflict that depth-0 recovery cannot resolve on
// its own: both ends of a three-cell path are pre-collapsed to a tile that
// leaves the middle cell with zero compatible tiles. Growing the repair
// layer pulls both endpoints back into the search space, and the engine
// finds the all-uniform assignment.
func ExampleEngine_repairRecoversAtDepthOne() {
	grid, ids, _ := builder.Path(3)
	ts := tileset.NewTileSet(tileset.Equal[string], 2)
	_, _ = ts.AddTile([]string{"a", "a"}, 1) // T0
	_, _ = ts.AddTile([]string{"a", "b"}, 1) // T1
	_, _ = ts.AddTile([]string{"b", "b"}, 1) // T2

	e, _ := wfc.NewEngine(grid, ts, direction.Linear2Directions(), wfc.WithRandomSeed(9))
	_ = e.Initialize(wfc.DefaultInitializer[string]{})

	_ = e.PreCollapse(ids[0], 1)
	_ = e.PreCollapse(ids[2], 1)
	_ = e.Run()

	fmt.Println(e.IsComplete(), e.Stats().RepairDepthReached)
	for _, id := range ids {
		tile, _ := e.GetCollapsedTile(id)
		fmt.Println(tile)
	}
	// Output:
	// true 1
	// 0
	// 0
	// 0
}
