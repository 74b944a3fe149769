package core_test

import (
	"fmt"

	"github.com/amazcuter/rlwfc/core"
)

// Example builds a single cell with all four neighbours pointing at the
// boundary sentinel, the minimal "isolated cell" shape used throughout the
// engine's boundary-behaviour tests.
func Example() {
	g := core.NewGrid()
	a, _ := g.AddCell(nil)

	for i := 0; i < 4; i++ {
		if _, err := g.CreateEdge(a, nil); err != nil {
			panic(err)
		}
	}

	neighbours, _ := g.Neighbours(a)
	sentinelCount := 0
	for _, n := range neighbours {
		if g.IsSentinel(n) {
			sentinelCount++
		}
	}
	fmt.Println(sentinelCount)
	// Output: 4
}
