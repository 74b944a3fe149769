package builder_test

import (
	"fmt"

	"github.com/amazcuter/rlwfc/builder"
)

// ExampleOrthogonal2D demonstrates building a small 4-connected grid and
// inspecting one cell's neighbour count.
func ExampleOrthogonal2D() {
	g, ids, _ := builder.Orthogonal2D(2, 3)
	fmt.Println(g.CellCount())

	neighbours, _ := g.Neighbours(ids[0][0])
	fmt.Println(len(neighbours))
	// Output:
	// 6
	// 4
}

// ExamplePath demonstrates building a linear chain and checking its cell
// count against the returned id slice.
func ExamplePath() {
	g, ids, _ := builder.Path(5)
	fmt.Println(g.CellCount(), len(ids))
	// Output:
	// 5 5
}
