// Package direction provides the direction capability the graph substrate and
// tile catalogue rely on to translate between abstract directions and
// neighbour-list indices without storing per-edge metadata.
//
// A Direction knows its own position in a cell's neighbour slice and,
// optionally, the direction that looks back along the same logical
// connection. Concrete direction sets (Orthogonal4 here; hex grids, graphs
// with named ports, etc. elsewhere) implement the interface; the graph and
// tile packages never assume a specific set.
package direction
