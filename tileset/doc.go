// Package tileset implements the tile catalogue: an ordered collection of
// tiles, each carrying a positive weight and a list of edge-labels aligned
// with the direction order of the grid it will be used on, plus a pluggable
// compatibility predicate.
//
// Applications supply EdgeData (any comparable-or-not payload representing
// an edge label) and a MatchFunc deciding when two edge labels are
// compatible across a shared boundary. The catalogue itself never compares
// labels directly; it always delegates to the injected predicate.
package tileset
