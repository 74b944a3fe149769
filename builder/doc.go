// Package builder ships convenience constructors that populate a core.Grid
// the way an application's own builder would: deterministic cell/edge
// emission order, honoring the direction package's canonical creation order
// (East, South, West, North for Orthogonal4; East, West for Linear2) so the
// resulting grid's neighbour-list indices line up with the matching
// direction set.
package builder
