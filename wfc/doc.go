// Package wfc implements the collapse/propagation engine and the layered
// conflict-repair engine: the part of rlwfc that actually solves a grid.
//
// An Engine owns a graph substrate (core.Grid), a tile catalogue
// (tileset.TileSet), a per-cell WFC state table, and an RNG. It exposes both
// a blocking Run and a single-step RunStep so callers can interleave solving
// with their own event loops.
//
// Engine is not safe for concurrent use. The specification this package
// implements is single-threaded and cooperative: callers interleave RunStep
// with their own work on one goroutine, the same way the corpus's graph
// search packages assume a single caller per traversal.
package wfc
