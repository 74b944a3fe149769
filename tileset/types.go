package tileset

// TileID identifies a tile by its position in the catalogue's tile table.
// IDs are issued in insertion order starting at 0.
type TileID int

// Tile is an assignment option: a positive weight and one edge label per
// direction, in the direction set's canonical order.
type Tile[EdgeData any] struct {
	ID     TileID
	Weight int
	Edges  []EdgeData
}

// MatchFunc decides whether two edge labels are compatible across a shared
// boundary. Implementations must be pure and symmetric: match(a,b) ==
// match(b,a). The reference instance is Equal; Socket offers an alternate,
// complementary-label scheme.
type MatchFunc[EdgeData any] func(a, b EdgeData) bool
