// Package world provides dungeon generation, map queries, and fog of war.
package world

// Tile represents a single map cell kind. The rune value is the default
// display glyph; biomes may override wall and floor glyphs when rendering.
type Tile rune

const (
	// TileWall is impassable and blocks line of sight.
	TileWall Tile = '#'
	// TileFloor is open ground.
	TileFloor Tile = '.'
	// TileDoor is a passable doorway.
	TileDoor Tile = '+'
	// TileStairs leads to the next depth.
	TileStairs Tile = '>'
	// TileShrine marks an untriggered encounter.
	TileShrine Tile = '_'
	// TileChest is a passable container tile.
	TileChest Tile = '='
	// TileEnemy marks an enemy spawn.
	TileEnemy Tile = 'e'
	// TileItem marks an item lying on the ground.
	TileItem Tile = '!'
)

// IsPassable returns true if the tile can be walked on. Only walls block.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns the tile kind name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDoor:
		return "door"
	case TileStairs:
		return "stairs"
	case TileShrine:
		return "shrine"
	case TileChest:
		return "chest"
	case TileEnemy:
		return "enemy"
	case TileItem:
		return "item"
	default:
		return "unknown"
	}
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}
