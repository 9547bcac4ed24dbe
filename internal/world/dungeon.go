package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/greenchapel/internal/rng"
	"github.com/samdwyer/greenchapel/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 48
	DefaultHeight = 24

	// MaxDepth is the final level. It has no stairs and hosts the last encounter.
	MaxDepth = 5

	// Room placement parameters
	minRooms        = 5
	maxRooms        = 8
	minRoomWidth    = 4
	maxRoomWidth    = 9
	minRoomHeight   = 3
	maxRoomHeight   = 6
	placeAttempts   = 100
	roomPadding     = 2
	enemyChance     = 0.6
	itemChance      = 0.3
	minEncounterRms = 3
)

// Dungeon is a generated level: its grid, rooms, and spawn positions.
type Dungeon struct {
	Width  int
	Height int
	Depth  int
	Seed   uint32
	Tiles  [][]Tile
	Rooms  []Room

	Start      Point
	Stairs     *Point // nil on the final depth
	Enemies    []Point
	Items      []Point
	Encounters []Point

	rng rng.Stream
}

// NewDungeon creates a new dungeon filled with walls.
func NewDungeon(width, height int, stream rng.Stream) *Dungeon {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Dungeon{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Rooms:  make([]Room, 0),
		rng:    stream,
	}
}

// Generate builds the level for depth from seed. The same (depth, seed) pair
// always yields an identical grid, room list, and spawn layout.
func Generate(ctx context.Context, depth int, seed uint32) *Dungeon {
	stream := rng.NewDeterministic(rng.SubSeed(seed, depth, rng.Layout, 0))
	d := NewDungeon(DefaultWidth, DefaultHeight, stream)
	d.Depth = depth
	d.Seed = seed
	d.generate(ctx)
	return d
}

// generate runs the full pipeline: rooms, corridors, then spawns.
func (d *Dungeon) generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	d.placeRooms()
	d.connectRooms()
	d.placeEntities()

	span.SetAttributes(
		attribute.Int("dungeon.depth", d.Depth),
		attribute.Int64("dungeon.seed", int64(d.Seed)),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.enemy_count", len(d.Enemies)),
		attribute.Int("dungeon.item_count", len(d.Items)),
		attribute.Int("dungeon.encounter_count", len(d.Encounters)),
		attribute.Bool("dungeon.has_stairs", d.Stairs != nil),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// InBounds reports whether (x, y) lies on the grid.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.Tiles[y][x].IsPassable()
}

// GetTile returns the tile at the given position.
func (d *Dungeon) GetTile(x, y int) Tile {
	if !d.InBounds(x, y) {
		return TileWall
	}
	return d.Tiles[y][x]
}

// SetTile replaces the tile at the given position. Out-of-bounds writes are ignored.
func (d *Dungeon) SetTile(x, y int, t Tile) {
	if d.InBounds(x, y) {
		d.Tiles[y][x] = t
	}
}

// RandomFloorInRoom returns a random passable point within the room, drawing
// from stream. Falls back to the room center.
func (d *Dungeon) RandomFloorInRoom(roomIndex int, stream rng.Stream) Point {
	if roomIndex < 0 || roomIndex >= len(d.Rooms) {
		return Point{X: -1, Y: -1}
	}
	room := d.Rooms[roomIndex]

	for i := 0; i < 100; i++ {
		x := room.X + rng.Intn(stream, room.Width)
		y := room.Y + rng.Intn(stream, room.Height)
		if d.IsPassable(x, y) {
			return Point{X: x, Y: y}
		}
	}

	return room.CenterPoint()
}

// Clone returns a deep copy of the tile grid.
func (d *Dungeon) Clone() [][]Tile {
	out := make([][]Tile, len(d.Tiles))
	for y := range d.Tiles {
		out[y] = append([]Tile(nil), d.Tiles[y]...)
	}
	return out
}

// placeRooms proposes rectangles by rejection sampling. A room that runs out
// of attempts is skipped.
func (d *Dungeon) placeRooms() {
	numRooms := rng.Range(d.rng, minRooms, maxRooms)

	for i := 0; i < numRooms; i++ {
		for attempt := 0; attempt < placeAttempts; attempt++ {
			w := rng.Range(d.rng, minRoomWidth, maxRoomWidth)
			h := rng.Range(d.rng, minRoomHeight, maxRoomHeight)
			room := Room{
				X:      rng.Range(d.rng, 1, d.Width-w-1),
				Y:      rng.Range(d.rng, 1, d.Height-h-1),
				Width:  w,
				Height: h,
			}

			if d.overlapsExisting(room) {
				continue
			}
			d.Rooms = append(d.Rooms, room)
			d.carveRoom(room)
			break
		}
	}

	d.placeFallbackIfEmpty()
}

// placeFallbackIfEmpty carves a small room at the map center when sampling
// produced nothing, so every level has a start position.
func (d *Dungeon) placeFallbackIfEmpty() {
	if len(d.Rooms) == 0 {
		room := Room{
			X:      d.Width/2 - minRoomWidth/2,
			Y:      d.Height/2 - minRoomHeight/2,
			Width:  minRoomWidth,
			Height: minRoomHeight,
		}
		d.Rooms = append(d.Rooms, room)
		d.carveRoom(room)
	}
}

func (d *Dungeon) overlapsExisting(room Room) bool {
	for _, existing := range d.Rooms {
		if room.Intersects(existing, roomPadding) {
			return true
		}
	}
	return false
}

// carveRoom sets all tiles within the room to floor.
func (d *Dungeon) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			d.SetTile(x, y, TileFloor)
		}
	}
}

// connectRooms joins each room to the next one in placement order.
func (d *Dungeon) connectRooms() {
	for i := 1; i < len(d.Rooms); i++ {
		d.carveCorridor(d.Rooms[i-1], d.Rooms[i])
	}
}

// carveCorridor creates an L-shaped corridor between two room centers.
func (d *Dungeon) carveCorridor(room1, room2 Room) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if rng.Chance(d.rng, 0.5) {
		d.carveHorizontalTunnel(x1, x2, y1)
		d.carveVerticalTunnel(y1, y2, x2)
	} else {
		d.carveVerticalTunnel(y1, y2, x1)
		d.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.SetTile(x, y, TileFloor)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.SetTile(x, y, TileFloor)
	}
}

// placeEntities records start, stairs, and spawn markers. Enemy and item
// markers only land on plain floor; the encounter shrine always takes its
// room's center.
func (d *Dungeon) placeEntities() {
	first := d.Rooms[0]
	d.Start = first.CenterPoint()

	if d.Depth < MaxDepth {
		stairs := d.Rooms[len(d.Rooms)-1].CenterPoint()
		d.Stairs = &stairs
		d.SetTile(stairs.X, stairs.Y, TileStairs)
	}

	for i := 1; i < len(d.Rooms)-1; i++ {
		if !rng.Chance(d.rng, enemyChance) {
			continue
		}
		room := d.Rooms[i]
		p := Point{
			X: rng.Range(d.rng, room.X+1, room.X+room.Width-2),
			Y: rng.Range(d.rng, room.Y+1, room.Y+room.Height-2),
		}
		if d.GetTile(p.X, p.Y) == TileFloor {
			d.Enemies = append(d.Enemies, p)
			d.SetTile(p.X, p.Y, TileEnemy)
		}
	}

	for _, room := range d.Rooms {
		if !rng.Chance(d.rng, itemChance) {
			continue
		}
		p := Point{
			X: rng.Range(d.rng, room.X, room.X+room.Width-1),
			Y: rng.Range(d.rng, room.Y, room.Y+room.Height-1),
		}
		if d.GetTile(p.X, p.Y) == TileFloor {
			d.Items = append(d.Items, p)
			d.SetTile(p.X, p.Y, TileItem)
		}
	}

	if len(d.Rooms) >= minEncounterRms {
		room := d.Rooms[rng.Range(d.rng, 1, len(d.Rooms)-2)]
		p := room.CenterPoint()
		d.Encounters = append(d.Encounters, p)
		d.SetTile(p.X, p.Y, TileShrine)
	}
}
