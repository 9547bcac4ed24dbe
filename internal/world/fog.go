package world

// FogMap remembers which cells the player has ever seen on the current level.
// Cells only ever flip from hidden to revealed.
type FogMap struct {
	width, height int
	revealed      [][]bool
}

// NewFogMap creates a fully hidden fog map.
func NewFogMap(width, height int) *FogMap {
	revealed := make([][]bool, height)
	for y := range revealed {
		revealed[y] = make([]bool, width)
	}
	return &FogMap{width: width, height: height, revealed: revealed}
}

// Revealed reports whether (x, y) has been seen. Out-of-bounds cells are hidden.
func (f *FogMap) Revealed(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	return f.revealed[y][x]
}

// RevealAll marks every cell as seen.
func (f *FogMap) RevealAll() {
	for y := range f.revealed {
		for x := range f.revealed[y] {
			f.revealed[y][x] = true
		}
	}
}

// RevealedCount returns how many cells have been seen.
func (f *FogMap) RevealedCount() int {
	n := 0
	for y := range f.revealed {
		for _, seen := range f.revealed[y] {
			if seen {
				n++
			}
		}
	}
	return n
}

// Clone returns a copy of the revealed grid.
func (f *FogMap) Clone() [][]bool {
	out := make([][]bool, len(f.revealed))
	for y := range f.revealed {
		out[y] = append([]bool(nil), f.revealed[y]...)
	}
	return out
}

// Update reveals every cell within radius of origin (Euclidean disk) that
// has an unobstructed line of sight from origin.
func (f *FogMap) Update(d *Dungeon, origin Point, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x := origin.X + dx
			y := origin.Y + dy
			if !d.InBounds(x, y) || x >= f.width || y >= f.height {
				continue
			}
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if LineOfSight(d, origin, Point{X: x, Y: y}) {
				f.revealed[y][x] = true
			}
		}
	}
}

// LineOfSight walks an integer Bresenham line from a to b and reports whether
// no wall lies strictly between them. The endpoints themselves never block.
func LineOfSight(d *Dungeon, a, b Point) bool {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx - dy
	cx, cy := a.X, a.Y

	for cx != b.X || cy != b.Y {
		if (cx != a.X || cy != a.Y) && d.GetTile(cx, cy) == TileWall {
			return false
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			cx += sx
		}
		if e2 < dx {
			err += dx
			cy += sy
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
