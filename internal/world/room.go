package world

// Room represents a rectangular room in the dungeon.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// CenterPoint returns the center as a Point.
func (r Room) CenterPoint() Point {
	x, y := r.Center()
	return Point{X: x, Y: y}
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room, grown by padding on every side,
// overlaps another room.
func (r Room) Intersects(other Room, padding int) bool {
	return r.X-padding < other.X+other.Width &&
		r.X+r.Width+padding > other.X &&
		r.Y-padding < other.Y+other.Height &&
		r.Y+r.Height+padding > other.Y
}
