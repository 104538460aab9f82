// Package game holds the snake simulation: board geometry, the snake and food
// entities, input mapping and the per-tick controller. It has no dependency on
// a rendering or input backend.
package game

type Cell struct{ X, Y int }

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{c.X + dx, c.Y + dy}
}

type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Board is the playfield size in cells.
type Board struct {
	Width, Height int
}

func (b Board) Center() Cell {
	return Cell{b.Width / 2, b.Height / 2}
}

func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Wrap maps c onto the torus [0, width) x [0, height).
func Wrap(c Cell, width, height int) Cell {
	return Cell{mod(c.X, width), mod(c.Y, height)}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
