// Package grid implements the fixed playfield occupancy matrix.
package grid

import (
	"github.com/plus3/fptetris/tetromino"
)

const (
	Width  = 10
	Height = 20
	// PanicRow is the danger threshold: any block at or above it panics.
	PanicRow = 4
)

// Empty is the value of an unoccupied cell. Occupied cells hold a 1-based
// colour slot (the piece kind's ColorIndex plus one).
const Empty = 0

// CompleteRow is a row that a commit filled, with its contents before clearing.
type CompleteRow struct {
	Row    int
	Blocks [Width]uint8
}

// Grid is owned by a single stage and is not safe for concurrent use.
type Grid struct {
	data [Height][Width]uint8
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{}
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Cell returns the colour slot at column x, row y.
func (g *Grid) Cell(x, y int) uint8 {
	return g.data[y][x]
}

// Set writes a colour slot directly. Used to seed boards.
func (g *Grid) Set(x, y int, value uint8) {
	g.data[y][x] = value
}

// Rows returns a copy of the matrix for renderers.
func (g *Grid) Rows() [Height][Width]uint8 {
	return g.data
}

// CollidesWith reports whether the kind at angle, placed with its bounding
// box at column x and row y, leaves the field or overlaps a block. Rows above
// the field never collide.
func (g *Grid) CollidesWith(kind *tetromino.Kind, angle tetromino.Angle, x, y int) bool {
	for blockX, blockY := range kind.Shape(angle).Cells() {
		col := x + blockX
		if col < 0 || col >= Width {
			return true
		}

		row := y + blockY
		if row >= Height {
			return true
		}
		if row < 0 {
			continue
		}

		if g.data[row][col] != Empty {
			return true
		}
	}
	return false
}

// Unite commits a piece into the matrix and returns the rows it completed in
// ascending order. Completed rows are reset to empty immediately so the grid
// is consistent for the next spawn; RemoveRow collapses them later.
func (g *Grid) Unite(kind *tetromino.Kind, angle tetromino.Angle, x, y int) []CompleteRow {
	color := uint8(kind.ColorIndex + 1)
	shape := kind.Shape(angle)

	var touched [Height]bool
	for blockX, blockY := range shape.Cells() {
		row, col := y+blockY, x+blockX
		if row < 0 || row >= Height || col < 0 || col >= Width {
			continue
		}
		g.data[row][col] = color
		touched[row] = true
	}

	var complete []CompleteRow
	for row := range Height {
		if !touched[row] || !g.isRowFull(row) {
			continue
		}

		complete = append(complete, CompleteRow{Row: row, Blocks: g.data[row]})
		g.data[row] = [Width]uint8{}
	}

	return complete
}

// RemoveRow shifts every row above row down by one and clears row 0.
func (g *Grid) RemoveRow(row int) {
	for y := row; y > 0; y-- {
		g.data[y] = g.data[y-1]
	}
	g.data[0] = [Width]uint8{}
}

// ShouldPanic reports whether the stack reaches PanicRow.
func (g *Grid) ShouldPanic() bool {
	for y := 0; y <= PanicRow; y++ {
		if !g.isRowEmpty(y) {
			return true
		}
	}
	return false
}

// StackHeight returns the number of rows from the floor to the highest block.
func (g *Grid) StackHeight() int {
	for y := range Height {
		if !g.isRowEmpty(y) {
			return Height - y
		}
	}
	return 0
}

// Occupied counts non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if g.data[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

func (g *Grid) isRowFull(y int) bool {
	for _, cell := range g.data[y] {
		if cell == Empty {
			return false
		}
	}
	return true
}

func (g *Grid) isRowEmpty(y int) bool {
	for _, cell := range g.data[y] {
		if cell != Empty {
			return false
		}
	}
	return true
}
