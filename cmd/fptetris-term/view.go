package main

import (
	"math"

	"github.com/plus3/fptetris/grid"
	"github.com/plus3/fptetris/stage"
)

// Cell kinds of the projected room. Block slots keep their grid values.
const (
	cellVoid    uint8 = 255
	cellWall    uint8 = 254
	cellCurtain uint8 = 253
)

// quarterTurns snaps an angle in degrees to the nearest quarter turn, as a
// count in [0, 4).
func quarterTurns(angle float64) int {
	q := int(math.Round(angle/90)) % 4
	if q < 0 {
		q += 4
	}
	return q
}

// project samples the room as seen by the camera onto a cols x rows grid
// of room cells. The camera pivot lands on the grid center and the room is
// turned by the camera angle, snapped to quarter turns.
func project(v stage.View, cols, rows int) [][]uint8 {
	board := v.Board()
	curtainRows := int(math.Ceil(v.Curtain * grid.Height))

	// Turning the screen offset back by the camera angle gives the room
	// offset: x' = x cos + y sin, y' = -x sin + y cos.
	var cos, sin float64
	switch quarterTurns(v.Camera.Angle) {
	case 0:
		cos, sin = 1, 0
	case 1:
		cos, sin = 0, 1
	case 2:
		cos, sin = -1, 0
	case 3:
		cos, sin = 0, -1
	}

	out := make([][]uint8, rows)
	for j := range rows {
		out[j] = make([]uint8, cols)
		for i := range cols {
			dx := float64(i) - float64(cols)/2 + 0.5
			dy := float64(j) - float64(rows)/2 + 0.5
			rx := v.Camera.X + dx*cos + dy*sin
			ry := v.Camera.Y - dx*sin + dy*cos
			out[j][i] = sample(board, curtainRows, int(math.Floor(rx)), int(math.Floor(ry)))
		}
	}
	return out
}

func sample(board [grid.Height][grid.Width]uint8, curtainRows, x, y int) uint8 {
	switch {
	case y < 0 || y > grid.Height || x < -1 || x > grid.Width:
		return cellVoid
	case y == grid.Height || x == -1 || x == grid.Width:
		return cellWall
	case y < curtainRows:
		return cellCurtain
	default:
		return board[y][x]
	}
}
