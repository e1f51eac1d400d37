package main

import (
	"testing"

	"github.com/plus3/fptetris/grid"
	"github.com/plus3/fptetris/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuarterTurns(t *testing.T) {
	tests := []struct {
		angle float64
		want  int
	}{
		{0, 0}, {-0, 0}, {90, 1}, {-90, 3}, {-180, 2}, {-270, 1}, {-360, 0}, {-44, 0}, {-46, 3}, {450, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, quarterTurns(tt.angle), "angle %v", tt.angle)
	}
}

// room builds a view of an empty board with one block in the bottom-left
// corner and the camera at the room center.
func room(angle float64) stage.View {
	v := stage.View{Camera: stage.Camera{X: grid.Width / 2, Y: grid.Height / 2, Angle: angle}}
	v.Grid[grid.Height-1][0] = 2
	return v
}

func TestProjectUpright(t *testing.T) {
	out := project(room(0), 12, 22)
	require.Len(t, out, 22)
	require.Len(t, out[0], 12)

	// Column i shows room x = i - 1, row j shows room y = j - 1.
	assert.Equal(t, cellVoid, out[0][0])
	assert.Equal(t, cellWall, out[5][0], "left wall")
	assert.Equal(t, cellWall, out[5][11], "right wall")
	assert.Equal(t, cellWall, out[21][5], "floor")
	assert.Equal(t, uint8(2), out[20][1])
	assert.Equal(t, uint8(0), out[20][2])
}

func TestProjectQuarterTurn(t *testing.T) {
	// A piece turned clockwise turns the room counter-clockwise, which puts
	// the floor on the right of the screen.
	out := project(room(-90), 22, 12)
	require.Len(t, out, 12)

	// Column i shows room y = i - 1, row j shows room x = floor(10.5 - j).
	assert.Equal(t, cellWall, out[5][21], "floor on the right")
	assert.Equal(t, cellWall, out[11][5], "left wall at the bottom")
	assert.Equal(t, cellWall, out[0][5], "right wall at the top")
	assert.Equal(t, uint8(2), out[10][20])
	assert.Equal(t, uint8(0), out[9][20])
}

func TestProjectCurtain(t *testing.T) {
	v := room(0)
	v.Curtain = 0.5
	out := project(v, 12, 22)
	assert.Equal(t, cellCurtain, out[1][1])
	assert.Equal(t, cellCurtain, out[10][5])
	assert.Equal(t, uint8(0), out[11][5])
}
