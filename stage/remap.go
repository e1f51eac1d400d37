package stage

import (
	"github.com/plus3/fptetris/input"
	"github.com/plus3/fptetris/tetromino"
)

// Action is a movement the stage can perform.
type Action int

const (
	NoAction Action = iota
	MoveLeft
	MoveRight
	MoveDown
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveDown:
		return "down"
	default:
		return "none"
	}
}

// remapTable is indexed by direction then by cumulative camera angle.
var remapTable = map[input.Button][4]Action{
	input.Left:  {MoveLeft, NoAction, MoveRight, MoveDown},
	input.Right: {MoveRight, MoveDown, MoveLeft, NoAction},
	input.Down:  {MoveDown, MoveLeft, NoAction, MoveRight},
	input.Up:    {NoAction, MoveRight, MoveDown, MoveLeft},
}

// Remap turns a direction pressed on screen into the movement it means in
// the grid when the room is rotated by angle.
func Remap(direction input.Button, angle tetromino.Angle) Action {
	row, ok := remapTable[direction]
	if !ok {
		return NoAction
	}
	return row[int(angle)%4]
}
