package main

import (
	"github.com/plus3/fptetris/grid"
	"github.com/plus3/fptetris/input"
	"github.com/plus3/fptetris/stage"
	"github.com/plus3/fptetris/tetromino"
)

// Weights score a board after a placement. Higher is better.
type Weights struct {
	Height    float64
	Lines     float64
	Holes     float64
	Bumpiness float64
}

var defaultWeights = Weights{
	Height:    -0.51,
	Lines:     0.76,
	Holes:     -0.36,
	Bumpiness: -0.18,
}

// Placement is where the bot wants the current piece to end up.
type Placement struct {
	Angle tetromino.Angle
	X     int
	Score float64
}

// plan tries every distinct rotation at every column and keeps the best
// resting position. ok is false when nothing fits.
func plan(g *grid.Grid, kind *tetromino.Kind, w Weights) (best Placement, ok bool) {
	for r := range kind.DistinctRotations() {
		angle := tetromino.Angle(r)
		for x := -kind.Size; x < grid.Width; x++ {
			y := -kind.Size
			if g.CollidesWith(kind, angle, x, y) {
				continue
			}
			for !g.CollidesWith(kind, angle, x, y+1) {
				y++
			}

			board := g.Clone()
			rows := board.Unite(kind, angle, x, y)
			for _, row := range rows {
				board.RemoveRow(row.Row)
			}

			score := evaluate(board, len(rows), w)
			if !ok || score > best.Score {
				best = Placement{Angle: angle, X: x, Score: score}
				ok = true
			}
		}
	}
	return best, ok
}

func evaluate(g *grid.Grid, lines int, w Weights) float64 {
	var heights [grid.Width]int
	holes := 0
	for x := range grid.Width {
		covered := false
		for y := range grid.Height {
			if g.Cell(x, y) != grid.Empty {
				if !covered {
					heights[x] = grid.Height - y
					covered = true
				}
			} else if covered {
				holes++
			}
		}
	}

	aggregate, bumpiness := 0, 0
	for x, h := range heights {
		aggregate += h
		if x > 0 {
			bumpiness += abs(h - heights[x-1])
		}
	}

	return w.Height*float64(aggregate) +
		w.Lines*float64(lines) +
		w.Holes*float64(holes) +
		w.Bumpiness*float64(bumpiness)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Bot plays a stage through a Player the way a person at the keyboard would:
// one tap per two ticks, rotations first, then sideways moves, then a drop.
type Bot struct {
	Player   *input.Player
	Weights  Weights
	MaxTries int

	spawns  int
	target  Placement
	planned bool
	tries   int
	pressed input.Button
}

func NewBot(maxTries int) *Bot {
	return &Bot{
		Player:   input.NewPlayer(0),
		Weights:  defaultWeights,
		MaxTries: maxTries,
	}
}

// Tick decides this tick's buttons and publishes them on the player.
func (b *Bot) Tick(st *stage.Stage) {
	if b.pressed != input.NoButton {
		b.Player.Release(b.pressed)
		b.pressed = input.NoButton
		b.Player.Update()
		return
	}

	if st.State() != stage.Idle {
		b.Player.Update()
		return
	}

	if spawns := spawnCount(st); spawns != b.spawns || !b.planned {
		b.spawns = spawns
		b.tries = 0
		b.target, b.planned = plan(st.Grid(), st.Piece().Kind, b.Weights)
	}

	b.tap(b.next(st))
	b.Player.Update()
}

func (b *Bot) next(st *stage.Stage) input.Button {
	piece := st.Piece()
	if !b.planned || b.tries >= b.MaxTries {
		return input.Drop
	}
	b.tries++

	if int(piece.Angle)%piece.Kind.DistinctRotations() != int(b.target.Angle) {
		return input.Rotate
	}

	var want stage.Action
	switch {
	case piece.X > b.target.X:
		want = stage.MoveLeft
	case piece.X < b.target.X:
		want = stage.MoveRight
	default:
		return input.Drop
	}

	angle := st.InputAngle()
	for _, d := range []input.Button{input.Left, input.Right, input.Down, input.Up} {
		if stage.Remap(d, angle) == want {
			return d
		}
	}
	return input.Drop
}

func (b *Bot) tap(button input.Button) {
	b.Player.Press(button)
	b.pressed = button
}

func spawnCount(st *stage.Stage) int {
	n := 0
	for _, k := range tetromino.Kinds() {
		n += st.Statistic(k.Name)
	}
	return n
}
