package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/fptetris/grid"
	"github.com/plus3/fptetris/settings"
	"github.com/plus3/fptetris/stage"
)

const cell = stage.CellSize

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	wallColor       = color.RGBA{0x7c, 0x7c, 0x7c, 0xff}
	curtainColor    = color.RGBA{0x40, 0x40, 0x40, 0xff}
	touchColor      = color.RGBA{0xff, 0xff, 0xff, 0x30}
)

func newCellImage() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}

func rgb(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}

// drawBlock draws one cell whose top-left corner sits at (x, y) in cell
// units of the room, shrunk around its center by scale and turned by
// angle radians around (px, py).
func (g *Game) drawBlock(dst *ebiten.Image, x, y, scale float64, clr color.Color, angle, px, py float64) {
	size := (cell - 1) * scale
	offset := (cell - size) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x*cell+offset-px, y*cell+offset-py)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(g.cells, op)
}

// drawRoom paints the walls, the stack and the piece in room coordinates:
// column x of the grid is room column x+1, rows match.
func (g *Game) drawRoom(v stage.View) *ebiten.Image {
	w, h := (grid.Width+2)*cell, (grid.Height+1)*cell
	if g.room == nil {
		g.room = ebiten.NewImage(w, h)
	}
	room := g.room
	room.Fill(backgroundColor)

	vector.DrawFilledRect(room, 0, 0, cell, float32(h), wallColor, false)
	vector.DrawFilledRect(room, float32(w-cell), 0, cell, float32(h), wallColor, false)
	vector.DrawFilledRect(room, 0, float32(h-cell), float32(w), cell, wallColor, false)

	colors := [2]color.RGBA{rgb(v.Colors[0]), rgb(v.Colors[1])}
	for y, row := range v.Grid {
		for x, slot := range row {
			if slot != grid.Empty {
				g.drawBlock(room, float64(x+1), float64(y), 1, colors[slot-1], 0, 0, 0)
			}
		}
	}

	for _, cr := range v.CompleteRows {
		for x, slot := range cr.Blocks {
			if slot != grid.Empty {
				g.drawBlock(room, float64(x+1), float64(cr.Row), v.RowScale[x], colors[slot-1], 0, 0, 0)
			}
		}
	}

	if v.PieceVisible && v.Piece.Kind != nil {
		k := v.Piece.Kind
		center := k.Center(v.Piece.Angle)
		px := (float64(v.Piece.X+1) + center.X) * cell
		py := (v.PieceY + center.Y) * cell
		angle := v.PieceRotation * math.Pi / 180
		clr := colors[k.ColorIndex]
		for x, y := range k.Shape(v.Piece.Angle).Cells() {
			g.drawBlock(room, float64(v.Piece.X+1+x), v.PieceY+float64(y), 1, clr, angle, px, py)
		}
	}

	if v.Curtain > 0 {
		vector.DrawFilledRect(room, cell, 0, grid.Width*cell, float32(v.Curtain*grid.Height*cell), curtainColor, false)
	}
	return room
}

func (g *Game) drawStage(screen *ebiten.Image, v stage.View) {
	screen.Fill(color.Black)
	room := g.drawRoom(v)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-(v.Camera.X+1)*cell, -v.Camera.Y*cell)
	op.GeoM.Rotate(v.Camera.Angle * math.Pi / 180)
	op.GeoM.Scale(v.Scale, v.Scale)
	op.GeoM.Translate(float64(g.width)/2, float64(g.height)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(room, op)

	if !v.LightsOut {
		hud := fmt.Sprintf("SCORE %d\nTOP   %d\nLINES %d\nLEVEL %d\nNEXT  %s", v.Score, v.HiScore, v.Lines, v.Level, v.Next)
		ebitenutil.DebugPrintAt(screen, hud, 8, 8)

		stats := ""
		for _, kc := range v.Statistics {
			stats += fmt.Sprintf("%s %3d\n", kc.Kind, kc.Count)
		}
		ebitenutil.DebugPrintAt(screen, stats, g.width-64, 8)
	}

	if v.TouchControls {
		for _, r := range g.app.Input().Touch().Regions {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, touchColor, false)
		}
	}
}

func (g *Game) drawMenu(screen *ebiten.Image, m *settings.Menu) {
	screen.Fill(color.Black)

	scale := m.Scale()
	left := (float64(g.width) - settings.ContainerWidth*scale) / 2
	top := (float64(g.height) - settings.ContainerHeight*scale) / 2

	y := 24.0
	for _, line := range m.Lines() {
		text := line.Text
		if line.Selected {
			text = "> " + text
		}
		x := 38.0
		if line.Heading {
			x = 24
			y += 12
		}
		ebitenutil.DebugPrintAt(screen, text, int(left+x*scale), int(top+y*scale))
		y += 20
	}
}
