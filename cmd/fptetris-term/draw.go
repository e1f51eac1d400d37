package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fptetris/settings"
	"github.com/plus3/fptetris/stage"
)

// hudRows is the height reserved for the counters above the room.
const hudRows = 2

var (
	styleDefault  = tcell.StyleDefault
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorGray)
	styleCurtain  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleHeading  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

func rgb(c uint32) tcell.Color {
	return tcell.NewRGBColor(int32(c>>16&0xff), int32(c>>8&0xff), int32(c&0xff))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawStage(s tcell.Screen, v stage.View) {
	s.Clear()
	w, h := s.Size()

	if !v.LightsOut {
		drawText(s, 0, 0, fmt.Sprintf("SCORE %-7d TOP %-7d LINES %-4d LEVEL %-2d NEXT %s", v.Score, v.HiScore, v.Lines, v.Level, v.Next), styleDefault)
	}
	if v.State == stage.Paused {
		drawText(s, 0, 1, "PAUSED", styleHeading)
	}

	colors := [2]tcell.Style{
		tcell.StyleDefault.Foreground(rgb(v.Colors[0])),
		tcell.StyleDefault.Foreground(rgb(v.Colors[1])),
	}

	room := project(v, w/2, h-hudRows)
	for j, row := range room {
		for i, c := range row {
			x, y := i*2, j+hudRows
			switch c {
			case cellVoid:
			case cellWall:
				drawText(s, x, y, "  ", styleWall)
			case cellCurtain:
				drawText(s, x, y, "░░", styleCurtain)
			case 0:
				drawText(s, x, y, " .", styleDefault)
			default:
				drawText(s, x, y, "[]", colors[(c-1)%2])
			}
		}
	}
	s.Show()
}

func drawMenu(s tcell.Screen, m *settings.Menu) {
	s.Clear()
	y := 1
	for _, line := range m.Lines() {
		style, x := styleDefault, 4
		if line.Heading {
			style, x = styleHeading, 2
			y++
		}
		if line.Selected {
			style = styleSelected
		}
		drawText(s, x, y, line.Text, style)
		y++
	}
	drawText(s, 2, y+1, "DOWN: NEXT ITEM  LEFT/RIGHT: MUSIC  SPACE: SELECT  Q: QUIT", styleCurtain)
	s.Show()
}
