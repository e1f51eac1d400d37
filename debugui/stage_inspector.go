package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fptetris/grid"
	"github.com/plus3/fptetris/stage"
)

// StageInspector shows the live state of the running game.
type StageInspector struct {
	game func() *stage.Stage
}

func NewStageInspector(game func() *stage.Stage) *StageInspector {
	return &StageInspector{game: game}
}

func (si *StageInspector) Render() {
	if !imgui.BeginV("Stage Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := si.game()
	if s == nil {
		imgui.Text("No game running")
		imgui.End()
		return
	}

	v := s.View()
	imgui.Text(fmt.Sprintf("Session: %s", s.SessionID()))
	imgui.Text(fmt.Sprintf("State: %s", v.State))
	imgui.Text(fmt.Sprintf("Level %d  Lines %d  Score %d  Top %d", v.Level, v.Lines, v.Score, v.HiScore))
	imgui.Text(fmt.Sprintf("Step: %.3fs  Panic: %v  Crisis: %v", s.StepDuration(), v.Panic, v.Crisis))
	imgui.Separator()

	imgui.Text(fmt.Sprintf("Piece: %s angle %d at (%d, %d)", v.Piece.Kind, v.Piece.Angle, v.Piece.X, v.Piece.Y))
	imgui.Text(fmt.Sprintf("Next: %s", v.Next))
	imgui.Text(fmt.Sprintf("Camera: (%.2f, %.2f) %.1f deg", v.Camera.X, v.Camera.Y, v.Camera.Angle))

	if imgui.TreeNodeStr("Board") {
		for _, line := range BoardLines(v.Board()) {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Statistics") {
		for _, kc := range v.Statistics {
			imgui.BulletText(fmt.Sprintf("%s: %d", kc.Kind, kc.Count))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// BoardLines renders a board as text, one string per row, with the panic
// rows marked.
func BoardLines(board [grid.Height][grid.Width]uint8) []string {
	lines := make([]string, 0, grid.Height)
	var b strings.Builder
	for y, row := range board {
		b.Reset()
		b.WriteByte('|')
		for _, cell := range row {
			switch cell {
			case grid.Empty:
				b.WriteByte('.')
			case 1:
				b.WriteByte('#')
			default:
				b.WriteByte('@')
			}
		}
		b.WriteByte('|')
		if y <= grid.PanicRow {
			b.WriteByte('!')
		}
		lines = append(lines, b.String())
	}
	return lines
}
