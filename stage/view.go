package stage

import (
	"math"

	"github.com/plus3/fptetris/grid"
	"github.com/plus3/fptetris/tetromino"
)

// KindCount is one line of the statistics panel.
type KindCount struct {
	Kind  *tetromino.Kind
	Count int
}

// View is a read-only snapshot for renderers.
type View struct {
	State State

	Grid [grid.Height][grid.Width]uint8
	// CompleteRows are the rows being cleared, with their blocks shrinking
	// by RowScale per column.
	CompleteRows []grid.CompleteRow
	RowScale     [grid.Width]float64

	Piece tetromino.Piece
	// PieceY is the fractional row during a drop animation.
	PieceY float64
	// PieceRotation is the extra visual rotation in degrees while a turn
	// animates.
	PieceRotation float64
	PieceVisible  bool
	Next          *tetromino.Kind

	// Curtain is the game over wipe progress in [0, 1].
	Curtain float64
	Colors  [2]uint32
	Camera  Camera
	Scale   float64

	Level      int
	Lines      int
	Score      int
	HiScore    int
	Statistics []KindCount

	FirstPerson   bool
	LightsOut     bool
	Crisis        bool
	Panic         bool
	TouchControls bool
}

// View snapshots the stage.
func (s *Stage) View() View {
	v := View{
		State:         s.state,
		Grid:          s.grid.Rows(),
		Piece:         s.piece,
		PieceY:        s.pieceY,
		PieceRotation: s.pieceRotate,
		PieceVisible:  s.state != RowAnimation,
		Next:          s.nextKind,
		Curtain:       s.curtain,
		Colors:        Colors(s.level),
		Camera:        s.camera,
		Scale:         s.scale,
		Level:         s.level,
		Lines:         s.lines,
		Score:         s.score,
		HiScore:       s.hiScore,
		FirstPerson:   s.cfg.FirstPerson,
		LightsOut:     s.lightsOut,
		Crisis:        s.crisis,
		Panic:         s.panic,
		TouchControls: s.touchControls,
	}

	if s.state == RowAnimation {
		v.CompleteRows = s.completeRows
		v.RowScale = rowScales(s.animationTime, s.cfg.RowAnimationDuration)
	}
	for _, k := range tetromino.Kinds() {
		v.Statistics = append(v.Statistics, KindCount{Kind: k, Count: s.statistics[k.Name]})
	}
	return v
}

// rowScales collapses a cleared row of even width from the middle outwards: each pair of
// columns starts shrinking one interval after the pair inside it, with a
// little overlap between neighbours.
func rowScales(t, duration float64) [grid.Width]float64 {
	var scales [grid.Width]float64

	steps := int(math.Ceil(grid.Width / 2.0))
	blendTime := (duration / float64(steps)) / 2
	interval := (duration - blendTime) / float64(steps)
	stepDuration := interval + blendTime

	percent := func(i int) float64 {
		return 1 - max(min((t-float64(i)*interval)/stepDuration, 1), 0)
	}

	half := grid.Width / 2
	for i := range half {
		p := percent(i)
		scales[half-i-1] = p
		scales[half+i] = p
	}
	return scales
}

// Board is the grid with the falling piece drawn in. Cells above the top
// row are dropped.
func (v View) Board() [grid.Height][grid.Width]uint8 {
	board := v.Grid
	if !v.PieceVisible || v.Piece.Kind == nil {
		return board
	}

	slot := uint8(v.Piece.Kind.ColorIndex + 1)
	for x, y := range v.Piece.Kind.Shape(v.Piece.Angle).Cells() {
		gx, gy := v.Piece.X+x, v.Piece.Y+y
		if gx < 0 || gx >= grid.Width || gy < 0 || gy >= grid.Height {
			continue
		}
		board[gy][gx] = slot
	}
	return board
}
