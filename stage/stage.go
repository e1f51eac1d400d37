// Package stage is the game itself: a single-owner state machine that
// advances the falling piece, commits it into the grid, scores, and drives
// the first-person camera. It never blocks and never returns errors; a move
// that does not fit is declined and a spawn that does not fit ends the game.
package stage

import (
	"io"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/fptetris/grid"
	"github.com/plus3/fptetris/input"
	"github.com/plus3/fptetris/tetromino"
)

// Logger receives session, level and game over messages.
var Logger = log.New(io.Discard, "stage: ", log.LstdFlags)

// Sound receives fire-and-forget cues and music changes.
type Sound interface {
	PlaySFX(name string)
	PlaySlowMusic()
	PlayFastMusic()
	StopMusic()
}

// Shell is how the stage hands control to the menus.
type Shell interface {
	Pause(s Summary)
	GameOver(s Summary)
}

// Controls is one player's edge-triggered button state. *input.Player
// implements it.
type Controls interface {
	IsPressed(b input.Button, allowRepeat bool) bool
	IsReleased(b input.Button) bool
	IsDown(b input.Button) bool
}

// Summary is handed to the menus on pause and game over.
type Summary struct {
	SessionID string
	Level     int
	Lines     int
	Score     int
	HiScore   int
	Panic     bool

	LightsOut     bool
	Crisis        bool
	TouchControls bool
}

// Camera is the room pivot in grid cells and its rotation in degrees.
type Camera struct {
	X, Y  float64
	Angle float64
}

type nopSound struct{}

func (nopSound) PlaySFX(string) {}
func (nopSound) PlaySlowMusic() {}
func (nopSound) PlayFastMusic() {}
func (nopSound) StopMusic()     {}

var directions = [...]input.Button{input.Left, input.Right, input.Down, input.Up}

// Stage is one game from first spawn to game over.
type Stage struct {
	cfg       Config
	sound     Sound
	shell     Shell
	next      func() *tetromino.Kind
	sessionID string

	grid          *grid.Grid
	state         State
	animationTime float64

	stepTime     float64
	stepDuration float64

	piece       tetromino.Piece
	nextKind    *tetromino.Kind
	lastAngle   tetromino.Angle
	statistics  map[string]int
	pieceY      float64
	pieceRotate float64

	startingLevel int
	level         int
	lines         int
	score         int
	hiScore       int

	completeRows []grid.CompleteRow
	dropTargetY  int
	dropStartPos float64

	camera         Camera
	cameraSource   Camera
	cameraTarget   Camera
	gameOverCamera Camera
	curtain        float64
	finished       bool

	leftHeld        bool
	rightHeld       bool
	downHeld        bool
	xHoldTimer      float64
	yHoldTimer      float64
	forceCheckInput bool
	pauseRequested  bool

	dropStartY int
	yHoldStart int

	panic         bool
	lightsOut     bool
	crisis        bool
	touchControls bool

	width  int
	height int
	scale  float64
}

// New starts a game and spawns its first piece. sound and shell may be nil.
func New(cfg Config, opts Options, sound Sound, shell Shell) *Stage {
	if sound == nil {
		sound = nopSound{}
	}

	opts.Level = max(opts.Level, 0)

	s := &Stage{
		cfg:           cfg,
		sound:         sound,
		shell:         shell,
		next:          opts.Generator,
		sessionID:     uuid.New().String(),
		grid:          opts.Grid,
		state:         Idle,
		statistics:    make(map[string]int),
		startingLevel: opts.Level,
		level:         opts.Level,
		hiScore:       opts.HiScore,
		dropStartY:    -1,
		yHoldStart:    -1,
		lightsOut:     opts.LightsOut,
		crisis:        opts.Crisis,
		touchControls: opts.TouchControls,
		scale:         roomDefaultScale,
	}
	if s.grid == nil {
		s.grid = grid.New()
	}
	if s.hiScore <= 0 {
		s.hiScore = DefaultHiScore
	}
	if s.next == nil {
		src := opts.Source
		if src == nil {
			src = rand.NewPCG(uint64(time.Now().UnixNano()), 0)
		}
		rng := rand.New(src)
		s.next = func() *tetromino.Kind { return tetromino.Random(rng) }
	}
	s.stepDuration = StepDuration(s.level)
	s.camera = Camera{X: grid.Width / 2, Y: grid.Height / 2}

	Logger.Printf("session %s: level %d, first person %v", s.sessionID, s.level, cfg.FirstPerson)

	s.nextKind = s.next()
	s.spawn()
	s.updateCameraPos(false)
	s.updateCameraRotation()
	return s
}

func (s *Stage) State() State              { return s.state }
func (s *Stage) Grid() *grid.Grid          { return s.grid }
func (s *Stage) Piece() tetromino.Piece    { return s.piece }
func (s *Stage) Next() *tetromino.Kind     { return s.nextKind }
func (s *Stage) Level() int                { return s.level }
func (s *Stage) Lines() int                { return s.lines }
func (s *Stage) Score() int                { return s.score }
func (s *Stage) HiScore() int              { return s.hiScore }
func (s *Stage) Panic() bool               { return s.panic }
func (s *Stage) Camera() Camera            { return s.camera }
func (s *Stage) SessionID() string         { return s.sessionID }
func (s *Stage) StepDuration() float64     { return s.stepDuration }
func (s *Stage) Config() Config            { return s.cfg }
func (s *Stage) Statistic(kind string) int { return s.statistics[kind] }

// SetConfig swaps the rule knobs of a running game. Durations apply from
// the next animation on.
func (s *Stage) SetConfig(cfg Config) {
	firstPerson := s.cfg.FirstPerson
	s.cfg = cfg
	if cfg.FirstPerson != firstPerson {
		s.camera = Camera{X: grid.Width / 2, Y: grid.Height / 2}
		s.updateCameraPos(false)
		s.updateCameraRotation()
	}
}

// Summary returns the record handed to the menus.
func (s *Stage) Summary() Summary {
	return Summary{
		SessionID:     s.sessionID,
		Level:         s.level,
		Lines:         s.lines,
		Score:         s.score,
		HiScore:       s.hiScore,
		Panic:         s.panic,
		LightsOut:     s.lightsOut,
		Crisis:        s.crisis,
		TouchControls: s.touchControls,
	}
}

func (s *Stage) setState(state State) {
	if s.state == state {
		return
	}
	s.state = state
	// A button held through an animation counts as freshly pressed once
	// the piece is controllable again.
	s.forceCheckInput = state == Idle
}

// effectiveAngle is the room rotation in quarter turns: everything the
// previous pieces turned plus the current piece.
func (s *Stage) effectiveAngle() tetromino.Angle {
	return (s.lastAngle + s.piece.Angle) % 4
}

func (s *Stage) spawn() {
	if s.piece.Kind != nil {
		s.lastAngle = (s.lastAngle + s.piece.Angle) % 4
	}

	kind := s.nextKind
	s.statistics[kind.Name]++
	s.nextKind = s.next()

	s.piece = tetromino.Piece{
		Kind: kind,
		X:    int(math.Ceil(float64(grid.Width)/2 - float64(kind.Size)/2)),
	}
	for s.piece.Y = -kind.Size; s.piece.Y < -kind.VerticalOffset; s.piece.Y++ {
		if s.collides(s.piece.X, s.piece.Y+1, s.piece.Angle) {
			break
		}
	}
	s.pieceY = float64(s.piece.Y)
	s.pieceRotate = 0
	s.stepTime = 0

	if s.piece.Y < -kind.VerticalOffset {
		s.initGameOver()
	}
}

func (s *Stage) collides(x, y int, angle tetromino.Angle) bool {
	return s.grid.CollidesWith(s.piece.Kind, angle, x, y)
}

func (s *Stage) moveLeft() {
	if !s.collides(s.piece.X-1, s.piece.Y, s.piece.Angle) {
		s.piece.X--
		s.updateCameraPos(false)
	}
}

func (s *Stage) moveRight() {
	if !s.collides(s.piece.X+1, s.piece.Y, s.piece.Angle) {
		s.piece.X++
		s.updateCameraPos(false)
	}
}

// moveDown commits the piece when the row below is taken.
func (s *Stage) moveDown() {
	if s.collides(s.piece.X, s.piece.Y+1, s.piece.Angle) {
		s.unite()
		return
	}
	s.piece.Y++
	s.pieceY = float64(s.piece.Y)
	s.updateCameraPos(false)
}

// rotate turns the piece clockwise, kicking it off walls and stacks by up to
// half its size, left before right. It reports whether the turn happened.
func (s *Stage) rotate() bool {
	next := s.piece.Angle.Next()
	x, y := s.piece.X, s.piece.Y

	collides := s.collides(x, y, next)
	if collides && s.cfg.WallKick {
		for i := 1; i <= s.piece.Kind.Size/2; i++ {
			if !s.collides(s.piece.X-i, y, next) {
				x, collides = s.piece.X-i, false
				break
			}
			if !s.collides(s.piece.X+i, y, next) {
				x, collides = s.piece.X+i, false
				break
			}
		}
	}
	if collides {
		return false
	}

	s.initRotation(next, x, y)
	return true
}

func (s *Stage) initRotation(angle tetromino.Angle, x, y int) {
	s.sound.PlaySFX(CueRotate)

	s.piece.Angle = angle
	s.piece.X, s.piece.Y = x, y
	s.pieceY = float64(y)
	s.updateCameraPos(false)

	if s.cfg.LockDelay && s.collides(x, y+1, angle) {
		s.stepTime = 0
	}

	if s.cfg.AnimateRotation {
		s.animationTime = 0
		s.pieceRotate = -90
		s.setState(RotationAnimation)
	}
	s.updateCameraRotation()

	// Held directions were remapped through the old angle; their releases
	// would now map to different actions.
	if s.cfg.FirstPerson {
		s.leftHeld = false
		s.rightHeld = false
		s.downHeld = false
		s.yHoldStart = -1
	}
}

func (s *Stage) hardDrop() {
	s.dropStartY = max(0, s.piece.Y)
	s.dropTargetY = s.piece.Y
	for !s.collides(s.piece.X, s.dropTargetY+1, s.piece.Angle) {
		s.dropTargetY++
	}

	if s.cfg.AnimateDrop {
		s.setState(DropAnimation)
		s.animationTime = 0
		s.dropStartPos = s.pieceY
		return
	}

	s.piece.Y = s.dropTargetY
	s.pieceY = float64(s.piece.Y)
	s.unite()
}

func (s *Stage) unite() {
	rows := s.grid.Unite(s.piece.Kind, s.piece.Angle, s.piece.X, s.piece.Y)
	if len(rows) > 0 {
		s.initRowsAnimation(rows)
		return
	}

	s.increaseDropScore()
	s.sound.PlaySFX(CueUnited)
	s.postUnite()
}

func (s *Stage) initRowsAnimation(rows []grid.CompleteRow) {
	s.completeRows = rows
	s.lines += len(rows)
	s.score += LineScore(len(rows), s.level)
	s.updateScore()
	s.increaseDropScore()

	if len(rows) < 4 {
		s.sound.PlaySFX(CueLine)
	} else {
		s.sound.PlaySFX(CueTetris)
	}

	s.animationTime = 0
	s.setState(RowAnimation)
}

// increaseDropScore awards one point per level factor for every row
// descended since a hard drop or a held soft drop started.
func (s *Stage) increaseDropScore() {
	factor := s.level + 1

	dropScore := 0
	if s.dropStartY != -1 {
		dropScore = (s.piece.Y - s.dropStartY) * factor
	} else if s.yHoldStart != -1 {
		dropScore = (s.piece.Y - s.yHoldStart) * factor
	}
	if dropScore > 0 {
		s.score += dropScore
		s.updateScore()
	}

	s.dropStartY = -1
	s.yHoldStart = -1
}

func (s *Stage) updateScore() {
	if s.score > s.hiScore {
		s.hiScore = s.score
	}
}

func (s *Stage) updateLevel() {
	s.setLevel(s.lines/10 + s.startingLevel)
}

func (s *Stage) setLevel(level int) {
	if s.level == level {
		return
	}
	s.level = level
	s.stepDuration = StepDuration(level)
	s.sound.PlaySFX(CueLevel)
	Logger.Printf("session %s: level %d at %d lines", s.sessionID, level, s.lines)
}

func (s *Stage) postUnite() {
	s.spawn()
	s.updateCameraPos(true)
	s.updateCameraRotation()

	if danger := s.grid.ShouldPanic(); danger != s.panic {
		s.panic = danger
		if !s.crisis {
			s.sound.StopMusic()
			if danger {
				s.sound.PlayFastMusic()
			} else {
				s.sound.PlaySlowMusic()
			}
		}
	}
}

func (s *Stage) initGameOver() {
	s.sound.PlaySFX(CueOver)
	s.setState(GameOver)
	s.animationTime = 0
	s.curtain = 0
	s.gameOverCamera = s.camera
	Logger.Printf("session %s: game over, level %d, lines %d, score %d", s.sessionID, s.level, s.lines, s.score)
}

// requestPause pauses right away when the piece is controllable and
// otherwise waits for the running animation to finish.
func (s *Stage) requestPause() {
	switch s.state {
	case Idle:
		s.pause()
	case Paused, GameOver:
	default:
		s.pauseRequested = true
	}
}

func (s *Stage) pause() {
	s.pauseRequested = false
	s.setState(Paused)
	if s.shell != nil {
		s.shell.Pause(s.Summary())
	}
}

// Resume continues a paused game. Directions held when the game paused
// were released behind the menu, so their repeats are dropped.
func (s *Stage) Resume() {
	if s.state != Paused {
		return
	}
	s.leftHeld, s.rightHeld, s.downHeld = false, false, false
	s.xHoldTimer, s.yHoldTimer = 0, 0
	s.yHoldStart = -1
	s.setState(Idle)
}

func (s *Stage) updateCameraPos(animate bool) {
	if !s.cfg.FirstPerson {
		return
	}

	c := s.piece.Kind.Center(s.piece.Angle)
	x := float64(s.piece.X) + c.X
	y := s.pieceY + c.Y

	if animate && s.state == Idle {
		s.cameraSource = s.camera
		s.cameraTarget = Camera{X: x, Y: y, Angle: s.camera.Angle}
		s.animationTime = 0
		s.setState(AdjustingCamera)
		return
	}
	s.camera.X, s.camera.Y = x, y
}

func (s *Stage) updateCameraRotation() {
	if !s.cfg.FirstPerson {
		return
	}
	s.camera.Angle = -float64(s.lastAngle+s.piece.Angle)*90 - s.pieceRotate
}
