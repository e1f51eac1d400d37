package stage

import (
	"math/rand/v2"

	"github.com/plus3/fptetris/grid"
	"github.com/plus3/fptetris/tetromino"
)

// Config holds the rule and timing knobs. All durations are in seconds.
type Config struct {
	WallKick        bool
	LockDelay       bool
	AnimateRotation bool
	AnimateDrop     bool
	FirstPerson     bool

	RotationDuration     float64
	RowAnimationDuration float64
	DropDuration         float64
	GameOverDuration     float64
	UnrotateDuration     float64
	CameraAdjustDuration float64

	HoldMinDuration    float64
	HoldRepeatInterval float64
}

// DefaultConfig returns the tuned defaults: first-person, wall kick on, lock
// delay off, everything animated.
func DefaultConfig() Config {
	gameOver := 2.4
	return Config{
		WallKick:        true,
		LockDelay:       false,
		AnimateRotation: true,
		AnimateDrop:     true,
		FirstPerson:     true,

		RotationDuration:     0.2,
		RowAnimationDuration: 0.5,
		DropDuration:         0.2,
		GameOverDuration:     gameOver,
		UnrotateDuration:     gameOver / 3,
		CameraAdjustDuration: 0.2,

		HoldMinDuration:    0.1,
		HoldRepeatInterval: 0.06,
	}
}

// ThirdPerson turns the camera off and with it the rotation animation.
func (c Config) ThirdPerson() Config {
	c.FirstPerson = false
	c.AnimateRotation = false
	return c
}

// Options are the per-game choices made in the menu.
type Options struct {
	Level         int
	HiScore       int
	LightsOut     bool
	Crisis        bool
	TouchControls bool

	// Source feeds the piece generator. A nil source is seeded from the clock.
	Source rand.Source
	// Generator replaces the random draw entirely, for replays and puzzles.
	Generator func() *tetromino.Kind
	// Grid is the starting board. Nil means empty.
	Grid *grid.Grid
}

// Settings is what the pause menu hands back on resume.
type Settings struct {
	LightsOut     bool
	Crisis        bool
	TouchControls bool
}
