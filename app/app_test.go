package app_test

import (
	"testing"

	"github.com/plus3/fptetris/app"
	"github.com/plus3/fptetris/input"
	"github.com/plus3/fptetris/settings"
	"github.com/plus3/fptetris/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(seed uint64) (*app.App, *settings.MemoryStore) {
	store := settings.NewMemoryStore()
	opts := app.DefaultOptions()
	opts.Stage = stage.DefaultConfig().ThirdPerson()
	opts.Stage.AnimateDrop = false
	opts.Store = store
	opts.Seed = seed
	opts.Level = 2

	a := app.New(input.New(input.NewKeyboardMap()), opts)
	a.Resize(800, 600)
	a.Start()
	return a, store
}

func tap(a *app.App, b input.Button) {
	p := a.Input().Player(0)
	p.Press(b)
	a.Update(0.05)
	p.Release(b)
	a.Update(0.05)
}

func TestStartFromTitle(t *testing.T) {
	a, _ := newApp(1)
	require.NotNil(t, a.Menu())
	assert.Equal(t, settings.ModeTitle, a.Menu().Mode())
	assert.Nil(t, a.Game())

	tap(a, input.Drop)
	require.NotNil(t, a.Game())
	assert.Nil(t, a.Menu())
	assert.Equal(t, 2, a.Game().Level())
	assert.Equal(t, stage.Idle, a.Game().State())
	assert.Equal(t, 1, a.Scenes().Len())
	assert.NotZero(t, a.Game().Scale())
}

func TestPauseAndResume(t *testing.T) {
	a, _ := newApp(1)
	tap(a, input.Drop)
	game := a.Game()

	tap(a, input.Pause)
	require.NotNil(t, a.Menu())
	assert.Equal(t, settings.ModePause, a.Menu().Mode())
	assert.Equal(t, stage.Paused, game.State())
	assert.Equal(t, 2, a.Scenes().Len())

	// The paused game does not fall.
	y := game.Piece().Y
	for range 50 {
		a.Update(0.1)
	}
	assert.Equal(t, y, game.Piece().Y)

	tap(a, input.Up)
	tap(a, input.Drop)
	assert.True(t, a.Menu().Settings().Crisis)

	tap(a, input.Pause)
	assert.Nil(t, a.Menu())
	assert.Same(t, game, a.Game())
	assert.Equal(t, stage.Idle, game.State())
	assert.True(t, game.View().Crisis)
}

func TestGameOverReturnsToMenu(t *testing.T) {
	a, store := newApp(3)
	tap(a, input.Drop)
	session := a.Game().SessionID()

	for i := 0; i < 2000 && a.Menu() == nil; i++ {
		tap(a, input.Drop)
	}

	menu := a.Menu()
	require.NotNil(t, menu, "stacking pieces in the middle ends the game")
	assert.Equal(t, settings.ModeGameOver, menu.Mode())
	assert.Equal(t, session, menu.Summary().SessionID)
	assert.Nil(t, a.Game())
	assert.Equal(t, 1, a.Scenes().Len())
	assert.Equal(t, menu.Summary().HiScore, settings.Load(store).HiScore)

	tap(a, input.Drop)
	require.NotNil(t, a.Game())
	assert.NotEqual(t, session, a.Game().SessionID())
}

func TestSeedReplaysPieces(t *testing.T) {
	first, _ := newApp(42)
	second, _ := newApp(42)
	tap(first, input.Drop)
	tap(second, input.Drop)

	assert.Equal(t, first.Game().Piece().Kind, second.Game().Piece().Kind)
	assert.Equal(t, first.Game().Next(), second.Game().Next())
}

func TestTickRunsAsSchedulerSystems(t *testing.T) {
	a, _ := newApp(1)
	a.Update(0.05)
	assert.True(t, a.Clock().Stable)

	p := a.Input().Player(0)
	p.Press(input.Drop)
	assert.False(t, a.Update(0.05), "starting a game switches the stack")
	assert.False(t, a.Clock().Stable)
	p.Release(input.Drop)
	assert.True(t, a.Update(0.05))

	clock := a.Clock()
	assert.Equal(t, uint64(3), clock.Ticks)
	assert.InDelta(t, 0.15, clock.Elapsed, 1e-9)

	stats := a.Scheduler().GetStats()
	require.Equal(t, 3, stats.SystemCount)
	assert.Equal(t, int64(3), stats.Frames)
	var names []string
	for _, s := range stats.Systems {
		names = append(names, s.Name)
		assert.Equal(t, int64(3), s.ExecutionCount)
	}
	assert.Equal(t, []string{"input", "scene input", "scene update"}, names)
}
