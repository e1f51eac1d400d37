package main

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/fptetris/grid"
	"github.com/plus3/fptetris/stage"
	"github.com/plus3/fptetris/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockedStage is over as soon as it spawns its first piece.
func blockedStage(index int, sound stage.Sound, shell stage.Shell) *stage.Stage {
	g := grid.New()
	g.Set(4, 1, 1)
	return stage.New(stage.DefaultConfig(), stage.Options{
		Grid:      g,
		Generator: func() *tetromino.Kind { return tetromino.O },
	}, sound, shell)
}

func seededStage(seed uint64) StageFactory {
	return func(index int, sound stage.Sound, shell stage.Shell) *stage.Stage {
		return stage.New(stage.DefaultConfig(), stage.Options{
			Source: rand.NewPCG(seed, uint64(index)),
		}, sound, shell)
	}
}

func TestWorldRestartsFinishedGames(t *testing.T) {
	w := NewWorld(2, 40, blockedStage)
	require.Equal(t, 2, w.InFlight())

	for range 200 {
		w.Tick(1.0 / tickRate)
	}

	tally := w.Tally()
	assert.Len(t, tally.Finished, 2)
	assert.Equal(t, 4, tally.Started)
	assert.Equal(t, 4, tally.Cues[stage.CueOver])
	assert.Equal(t, 2, w.InFlight(), "finished games are replaced")

	var indices []int
	for _, g := range w.Games() {
		indices = append(indices, g.Index)
		assert.False(t, g.Stage.Finished())
	}
	assert.ElementsMatch(t, []int{2, 3}, indices)
}

func TestWorldSystemStats(t *testing.T) {
	w := NewWorld(3, 40, seededStage(1))
	for range 30 {
		w.Tick(1.0 / tickRate)
	}

	stats := w.Stats()
	assert.Equal(t, int64(30), stats.Frames)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "play", stats.Systems[0].Name)
	assert.Equal(t, "restart", stats.Systems[1].Name)
	assert.Equal(t, int64(30), stats.Systems[0].ExecutionCount)
}

func TestWorldIsDeterministic(t *testing.T) {
	run := func() []*Game {
		w := NewWorld(3, 40, seededStage(42))
		for range 10 * tickRate {
			w.Tick(1.0 / tickRate)
		}
		return w.Games()
	}

	a, b := run(), run()
	require.Len(t, a, 3)
	require.Len(t, b, 3)
	for i := range a {
		assert.Equal(t, a[i].Index, b[i].Index)
		assert.Equal(t, a[i].Stage.Score(), b[i].Stage.Score())
		assert.Equal(t, a[i].Stage.Grid().Rows(), b[i].Stage.Grid().Rows())
		for _, k := range tetromino.Kinds() {
			assert.Equal(t, a[i].Stage.Statistic(k.Name), b[i].Stage.Statistic(k.Name))
		}
	}
}
