package debugui_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/plus3/fptetris/debugui"
	"github.com/plus3/fptetris/grid"
	"github.com/plus3/fptetris/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameHistory(t *testing.T) {
	h := debugui.NewFrameHistory(3)
	assert.Empty(t, h.Samples())
	assert.Zero(t, h.Average())

	h.Add(10 * time.Millisecond)
	h.Add(20 * time.Millisecond)
	assert.Equal(t, []float32{10, 20}, h.Samples())
	assert.InDelta(t, 15, h.Average(), 1e-4)

	h.Add(30 * time.Millisecond)
	h.Add(40 * time.Millisecond)
	assert.Equal(t, []float32{20, 30, 40}, h.Samples(), "oldest first after wrap")
	assert.InDelta(t, 30, h.Average(), 1e-4)
}

func TestBoardLines(t *testing.T) {
	var board [grid.Height][grid.Width]uint8
	board[grid.Height-1][0] = 1
	board[grid.Height-1][9] = 2

	lines := debugui.BoardLines(board)
	require.Len(t, lines, grid.Height)
	assert.Equal(t, "|#........@|", lines[grid.Height-1])
	assert.True(t, strings.HasSuffix(lines[grid.PanicRow], "!"))
	assert.False(t, strings.HasSuffix(lines[grid.PanicRow+1], "!"))
}

func TestReflectionCacheConfigFields(t *testing.T) {
	rc := debugui.NewReflectionCache()
	fields := rc.GetFields(reflect.TypeOf(stage.Config{}))
	require.NotEmpty(t, fields)

	names := map[string]reflect.Kind{}
	for _, f := range fields {
		names[f.Name] = f.Kind
	}
	assert.Equal(t, reflect.Bool, names["WallKick"])
	assert.Equal(t, reflect.Float64, names["RotationDuration"])

	again := rc.GetFields(reflect.TypeOf(stage.Config{}))
	assert.Same(t, &fields[0], &again[0], "cached")

	assert.Nil(t, rc.GetFields(reflect.TypeOf(0)))
}

func TestSetField(t *testing.T) {
	cfg := stage.DefaultConfig()
	val := reflect.ValueOf(&cfg).Elem()

	assert.True(t, debugui.SetField(val.FieldByName("LockDelay"), true))
	assert.True(t, cfg.LockDelay)

	assert.True(t, debugui.SetField(val.FieldByName("DropDuration"), 0.5))
	assert.Equal(t, 0.5, cfg.DropDuration)

	assert.False(t, debugui.SetField(val.FieldByName("DropDuration"), -1.0))
	assert.False(t, debugui.SetField(val.FieldByName("DropDuration"), true))
	assert.False(t, debugui.SetField(reflect.ValueOf(cfg).FieldByName("WallKick"), false), "not addressable")
	assert.Equal(t, 0.5, cfg.DropDuration)
}

func TestUIItems(t *testing.T) {
	ui := debugui.New()
	ui.Add("a", func() {})
	ui.Add("b", func() {})
	require.Len(t, ui.Items(), 2)
	assert.Equal(t, "b", ui.Items()[1].Name)

	ui.Toggle()
	assert.False(t, ui.Visible)
	ui.Render()
	assert.Equal(t, debugui.InputState{}, ui.InputState())
}
