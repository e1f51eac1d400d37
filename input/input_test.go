package input_test

import (
	"fmt"
	"testing"

	"github.com/plus3/fptetris/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	keyLeft input.Key = iota + 1
	keyRight
	keyDown
	keyUp
	keySpace
	keyEscape
	keyUnbound
)

func testKeys() *input.KeyboardMap {
	return input.NewKeyboardMap().
		Bind(keyLeft, input.Left).
		Bind(keyRight, input.Right).
		Bind(keyDown, input.Down).
		Bind(keyUp, input.Rotate).
		Bind(keySpace, input.Drop).
		Bind(keyEscape, input.Pause)
}

func TestPlayerEdges(t *testing.T) {
	p := input.NewPlayer(0)

	p.Press(input.Left)
	p.Update()
	assert.True(t, p.IsPressed(input.Left, false))
	assert.True(t, p.IsDown(input.Left))
	assert.False(t, p.IsReleased(input.Left))

	p.Update()
	assert.False(t, p.IsPressed(input.Left, false), "press edge lasts one tick")
	assert.True(t, p.IsDown(input.Left))

	p.Release(input.Left)
	p.Update()
	assert.True(t, p.IsReleased(input.Left))
	assert.False(t, p.IsDown(input.Left))

	p.Update()
	assert.False(t, p.IsReleased(input.Left))
}

func TestPlayerRepeat(t *testing.T) {
	p := input.NewPlayer(0)
	p.Press(input.Rotate)
	p.Update()
	p.Update()

	p.Repeat(input.Rotate)
	p.Update()
	assert.False(t, p.IsPressed(input.Rotate, false))
	assert.True(t, p.IsPressed(input.Rotate, true))

	p.Update()
	assert.False(t, p.IsPressed(input.Rotate, true))
}

func TestRepeatIgnoredForUpButtons(t *testing.T) {
	p := input.NewPlayer(0)
	p.Repeat(input.Drop)
	p.Update()
	assert.False(t, p.IsPressed(input.Drop, true))
}

func TestKeyboardMapping(t *testing.T) {
	in := input.New(testKeys())
	kb := in.Keyboard()
	p := in.Player(0)

	assert.True(t, kb.KeyDown(keyLeft, false))
	assert.False(t, kb.KeyDown(keyUnbound, false))
	in.Update()

	assert.True(t, p.IsPressed(input.Left, false))
	assert.Equal(t, -1.0, p.Axes[input.LeftX])

	kb.KeyUp(keyLeft)
	in.Update()
	assert.True(t, p.IsReleased(input.Left))
	assert.Equal(t, 0.0, p.Axes[input.LeftX])
}

func TestKeyboardOppositeAxisHandover(t *testing.T) {
	in := input.New(testKeys())
	kb := in.Keyboard()
	p := in.Player(0)

	kb.KeyDown(keyLeft, false)
	kb.KeyDown(keyRight, false)
	assert.Equal(t, 1.0, p.Axes[input.LeftX])

	kb.KeyUp(keyRight)
	assert.Equal(t, -1.0, p.Axes[input.LeftX], "left is still held")

	kb.KeyUp(keyLeft)
	assert.Equal(t, 0.0, p.Axes[input.LeftX])
}

func TestKeyboardButtonHeldByEitherKey(t *testing.T) {
	in := input.New(testKeys().Bind(keyUnbound, input.Left))
	kb := in.Keyboard()
	p := in.Player(0)

	kb.KeyDown(keyLeft, false)
	kb.KeyDown(keyUnbound, false)
	in.Update()

	kb.KeyUp(keyUnbound)
	in.Update()
	assert.True(t, p.IsDown(input.Left), "the other key still holds left")
	assert.False(t, p.IsReleased(input.Left))
	assert.Equal(t, -1.0, p.Axes[input.LeftX])

	kb.KeyUp(keyLeft)
	in.Update()
	assert.True(t, p.IsReleased(input.Left))
	assert.Equal(t, 0.0, p.Axes[input.LeftX])

	assert.True(t, kb.KeyUp(keyLeft), "a bound key that is already up is still swallowed")
}

func TestBindingTableIsSwappable(t *testing.T) {
	in := input.New(testKeys())
	in.Keyboard().Map = input.NewKeyboardMap().Bind(keyDown, input.Rotate)

	in.Keyboard().KeyDown(keyDown, false)
	in.Update()
	p := in.Player(0)
	assert.True(t, p.IsPressed(input.Rotate, false))
	assert.False(t, p.IsDown(input.Down))
}

func TestBlurReleasesEverything(t *testing.T) {
	in := input.New(testKeys())
	in.Keyboard().KeyDown(keyDown, false)
	in.Keyboard().KeyDown(keySpace, false)
	in.Update()

	in.Blur()
	in.Update()

	p := in.Player(0)
	assert.False(t, p.IsDown(input.Down|input.Drop))
	assert.True(t, p.IsReleased(input.Down))
	assert.True(t, p.IsReleased(input.Drop))
	assert.Equal(t, [input.AxisCount]float64{}, p.Axes)
}

func TestAxisToButton(t *testing.T) {
	tests := []struct {
		value     float64
		threshold float64
		negative  bool
		want      bool
	}{
		{0.2, 0, false, false},
		{0.35, 0, false, true},
		{0.9, 0, false, true},
		{-0.9, 0, false, false},
		{-0.9, 0, true, true},
		{-0.3, 0, true, false},
		{0.6, 0.7, false, false},
		{0.8, 0.7, false, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%v/%v", tt.value, tt.threshold, tt.negative), func(t *testing.T) {
			assert.Equal(t, tt.want, input.AxisToButton(tt.value, tt.threshold, tt.negative))
		})
	}
}

func TestDecomposeHat(t *testing.T) {
	tests := []struct {
		value float64
		x, y  float64
	}{
		{-1, 0, -1},
		{-5.0 / 7, 1, -1},
		{-3.0 / 7, 1, 0},
		{-1.0 / 7, 1, 1},
		{1.0 / 7, 0, 1},
		{3.0 / 7, -1, 1},
		{5.0 / 7, -1, 0},
		{1, -1, -1},
		{3.2857, 0, 0},
		{-1.5, 0, 0},
	}
	for _, tt := range tests {
		x, y := input.DecomposeHat(tt.value)
		assert.Equal(t, tt.x, x, "x for %v", tt.value)
		assert.Equal(t, tt.y, y, "y for %v", tt.value)
	}
}

func TestApplyAxisMapping(t *testing.T) {
	var axes [input.AxisCount]float64

	input.ApplyAxisMapping(-0.5, input.AxisMapping{Axis: input.LeftX}, &axes)
	assert.Equal(t, -0.5, axes[input.LeftX])

	input.ApplyAxisMapping(-0.5, input.AxisMapping{Axis: input.TriggerL, Range: input.Positive}, &axes)
	assert.Equal(t, 0.0, axes[input.TriggerL])

	input.ApplyAxisMapping(0.5, input.AxisMapping{Axis: input.LeftY, Invert: true}, &axes)
	assert.Equal(t, -0.5, axes[input.LeftY])

	input.ApplyAxisMapping(1, input.AxisMapping{Axis: input.DpadX, AxisY: input.DpadY, Range: input.Hat}, &axes)
	assert.Equal(t, -1.0, axes[input.DpadX])
	assert.Equal(t, -1.0, axes[input.DpadY])
}

func TestDefaultGamepadMapDetectsHat(t *testing.T) {
	plain := input.DefaultGamepadMap([]float64{0, 0, 0, 0})
	assert.Len(t, plain.Axes, 2)
	assert.Len(t, plain.AxisButtons, 4)

	hat := input.DefaultGamepadMap([]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 3.2857})
	require.Contains(t, hat.Axes, 9)
	assert.Equal(t, input.Hat, hat.Axes[9].Range)
	assert.Len(t, hat.AxisButtons, 8)

	b, ok := plain.Buttons.Get(14)
	assert.True(t, ok)
	assert.Equal(t, input.Left, b)
}

func TestGamepadButtonsAndStick(t *testing.T) {
	in := input.New(testKeys())
	pad := in.Gamepad(0, []float64{0, 0, 0, 0})
	p := in.Player(0)

	buttons := make([]bool, 17)
	buttons[0] = true
	pad.Update(input.GamepadState{Buttons: buttons, Axes: []float64{-0.8, 0, 0, 0}})
	in.Update()
	assert.True(t, p.IsPressed(input.Rotate, false))
	assert.True(t, p.IsPressed(input.Left, false))
	assert.Equal(t, -0.8, p.Axes[input.LeftX])

	buttons[0] = false
	buttons[14] = true
	pad.Update(input.GamepadState{Buttons: buttons, Axes: []float64{0, 0, 0, 0}})
	in.Update()
	assert.True(t, p.IsReleased(input.Rotate))
	assert.True(t, p.IsDown(input.Left), "d-pad keeps left held after the stick centers")
	assert.False(t, p.IsReleased(input.Left))

	in.Disconnect(0)
	in.Update()
	assert.True(t, p.IsReleased(input.Left))
	assert.Empty(t, in.GamepadIDs())
}

func TestGamepadHat(t *testing.T) {
	in := input.New(testKeys())
	axes := []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 3.2857}
	pad := in.Gamepad(3, axes)
	p := in.Player(0)

	axes[9] = 1.0 / 7
	pad.Update(input.GamepadState{Axes: axes})
	in.Update()
	assert.True(t, p.IsPressed(input.Down, false))

	axes[9] = 3.2857
	pad.Update(input.GamepadState{Axes: axes})
	in.Update()
	assert.True(t, p.IsReleased(input.Down))
}

func TestTouchRegions(t *testing.T) {
	in := input.New(testKeys())
	touch := in.Touch()
	touch.Regions = input.DefaultTouchLayout(600, 900)
	p := in.Player(0)

	var rotate input.TouchRegion
	for _, r := range touch.Regions {
		if r.Button == input.Rotate {
			rotate = r
		}
	}
	require.NotZero(t, rotate.W)

	touch.Update([]input.TouchPoint{{ID: 1, X: rotate.X + 1, Y: rotate.Y + 1}})
	in.Update()
	assert.True(t, p.IsPressed(input.Rotate, false))

	touch.Update(nil)
	in.Update()
	assert.True(t, p.IsReleased(input.Rotate))

	touch.Update([]input.TouchPoint{{ID: 2, X: 300, Y: 10}})
	assert.Equal(t, input.NoButton, touch.Held())
}

func TestDefaultTouchLayoutDoesNotOverlap(t *testing.T) {
	regions := input.DefaultTouchLayout(800, 600)
	for i, a := range regions {
		for _, b := range regions[i+1:] {
			overlap := a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
			assert.False(t, overlap, "%v overlaps %v", a.Button, b.Button)
		}
	}
}

func ExampleButton_String() {
	fmt.Println(input.Left | input.Drop)
	fmt.Println(input.NoButton)
	// Output:
	// left|drop
	// none
}
