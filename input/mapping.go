package input

import (
	"math"

	"github.com/kamstrup/intmap"
)

// Key is a frontend-specific key code. Each frontend picks its own numbering
// and builds a KeyboardMap for it.
type Key int

// KeyToAxis lets a held key drive an axis. Opposite names the button whose
// key drives the same axis the other way, so releasing one key hands the axis
// back to the other if it is still held.
type KeyToAxis struct {
	Axis     Axis
	Value    float64
	Opposite Button
}

// KeyboardMap is a swappable binding table from key codes to buttons.
type KeyboardMap struct {
	keys    *intmap.Map[Key, Button]
	KeyAxes map[Button]KeyToAxis
}

// NewKeyboardMap returns an empty table with the default key axes.
func NewKeyboardMap() *KeyboardMap {
	return &KeyboardMap{
		keys:    intmap.New[Key, Button](32),
		KeyAxes: DefaultKeyAxes(),
	}
}

// Bind maps a key to a button, replacing any previous binding of that key.
func (m *KeyboardMap) Bind(key Key, b Button) *KeyboardMap {
	m.keys.Put(key, b)
	return m
}

func (m *KeyboardMap) Unbind(key Key) {
	m.keys.Del(key)
}

// Lookup returns the button bound to key.
func (m *KeyboardMap) Lookup(key Key) (Button, bool) {
	return m.keys.Get(key)
}

func (m *KeyboardMap) Len() int {
	return m.keys.Len()
}

// DefaultKeyAxes makes the direction buttons drive the left stick.
func DefaultKeyAxes() map[Button]KeyToAxis {
	return map[Button]KeyToAxis{
		Left:  {Axis: LeftX, Value: -1, Opposite: Right},
		Right: {Axis: LeftX, Value: 1, Opposite: Left},
		Up:    {Axis: LeftY, Value: -1, Opposite: Down},
		Down:  {Axis: LeftY, Value: 1, Opposite: Up},
	}
}

// AxisRange selects which part of a raw axis is used.
type AxisRange int

const (
	Full AxisRange = iota
	Positive
	Negative
	// Hat packs eight directions into one raw axis and fills two logical axes.
	Hat
)

// AxisMapping routes a raw axis into a logical one. For Hat ranges AxisY
// receives the vertical component.
type AxisMapping struct {
	Axis   Axis
	AxisY  Axis
	Range  AxisRange
	Invert bool
}

// AxisButton presses Button while the logical axis passes the threshold.
type AxisButton struct {
	Axis      Axis
	Button    Button
	Negative  bool
	Threshold float64
}

// ButtonAxis drives a logical axis to Value while a raw button is held.
type ButtonAxis struct {
	Index int
	Axis  Axis
	Value float64
}

// GamepadMap binds raw gamepad buttons and axes.
type GamepadMap struct {
	Buttons     *intmap.Map[int, Button]
	Axes        map[int]AxisMapping
	AxisButtons []AxisButton
	ButtonAxes  []ButtonAxis
}

// NewGamepadMap returns an empty map.
func NewGamepadMap() *GamepadMap {
	return &GamepadMap{
		Buttons: intmap.New[int, Button](16),
		Axes:    make(map[int]AxisMapping),
	}
}

// DefaultGamepadMap builds the standard-layout binding. When any raw axis
// reports a value outside [-1, 1] the pad is treated as exposing its d-pad as
// a hat on that axis.
func DefaultGamepadMap(axes []float64) *GamepadMap {
	m := NewGamepadMap()
	m.Buttons.Put(0, Rotate)
	m.Buttons.Put(1, Rotate)
	m.Buttons.Put(2, Drop)
	m.Buttons.Put(3, Drop)
	m.Buttons.Put(8, Pause)
	m.Buttons.Put(9, Pause)
	m.Buttons.Put(12, Up)
	m.Buttons.Put(13, Down)
	m.Buttons.Put(14, Left)
	m.Buttons.Put(15, Right)

	m.Axes[0] = AxisMapping{Axis: LeftX}
	m.Axes[1] = AxisMapping{Axis: LeftY}

	m.AxisButtons = []AxisButton{
		{Axis: LeftX, Button: Left, Negative: true},
		{Axis: LeftX, Button: Right},
		{Axis: LeftY, Button: Up, Negative: true},
		{Axis: LeftY, Button: Down},
	}

	for i, v := range axes {
		if v > 1 || v < -1 {
			m.Axes[i] = AxisMapping{Axis: DpadX, AxisY: DpadY, Range: Hat}
			m.AxisButtons = append(m.AxisButtons,
				AxisButton{Axis: DpadX, Button: Left, Negative: true},
				AxisButton{Axis: DpadX, Button: Right},
				AxisButton{Axis: DpadY, Button: Up, Negative: true},
				AxisButton{Axis: DpadY, Button: Down},
			)
			break
		}
	}
	return m
}

// AxisToButton reports whether an axis value counts as a pressed button.
// A zero threshold means JoystickThreshold.
func AxisToButton(value, threshold float64, negative bool) bool {
	if threshold == 0 {
		threshold = JoystickThreshold
	}
	if negative {
		return value <= -threshold
	}
	return value >= threshold
}

// hatDirections lists the eight hat positions clockwise from up.
var hatDirections = [8][2]float64{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// DecomposeHat splits a packed hat value into x and y in {-1, 0, 1}. Values
// outside [-1, 1] are the neutral position.
func DecomposeHat(value float64) (x, y float64) {
	if value > 1 || value < -1 || math.IsNaN(value) {
		return 0, 0
	}
	index := int(math.Round((value + 1) * 7 / 2))
	d := hatDirections[index]
	return d[0], d[1]
}

// ApplyAxisMapping writes a raw axis value into the logical axes.
func ApplyAxisMapping(value float64, m AxisMapping, axes *[AxisCount]float64) {
	if m.Range == Hat {
		x, y := DecomposeHat(value)
		if m.Invert {
			x, y = -x, -y
		}
		axes[m.Axis] = x
		axes[m.AxisY] = y
		return
	}

	switch m.Range {
	case Positive:
		value = max(value, 0)
	case Negative:
		value = min(value, 0)
	}
	if m.Invert {
		value = -value
	}
	axes[m.Axis] = value
}
