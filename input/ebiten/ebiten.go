// Package ebiten feeds input devices from Ebiten's polled keyboard, gamepad,
// touch and focus state.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/fptetris/input"
)

// DefaultKeyMap binds arrows, WASD, space, enter and escape.
func DefaultKeyMap() *input.KeyboardMap {
	return input.NewKeyboardMap().
		Bind(input.Key(ebiten.KeyArrowLeft), input.Left).
		Bind(input.Key(ebiten.KeyA), input.Left).
		Bind(input.Key(ebiten.KeyArrowRight), input.Right).
		Bind(input.Key(ebiten.KeyD), input.Right).
		Bind(input.Key(ebiten.KeyArrowDown), input.Down).
		Bind(input.Key(ebiten.KeyS), input.Down).
		Bind(input.Key(ebiten.KeyArrowUp), input.Rotate).
		Bind(input.Key(ebiten.KeyW), input.Rotate).
		Bind(input.Key(ebiten.KeyX), input.Rotate).
		Bind(input.Key(ebiten.KeySpace), input.Drop).
		Bind(input.Key(ebiten.KeyEnter), input.Drop).
		Bind(input.Key(ebiten.KeyEscape), input.Pause).
		Bind(input.Key(ebiten.KeyP), input.Pause)
}

// Poller copies one tick of Ebiten input into an input.Input.
type Poller struct {
	in      *input.Input
	focused bool

	keys     []ebiten.Key
	gamepads []ebiten.GamepadID
	touches  []ebiten.TouchID
	points   []input.TouchPoint
	known    map[ebiten.GamepadID]struct{}

	// Touches counts the touch points seen on the last poll.
	Touches int
}

func NewPoller(in *input.Input) *Poller {
	return &Poller{
		in:      in,
		focused: true,
		known:   make(map[ebiten.GamepadID]struct{}),
	}
}

// Poll feeds the devices. Call it from Game.Update before input.Update.
func (p *Poller) Poll() {
	if !ebiten.IsFocused() {
		if p.focused {
			p.in.Blur()
		}
		p.focused = false
		return
	}
	p.focused = true

	p.pollKeyboard()
	p.pollGamepads()
	p.pollTouches()
}

func (p *Poller) pollKeyboard() {
	kb := p.in.Keyboard()
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		kb.KeyDown(input.Key(k), false)
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		kb.KeyUp(input.Key(k))
	}
}

func (p *Poller) pollGamepads() {
	p.gamepads = ebiten.AppendGamepadIDs(p.gamepads[:0])

	seen := make(map[ebiten.GamepadID]struct{}, len(p.gamepads))
	for _, id := range p.gamepads {
		seen[id] = struct{}{}
		state := readGamepad(id)
		p.in.Gamepad(int(id), state.Axes).Update(state)
		p.known[id] = struct{}{}
	}
	for id := range p.known {
		if _, ok := seen[id]; !ok {
			p.in.Disconnect(int(id))
			delete(p.known, id)
		}
	}
}

// readGamepad prefers the W3C standard layout, whose button order matches
// input.DefaultGamepadMap. Pads without one only report raw buttons.
func readGamepad(id ebiten.GamepadID) input.GamepadState {
	var state input.GamepadState
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		for b := range int(ebiten.StandardGamepadButtonMax) + 1 {
			state.Buttons = append(state.Buttons,
				ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButton(b)))
		}
		for a := range int(ebiten.StandardGamepadAxisMax) + 1 {
			state.Axes = append(state.Axes,
				ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxis(a)))
		}
		return state
	}

	for b := range ebiten.GamepadButtonCount(id) {
		state.Buttons = append(state.Buttons, ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(b)))
	}
	return state
}

func (p *Poller) pollTouches() {
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	p.points = p.points[:0]
	for _, id := range p.touches {
		x, y := ebiten.TouchPosition(id)
		p.points = append(p.points, input.TouchPoint{ID: int(id), X: float64(x), Y: float64(y)})
	}
	p.Touches = len(p.points)
	p.in.Touch().Update(p.points)
}
