package input

import "slices"

// Input owns the local players and the devices feeding them. Frontends push
// events into the devices; scenes read the players after Update.
type Input struct {
	players  []*Player
	keyboard *Keyboard
	touch    *Touch
	gamepads map[int]*Gamepad

	// NewGamepadMap builds the binding for a newly connected pad from its
	// first axis snapshot.
	NewGamepadMap func(axes []float64) *GamepadMap
}

// New creates the players and binds the keyboard, touch and future gamepads
// to the first one.
func New(keys *KeyboardMap) *Input {
	in := &Input{
		gamepads:      make(map[int]*Gamepad),
		NewGamepadMap: DefaultGamepadMap,
	}
	for i := range MaxLocalPlayers {
		in.players = append(in.players, NewPlayer(i))
	}
	in.keyboard = NewKeyboard(keys, in.players[0])
	in.touch = NewTouch(in.players[0])
	return in
}

// Player returns the player with the given index or nil.
func (in *Input) Player(i int) *Player {
	if i < 0 || i >= len(in.players) {
		return nil
	}
	return in.players[i]
}

func (in *Input) Players() []*Player {
	return in.players
}

func (in *Input) Keyboard() *Keyboard {
	return in.keyboard
}

func (in *Input) Touch() *Touch {
	return in.touch
}

// Gamepad returns the pad with the given id, connecting it on first use.
func (in *Input) Gamepad(id int, axes []float64) *Gamepad {
	if g, ok := in.gamepads[id]; ok {
		return g
	}
	g := NewGamepad(id, in.NewGamepadMap(axes), in.players[0])
	in.gamepads[id] = g
	return g
}

// Disconnect drops a pad and releases whatever it held.
func (in *Input) Disconnect(id int) {
	if g, ok := in.gamepads[id]; ok {
		g.Reset()
		delete(in.gamepads, id)
	}
}

// GamepadIDs lists connected pads in ascending order.
func (in *Input) GamepadIDs() []int {
	ids := make([]int, 0, len(in.gamepads))
	for id := range in.gamepads {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Update publishes this tick's state. Call once per tick before any scene
// reads input.
func (in *Input) Update() {
	for _, p := range in.players {
		p.Update()
	}
}

// Blur releases everything, for when the window loses focus and release
// events would otherwise be lost.
func (in *Input) Blur() {
	in.keyboard.Reset()
	in.touch.Reset()
	for _, g := range in.gamepads {
		g.Reset()
	}
	for _, p := range in.players {
		p.Reset()
	}
}
