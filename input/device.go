package input

import "github.com/kamstrup/intmap"

// Device is anything that feeds a player's state.
type Device interface {
	SetPlayer(p *Player)
	// Reset releases everything the device is holding.
	Reset()
}

// Keyboard translates key events through a KeyboardMap. A button stays held
// while any key bound to it is down.
type Keyboard struct {
	Map *KeyboardMap

	player *Player
	keys   *intmap.Map[Key, Button]
	held   Button
}

func NewKeyboard(m *KeyboardMap, p *Player) *Keyboard {
	return &Keyboard{Map: m, player: p, keys: intmap.New[Key, Button](8)}
}

func (k *Keyboard) SetPlayer(p *Player) {
	k.Reset()
	k.player = p
}

func (k *Keyboard) Reset() {
	if k.player != nil {
		k.player.Release(k.held)
		for b, ka := range k.Map.KeyAxes {
			if k.held&b != 0 {
				k.player.Axes[ka.Axis] = 0
			}
		}
	}
	k.keys.Clear()
	k.held = NoButton
}

// KeyDown handles a key press or an auto-repeat of one. It reports whether
// the key is bound, so frontends can swallow it.
func (k *Keyboard) KeyDown(key Key, repeat bool) bool {
	b, ok := k.Map.Lookup(key)
	if !ok || k.player == nil {
		return ok
	}
	if repeat {
		k.player.Repeat(b)
		return true
	}

	k.keys.Put(key, b)
	k.held |= b
	k.player.Press(b)
	if ka, ok := k.Map.KeyAxes[b]; ok {
		k.player.Axes[ka.Axis] = ka.Value
	}
	return true
}

// KeyUp handles a key release. The button is released only once no other
// held key is bound to it.
func (k *Keyboard) KeyUp(key Key) bool {
	b, ok := k.keys.Get(key)
	if !ok {
		_, bound := k.Map.Lookup(key)
		return bound
	}
	k.keys.Del(key)
	if k.player == nil {
		return true
	}

	k.held = NoButton
	for _, other := range k.keys.All() {
		k.held |= other
	}
	if k.held&b != 0 {
		return true
	}

	k.player.Release(b)
	if ka, ok := k.Map.KeyAxes[b]; ok {
		value := 0.0
		if k.held&ka.Opposite != 0 {
			value = k.Map.KeyAxes[ka.Opposite].Value
		}
		k.player.Axes[ka.Axis] = value
	}
	return true
}

// GamepadState is one polled snapshot of a pad.
type GamepadState struct {
	Buttons []bool
	Axes    []float64
}

// Gamepad turns polled snapshots into edges on its player.
type Gamepad struct {
	ID  int
	Map *GamepadMap

	player *Player
	held   Button
	axes   [AxisCount]float64
}

func NewGamepad(id int, m *GamepadMap, p *Player) *Gamepad {
	return &Gamepad{ID: id, Map: m, player: p}
}

func (g *Gamepad) SetPlayer(p *Player) {
	g.Reset()
	g.player = p
}

func (g *Gamepad) Reset() {
	if g.player != nil {
		g.player.Release(g.held)
		for a, v := range g.axes {
			if v != 0 {
				g.player.Axes[a] = 0
			}
		}
	}
	g.held = NoButton
	g.axes = [AxisCount]float64{}
}

// Update applies a snapshot. Buttons reached both from a raw button and from
// an axis are held while either source holds them.
func (g *Gamepad) Update(state GamepadState) {
	var axes [AxisCount]float64
	for i, v := range state.Axes {
		if m, ok := g.Map.Axes[i]; ok {
			ApplyAxisMapping(v, m, &axes)
		}
	}

	var held Button
	for i, down := range state.Buttons {
		if !down {
			continue
		}
		if b, ok := g.Map.Buttons.Get(i); ok {
			held |= b
		}
	}
	for _, ba := range g.Map.ButtonAxes {
		if ba.Index < len(state.Buttons) && state.Buttons[ba.Index] {
			axes[ba.Axis] = ba.Value
		}
	}
	for _, ab := range g.Map.AxisButtons {
		if AxisToButton(axes[ab.Axis], ab.Threshold, ab.Negative) {
			held |= ab.Button
		}
	}

	if g.player != nil {
		g.player.Press(held &^ g.held)
		g.player.Release(g.held &^ held)
		for a := range axes {
			if axes[a] != 0 || g.axes[a] != 0 {
				g.player.Axes[a] = axes[a]
			}
		}
	}
	g.held = held
	g.axes = axes
}

// Rect is an axis-aligned screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// TouchRegion is an on-screen virtual button.
type TouchRegion struct {
	Rect
	Button Button
}

type TouchPoint struct {
	ID   int
	X, Y float64
}

// Touch maps active touches onto virtual buttons.
type Touch struct {
	Regions []TouchRegion

	player *Player
	held   Button
}

func NewTouch(p *Player) *Touch {
	return &Touch{player: p}
}

func (t *Touch) SetPlayer(p *Player) {
	t.Reset()
	t.player = p
}

func (t *Touch) Reset() {
	if t.player != nil {
		t.player.Release(t.held)
	}
	t.held = NoButton
}

// Held reports the buttons currently held by touches.
func (t *Touch) Held() Button {
	return t.held
}

// Update replaces the set of active touches.
func (t *Touch) Update(points []TouchPoint) {
	var held Button
	for _, p := range points {
		for _, r := range t.Regions {
			if r.Contains(p.X, p.Y) {
				held |= r.Button
			}
		}
	}
	if t.player != nil {
		t.player.Press(held &^ t.held)
		t.player.Release(t.held &^ held)
	}
	t.held = held
}

// DefaultTouchLayout places a d-pad bottom left, rotate and drop bottom right
// and pause in the top right corner.
func DefaultTouchLayout(width, height float64) []TouchRegion {
	s := min(width, height) / 6
	pad := s / 3
	cx := pad + 1.5*s
	cy := height - pad - 1.5*s

	return []TouchRegion{
		{Rect{cx - s/2, cy - 1.5*s, s, s}, Up},
		{Rect{cx - s/2, cy + s/2, s, s}, Down},
		{Rect{cx - 1.5*s, cy - s/2, s, s}, Left},
		{Rect{cx + s/2, cy - s/2, s, s}, Right},
		{Rect{width - pad - s, height - pad - 2.2*s, s, s}, Rotate},
		{Rect{width - pad - 2.2*s, height - pad - s, s, s}, Drop},
		{Rect{width - pad - 0.75*s, pad, 0.75 * s, 0.75 * s}, Pause},
	}
}
