package input

// Player holds one player's button state, double-buffered per tick so that
// press and release edges exist for exactly one frame.
type Player struct {
	Index int
	Axes  [AxisCount]float64

	oldState     Button
	currentState Button
	newState     Button

	repeatState    Button
	newRepeatState Button
}

// NewPlayer returns a player with nothing held.
func NewPlayer(index int) *Player {
	return &Player{Index: index}
}

// Press marks buttons as held from the next Update on.
func (p *Player) Press(b Button) {
	p.newState |= b
}

// Release marks buttons as up from the next Update on.
func (p *Player) Release(b Button) {
	p.newState &^= b
}

// Repeat records a device auto-repeat event for already held buttons.
func (p *Player) Repeat(b Button) {
	p.newRepeatState |= b & p.newState
}

// IsPressed is true only on the tick a button goes from up to down. With
// allowRepeat, a device auto-repeat of a held button also counts.
func (p *Player) IsPressed(b Button, allowRepeat bool) bool {
	pressed := p.currentState & b &^ (p.oldState & b)
	if allowRepeat {
		pressed |= p.repeatState & b
	}
	return pressed != 0
}

// IsReleased is true only on the tick a button goes from down to up.
func (p *Player) IsReleased(b Button) bool {
	return p.oldState&b&^(p.currentState&b) != 0
}

// IsDown is true whenever a button is held.
func (p *Player) IsDown(b Button) bool {
	return p.currentState&b != 0
}

// Held returns the pending state that the next Update will publish.
func (p *Player) Held() Button {
	return p.newState
}

// Reset forces every button up and centers every axis.
func (p *Player) Reset() {
	p.newState = NoButton
	p.newRepeatState = NoButton
	p.Axes = [AxisCount]float64{}
}

// Update advances the double buffer. Call once per tick before reading.
func (p *Player) Update() {
	p.oldState = p.currentState
	p.currentState = p.newState
	p.repeatState = p.newRepeatState
	p.newRepeatState = NoButton
}
