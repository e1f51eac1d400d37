// Package input turns raw device events into abstract per-player button and
// axis state. Everything here is independent of how the camera is oriented;
// the stage remaps directions itself.
package input

import "strings"

// Button is a bit in a player's button mask. Up to 32 buttons fit.
type Button uint32

const (
	Up Button = 1 << iota
	Left
	Down
	Right
	Rotate
	Drop
	Pause

	NoButton Button = 0
)

var buttonNames = []struct {
	button Button
	name   string
}{
	{Up, "up"},
	{Left, "left"},
	{Down, "down"},
	{Right, "right"},
	{Rotate, "rotate"},
	{Drop, "drop"},
	{Pause, "pause"},
}

func (b Button) String() string {
	if b == NoButton {
		return "none"
	}
	var names []string
	for _, entry := range buttonNames {
		if b&entry.button != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}

// ButtonByName resolves a lower-case button name, as used in binding files.
func ButtonByName(name string) (Button, bool) {
	for _, entry := range buttonNames {
		if entry.name == name {
			return entry.button, true
		}
	}
	return NoButton, false
}

// Axis identifies a logical analog axis.
type Axis int

const (
	LeftX Axis = iota
	LeftY
	RightX
	RightY
	DpadX
	DpadY
	TriggerL
	TriggerR

	AxisCount
)

const (
	// MaxLocalPlayers is the number of players sharing one machine.
	MaxLocalPlayers = 1
	// JoystickThreshold is the default analog dead zone for axis buttons.
	JoystickThreshold = 0.35
)
