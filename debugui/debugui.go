// Package debugui draws Dear ImGui inspector windows over a running game.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Name   string
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard
// input, so the game can ignore it.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// UI is the set of inspector windows.
type UI struct {
	Visible bool

	items []Item
	state InputState
}

func New() *UI {
	return &UI{Visible: true}
}

// Add registers a window. Windows render in the order they were added.
func (u *UI) Add(name string, render func()) {
	u.items = append(u.items, Item{Name: name, Render: render})
}

func (u *UI) Items() []Item {
	return u.items
}

func (u *UI) Toggle() {
	u.Visible = !u.Visible
}

// InputState returns the capture state of the last Render.
func (u *UI) InputState() InputState {
	return u.state
}

// Render updates the capture state and runs every window. Call between the
// backend's BeginFrame and EndFrame.
func (u *UI) Render() {
	if !u.Visible {
		u.state = InputState{}
		return
	}

	u.state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	u.state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range u.items {
		item.Render()
	}
}
