// Package scene runs a stack of scenes: the top scene receives input, and
// updates flow down the stack for as long as each scene lets them through.
package scene

import (
	"io"
	"log"

	"github.com/plus3/fptetris/input"
)

// Logger receives scene lifecycle messages. Commands replace it at startup.
var Logger = log.New(io.Discard, "scene: ", log.LstdFlags)

// Scene is a unit of the presentation stack.
type Scene interface {
	// OnEnter runs when the scene becomes the top of the stack, with the
	// data passed to the push, switch or pop that exposed it.
	OnEnter(data any)
	// OnLeave runs when the scene stops being the top of the stack.
	OnLeave()
	// OnDestroy runs when the scene is removed from the stack.
	OnDestroy()
	OnResize(width, height int)
	// OnUpdate advances the scene. Returning true lets the scene below it
	// update too.
	OnUpdate(dt float64) bool
	OnProcessInput(in *input.Input, dt float64)
	InputEnabled() bool
}

// Base implements every Scene method as a no-op that accepts input and
// blocks updates. Embed it and override what you need.
type Base struct{}

func (Base) OnEnter(any)                          {}
func (Base) OnLeave()                             {}
func (Base) OnDestroy()                           {}
func (Base) OnResize(int, int)                    {}
func (Base) OnUpdate(float64) bool                { return false }
func (Base) OnProcessInput(*input.Input, float64) {}
func (Base) InputEnabled() bool                   { return true }
