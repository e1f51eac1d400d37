package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fptetris/input"
)

// runeBase keeps rune key codes clear of tcell's special keys.
const runeBase = 0x10000

// keyCode maps a tcell key event to a keyboard map code. Letters are case
// folded so caps lock does not break the bindings.
func keyCode(ev *tcell.EventKey) input.Key {
	if ev.Key() != tcell.KeyRune {
		return input.Key(ev.Key())
	}
	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return input.Key(runeBase + int(r))
}

func runeKey(r rune) input.Key {
	return input.Key(runeBase + int(r))
}

func defaultKeyMap() *input.KeyboardMap {
	return input.NewKeyboardMap().
		Bind(input.Key(tcell.KeyLeft), input.Left).
		Bind(runeKey('a'), input.Left).
		Bind(input.Key(tcell.KeyRight), input.Right).
		Bind(runeKey('d'), input.Right).
		Bind(input.Key(tcell.KeyDown), input.Down).
		Bind(runeKey('s'), input.Down).
		Bind(input.Key(tcell.KeyUp), input.Rotate).
		Bind(runeKey('w'), input.Rotate).
		Bind(runeKey('x'), input.Rotate).
		Bind(runeKey(' '), input.Drop).
		Bind(input.Key(tcell.KeyEnter), input.Drop).
		Bind(input.Key(tcell.KeyEscape), input.Pause).
		Bind(runeKey('p'), input.Pause)
}

// Terminals report presses and auto-repeats but never releases. Tap
// buttons are released right after the tick that saw them, so every event
// is a fresh press. Other keys count as released once no event arrived for
// them within the hold window: long after the first press, to cover the
// terminal's repeat delay, and short once repeats are flowing.
const (
	firstHold  = 550 * time.Millisecond
	repeatHold = 120 * time.Millisecond
)

// tapButtons never auto-repeat in the game.
const tapButtons = input.Rotate | input.Drop | input.Pause

type heldKey struct {
	last     time.Time
	repeated bool
	tap      bool
}

// releaser synthesizes key releases for a Keyboard.
type releaser struct {
	kb   *input.Keyboard
	held map[input.Key]*heldKey
}

func newReleaser(kb *input.Keyboard) *releaser {
	return &releaser{kb: kb, held: make(map[input.Key]*heldKey)}
}

// Key feeds one key event received at now.
func (r *releaser) Key(key input.Key, now time.Time) {
	if h, ok := r.held[key]; ok {
		h.last = now
		h.repeated = true
		r.kb.KeyDown(key, true)
		return
	}

	b, ok := r.kb.Map.Lookup(key)
	if !ok {
		return
	}
	r.kb.KeyDown(key, false)
	r.held[key] = &heldKey{last: now, tap: b&tapButtons != 0}
}

// Expire releases tap keys and every key whose hold window has passed.
// Call it after the tick that consumed the input.
func (r *releaser) Expire(now time.Time) {
	for key, h := range r.held {
		window := firstHold
		if h.repeated {
			window = repeatHold
		}
		if h.tap || now.Sub(h.last) > window {
			r.kb.KeyUp(key)
			delete(r.held, key)
		}
	}
}

// Reset forgets every held key.
func (r *releaser) Reset() {
	clear(r.held)
}
