package scene

import (
	"reflect"

	"github.com/plus3/fptetris/input"
)

// Stats counts stack activity. Update timing is measured by the caller's
// scheduler.
type Stats struct {
	Depth       int
	Frames      int64
	Transitions int64
}

// Manager owns the scene stack.
type Manager struct {
	stack  []Scene
	width  int
	height int

	// dirty is set by any structural change and stops the current update
	// pass from touching scenes that are no longer where it expects them.
	dirty bool

	frames      int64
	transitions int64
}

func NewManager() *Manager {
	return &Manager{}
}

// Top returns the active scene or nil.
func (m *Manager) Top() Scene {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *Manager) Len() int {
	return len(m.stack)
}

// Push puts a scene on top of the stack.
func (m *Manager) Push(s Scene, data any) {
	if top := m.Top(); top != nil {
		top.OnLeave()
	}
	m.enter(s, data)
}

// SwitchTo destroys the whole stack and makes s the only scene.
func (m *Manager) SwitchTo(s Scene, data any) {
	m.Clear()
	m.enter(s, data)
}

// Pop removes the top scene and re-enters the one below with data.
func (m *Manager) Pop(data any) Scene {
	top := m.Top()
	if top == nil {
		return nil
	}
	top.OnLeave()
	top.OnDestroy()
	m.stack = m.stack[:len(m.stack)-1]
	m.changed("pop", top)

	if next := m.Top(); next != nil {
		next.OnEnter(data)
	}
	return top
}

// Clear destroys every scene, top first.
func (m *Manager) Clear() {
	for i := len(m.stack) - 1; i >= 0; i-- {
		s := m.stack[i]
		if i == len(m.stack)-1 {
			s.OnLeave()
		}
		s.OnDestroy()
	}
	if len(m.stack) > 0 {
		m.stack = m.stack[:0]
		m.changed("clear", nil)
	}
}

func (m *Manager) enter(s Scene, data any) {
	m.stack = append(m.stack, s)
	m.changed("push", s)
	if m.width > 0 && m.height > 0 {
		s.OnResize(m.width, m.height)
	}
	s.OnEnter(data)
}

func (m *Manager) changed(op string, s Scene) {
	m.dirty = true
	m.transitions++
	if s != nil {
		Logger.Printf("%s %s (depth %d)", op, sceneName(s), len(m.stack))
	} else {
		Logger.Printf("%s (depth %d)", op, len(m.stack))
	}
}

// UpdateScreenSize records the viewport and resizes every scene.
func (m *Manager) UpdateScreenSize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height
	for _, s := range m.stack {
		s.OnResize(width, height)
	}
}

// ScreenSize returns the last viewport passed to UpdateScreenSize.
func (m *Manager) ScreenSize() (int, int) {
	return m.width, m.height
}

// ProcessInput hands this tick's input to the top scene if it accepts it.
func (m *Manager) ProcessInput(in *input.Input, dt float64) {
	top := m.Top()
	if top == nil || !top.InputEnabled() {
		return
	}
	top.OnProcessInput(in, dt)
}

// Update runs scenes from the top down until one blocks. It returns false if
// the stack changed during the pass.
func (m *Manager) Update(dt float64) bool {
	m.frames++
	m.dirty = false

	for i := len(m.stack) - 1; i >= 0; i-- {
		s := m.stack[i]

		passThrough := s.OnUpdate(dt)
		if m.dirty {
			return false
		}
		if !passThrough {
			break
		}
	}
	return true
}

// Stats returns the stack counters.
func (m *Manager) Stats() Stats {
	return Stats{
		Depth:       len(m.stack),
		Frames:      m.frames,
		Transitions: m.transitions,
	}
}

func sceneName(s Scene) string {
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
