package settings

import (
	"fmt"

	"github.com/plus3/fptetris/audio"
	"github.com/plus3/fptetris/input"
	"github.com/plus3/fptetris/scene"
	"github.com/plus3/fptetris/stage"
)

// Menu layout size; smaller viewports scale it down.
const (
	ContainerWidth  = 640
	ContainerHeight = 480
)

// Mode picks the menu variant.
type Mode int

const (
	ModeTitle Mode = iota
	ModePause
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModePause:
		return "PAUSED"
	case ModeGameOver:
		return "GAME OVER"
	default:
		return "IT'S FIRST-PERSON TETRIS"
	}
}

// Item is a cursor position.
type Item int

const (
	ItemMusic Item = iota
	ItemSFX
	ItemLightsOut
	ItemCrisis
	ItemStart
	itemCount
)

// Audio is what the menu needs from the sound system.
type Audio interface {
	PlaySFX(name string)
	SetSFXEnabled(on bool)
	SetMusic(t audio.Track)
	RemoveMusic()
	PlaySlowMusic()
	PlayFastMusic()
	IsMusicPlaying() bool
}

// Host swaps scenes on behalf of the menu.
type Host interface {
	StartGame(opts stage.Options)
	ResumeGame(s stage.Settings)
}

// Deps are the menu's collaborators.
type Deps struct {
	Store Store
	Audio Audio
	Host  Host
	// Level is the starting level of new games.
	Level int
}

// Menu is the options scene.
type Menu struct {
	scene.Base

	mode     Mode
	summary  stage.Summary
	settings Settings
	deps     Deps
	cursor   Item
	panic    bool
	scale    float64
	width    int
	height   int
}

var _ scene.Scene = (*Menu)(nil)

// NewMenu loads the settings and builds the menu for mode. The summary is
// ignored on the title screen.
func NewMenu(mode Mode, summary stage.Summary, deps Deps) *Menu {
	if deps.Audio == nil {
		deps.Audio = audio.Null{}
	}
	if deps.Store == nil {
		deps.Store = NewMemoryStore()
	}

	m := &Menu{
		mode:     mode,
		summary:  summary,
		settings: Load(deps.Store),
		deps:     deps,
		cursor:   ItemStart,
		scale:    1,
	}
	m.deps.Audio.SetSFXEnabled(m.settings.SFX)

	switch mode {
	case ModePause:
		m.panic = summary.Panic
		m.deps.Audio.PlaySFX("pause")
	case ModeGameOver:
		m.settings.HiScore = summary.HiScore
		m.save()
	}
	return m
}

func (m *Menu) Mode() Mode             { return m.mode }
func (m *Menu) Summary() stage.Summary { return m.summary }
func (m *Menu) Settings() Settings     { return m.settings }
func (m *Menu) Cursor() Item           { return m.cursor }
func (m *Menu) Scale() float64         { return m.scale }

func (m *Menu) save() {
	if err := Save(m.deps.Store, m.settings); err != nil {
		Logger.Printf("%v", err)
	}
}

// PlayMusic starts the selected track, or the crisis track in crisis mode.
func (m *Menu) PlayMusic() {
	m.playMusic(m.settings.Music)
}

func (m *Menu) playMusic(index int) {
	a := m.deps.Audio

	if m.settings.Crisis {
		a.SetMusic(audio.TrackCrisis)
		a.PlaySlowMusic()
		return
	}

	if index >= MusicOff {
		a.RemoveMusic()
		return
	}

	a.SetMusic(audio.Track(index))
	if m.panic {
		a.PlayFastMusic()
	} else {
		a.PlaySlowMusic()
	}
}

// SelectMusic picks a track, MusicOff included. In crisis mode the crisis
// track keeps playing.
func (m *Menu) SelectMusic(index int) {
	if index < 0 || index > MusicOff {
		return
	}
	m.settings.Music = index
	m.save()

	if !m.settings.Crisis || !m.deps.Audio.IsMusicPlaying() {
		m.playMusic(index)
	}
	m.deps.Audio.PlaySFX("beep")
}

func (m *Menu) ToggleSFX() {
	m.settings.SFX = !m.settings.SFX
	m.deps.Audio.SetSFXEnabled(m.settings.SFX)
	m.deps.Audio.PlaySFX("beep")
	m.save()
}

func (m *Menu) ToggleLightsOut() {
	m.settings.LightsOut = !m.settings.LightsOut
	m.deps.Audio.PlaySFX("beep")
	m.save()
}

func (m *Menu) ToggleCrisis() {
	m.settings.Crisis = !m.settings.Crisis
	m.deps.Audio.PlaySFX("beep")

	if m.settings.Crisis {
		m.deps.Audio.SetMusic(audio.TrackCrisis)
		m.deps.Audio.PlaySlowMusic()
	} else {
		m.PlayMusic()
	}
	m.save()
}

// StartGame hands a fresh game to the host.
func (m *Menu) StartGame(touch bool) {
	m.deps.Audio.PlaySFX("beep")
	if !m.deps.Audio.IsMusicPlaying() {
		m.PlayMusic()
	}

	if m.deps.Host == nil {
		return
	}
	m.deps.Host.StartGame(stage.Options{
		Level:         m.deps.Level,
		HiScore:       m.settings.HiScore,
		LightsOut:     m.settings.LightsOut,
		Crisis:        m.settings.Crisis,
		TouchControls: touch,
	})
}

// ResumeGame returns to the paused game with the current options.
func (m *Menu) ResumeGame(touch bool) {
	m.deps.Audio.PlaySFX("pause")

	if m.deps.Host == nil {
		return
	}
	m.deps.Host.ResumeGame(stage.Settings{
		LightsOut:     m.settings.LightsOut,
		Crisis:        m.settings.Crisis,
		TouchControls: touch,
	})
}

// Activate runs the action under the cursor.
func (m *Menu) Activate(touch bool) {
	switch m.cursor {
	case ItemMusic:
		m.SelectMusic((m.settings.Music + 1) % (MusicOff + 1))
	case ItemSFX:
		m.ToggleSFX()
	case ItemLightsOut:
		m.ToggleLightsOut()
	case ItemCrisis:
		m.ToggleCrisis()
	case ItemStart:
		if m.mode == ModePause {
			m.ResumeGame(touch)
		} else {
			m.StartGame(touch)
		}
	}
}

func (m *Menu) OnResize(width, height int) {
	m.width, m.height = width, height

	scale := 1.0
	if width < ContainerWidth {
		scale = float64(width) / ContainerWidth
	}
	if float64(height) < ContainerHeight*scale {
		scale = float64(height) / ContainerHeight
	}
	m.scale = scale
}

// OnProcessInput moves the cursor with Up and Down and changes the music
// with Left and Right. Pause starts or resumes from anywhere; Rotate and
// Drop activate the item under the cursor, except that a paused game only
// resumes on Pause.
func (m *Menu) OnProcessInput(in *input.Input, dt float64) {
	p := in.Player(0)
	if p == nil {
		return
	}
	touch := in.Touch().Held() != input.NoButton

	switch {
	case p.IsPressed(input.Up, true):
		m.cursor = (m.cursor + itemCount - 1) % itemCount
		return
	case p.IsPressed(input.Down, true):
		m.cursor = (m.cursor + 1) % itemCount
		return
	}

	if m.cursor == ItemMusic {
		switch {
		case p.IsPressed(input.Left, false):
			m.SelectMusic((m.settings.Music + MusicOff) % (MusicOff + 1))
			return
		case p.IsPressed(input.Right, false):
			m.SelectMusic((m.settings.Music + 1) % (MusicOff + 1))
			return
		}
	}

	if m.mode == ModePause {
		if p.IsPressed(input.Pause, false) {
			m.ResumeGame(touch)
			return
		}
		if m.cursor != ItemStart && p.IsPressed(input.Rotate|input.Drop, false) {
			m.Activate(touch)
		}
		return
	}

	if p.IsPressed(input.Pause, false) {
		m.StartGame(touch)
		return
	}
	if p.IsPressed(input.Rotate|input.Drop, false) {
		m.Activate(touch)
	}
}

// Line is one row of the rendered menu.
type Line struct {
	Text     string
	Selected bool
	// Heading lines are section titles.
	Heading bool
}

// Lines lays the menu out as text rows for the renderers.
func (m *Menu) Lines() []Line {
	lines := []Line{{Text: m.mode.String(), Heading: true}}

	if m.mode == ModeTitle {
		lines = append(lines, Line{Text: "MOVE: ARROWS  ROTATE: UP  DROP: SPACE  PAUSE: ESC"})
	} else {
		s := m.summary
		lines = append(lines,
			Line{Text: fmt.Sprintf("LEVEL      %d", s.Level)},
			Line{Text: fmt.Sprintf("LINES      %d", s.Lines)},
			Line{Text: fmt.Sprintf("SCORE      %d", s.Score)},
			Line{Text: fmt.Sprintf("TOP SCORE  %d", s.HiScore)},
		)
	}

	music := "MUSIC   "
	for i := 0; i <= MusicOff; i++ {
		label := fmt.Sprintf("TYPE%d", i+1)
		if i == MusicOff {
			label = "OFF"
		}
		music += " " + checkbox(i == m.settings.Music) + label
	}

	start := "PUSH START"
	if m.mode == ModePause {
		start = "RESUME"
	}

	return append(lines,
		Line{Text: "MUSIC", Heading: true},
		Line{Text: music, Selected: m.cursor == ItemMusic},
		Line{Text: "OPTIONS", Heading: true},
		Line{Text: checkbox(m.settings.SFX) + "SFX", Selected: m.cursor == ItemSFX},
		Line{Text: checkbox(m.settings.LightsOut) + "LIGHTS OUT", Selected: m.cursor == ItemLightsOut},
		Line{Text: checkbox(m.settings.Crisis) + "IN CRISIS", Selected: m.cursor == ItemCrisis},
		Line{Text: start, Selected: m.cursor == ItemStart},
	)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
