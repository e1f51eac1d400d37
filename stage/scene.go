package stage

import (
	"github.com/plus3/fptetris/input"
	"github.com/plus3/fptetris/scene"
)

var _ scene.Scene = (*Stage)(nil)

// OnEnter resumes a paused game. The pause menu passes Settings back.
func (s *Stage) OnEnter(data any) {
	switch v := data.(type) {
	case Settings:
		s.applySettings(v)
	case *Settings:
		if v != nil {
			s.applySettings(*v)
		}
	}
	s.Resume()
}

func (s *Stage) applySettings(settings Settings) {
	s.lightsOut = settings.LightsOut

	resize := false
	if s.crisis != settings.Crisis {
		s.crisis = settings.Crisis
		resize = true
	}
	if !s.touchControls && settings.TouchControls {
		s.touchControls = true
		resize = true
	}
	if resize && s.width > 0 {
		s.OnResize(s.width, s.height)
	}
}

func (s *Stage) OnLeave()   {}
func (s *Stage) OnDestroy() {}

// OnResize fits the room into the viewport. Crisis mode frames the
// playfield much tighter.
func (s *Stage) OnResize(width, height int) {
	s.width, s.height = width, height
	w, h := float64(width), float64(height)

	maxSize := float64(roomMaxSize)
	if s.crisis {
		maxSize = CellSize * 12
	}

	scale := roomDefaultScale
	if w > maxSize {
		scale = w / maxSize
	}
	if h > maxSize*scale {
		scale = h / maxSize
	}

	if scale == roomDefaultScale {
		minWidth, minHeight := ScreenWidth*1.1, ScreenHeight*1.1
		if s.crisis {
			minWidth, minHeight = CellSize*10, CellSize*12
		}
		if w < minWidth {
			scale = w / minWidth
		}
		if h < minHeight*scale {
			scale = h / minHeight
		}
	}

	if s.touchControls && w/h >= 10.0/16 {
		scale *= 1.5
	}
	s.scale = scale
}

// Scale is the room zoom computed by the last OnResize.
func (s *Stage) Scale() float64 {
	return s.scale
}

// OnUpdate advances the game and keeps the scenes below from updating.
func (s *Stage) OnUpdate(dt float64) bool {
	s.Update(dt)
	return false
}

func (s *Stage) OnProcessInput(in *input.Input, dt float64) {
	if p := in.Player(0); p != nil {
		s.HandleInput(p, dt)
	}
}

func (s *Stage) InputEnabled() bool {
	return true
}
