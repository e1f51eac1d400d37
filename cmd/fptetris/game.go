package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/fptetris/app"
	"github.com/plus3/fptetris/debugui"
	debugui_ebiten "github.com/plus3/fptetris/debugui/ebiten"
	"github.com/plus3/fptetris/input"
	ebiteninput "github.com/plus3/fptetris/input/ebiten"
	"github.com/plus3/fptetris/settings"
	"github.com/plus3/fptetris/stage"
)

// Game implements ebiten.Game around the scene stack.
type Game struct {
	app    *app.App
	poller *ebiteninput.Poller
	cells  *ebiten.Image
	room   *ebiten.Image

	ui    *debugui.UI
	imgui *debugui_ebiten.ImguiBackend

	width, height int
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) && g.ui != nil {
		g.ui.Toggle()
	}
	if g.imgui != nil {
		g.imgui.Frame(g.ui)
	}

	if g.ui != nil && g.ui.InputState().WantCaptureKeyboard {
		g.app.Input().Blur()
	} else {
		g.poller.Poll()
	}

	g.app.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch top := g.app.Scenes().Top().(type) {
	case *stage.Stage:
		g.drawStage(screen, top.View())
	case *settings.Menu:
		g.drawMenu(screen, top)
	}

	if g.imgui != nil {
		g.imgui.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.app.Resize(outsideWidth, outsideHeight)
		g.app.Input().Touch().Regions = input.DefaultTouchLayout(float64(outsideWidth), float64(outsideHeight))
	}
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
