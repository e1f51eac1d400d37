package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fptetris/app"
	"github.com/plus3/fptetris/debugui"
	debugui_ebiten "github.com/plus3/fptetris/debugui/ebiten"
	"github.com/plus3/fptetris/input"
)

// Game shows the inspector overlay on an otherwise empty screen.
type Game struct {
	app     *app.App
	ui      *debugui.UI
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.backend.Frame(g.ui)
	g.app.Update(1.0 / 60.0)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	g.backend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Inspector Example", 1280, 720)

	a := app.New(input.New(input.NewKeyboardMap()), app.DefaultOptions())
	a.Start()
	ui := debugui.New()
	ui.Add("hello", func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from the inspector!")
		imgui.End()
	})
	ui.Add("performance", debugui.NewPerformanceStats(a.Scheduler(), a.Scenes(), 120).Render)

	game := &Game{app: a, ui: ui, backend: backend}
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
