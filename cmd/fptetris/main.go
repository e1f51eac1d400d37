package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fptetris/app"
	"github.com/plus3/fptetris/debugui"
	debugui_ebiten "github.com/plus3/fptetris/debugui/ebiten"
	"github.com/plus3/fptetris/input"
	ebiteninput "github.com/plus3/fptetris/input/ebiten"
	"github.com/plus3/fptetris/internal/cli"
)

const (
	windowWidth  = 1024
	windowHeight = 768
)

func main() {
	env, err := cli.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flags := cli.Register(flag.CommandLine, env)
	inspector := flag.Bool("inspector", false, "Show the Dear ImGui inspector windows (toggle with F1).")
	flag.Parse()
	if err := flags.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if logFile := cli.SetupLogging("fptetris", flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	sound, closeAudio := cli.OpenAudio(flags.Mute)
	defer closeAudio()

	in := input.New(ebiteninput.DefaultKeyMap())
	a := app.New(in, flags.Options(sound))

	game := &Game{
		app:    a,
		poller: ebiteninput.NewPoller(in),
		cells:  newCellImage(),
	}

	if *inspector {
		game.imgui = debugui_ebiten.NewImguiBackend("First-Person Tetris", windowWidth, windowHeight)
		game.ui = debugui.New()
		game.ui.Add("stage", debugui.NewStageInspector(a.Game).Render)
		game.ui.Add("rules", debugui.NewConfigEditor(a.Game).Render)
		game.ui.Add("performance", debugui.NewPerformanceStats(a.Scheduler(), a.Scenes(), 120).Render)
	} else {
		ebiten.SetWindowSize(windowWidth, windowHeight)
		ebiten.SetWindowTitle("First-Person Tetris")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("starting: level %d, first person %v", flags.Level, flags.Config().FirstPerson)
	a.Start()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Printf("game exited: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
