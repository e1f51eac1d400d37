package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fptetris/app"
	"github.com/plus3/fptetris/input"
	"github.com/plus3/fptetris/internal/cli"
	"github.com/plus3/fptetris/settings"
	"github.com/plus3/fptetris/stage"
)

const tickRate = 60

func main() {
	env, err := cli.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flags := cli.Register(flag.CommandLine, env)
	flag.Parse()
	if err := flags.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if logFile := cli.SetupLogging("fptetris-term", flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableFocus()

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "fptetris-term crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	sound, closeAudio := cli.OpenAudio(flags.Mute)
	defer closeAudio()

	in := input.New(defaultKeyMap())
	a := app.New(in, flags.Options(sound))

	w, h := screen.Size()
	a.Resize(w, h)
	a.Start()

	run(screen, a)
	screen.Fini()
	log.Println("terminal frontend exited")
}

func run(screen tcell.Screen, a *app.App) {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	keys := newReleaser(a.Input().Keyboard())

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
					return
				}
				keys.Key(keyCode(ev), ev.When())
			case *tcell.EventResize:
				w, h := ev.Size()
				a.Resize(w, h)
				screen.Sync()
			case *tcell.EventFocus:
				if !ev.Focused {
					keys.Reset()
					a.Input().Blur()
				}
			}

		case now := <-ticker.C:
			a.Update(1.0 / tickRate)
			keys.Expire(now)

			switch top := a.Scenes().Top().(type) {
			case *stage.Stage:
				drawStage(screen, top.View())
			case *settings.Menu:
				drawMenu(screen, top)
			}
		}
	}
}
