// Package app wires the scenes together: the menu starts games, the stage
// pauses into the menu and hands its result back on game over.
package app

import (
	"io"
	"log"
	"math/rand/v2"

	"github.com/plus3/fptetris/audio"
	"github.com/plus3/fptetris/ecs"
	"github.com/plus3/fptetris/input"
	"github.com/plus3/fptetris/scene"
	"github.com/plus3/fptetris/settings"
	"github.com/plus3/fptetris/stage"
)

var Logger = log.New(io.Discard, "app: ", log.LstdFlags)

// Audio is everything the scenes play.
type Audio interface {
	stage.Sound
	settings.Audio
}

// Options are the frontend-independent choices made on the command line.
type Options struct {
	Stage stage.Config
	// Level is the starting level of every game.
	Level int
	Store settings.Store
	Audio Audio
	// Seed makes the piece sequence reproducible. Game n draws from
	// PCG(Seed, n). Zero seeds from the clock.
	Seed uint64
}

// DefaultOptions plays first person, silently, without persistence.
func DefaultOptions() Options {
	return Options{
		Stage: stage.DefaultConfig(),
		Store: settings.NewMemoryStore(),
		Audio: audio.Null{},
	}
}

// App owns the scene stack and the input it feeds. Each tick is one frame
// of its scheduler: publish input, route it to the top scene, update the
// stack.
type App struct {
	opts      Options
	scenes    *scene.Manager
	input     *input.Input
	scheduler *ecs.Scheduler
	clock     *ecs.Singleton[Clock]
	game      *stage.Stage
	games     uint64
}

var (
	_ stage.Shell   = (*App)(nil)
	_ settings.Host = (*App)(nil)
)

func New(in *input.Input, opts Options) *App {
	if opts.Store == nil {
		opts.Store = settings.NewMemoryStore()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Null{}
	}

	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	a := &App{
		opts:      opts,
		scenes:    scene.NewManager(),
		input:     in,
		scheduler: ecs.NewScheduler(storage),
		clock:     ecs.NewSingleton(storage, Clock{Stable: true}),
	}
	a.scheduler.Register(&publishInput{input: in})
	a.scheduler.Register(&routeInput{scenes: a.scenes, input: in})
	a.scheduler.Register(&updateScenes{scenes: a.scenes})
	return a
}

func (a *App) Scenes() *scene.Manager { return a.scenes }
func (a *App) Input() *input.Input    { return a.input }
func (a *App) Options() Options       { return a.opts }

// Scheduler runs the tick systems and keeps their timings.
func (a *App) Scheduler() *ecs.Scheduler { return a.scheduler }

func (a *App) Clock() Clock { return *a.clock.Get() }

// Game returns the running or paused game, nil on the title and game over
// menus.
func (a *App) Game() *stage.Stage { return a.game }

// Menu returns the menu on top of the stack, if any.
func (a *App) Menu() *settings.Menu {
	m, _ := a.scenes.Top().(*settings.Menu)
	return m
}

// Start shows the title menu.
func (a *App) Start() {
	a.game = nil
	a.scenes.SwitchTo(a.menu(settings.ModeTitle, stage.Summary{}), nil)
}

// Resize forwards a viewport change to every scene.
func (a *App) Resize(width, height int) {
	a.scenes.UpdateScreenSize(width, height)
}

// Update runs one tick: publish input, let the top scene consume it, then
// update the stack. It returns false when the stack changed during the
// tick.
func (a *App) Update(dt float64) bool {
	a.scheduler.Once(dt)
	return a.clock.Get().Stable
}

func (a *App) menu(mode settings.Mode, summary stage.Summary) *settings.Menu {
	return settings.NewMenu(mode, summary, settings.Deps{
		Store: a.opts.Store,
		Audio: a.opts.Audio,
		Host:  a,
		Level: a.opts.Level,
	})
}

// StartGame replaces whatever is on the stack with a new game.
func (a *App) StartGame(opts stage.Options) {
	seed := a.opts.Seed
	if seed != 0 {
		opts.Source = rand.NewPCG(seed, a.games)
	}
	a.games++

	a.game = stage.New(a.opts.Stage, opts, a.opts.Audio, a)
	Logger.Printf("game %d started, session %s", a.games, a.game.SessionID())
	a.scenes.SwitchTo(a.game, nil)
}

// ResumeGame pops the pause menu and hands the options to the game.
func (a *App) ResumeGame(s stage.Settings) {
	a.scenes.Pop(s)
}

// Pause pushes the pause menu over the game.
func (a *App) Pause(summary stage.Summary) {
	a.scenes.Push(a.menu(settings.ModePause, summary), nil)
}

// GameOver replaces the game with the game over menu.
func (a *App) GameOver(summary stage.Summary) {
	Logger.Printf("game over: session %s, score %d", summary.SessionID, summary.Score)
	a.game = nil
	a.scenes.SwitchTo(a.menu(settings.ModeGameOver, summary), nil)
}
