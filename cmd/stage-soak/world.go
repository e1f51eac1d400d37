package main

import (
	"github.com/plus3/fptetris/ecs"
	"github.com/plus3/fptetris/stage"
)

// Game is one headless session. Index orders games by start.
type Game struct {
	Index int
	Stage *stage.Stage
}

// Pilot is the bot at the controls of a game.
type Pilot struct {
	Bot *Bot
}

// Tally is the soak's running totals.
type Tally struct {
	Started  int
	Finished []stage.Summary
	Cues     map[string]int
}

// recorder counts the cues a headless game would have played.
type recorder struct {
	tally *ecs.Singleton[Tally]
}

func (r *recorder) PlaySFX(name string) { r.tally.Get().Cues[name]++ }
func (r *recorder) PlaySlowMusic()      {}
func (r *recorder) PlayFastMusic()      {}
func (r *recorder) StopMusic()          {}

// results collects the summaries handed over at game over.
type results struct {
	tally *ecs.Singleton[Tally]
}

func (r *results) Pause(stage.Summary) {}

func (r *results) GameOver(s stage.Summary) {
	t := r.tally.Get()
	t.Finished = append(t.Finished, s)
}

// StageFactory builds the stage of the index-th game.
type StageFactory func(index int, sound stage.Sound, shell stage.Shell) *stage.Stage

// PlaySystem ticks every game once per frame.
type PlaySystem struct {
	Games ecs.Query[struct {
		*Game
		*Pilot
	}]
}

func (s *PlaySystem) Name() string { return "play" }

func (s *PlaySystem) Execute(frame *ecs.UpdateFrame) {
	for g := range s.Games.Values() {
		g.Pilot.Bot.Tick(g.Game.Stage)
		g.Game.Stage.HandleInput(g.Pilot.Bot.Player, frame.DeltaTime)
		g.Game.Stage.Update(frame.DeltaTime)
	}
}

// RestartSystem replaces every finished game with a fresh one, so the
// number of games in flight stays constant.
type RestartSystem struct {
	Games ecs.Query[struct{ *Game }]
	Tally ecs.Singleton[Tally]

	spawn func(index int) (Game, Pilot)
}

func (s *RestartSystem) Name() string { return "restart" }

func (s *RestartSystem) Execute(frame *ecs.UpdateFrame) {
	t := s.Tally.Get()
	for id, g := range s.Games.Iter() {
		if !g.Game.Stage.Finished() {
			continue
		}
		frame.Commands.Delete(id)
		game, pilot := s.spawn(t.Started)
		frame.Commands.Spawn(game, pilot)
		t.Started++
	}
}

// World runs concurrent games as entities of one storage.
type World struct {
	scheduler *ecs.Scheduler
	tally     *ecs.Singleton[Tally]
}

// NewWorld spawns games entities, each built by newStage and flown by a
// bot that spends at most tries taps per piece.
func NewWorld(games, tries int, newStage StageFactory) *World {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Game](registry)
	ecs.RegisterComponent[Pilot](registry)
	storage := ecs.NewStorage(registry)

	tally := ecs.NewSingleton(storage, Tally{Cues: make(map[string]int)})
	sound := &recorder{tally: tally}
	shell := &results{tally: tally}

	spawn := func(index int) (Game, Pilot) {
		return Game{Index: index, Stage: newStage(index, sound, shell)}, Pilot{Bot: NewBot(tries)}
	}

	for range games {
		game, pilot := spawn(tally.Get().Started)
		storage.Spawn(game, pilot)
		tally.Get().Started++
	}

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&PlaySystem{})
	scheduler.Register(&RestartSystem{spawn: spawn})

	return &World{scheduler: scheduler, tally: tally}
}

// Tick advances every game by dt seconds.
func (w *World) Tick(dt float64) {
	w.scheduler.Once(dt)
}

func (w *World) Tally() *Tally {
	return w.tally.Get()
}

// InFlight is the number of games currently running.
func (w *World) InFlight() int {
	return w.scheduler.Storage().Len()
}

func (w *World) Stats() *ecs.SchedulerStats {
	return w.scheduler.GetStats()
}

// Games returns the running games in storage order.
func (w *World) Games() []*Game {
	var games []*Game
	for g := range ecs.NewView[struct{ *Game }](w.scheduler.Storage()).Values() {
		games = append(games, g.Game)
	}
	return games
}
