package app

import (
	"github.com/plus3/fptetris/ecs"
	"github.com/plus3/fptetris/input"
	"github.com/plus3/fptetris/scene"
)

// Clock is the app's frame bookkeeping, kept as a world singleton.
type Clock struct {
	Ticks   uint64
	Elapsed float64
	// Stable is false when the scene stack changed during the last tick.
	Stable bool
}

// publishInput advances every player's double buffer.
type publishInput struct {
	input *input.Input
}

func (s *publishInput) Name() string { return "input" }

func (s *publishInput) Execute(*ecs.UpdateFrame) {
	s.input.Update()
}

// routeInput hands the published buttons to the top scene.
type routeInput struct {
	scenes *scene.Manager
	input  *input.Input
}

func (s *routeInput) Name() string { return "scene input" }

func (s *routeInput) Execute(frame *ecs.UpdateFrame) {
	s.scenes.ProcessInput(s.input, frame.DeltaTime)
}

type updateScenes struct {
	scenes *scene.Manager
	Clock  ecs.Singleton[Clock]
}

func (s *updateScenes) Name() string { return "scene update" }

func (s *updateScenes) Execute(frame *ecs.UpdateFrame) {
	c := s.Clock.Get()
	c.Stable = s.scenes.Update(frame.DeltaTime)
	c.Ticks++
	c.Elapsed += frame.DeltaTime
}
