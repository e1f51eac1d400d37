package ecs_test

import (
	"fmt"

	"github.com/plus3/fptetris/ecs"
)

type Transform struct {
	X, Y float32
}

type Speed struct {
	DX, DY float32
}

type PhysicsSystem struct {
	Entities ecs.Query[struct {
		*Transform
		*Speed
	}]
}

func (s *PhysicsSystem) Execute(frame *ecs.UpdateFrame) {
	for entity := range s.Entities.Values() {
		entity.Transform.X += entity.Speed.DX * float32(frame.DeltaTime)
		entity.Transform.Y += entity.Speed.DY * float32(frame.DeltaTime)
	}
}

// ExampleScheduler builds a loop with one system. The scheduler binds the
// Query field on Register and snapshots it before every frame.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Speed](registry)
	storage := ecs.NewStorage(registry)

	id := storage.Spawn(Transform{}, Speed{DX: 10, DY: 5})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&PhysicsSystem{})
	for range 3 {
		scheduler.Once(0.5)
	}

	t := ecs.ReadComponent[Transform](storage, id)
	fmt.Printf("Position: (%.1f, %.1f)\n", t.X, t.Y)
	fmt.Printf("Frames: %d\n", scheduler.GetStats().Frames)
	// Output:
	// Position: (15.0, 7.5)
	// Frames: 3
}
