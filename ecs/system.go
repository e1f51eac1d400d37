package ecs

// System is one step of a frame. Systems are structs whose Query and
// Singleton fields the Scheduler binds on Register; other fields keep their
// state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is what every system of one frame shares.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}
