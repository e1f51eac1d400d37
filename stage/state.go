package stage

// State is the active state of the stage machine.
type State int

const (
	Paused State = iota
	Idle
	RotationAnimation
	RowAnimation
	DropAnimation
	GameOver
	AdjustingCamera
)

var stateNames = [...]string{
	Paused:            "paused",
	Idle:              "idle",
	RotationAnimation: "rotation",
	RowAnimation:      "rows",
	DropAnimation:     "drop",
	GameOver:          "gameover",
	AdjustingCamera:   "camera",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
