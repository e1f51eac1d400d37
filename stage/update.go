package stage

import (
	"math"

	"github.com/plus3/fptetris/grid"
	"github.com/plus3/fptetris/input"
	"github.com/plus3/fptetris/tetromino"
)

// Update advances the simulation by dt seconds. Animations finish on the
// first tick that starts with their clock clamped at the full duration.
func (s *Stage) Update(dt float64) {
	switch s.state {
	case Paused:
		return
	case Idle:
		s.updateIdle(dt)
	case RotationAnimation:
		s.updateRotation(dt)
	case RowAnimation:
		s.updateRowAnimation(dt)
	case DropAnimation:
		s.updateDropAnimation(dt)
	case GameOver:
		s.updateGameOver(dt)
	case AdjustingCamera:
		s.updateCameraAdjustment(dt)
	}

	if s.state == Idle && s.pauseRequested {
		s.pause()
	}
}

// advance moves the animation clock and returns its progress in [0, 1].
func (s *Stage) advance(dt, duration float64) float64 {
	s.animationTime = min(s.animationTime+dt, duration)
	return s.animationTime / duration
}

func (s *Stage) updateIdle(dt float64) {
	s.stepTime += dt
	if s.stepTime > s.stepDuration {
		s.stepTime = math.Mod(s.stepTime, s.stepDuration)
		// A held soft drop runs on its own repeat clock.
		if !s.downHeld {
			s.moveDown()
		}
	}
}

func (s *Stage) updateRotation(dt float64) {
	if s.animationTime == s.cfg.RotationDuration {
		s.pieceRotate = 0
		s.updateCameraRotation()
		s.setState(Idle)
		return
	}

	p := s.advance(dt, s.cfg.RotationDuration)
	s.pieceRotate = -90 + 90*p
	s.updateCameraRotation()
}

func (s *Stage) updateRowAnimation(dt float64) {
	if s.animationTime == s.cfg.RowAnimationDuration {
		s.setState(Idle)
		s.updateLevel()
		for _, row := range s.completeRows {
			s.grid.RemoveRow(row.Row)
		}
		s.completeRows = nil
		s.postUnite()
		return
	}
	s.advance(dt, s.cfg.RowAnimationDuration)
}

func (s *Stage) updateDropAnimation(dt float64) {
	if s.animationTime == s.cfg.DropDuration {
		s.piece.Y = s.dropTargetY
		s.pieceY = float64(s.piece.Y)
		s.setState(Idle)
		s.unite()
		return
	}

	p := s.advance(dt, s.cfg.DropDuration)
	s.pieceY = s.dropStartPos + (float64(s.dropTargetY)-s.dropStartPos)*p*p
	s.updateCameraPos(false)
}

func (s *Stage) updateCameraAdjustment(dt float64) {
	if s.animationTime == s.cfg.CameraAdjustDuration {
		s.setState(Idle)
		return
	}

	p := s.advance(dt, s.cfg.CameraAdjustDuration)
	s.camera.X = s.cameraSource.X + (s.cameraTarget.X-s.cameraSource.X)*p
	s.camera.Y = s.cameraSource.Y + (s.cameraTarget.Y-s.cameraSource.Y)*p
}

func (s *Stage) updateGameOver(dt float64) {
	if s.animationTime == s.cfg.GameOverDuration {
		if !s.finished {
			s.finished = true
			if s.shell != nil {
				s.shell.GameOver(s.Summary())
			}
		}
		return
	}

	s.curtain = s.advance(dt, s.cfg.GameOverDuration)
	if !s.cfg.FirstPerson {
		return
	}

	u := min(s.animationTime, s.cfg.UnrotateDuration) / s.cfg.UnrotateDuration
	start := s.gameOverCamera
	s.camera.Angle = normalizeAngle(start.Angle) * (1 - u)
	s.camera.X = start.X*(1-u) + grid.Width/2*u
	s.camera.Y = start.Y*(1-u) + grid.Height/2*u
}

// Finished reports whether the game over hand-off has happened.
func (s *Stage) Finished() bool {
	return s.finished
}

// normalizeAngle maps degrees into (-180, 180].
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// HandleInput applies one tick of a player's buttons.
func (s *Stage) HandleInput(c Controls, dt float64) {
	if s.state == Paused {
		return
	}

	if c.IsPressed(input.Pause, false) {
		s.requestPause()
	}

	angle := s.InputAngle()
	for _, d := range directions {
		if c.IsReleased(d) {
			s.release(Remap(d, angle))
		}
	}

	if s.state != Idle {
		return
	}

	for _, d := range directions {
		if s.state != Idle {
			break
		}
		if c.IsPressed(d, false) || (s.forceCheckInput && c.IsDown(d)) {
			s.press(Remap(d, angle))
		}
	}
	s.forceCheckInput = false

	if s.state == Idle && c.IsPressed(input.Rotate, false) {
		s.rotate()
	}
	if s.state == Idle && c.IsPressed(input.Drop, false) {
		s.hardDrop()
	}

	s.updateHold(dt)
}

// InputAngle is the room rotation that on-screen directions are remapped
// through; always Deg0 in third person.
func (s *Stage) InputAngle() tetromino.Angle {
	if !s.cfg.FirstPerson {
		return tetromino.Deg0
	}
	return s.effectiveAngle()
}

// updateHold repeats held movements: first after HoldMinDuration, then every
// HoldRepeatInterval, carrying the remainder over so frame jitter does not
// drift the rate.
func (s *Stage) updateHold(dt float64) {
	minDuration, interval := s.cfg.HoldMinDuration, s.cfg.HoldRepeatInterval

	if s.state == Idle && (s.leftHeld || s.rightHeld) {
		s.xHoldTimer += dt
		if s.xHoldTimer > minDuration+interval {
			s.xHoldTimer = minDuration + math.Mod(s.xHoldTimer-minDuration, interval)
			if s.leftHeld {
				s.moveLeft()
			} else {
				s.moveRight()
			}
		}
	}

	if s.state == Idle && s.downHeld {
		s.yHoldTimer += dt
		if s.yHoldTimer > minDuration+interval {
			s.yHoldTimer = minDuration + math.Mod(s.yHoldTimer-minDuration, interval)
			if s.yHoldStart == -1 {
				s.yHoldStart = s.piece.Y
			}
			s.moveDown()
		}
	}
}

func (s *Stage) press(a Action) {
	switch a {
	case MoveLeft:
		s.moveLeft()
		s.leftHeld = true
		s.xHoldTimer = 0
	case MoveRight:
		s.moveRight()
		s.rightHeld = true
		s.xHoldTimer = 0
	case MoveDown:
		s.moveDown()
		s.downHeld = true
		s.yHoldTimer = 0
	}
}

func (s *Stage) release(a Action) {
	switch a {
	case MoveLeft:
		s.leftHeld = false
	case MoveRight:
		s.rightHeld = false
	case MoveDown:
		s.downHeld = false
		s.yHoldStart = -1
	}
}
