package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/bullethell/obj"
)

const stickDeadzone = 0.3

// Input polls the keyboard and the first gamepad once per frame.
type Input struct {
	Player obj.PlayerInput

	// PausePressed is true on the frame Escape or Start was pressed.
	PausePressed bool
	// RestartPressed is true on the frame R or Back was pressed.
	RestartPressed bool
	// AutopilotPressed toggles the scripted player (F1).
	AutopilotPressed bool
	MutePressed      bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	var moveX, moveY float64
	// Keyboard WASD or arrows
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		moveY += 1
	}
	focus := ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	fire := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyZ)

	var gpPause, gpRestart bool
	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]

		lx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if lx < -stickDeadzone || lx > stickDeadzone {
			moveX = lx
		}
		if ly < -stickDeadzone || ly > stickDeadzone {
			moveY = ly
		}

		// A fires, left bumper focuses.
		fire = fire || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		focus = focus || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontTopLeft)
		gpPause = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
		gpRestart = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterLeft)
	}

	i.Player = obj.PlayerInput{MoveX: moveX, MoveY: moveY, Focus: focus, Fire: fire}
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || gpPause
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR) || gpRestart
	i.AutopilotPressed = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	i.MutePressed = inpututil.IsKeyJustPressed(ebiten.KeyM)
}
