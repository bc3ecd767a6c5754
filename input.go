package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mariusz/player"
)

// Input polls the keyboard and the first gamepad once per frame.
type Input struct {
	// Controls is the state handed to the player.
	Controls player.Input
	// StartPressed is true on the frame Enter or the gamepad start button was pressed.
	StartPressed bool
	// QuitPressed is true on the frame Escape was pressed.
	QuitPressed bool
	// ReloadPressed is true on the frame F5 was pressed.
	ReloadPressed bool
	// DebugPressed is true on the frame F3 was pressed.
	DebugPressed bool
}

func NewInput() *Input {
	return &Input{}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (i *Input) Update() {
	c := player.Input{
		Left:        anyPressed(ebiten.KeyLeft),
		Right:       anyPressed(ebiten.KeyRight),
		Down:        anyPressed(ebiten.KeyDown),
		Run:         anyPressed(ebiten.KeyA, ebiten.KeyShiftLeft),
		Jump:        anyPressed(ebiten.KeySpace, ebiten.KeyS),
		JumpPressed: anyJustPressed(ebiten.KeySpace, ebiten.KeyS),
		Fire:        anyJustPressed(ebiten.KeyA, ebiten.KeyShiftLeft),
	}
	start := anyJustPressed(ebiten.KeyEnter)

	// Gamepad: left stick or d-pad to move, bottom face button to jump, left
	// face button to run and shoot.
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		pressed := func(b ebiten.StandardGamepadButton) bool { return ebiten.IsStandardGamepadButtonPressed(gid, b) }
		just := func(b ebiten.StandardGamepadButton) bool { return inpututil.IsStandardGamepadButtonJustPressed(gid, b) }

		c.Left = c.Left || x < -0.3 || pressed(ebiten.StandardGamepadButtonLeftLeft)
		c.Right = c.Right || x > 0.3 || pressed(ebiten.StandardGamepadButtonLeftRight)
		c.Down = c.Down || y > 0.5 || pressed(ebiten.StandardGamepadButtonLeftBottom)
		c.Jump = c.Jump || pressed(ebiten.StandardGamepadButtonRightBottom)
		c.JumpPressed = c.JumpPressed || just(ebiten.StandardGamepadButtonRightBottom)
		c.Run = c.Run || pressed(ebiten.StandardGamepadButtonRightLeft)
		c.Fire = c.Fire || just(ebiten.StandardGamepadButtonRightLeft)
		start = start || just(ebiten.StandardGamepadButtonCenterRight)
	}

	i.Controls = c
	i.StartPressed = start
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.ReloadPressed = inpututil.IsKeyJustPressed(ebiten.KeyF5)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
