//go:build !libretro

package standalone

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenSource reads the keyboard and the first standard gamepad.
type ebitenSource struct {
	gamepadIDs []ebiten.GamepadID
	gamepad    ebiten.GamepadID
	hasGamepad bool
}

// Poll implements input.Source.
func (s *ebitenSource) Poll() {
	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])
	s.hasGamepad = false
	for _, id := range s.gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			s.gamepad = id
			s.hasGamepad = true
			return
		}
	}
}

// KeyPressed implements input.Source.
func (s *ebitenSource) KeyPressed(code int) bool {
	k, ok := KeyForCode(code)
	return ok && ebiten.IsKeyPressed(k)
}

// ButtonPressed implements input.Source.
func (s *ebitenSource) ButtonPressed(id int) bool {
	if !s.hasGamepad {
		return false
	}
	b, ok := PadForButton(id)
	return ok && ebiten.IsStandardGamepadButtonPressed(s.gamepad, b)
}
