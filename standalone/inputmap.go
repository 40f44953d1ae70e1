//go:build !libretro

package standalone

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/lc3sim/input"
)

// keyNameMap maps short key name strings to ebiten.Key values.
var keyNameMap = map[string]ebiten.Key{
	"A":         ebiten.KeyA,
	"B":         ebiten.KeyB,
	"C":         ebiten.KeyC,
	"D":         ebiten.KeyD,
	"E":         ebiten.KeyE,
	"F":         ebiten.KeyF,
	"G":         ebiten.KeyG,
	"H":         ebiten.KeyH,
	"I":         ebiten.KeyI,
	"J":         ebiten.KeyJ,
	"K":         ebiten.KeyK,
	"L":         ebiten.KeyL,
	"M":         ebiten.KeyM,
	"N":         ebiten.KeyN,
	"O":         ebiten.KeyO,
	"P":         ebiten.KeyP,
	"Q":         ebiten.KeyQ,
	"R":         ebiten.KeyR,
	"S":         ebiten.KeyS,
	"T":         ebiten.KeyT,
	"U":         ebiten.KeyU,
	"V":         ebiten.KeyV,
	"W":         ebiten.KeyW,
	"X":         ebiten.KeyX,
	"Y":         ebiten.KeyY,
	"Z":         ebiten.KeyZ,
	"0":         ebiten.Key0,
	"1":         ebiten.Key1,
	"2":         ebiten.Key2,
	"3":         ebiten.Key3,
	"4":         ebiten.Key4,
	"5":         ebiten.Key5,
	"6":         ebiten.Key6,
	"7":         ebiten.Key7,
	"8":         ebiten.Key8,
	"9":         ebiten.Key9,
	"Enter":     ebiten.KeyEnter,
	"Backspace": ebiten.KeyBackspace,
	"Space":     ebiten.KeySpace,
	"Semicolon": ebiten.KeySemicolon,
	"Comma":     ebiten.KeyComma,
	"Period":    ebiten.KeyPeriod,
	"Slash":     ebiten.KeySlash,
	"Backslash": ebiten.KeyBackslash,
	"Tab":       ebiten.KeyTab,
	"Escape":    ebiten.KeyEscape,
	"Delete":    ebiten.KeyDelete,
	"[":         ebiten.KeyLeftBracket,
	"]":         ebiten.KeyRightBracket,
	"-":         ebiten.KeyMinus,
	"=":         ebiten.KeyEqual,
	"'":         ebiten.KeyApostrophe,
	"`":         ebiten.KeyGraveAccent,
}

// padNameMap maps gamepad button name strings to ebiten StandardGamepadButton values.
var padNameMap = map[string]ebiten.StandardGamepadButton{
	"A":         ebiten.StandardGamepadButtonRightBottom,
	"B":         ebiten.StandardGamepadButtonRightRight,
	"X":         ebiten.StandardGamepadButtonRightLeft,
	"Y":         ebiten.StandardGamepadButtonRightTop,
	"Start":     ebiten.StandardGamepadButtonCenterRight,
	"Select":    ebiten.StandardGamepadButtonCenterLeft,
	"DpadUp":    ebiten.StandardGamepadButtonLeftTop,
	"DpadDown":  ebiten.StandardGamepadButtonLeftBottom,
	"DpadLeft":  ebiten.StandardGamepadButtonLeftLeft,
	"DpadRight": ebiten.StandardGamepadButtonLeftRight,
}

// retroKeyNames names the key behind each keyboard code the machine can
// see. Codes follow the libretro numbering, so letters are lowercase ASCII.
var retroKeyNames = map[int]string{
	input.KeyBackspace: "Backspace",
	9:                  "Tab",
	input.KeyReturn:    "Enter",
	27:                 "Escape",
	' ':                "Space",
	'\'':               "'",
	',':                "Comma",
	'-':                "-",
	'.':                "Period",
	'/':                "Slash",
	';':                "Semicolon",
	'=':                "=",
	'[':                "[",
	'\\':               "Backslash",
	']':                "]",
	'`':                "`",
	127:                "Delete",
}

// retroPadNames names the gamepad button behind each joypad id.
var retroPadNames = map[int]string{
	input.ButtonA:      "A",
	input.ButtonB:      "B",
	input.ButtonX:      "X",
	input.ButtonY:      "Y",
	input.ButtonStart:  "Start",
	input.ButtonSelect: "Select",
	input.ButtonUp:     "DpadUp",
	input.ButtonDown:   "DpadDown",
	input.ButtonLeft:   "DpadLeft",
	input.ButtonRight:  "DpadRight",
}

// Lookup tables from machine codes to ebiten controls (built at init).
var retroKeys map[int]ebiten.Key
var retroPads map[int]ebiten.StandardGamepadButton

func init() {
	for c := 'a'; c <= 'z'; c++ {
		retroKeyNames[int(c)] = string(c - 'a' + 'A')
	}
	for c := '0'; c <= '9'; c++ {
		retroKeyNames[int(c)] = string(c)
	}

	retroKeys = make(map[int]ebiten.Key, len(retroKeyNames))
	for code, name := range retroKeyNames {
		if k, ok := ParseKey(name); ok {
			retroKeys[code] = k
		}
	}
	retroPads = make(map[int]ebiten.StandardGamepadButton, len(retroPadNames))
	for id, name := range retroPadNames {
		if b, ok := ParsePad(name); ok {
			retroPads[id] = b
		}
	}
}

// ParseKey converts a key name string to an ebiten.Key.
// Returns the key and true if the name is valid, or 0 and false otherwise.
func ParseKey(name string) (ebiten.Key, bool) {
	k, ok := keyNameMap[name]
	return k, ok
}

// ParsePad converts a gamepad button name string to an ebiten.StandardGamepadButton.
// Returns the button and true if the name is valid, or 0 and false otherwise.
func ParsePad(name string) (ebiten.StandardGamepadButton, bool) {
	b, ok := padNameMap[name]
	return b, ok
}

// KeyForCode returns the ebiten key that produces keyboard code.
func KeyForCode(code int) (ebiten.Key, bool) {
	k, ok := retroKeys[code]
	return k, ok
}

// PadForButton returns the gamepad button behind joypad id.
func PadForButton(id int) (ebiten.StandardGamepadButton, bool) {
	b, ok := retroPads[id]
	return b, ok
}
