package input

// Result codes returned instead of a character.
const (
	// Held reports that the control behind the last event is still down.
	Held uint16 = 0xFFFE
	// NoEvent reports that no tracked control is active.
	NoEvent uint16 = 0xFFFF
)

// RawButtonBase offsets gamepad button ids in raw mode so they cannot be
// confused with keyboard codes 0..255.
const RawButtonBase = 0x100

// Keyboard codes follow the libretro RETROK_* numbering.
const (
	KeyBackspace = 8
	KeyReturn    = 13
	KeyA         = int('a')
	KeyZ         = int('z')

	// KeyCount is the number of keyboard codes scanned in raw mode.
	KeyCount = 256
)

// Gamepad button ids follow the libretro RETRO_DEVICE_ID_JOYPAD_* numbering.
const (
	ButtonB      = 0
	ButtonY      = 1
	ButtonSelect = 2
	ButtonStart  = 3
	ButtonUp     = 4
	ButtonDown   = 5
	ButtonLeft   = 6
	ButtonRight  = 7
	ButtonA      = 8
	ButtonX      = 9
)

// buttonMapping binds a gamepad button to the character it produces in
// mapped mode.
type buttonMapping struct {
	id int
	ch byte
}

// gamepadButtons lists the tracked buttons in scan order.
var gamepadButtons = []buttonMapping{
	{ButtonA, 'a'},
	{ButtonB, 'b'},
	{ButtonX, 'x'},
	{ButtonY, 'y'},
	{ButtonUp, 'u'},
	{ButtonDown, 'd'},
	{ButtonLeft, 'l'},
	{ButtonRight, 'r'},
	{ButtonStart, '\n'},
}

// IsCharacter reports whether code is a character rather than Held or
// NoEvent.
func IsCharacter(code uint16) bool {
	return code <= 0xFF
}
