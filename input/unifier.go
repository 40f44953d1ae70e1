package input

// Mode selects how controls resolve to codes.
type Mode int

const (
	// ModeMapped tracks a..z, Return, Backspace and the gamepad buttons and
	// reports them as letters, '\n' and '\b'.
	ModeMapped Mode = iota
	// ModeRaw tracks every keyboard code 0..255 and the gamepad buttons and
	// reports the device code itself.
	ModeRaw
)

// String returns the mode name used in configuration files.
func (m Mode) String() string {
	if m == ModeRaw {
		return "raw"
	}
	return "mapped"
}

// ParseMode converts a configuration name to a Mode. Unknown names select
// ModeMapped.
func ParseMode(name string) (Mode, bool) {
	switch name {
	case "mapped":
		return ModeMapped, true
	case "raw":
		return ModeRaw, true
	default:
		return ModeMapped, false
	}
}

// Unifier resolves two device classes into one logical code per call and
// suppresses repeats until every tracked control has been released.
type Unifier struct {
	mode  Mode
	state State
	src   Source
}

// NewUnifier creates a unifier in the given mode with no device attached.
func NewUnifier(mode Mode) *Unifier {
	return &Unifier{
		mode: mode,
		src:  nopSource{},
	}
}

// SetSource attaches the devices polled by PollOnce and Direct. A nil
// source detaches.
func (u *Unifier) SetSource(src Source) {
	if src == nil {
		src = nopSource{}
	}
	u.src = src
}

// Mode returns the current mode.
func (u *Unifier) Mode() Mode { return u.mode }

// SetMode switches modes. The debounce state carries over so a control held
// across the switch is not reported twice.
func (u *Unifier) SetMode(mode Mode) { u.mode = mode }

// State returns the debounce state.
func (u *Unifier) State() State { return u.state }

// AwaitingRelease reports whether an event has been reported for controls
// that have not all been released yet.
func (u *Unifier) AwaitingRelease() bool { return u.state != Idle }

// Reset forgets any held control.
func (u *Unifier) Reset() { u.state = Idle }

// PollOnce polls the source and returns a character code, Held or NoEvent.
// Call it exactly once per frame.
func (u *Unifier) PollOnce() uint16 {
	u.src.Poll()

	var code uint16
	var active bool
	if u.mode == ModeRaw {
		code, active = scanRaw(u.src)
	} else {
		code, active = scanMapped(u.src)
	}

	var emit Emit
	u.state, emit = Transition(u.state, active)
	switch emit {
	case EmitReport:
		return code
	case EmitHeld:
		return Held
	default:
		return NoEvent
	}
}

// Direct returns the mapped character for the first active control without
// the one-shot gate, or NoEvent. It neither polls the source nor touches the
// debounce state, so a host doing its own line entry may call it after
// PollOnce in the same frame. The bundled shells only use PollOnce.
func (u *Unifier) Direct() uint16 {
	if ch := KeyboardChar(u.src); ch != NoEvent {
		return ch
	}
	return GamepadChar(u.src)
}

// KeyboardChar maps the first active of a..z, Return, Backspace.
func KeyboardChar(src Source) uint16 {
	for k := KeyA; k <= KeyZ; k++ {
		if src.KeyPressed(k) {
			return uint16(k)
		}
	}
	if src.KeyPressed(KeyReturn) {
		return '\n'
	}
	if src.KeyPressed(KeyBackspace) {
		return '\b'
	}
	return NoEvent
}

// GamepadChar maps the first active tracked gamepad button.
func GamepadChar(src Source) uint16 {
	for _, b := range gamepadButtons {
		if src.ButtonPressed(b.id) {
			return uint16(b.ch)
		}
	}
	return NoEvent
}

func scanMapped(src Source) (uint16, bool) {
	if ch := KeyboardChar(src); ch != NoEvent {
		return ch, true
	}
	if ch := GamepadChar(src); ch != NoEvent {
		return ch, true
	}
	return NoEvent, false
}

func scanRaw(src Source) (uint16, bool) {
	for k := 0; k < KeyCount; k++ {
		if src.KeyPressed(k) {
			return uint16(k), true
		}
	}
	for _, b := range gamepadButtons {
		if src.ButtonPressed(b.id) {
			return uint16(RawButtonBase + b.id), true
		}
	}
	return NoEvent, false
}
