// Package input folds keyboard and gamepad state into a single one-shot
// stream of character codes.
package input

// Source is a physical input device pair as seen by one frontend shell.
type Source interface {
	// Poll refreshes the device state. Called once per PollOnce.
	Poll()

	// KeyPressed reports whether keyboard code is down.
	KeyPressed(code int) bool

	// ButtonPressed reports whether gamepad button id is down.
	ButtonPressed(id int) bool
}

// nopSource is used before a shell attaches its own source.
type nopSource struct{}

func (nopSource) Poll()                  {}
func (nopSource) KeyPressed(int) bool    { return false }
func (nopSource) ButtonPressed(int) bool { return false }

// Snapshot is a fixed set of pressed controls. It implements Source and is
// what shells without live device state (terminal, tests) hand to a Unifier.
type Snapshot struct {
	keys    [KeyCount]bool
	buttons uint32
}

// PressKey marks keyboard code as down.
func (s *Snapshot) PressKey(code int) {
	if code >= 0 && code < KeyCount {
		s.keys[code] = true
	}
}

// PressButton marks gamepad button id as down.
func (s *Snapshot) PressButton(id int) {
	if id >= 0 && id < 32 {
		s.buttons |= 1 << uint(id)
	}
}

// Reset releases every control.
func (s *Snapshot) Reset() {
	*s = Snapshot{}
}

// Empty reports whether no control is down.
func (s *Snapshot) Empty() bool {
	if s.buttons != 0 {
		return false
	}
	for _, down := range s.keys {
		if down {
			return false
		}
	}
	return true
}

// Poll implements Source.
func (s *Snapshot) Poll() {}

// KeyPressed implements Source.
func (s *Snapshot) KeyPressed(code int) bool {
	return code >= 0 && code < KeyCount && s.keys[code]
}

// ButtonPressed implements Source.
func (s *Snapshot) ButtonPressed(id int) bool {
	return id >= 0 && id < 32 && s.buttons&(1<<uint(id)) != 0
}
