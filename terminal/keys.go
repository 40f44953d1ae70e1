package terminal

import "github.com/user-none/lc3sim/input"

// Control bytes seen on a raw tty.
const (
	byteInterrupt = 0x03 // Ctrl-C
	byteBackspace = 0x08
	byteEscape    = 0x1B
	byteDelete    = 0x7F
)

// event is one decoded press: a keyboard code or a gamepad button.
type event struct {
	key    int
	button int
}

func keyEvent(code int) event  { return event{key: code, button: -1} }
func buttonEvent(id int) event { return event{key: -1, button: id} }

type decodeState int

const (
	stateGround decodeState = iota
	stateEscape
	stateCSI
)

// csiButtons maps cursor key sequences (ESC [ A..D) to the d-pad.
var csiButtons = map[byte]int{
	'A': input.ButtonUp,
	'B': input.ButtonDown,
	'C': input.ButtonRight,
	'D': input.ButtonLeft,
}

// decoder turns tty bytes into key events. Cursor keys become d-pad
// presses; other escape sequences are dropped.
type decoder struct {
	state decodeState
}

// feed decodes b, appending any completed events to evs. quit is set when
// b is Ctrl-C.
func (d *decoder) feed(b byte, evs []event) (out []event, quit bool) {
	switch d.state {
	case stateEscape:
		if b == '[' {
			d.state = stateCSI
			return evs, false
		}
		d.state = stateGround
		evs = append(evs, keyEvent(byteEscape))
	case stateCSI:
		switch {
		case b >= 0x40 && b <= 0x7E:
			d.state = stateGround
			if id, ok := csiButtons[b]; ok {
				evs = append(evs, buttonEvent(id))
			}
		case b < 0x20 || b > 0x3F:
			d.state = stateGround
		}
		return evs, false
	}

	switch {
	case b == byteInterrupt:
		return evs, true
	case b == byteEscape:
		d.state = stateEscape
	case b == '\r' || b == '\n':
		evs = append(evs, keyEvent(input.KeyReturn))
	case b == byteDelete || b == byteBackspace:
		evs = append(evs, keyEvent(input.KeyBackspace))
	case b >= 'A' && b <= 'Z':
		evs = append(evs, keyEvent(int(b-'A'+'a')))
	case b < 0x80:
		evs = append(evs, keyEvent(int(b)))
	}
	return evs, false
}

// flush ends a lone ESC that no sequence followed.
func (d *decoder) flush(evs []event) []event {
	if d.state == stateEscape {
		evs = append(evs, keyEvent(byteEscape))
	}
	d.state = stateGround
	return evs
}

// feeder holds each queued event down until the machine has read the
// character it produced, then releases everything for one frame so the next
// event reads as a new press.
type feeder struct {
	queue    []event
	snap     input.Snapshot
	current  event
	pressing bool
	release  bool
}

func (f *feeder) push(evs ...event) {
	f.queue = append(f.queue, evs...)
}

// next returns the controls that are down this frame.
func (f *feeder) next() *input.Snapshot {
	f.snap.Reset()
	if f.release {
		f.release = false
		return &f.snap
	}
	if !f.pressing {
		if len(f.queue) == 0 {
			return &f.snap
		}
		f.current = f.queue[0]
		f.queue = f.queue[1:]
		f.pressing = true
	}

	if f.current.key >= 0 {
		f.snap.PressKey(f.current.key)
	} else {
		f.snap.PressButton(f.current.button)
	}
	return &f.snap
}

// settle ends the current press after a frame unless its character is
// still waiting to be read.
func (f *feeder) settle(unread bool) {
	if f.pressing && !unread {
		f.pressing = false
		f.release = true
	}
}

// idle reports whether nothing is queued, pressed or releasing.
func (f *feeder) idle() bool {
	return len(f.queue) == 0 && !f.pressing && !f.release
}
