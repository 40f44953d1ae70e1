package input

// State is the debounce state shared by both device classes.
type State int

const (
	// Idle: nothing reported, or everything released since the last report.
	Idle State = iota
	// Reporting: an event was reported on the most recent call.
	Reporting
	// AwaitingRelease: the reported control is still down.
	AwaitingRelease
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Reporting:
		return "Reporting"
	case AwaitingRelease:
		return "AwaitingRelease"
	default:
		return "Unknown"
	}
}

// Emit is what a transition tells the caller to return.
type Emit int

const (
	EmitNothing Emit = iota // NoEvent
	EmitReport              // the resolved character
	EmitHeld                // Held
)

// Transition is the debounce state machine. active reports whether any
// tracked control, across both device classes, is down on this call.
func Transition(s State, active bool) (State, Emit) {
	if !active {
		return Idle, EmitNothing
	}
	if s == Idle {
		return Reporting, EmitReport
	}
	return AwaitingRelease, EmitHeld
}
