// Package vmcore defines the contract between the frame-driven frontend and
// an instruction-stepped virtual machine.
package vmcore

// OutputFunc receives one character code per character the machine emits.
// Only the low byte is significant.
type OutputFunc func(code uint16)

// InputFunc is called by the machine when it wants a character. It must not
// block. Codes above 0xFF mean no character is available.
type InputFunc func() uint16

// LoadResult is the outcome of loading a program image.
type LoadResult int

const (
	LoadSuccess LoadResult = iota
	LoadFileMissing
	LoadInvalidImage
	LoadReadError
)

// String returns a short description of the load result.
func (r LoadResult) String() string {
	switch r {
	case LoadSuccess:
		return "success"
	case LoadFileMissing:
		return "file missing"
	case LoadInvalidImage:
		return "invalid image"
	case LoadReadError:
		return "read error"
	default:
		return "unknown"
	}
}

// StepResult is the outcome of executing one instruction. Anything other than
// StepSuccess stops the machine.
type StepResult int

const (
	StepSuccess StepResult = iota
	StepHalted
	StepIllegalOpcode
	StepPrivilege
)

// String returns a short description of the step result.
func (r StepResult) String() string {
	switch r {
	case StepSuccess:
		return "success"
	case StepHalted:
		return "halted"
	case StepIllegalOpcode:
		return "illegal opcode"
	case StepPrivilege:
		return "privilege violation"
	default:
		return "unknown"
	}
}

// Stepper executes one instruction at a time.
type Stepper interface {
	// Step executes a single instruction.
	Step() StepResult
}

// Machine is a virtual machine instance created by a Factory.
type Machine interface {
	Stepper

	// LoadOS installs the operating system image (trap table, device
	// registers) and resets the machine to its power-on state.
	LoadOS()

	// LoadProgram loads a program image from path into memory and points
	// the program counter at its origin.
	LoadProgram(path string) LoadResult

	// Close releases any resources held by the machine.
	Close()
}

// Factory creates machine instances and provides system metadata.
type Factory interface {
	// SystemInfo returns system metadata for the frontend shells.
	SystemInfo() SystemInfo

	// CreateMachine creates a new machine wired to the given character
	// output and input callbacks.
	CreateMachine(out OutputFunc, in InputFunc) (Machine, error)
}
