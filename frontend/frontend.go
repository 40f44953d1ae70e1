// Package frontend drives one virtual machine frame by frame: it latches
// input, paces execution and renders the text console into pixels.
package frontend

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	vmcore "github.com/user-none/lc3sim/api"
	"github.com/user-none/lc3sim/console"
	"github.com/user-none/lc3sim/input"
	"github.com/user-none/lc3sim/pacer"
	"github.com/user-none/lc3sim/render"
)

var (
	// ErrNoProgram is returned by Load when no program path is given.
	ErrNoProgram = errors.New("no program path given")

	// ErrLoadFailed is wrapped by every *LoadError.
	ErrLoadFailed = errors.New("failed to load program")

	// ErrUnsupported is returned by the save state entry points.
	ErrUnsupported = errors.New("not supported")
)

// LoadError reports why a program could not be loaded.
type LoadError struct {
	Path   string
	Result vmcore.LoadResult
	Err    error // set when the machine could not be created
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Result)
}

// Unwrap matches ErrLoadFailed and the underlying cause.
func (e *LoadError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrLoadFailed, e.Err}
	}
	return []error{ErrLoadFailed}
}

// Options configures a Frontend. Zero values select the defaults.
type Options struct {
	StepsPerFrame int
	Foreground    color.RGBA
	Background    color.RGBA
	InputMode     input.Mode
	Logger        *log.Logger
}

// Frontend owns the machine and every piece of per-frame state. It is not
// safe for concurrent use; shells call it from one goroutine.
type Frontend struct {
	factory vmcore.Factory
	info    vmcore.SystemInfo
	log     *log.Logger

	console  *console.Console
	renderer *render.Renderer
	unifier  *input.Unifier
	pacer    *pacer.Pacer

	vm         vmcore.Machine
	path       string
	pending    uint16
	haltLogged bool
}

// New creates a frontend for machines built by factory. No machine exists
// until Load succeeds.
func New(factory vmcore.Factory, opts Options) *Frontend {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	f := &Frontend{
		factory:  factory,
		info:     factory.SystemInfo(),
		log:      logger,
		console:  console.New(console.DefaultCols, console.DefaultRows),
		renderer: render.New(),
		unifier:  input.NewUnifier(opts.InputMode),
		pacer:    pacer.New(opts.StepsPerFrame),
		pending:  input.NoEvent,
	}

	fg, bg := opts.Foreground, opts.Background
	if fg.A == 0 {
		fg = render.DefaultForeground
	}
	if bg.A == 0 {
		bg = render.DefaultBackground
	}
	f.renderer.SetColors(fg, bg)
	return f
}

// Load creates a machine, loads the operating system and the program at
// path. On failure no machine is left running.
func (f *Frontend) Load(path string) error {
	if path == "" {
		return ErrNoProgram
	}
	f.Unload()
	f.console.Clear()
	f.unifier.Reset()

	vm, err := f.createMachine(path)
	if err != nil {
		return err
	}
	f.vm = vm
	f.path = path
	f.attach()
	f.log.Printf("loaded %s", path)
	return nil
}

// Reset recreates the machine and reloads the operating system and the last
// program. Without a machine it does nothing.
func (f *Frontend) Reset() error {
	if f.vm == nil {
		return nil
	}
	path := f.path
	f.Unload()
	f.console.Clear()
	f.unifier.Reset()

	vm, err := f.createMachine(path)
	if err != nil {
		return err
	}
	f.vm = vm
	f.path = path
	f.attach()
	return nil
}

// Unload closes the machine.
func (f *Frontend) Unload() {
	if f.vm != nil {
		f.vm.Close()
		f.vm = nil
	}
	f.path = ""
	f.pending = input.NoEvent
	f.pacer.Detach()
}

func (f *Frontend) createMachine(path string) (vmcore.Machine, error) {
	vm, err := f.factory.CreateMachine(f.console.Intake, f.takeInput)
	if err != nil {
		f.log.Printf("Warning: failed to create machine: %v", err)
		return nil, &LoadError{Path: path, Err: err}
	}

	vm.LoadOS()
	if r := vm.LoadProgram(path); r != vmcore.LoadSuccess {
		f.log.Printf("Warning: failed to load %s: %s", path, r)
		vm.Close()
		return nil, &LoadError{Path: path, Result: r}
	}
	return vm, nil
}

func (f *Frontend) attach() {
	f.pending = input.NoEvent
	f.haltLogged = false
	f.pacer.Attach(f.vm)
}

// takeInput hands the machine this frame's latched code once.
func (f *Frontend) takeInput() uint16 {
	c := f.pending
	f.pending = input.NoEvent
	return c
}

// RunFrame polls src once, runs the machine for one frame and returns the
// rendered RGBA pixels. The slice is reused by the next call.
func (f *Frontend) RunFrame(src input.Source) []byte {
	if f.pacer.State() == pacer.Running {
		f.unifier.SetSource(src)
		code := f.unifier.PollOnce()
		// A character the machine has not read stays latched while its
		// control is held.
		if code != input.Held || !input.IsCharacter(f.pending) {
			f.pending = code
		}
		f.pacer.Advance()
		if !input.IsCharacter(f.pending) {
			f.pending = input.NoEvent
		}

		if f.pacer.Halted() && !f.haltLogged {
			f.log.Printf("program halted: %s", f.pacer.LastResult())
			f.haltLogged = true
		}
	}
	return f.renderer.Render(f.console)
}

// InputPending reports whether a character is latched that the running
// machine has not read yet.
func (f *Frontend) InputPending() bool {
	return f.pacer.State() == pacer.Running && input.IsCharacter(f.pending)
}

// Loaded reports whether a machine exists.
func (f *Frontend) Loaded() bool { return f.vm != nil }

// Halted reports whether the machine has stopped.
func (f *Frontend) Halted() bool { return f.pacer.Halted() }

// ProgramPath returns the path of the loaded program.
func (f *Frontend) ProgramPath() string { return f.path }

// Console returns the text console the machine writes to.
func (f *Frontend) Console() *console.Console { return f.console }

// Renderer returns the frame renderer.
func (f *Frontend) Renderer() *render.Renderer { return f.renderer }

// Unifier returns the input unifier.
func (f *Frontend) Unifier() *input.Unifier { return f.unifier }

// Pacer returns the execution pacer.
func (f *Frontend) Pacer() *pacer.Pacer { return f.pacer }

// SetStepsPerFrame changes the instruction budget.
func (f *Frontend) SetStepsPerFrame(n int) { f.pacer.SetBudget(n) }

// SetColors changes the console colors.
func (f *Frontend) SetColors(fg, bg color.RGBA) { f.renderer.SetColors(fg, bg) }

// SetInputMode switches how controls map to codes.
func (f *Frontend) SetInputMode(mode input.Mode) { f.unifier.SetMode(mode) }
