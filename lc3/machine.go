// Package lc3 implements the LC-3 educational computer behind the vmcore
// machine contract.
package lc3

import (
	"errors"
	"io/fs"

	vmcore "github.com/user-none/lc3sim/api"
	"github.com/user-none/lc3sim/objloader"
)

// MemorySize is the number of addressable 16-bit words.
const MemorySize = 1 << 16

// Memory map.
const (
	TrapVectorTable  = 0x0000
	SystemSpaceStart = 0x0200
	UserSpaceStart   = 0x3000
	DeviceSpaceStart = 0xFE00

	KBSR = 0xFE00 // keyboard status
	KBDR = 0xFE02 // keyboard data
	DSR  = 0xFE04 // display status
	DDR  = 0xFE06 // display data
	MCR  = 0xFFFE // machine control
)

const (
	statusReady = 0x8000
	clockEnable = 0x8000

	psrUser = 0x8000
	flagN   = 0x4
	flagZ   = 0x2
	flagP   = 0x1

	initialSSP = UserSpaceStart
)

// Machine is one LC-3 instance. It is not safe for concurrent use.
type Machine struct {
	mem [MemorySize]uint16
	reg [8]uint16
	pc  uint16
	psr uint16
	mcr uint16

	// Stack pointer of the inactive privilege level
	savedSSP uint16
	savedUSP uint16

	kbdr     uint16
	kbdrFull bool
	prompted bool

	out vmcore.OutputFunc
	in  vmcore.InputFunc
}

// New creates a machine wired to the given character callbacks. The machine
// is blank until LoadOS is called.
func New(out vmcore.OutputFunc, in vmcore.InputFunc) *Machine {
	if out == nil {
		out = func(uint16) {}
	}
	if in == nil {
		in = func() uint16 { return 0xFFFF }
	}
	return &Machine{out: out, in: in}
}

// LoadOS clears the machine and installs the trap table and the native
// service routines.
func (m *Machine) LoadOS() {
	m.mem = [MemorySize]uint16{}
	m.reg = [8]uint16{}
	m.kbdr = 0
	m.kbdrFull = false
	m.prompted = false

	// Unassigned vectors halt
	for v := 0; v < 0x100; v++ {
		m.mem[TrapVectorTable+v] = routineAddr(TrapHALT)
	}
	for v := uint16(TrapGETC); v <= TrapHALT; v++ {
		m.mem[TrapVectorTable+v] = routineAddr(v)
		m.mem[routineAddr(v)] = 0xF000 | v
	}

	m.mcr = clockEnable
	m.psr = psrUser | flagZ
	m.savedSSP = initialSSP
	m.savedUSP = 0
	m.pc = UserSpaceStart
}

// LoadProgram loads the object image at path and points PC at its origin.
func (m *Machine) LoadProgram(path string) vmcore.LoadResult {
	img, err := objloader.Open(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return vmcore.LoadFileMissing
		case errors.Is(err, objloader.ErrInvalidImage),
			errors.Is(err, objloader.ErrNoObject),
			errors.Is(err, objloader.ErrFileTooLarge):
			return vmcore.LoadInvalidImage
		default:
			return vmcore.LoadReadError
		}
	}
	copy(m.mem[img.Origin:], img.Words)
	m.pc = img.Origin
	return vmcore.LoadSuccess
}

// Close releases the callbacks.
func (m *Machine) Close() {
	m.out = func(uint16) {}
	m.in = func() uint16 { return 0xFFFF }
}

// Step executes one instruction.
func (m *Machine) Step() vmcore.StepResult {
	if m.mcr&clockEnable == 0 {
		return vmcore.StepHalted
	}
	ir := m.read(m.pc)
	m.pc++
	r := opcodes[ir>>12](m, ir)
	if r == vmcore.StepSuccess && m.mcr&clockEnable == 0 {
		return vmcore.StepHalted
	}
	return r
}

// PC returns the program counter.
func (m *Machine) PC() uint16 { return m.pc }

// SetPC sets the program counter.
func (m *Machine) SetPC(pc uint16) { m.pc = pc }

// Reg returns general purpose register n.
func (m *Machine) Reg(n int) uint16 { return m.reg[n&7] }

// SetReg sets general purpose register n.
func (m *Machine) SetReg(n int, v uint16) { m.reg[n&7] = v }

// PSR returns the processor status register.
func (m *Machine) PSR() uint16 { return m.psr }

// Peek reads memory without device side effects.
func (m *Machine) Peek(addr uint16) uint16 { return m.mem[addr] }

// Poke writes words into memory starting at addr without device side
// effects.
func (m *Machine) Poke(addr uint16, words ...uint16) {
	for i, w := range words {
		m.mem[addr+uint16(i)] = w
	}
}

func (m *Machine) setCC(v uint16) {
	m.psr &^= flagN | flagZ | flagP
	switch {
	case v == 0:
		m.psr |= flagZ
	case v&0x8000 != 0:
		m.psr |= flagN
	default:
		m.psr |= flagP
	}
}

func (m *Machine) userMode() bool {
	return m.psr&psrUser != 0
}
