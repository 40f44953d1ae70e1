package lc3

import vmcore "github.com/user-none/lc3sim/api"

// Trap vectors served by native routines.
const (
	TrapGETC  = 0x20 // read a character into R0, no echo
	TrapOUT   = 0x21 // write R0
	TrapPUTS  = 0x22 // write the word string at R0
	TrapIN    = 0x23 // prompt, read and echo a character into R0
	TrapPUTSP = 0x24 // write the packed byte string at R0
	TrapHALT  = 0x25 // stop the machine
)

const (
	inPrompt   = "\nInput a character> "
	haltBanner = "\n--- halting the LC-3 ---\n"
)

// routineAddr is where the trap table points for a native routine.
func routineAddr(vec uint16) uint16 {
	return SystemSpaceStart + 2*(vec-TrapGETC)
}

// nativeRoutine maps a trap table target back to its vector.
func nativeRoutine(target uint16) (uint16, bool) {
	if target < SystemSpaceStart || target > routineAddr(TrapHALT) {
		return 0, false
	}
	off := target - SystemSpaceStart
	if off%2 != 0 {
		return 0, false
	}
	return TrapGETC + off/2, true
}

func (m *Machine) serviceTrap(vec uint16) vmcore.StepResult {
	switch vec {
	case TrapGETC:
		c, ok := m.takeChar()
		if !ok {
			m.pc--
			return vmcore.StepSuccess
		}
		m.reg[0] = c
	case TrapIN:
		if !m.prompted {
			m.writeString(inPrompt)
			m.prompted = true
		}
		c, ok := m.takeChar()
		if !ok {
			m.pc--
			return vmcore.StepSuccess
		}
		m.prompted = false
		m.reg[0] = c
		m.out(c)
		m.out('\n')
	case TrapOUT:
		m.out(m.reg[0] & 0xFF)
	case TrapPUTS:
		m.puts(m.reg[0])
	case TrapPUTSP:
		m.putsp(m.reg[0])
	case TrapHALT:
		m.writeString(haltBanner)
		m.mcr &^= clockEnable
		m.reg[7] = m.pc
		return vmcore.StepHalted
	}
	m.reg[7] = m.pc
	return vmcore.StepSuccess
}

func (m *Machine) writeString(s string) {
	for i := 0; i < len(s); i++ {
		m.out(uint16(s[i]))
	}
}

// puts writes one character per word until a zero word.
func (m *Machine) puts(addr uint16) {
	for n := 0; n < MemorySize; n++ {
		w := m.mem[addr]
		if w == 0 {
			return
		}
		m.out(w & 0xFF)
		addr++
	}
}

// putsp writes two characters per word, low byte first, until a zero byte.
func (m *Machine) putsp(addr uint16) {
	for n := 0; n < MemorySize; n++ {
		w := m.mem[addr]
		lo, hi := w&0xFF, w>>8
		if lo == 0 {
			return
		}
		m.out(lo)
		if hi == 0 {
			return
		}
		m.out(hi)
		addr++
	}
}
