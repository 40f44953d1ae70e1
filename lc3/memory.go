package lc3

// read performs a memory read, including device register side effects.
func (m *Machine) read(addr uint16) uint16 {
	switch addr {
	case KBSR:
		m.pollKeyboard()
		if m.kbdrFull {
			return statusReady
		}
		return 0
	case KBDR:
		m.kbdrFull = false
		return m.kbdr
	case DSR:
		return statusReady
	case MCR:
		return m.mcr
	}
	return m.mem[addr]
}

// write performs a memory write, including device register side effects.
func (m *Machine) write(addr, v uint16) {
	switch addr {
	case DDR:
		m.out(v & 0xFF)
	case MCR:
		m.mcr = v
	case KBSR, KBDR, DSR:
		// read only
	default:
		m.mem[addr] = v
	}
}

// pollKeyboard latches a character into KBDR if one is available.
func (m *Machine) pollKeyboard() {
	if m.kbdrFull {
		return
	}
	if c := m.in(); c <= 0xFF {
		m.kbdr = c
		m.kbdrFull = true
	}
}

// takeChar returns a pending or fresh character.
func (m *Machine) takeChar() (uint16, bool) {
	m.pollKeyboard()
	if !m.kbdrFull {
		return 0, false
	}
	m.kbdrFull = false
	return m.kbdr, true
}
