package lc3

import vmcore "github.com/user-none/lc3sim/api"

type opFunc func(m *Machine, ir uint16) vmcore.StepResult

var opcodes = [16]opFunc{
	0x0: (*Machine).opBR,
	0x1: (*Machine).opADD,
	0x2: (*Machine).opLD,
	0x3: (*Machine).opST,
	0x4: (*Machine).opJSR,
	0x5: (*Machine).opAND,
	0x6: (*Machine).opLDR,
	0x7: (*Machine).opSTR,
	0x8: (*Machine).opRTI,
	0x9: (*Machine).opNOT,
	0xA: (*Machine).opLDI,
	0xB: (*Machine).opSTI,
	0xC: (*Machine).opJMP,
	0xD: (*Machine).opReserved,
	0xE: (*Machine).opLEA,
	0xF: (*Machine).opTRAP,
}

// sext sign extends the low bits of v.
func sext(v uint16, bits uint) uint16 {
	sign := uint16(1) << (bits - 1)
	v &= sign<<1 - 1
	return (v ^ sign) - sign
}

func dr(ir uint16) int      { return int(ir>>9) & 7 }
func sr1(ir uint16) int     { return int(ir>>6) & 7 }
func off9(ir uint16) uint16 { return sext(ir, 9) }

func (m *Machine) opBR(ir uint16) vmcore.StepResult {
	if (ir>>9)&m.psr&(flagN|flagZ|flagP) != 0 {
		m.pc += off9(ir)
	}
	return vmcore.StepSuccess
}

func (m *Machine) opADD(ir uint16) vmcore.StepResult {
	v := m.reg[sr1(ir)]
	if ir&0x20 != 0 {
		v += sext(ir, 5)
	} else {
		v += m.reg[ir&7]
	}
	m.reg[dr(ir)] = v
	m.setCC(v)
	return vmcore.StepSuccess
}

func (m *Machine) opAND(ir uint16) vmcore.StepResult {
	v := m.reg[sr1(ir)]
	if ir&0x20 != 0 {
		v &= sext(ir, 5)
	} else {
		v &= m.reg[ir&7]
	}
	m.reg[dr(ir)] = v
	m.setCC(v)
	return vmcore.StepSuccess
}

func (m *Machine) opNOT(ir uint16) vmcore.StepResult {
	v := ^m.reg[sr1(ir)]
	m.reg[dr(ir)] = v
	m.setCC(v)
	return vmcore.StepSuccess
}

func (m *Machine) opLD(ir uint16) vmcore.StepResult {
	v := m.read(m.pc + off9(ir))
	m.reg[dr(ir)] = v
	m.setCC(v)
	return vmcore.StepSuccess
}

func (m *Machine) opLDI(ir uint16) vmcore.StepResult {
	v := m.read(m.read(m.pc + off9(ir)))
	m.reg[dr(ir)] = v
	m.setCC(v)
	return vmcore.StepSuccess
}

func (m *Machine) opLDR(ir uint16) vmcore.StepResult {
	v := m.read(m.reg[sr1(ir)] + sext(ir, 6))
	m.reg[dr(ir)] = v
	m.setCC(v)
	return vmcore.StepSuccess
}

func (m *Machine) opLEA(ir uint16) vmcore.StepResult {
	v := m.pc + off9(ir)
	m.reg[dr(ir)] = v
	m.setCC(v)
	return vmcore.StepSuccess
}

func (m *Machine) opST(ir uint16) vmcore.StepResult {
	m.write(m.pc+off9(ir), m.reg[dr(ir)])
	return vmcore.StepSuccess
}

func (m *Machine) opSTI(ir uint16) vmcore.StepResult {
	m.write(m.read(m.pc+off9(ir)), m.reg[dr(ir)])
	return vmcore.StepSuccess
}

func (m *Machine) opSTR(ir uint16) vmcore.StepResult {
	m.write(m.reg[sr1(ir)]+sext(ir, 6), m.reg[dr(ir)])
	return vmcore.StepSuccess
}

// opJSR covers JSR and JSRR. The target is computed before R7 is written so
// JSRR R7 jumps to the old R7.
func (m *Machine) opJSR(ir uint16) vmcore.StepResult {
	ret := m.pc
	if ir&0x800 != 0 {
		m.pc += sext(ir, 11)
	} else {
		m.pc = m.reg[sr1(ir)]
	}
	m.reg[7] = ret
	return vmcore.StepSuccess
}

// opJMP covers JMP and RET.
func (m *Machine) opJMP(ir uint16) vmcore.StepResult {
	m.pc = m.reg[sr1(ir)]
	return vmcore.StepSuccess
}

func (m *Machine) opRTI(ir uint16) vmcore.StepResult {
	if m.userMode() {
		return vmcore.StepPrivilege
	}
	m.pc = m.read(m.reg[6])
	m.reg[6]++
	m.psr = m.read(m.reg[6])
	m.reg[6]++
	if m.userMode() {
		m.savedSSP = m.reg[6]
		m.reg[6] = m.savedUSP
	}
	return vmcore.StepSuccess
}

func (m *Machine) opReserved(ir uint16) vmcore.StepResult {
	return vmcore.StepIllegalOpcode
}

func (m *Machine) opTRAP(ir uint16) vmcore.StepResult {
	vec := ir & 0xFF
	target := m.read(TrapVectorTable + vec)
	if routine, ok := nativeRoutine(target); ok {
		return m.serviceTrap(routine)
	}
	m.reg[7] = m.pc
	m.pc = target
	return vmcore.StepSuccess
}
