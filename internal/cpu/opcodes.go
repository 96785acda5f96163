package cpu

// opFunc executes one instruction body. address is the effective operand
// address (unused by Implied/Accumulator instructions); pageCrossed reflects
// the addressing-mode page-boundary test performed before exec runs. The
// return value is the number of cycles to add beyond the instruction's base
// count (used by branches to bill the taken/page-cross surcharge, and 0 for
// everything else — store instructions fold their indexed-mode surcharge
// into zero, never into pageCrossPenalty).
type opFunc func(cpu *CPU, address uint16, pageCrossed bool) uint8

type instruction struct {
	name             string
	mode             AddressingMode
	bytes            uint8
	cycles           uint8
	pageCrossPenalty bool
	exec             opFunc
}

// Load/store ---------------------------------------------------------------

func opLDA(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.A = cpu.mem.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

func opLDX(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.X = cpu.mem.Read(address)
	cpu.setZN(cpu.X)
	return 0
}

func opLDY(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.Y = cpu.mem.Read(address)
	cpu.setZN(cpu.Y)
	return 0
}

func opSTA(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.mem.Write(address, cpu.A)
	return 0
}

func opSTX(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.mem.Write(address, cpu.X)
	return 0
}

func opSTY(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.mem.Write(address, cpu.Y)
	return 0
}

// Transfers ------------------------------------------------------------

func opTAX(cpu *CPU, _ uint16, _ bool) uint8 { cpu.X = cpu.A; cpu.setZN(cpu.X); return 0 }
func opTAY(cpu *CPU, _ uint16, _ bool) uint8 { cpu.Y = cpu.A; cpu.setZN(cpu.Y); return 0 }
func opTXA(cpu *CPU, _ uint16, _ bool) uint8 { cpu.A = cpu.X; cpu.setZN(cpu.A); return 0 }
func opTYA(cpu *CPU, _ uint16, _ bool) uint8 { cpu.A = cpu.Y; cpu.setZN(cpu.A); return 0 }
func opTSX(cpu *CPU, _ uint16, _ bool) uint8 { cpu.X = cpu.SP; cpu.setZN(cpu.X); return 0 }
func opTXS(cpu *CPU, _ uint16, _ bool) uint8 { cpu.SP = cpu.X; return 0 }

// Arithmetic -------------------------------------------------------------

// addToA is the shared ADC/SBC core: A <- A + v + C. Carry out is the ninth
// bit of the sum; signed overflow happens exactly when both inputs disagree
// in sign with the result, i.e. (A^r)&(v^r)&0x80 != 0.
func (cpu *CPU) addToA(v uint8) {
	sum := uint16(cpu.A) + uint16(v)
	if cpu.C {
		sum++
	}
	r := uint8(sum)
	cpu.C = sum >= 0x100
	cpu.V = (cpu.A^r)&(v^r)&0x80 != 0
	cpu.A = r
	cpu.setZN(r)
}

func opADC(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.addToA(cpu.mem.Read(address))
	return 0
}

// SBC is ADC of the operand's one's complement; with C as the borrow-clear
// flag the +C term supplies the missing +1 of two's complement.
func opSBC(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.addToA(^cpu.mem.Read(address))
	return 0
}

// Logical ------------------------------------------------------------

func opAND(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.A &= cpu.mem.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

func opORA(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.A |= cpu.mem.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

func opEOR(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.A ^= cpu.mem.Read(address)
	cpu.setZN(cpu.A)
	return 0
}

func opBIT(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.mem.Read(address)
	cpu.N = value&nFlagMask != 0
	cpu.V = value&vFlagMask != 0
	cpu.Z = cpu.A&value == 0
	return 0
}

// Shifts/rotates --------------------------------------------------------
// Each has a memory form and an accumulator form sharing one core that
// takes the input and hands back the shifted result, with C catching the
// bit that fell off.

func (cpu *CPU) shiftLeft(v uint8) uint8 {
	cpu.C = v >= 0x80
	out := v << 1
	cpu.setZN(out)
	return out
}

func (cpu *CPU) shiftRight(v uint8) uint8 {
	cpu.C = v&1 == 1
	out := v >> 1
	cpu.setZN(out)
	return out
}

// rotateLeft shifts left through the carry: the old C becomes bit 0 while
// bit 7 moves into C.
func (cpu *CPU) rotateLeft(v uint8) uint8 {
	var in uint8
	if cpu.C {
		in = 0x01
	}
	cpu.C = v >= 0x80
	out := v<<1 | in
	cpu.setZN(out)
	return out
}

// rotateRight is the mirror image: old C enters at bit 7, bit 0 exits to C.
func (cpu *CPU) rotateRight(v uint8) uint8 {
	var in uint8
	if cpu.C {
		in = 0x80
	}
	cpu.C = v&1 == 1
	out := v>>1 | in
	cpu.setZN(out)
	return out
}

func opASL(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.mem.Write(address, cpu.shiftLeft(cpu.mem.Read(address)))
	return 0
}

func opASLAcc(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.A = cpu.shiftLeft(cpu.A)
	return 0
}

func opLSR(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.mem.Write(address, cpu.shiftRight(cpu.mem.Read(address)))
	return 0
}

func opLSRAcc(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.A = cpu.shiftRight(cpu.A)
	return 0
}

func opROL(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.mem.Write(address, cpu.rotateLeft(cpu.mem.Read(address)))
	return 0
}

func opROLAcc(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.A = cpu.rotateLeft(cpu.A)
	return 0
}

func opROR(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.mem.Write(address, cpu.rotateRight(cpu.mem.Read(address)))
	return 0
}

func opRORAcc(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.A = cpu.rotateRight(cpu.A)
	return 0
}

// Comparisons ----------------------------------------------------------

// compare sets the flags for reg vs M: C means reg >= M unsigned (not a
// signed-subtraction shortcut — the two diverge whenever a borrow would
// occur), Z/N come from the modular difference.
func (cpu *CPU) compare(reg uint8, address uint16) {
	m := cpu.mem.Read(address)
	cpu.C = reg >= m
	cpu.setZN(reg - m)
}

func opCMP(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.compare(cpu.A, address)
	return 0
}

func opCPX(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.compare(cpu.X, address)
	return 0
}

func opCPY(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.compare(cpu.Y, address)
	return 0
}

// Increment/decrement ----------------------------------------------------

func opINC(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.mem.Read(address) + 1
	cpu.mem.Write(address, value)
	cpu.setZN(value)
	return 0
}

func opDEC(cpu *CPU, address uint16, _ bool) uint8 {
	value := cpu.mem.Read(address) - 1
	cpu.mem.Write(address, value)
	cpu.setZN(value)
	return 0
}

func opINX(cpu *CPU, _ uint16, _ bool) uint8 { cpu.X++; cpu.setZN(cpu.X); return 0 }
func opINY(cpu *CPU, _ uint16, _ bool) uint8 { cpu.Y++; cpu.setZN(cpu.Y); return 0 }
func opDEX(cpu *CPU, _ uint16, _ bool) uint8 { cpu.X--; cpu.setZN(cpu.X); return 0 }
func opDEY(cpu *CPU, _ uint16, _ bool) uint8 { cpu.Y--; cpu.setZN(cpu.Y); return 0 }

// Stack ----------------------------------------------------------------

func opPHA(cpu *CPU, _ uint16, _ bool) uint8 { cpu.push(cpu.A); return 0 }

func opPLA(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.A = cpu.pop()
	cpu.setZN(cpu.A)
	return 0
}

func opPHP(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.push(cpu.statusByte(true))
	return 0
}

func opPLP(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.restoreStatus(cpu.pop())
	return 0
}

// Control flow -----------------------------------------------------------

func opJMP(cpu *CPU, address uint16, _ bool) uint8 { cpu.PC = address; return 0 }

func opJSR(cpu *CPU, address uint16, _ bool) uint8 {
	cpu.pushWord(cpu.PC - 1)
	cpu.PC = address
	return 0
}

func opRTS(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.PC = cpu.popWord() + 1
	return 0
}

func opRTI(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.restoreStatus(cpu.pop())
	cpu.PC = cpu.popWord()
	return 0
}

func opBRK(cpu *CPU, _ uint16, _ bool) uint8 {
	cpu.PC++ // the padding byte between BRK and its handler
	cpu.pushWord(cpu.PC)
	cpu.push(cpu.statusByte(true))
	cpu.I = true
	cpu.PC = cpu.Read16(irqVector)
	return 0
}

func opNOP(cpu *CPU, _ uint16, _ bool) uint8 { return 0 }

// Flags ------------------------------------------------------------------

func opCLC(cpu *CPU, _ uint16, _ bool) uint8 { cpu.C = false; return 0 }
func opSEC(cpu *CPU, _ uint16, _ bool) uint8 { cpu.C = true; return 0 }
func opCLI(cpu *CPU, _ uint16, _ bool) uint8 { cpu.I = false; return 0 }
func opSEI(cpu *CPU, _ uint16, _ bool) uint8 { cpu.I = true; return 0 }
func opCLV(cpu *CPU, _ uint16, _ bool) uint8 { cpu.V = false; return 0 }
func opCLD(cpu *CPU, _ uint16, _ bool) uint8 { cpu.D = false; return 0 }
func opSED(cpu *CPU, _ uint16, _ bool) uint8 { cpu.D = true; return 0 }

// Branches bill their own surcharge: +1 if taken, +1 more if the taken jump
// crosses a page boundary. pageCrossed here always describes the relative
// target regardless of whether the branch fires, so the check only matters
// once the branch is confirmed taken.
func takeBranch(cpu *CPU, address uint16, pageCrossed bool) uint8 {
	cpu.PC = address
	if pageCrossed {
		return 2
	}
	return 1
}

func opBCC(cpu *CPU, address uint16, pageCrossed bool) uint8 {
	if cpu.C {
		return 0
	}
	return takeBranch(cpu, address, pageCrossed)
}

func opBCS(cpu *CPU, address uint16, pageCrossed bool) uint8 {
	if !cpu.C {
		return 0
	}
	return takeBranch(cpu, address, pageCrossed)
}

func opBNE(cpu *CPU, address uint16, pageCrossed bool) uint8 {
	if cpu.Z {
		return 0
	}
	return takeBranch(cpu, address, pageCrossed)
}

func opBEQ(cpu *CPU, address uint16, pageCrossed bool) uint8 {
	if !cpu.Z {
		return 0
	}
	return takeBranch(cpu, address, pageCrossed)
}

func opBPL(cpu *CPU, address uint16, pageCrossed bool) uint8 {
	if cpu.N {
		return 0
	}
	return takeBranch(cpu, address, pageCrossed)
}

func opBMI(cpu *CPU, address uint16, pageCrossed bool) uint8 {
	if !cpu.N {
		return 0
	}
	return takeBranch(cpu, address, pageCrossed)
}

func opBVC(cpu *CPU, address uint16, pageCrossed bool) uint8 {
	if cpu.V {
		return 0
	}
	return takeBranch(cpu, address, pageCrossed)
}

func opBVS(cpu *CPU, address uint16, pageCrossed bool) uint8 {
	if !cpu.V {
		return 0
	}
	return takeBranch(cpu, address, pageCrossed)
}

// initInstructions builds the opcode dispatch table. Entries are left nil
// for every byte outside the legal 6502 instruction set; Step reports those
// as *IllegalOpcodeError instead of guessing at undocumented behavior.
func (cpu *CPU) initInstructions() {
	set := func(op uint8, name string, mode AddressingMode, bytes, cycles uint8, pageCrossPenalty bool, fn opFunc) {
		cpu.instructions[op] = &instruction{name, mode, bytes, cycles, pageCrossPenalty, fn}
	}

	set(0xA9, "LDA", Immediate, 2, 2, false, opLDA)
	set(0xA5, "LDA", ZeroPage, 2, 3, false, opLDA)
	set(0xB5, "LDA", ZeroPageX, 2, 4, false, opLDA)
	set(0xAD, "LDA", Absolute, 3, 4, false, opLDA)
	set(0xBD, "LDA", AbsoluteX, 3, 4, true, opLDA)
	set(0xB9, "LDA", AbsoluteY, 3, 4, true, opLDA)
	set(0xA1, "LDA", IndexedIndirect, 2, 6, false, opLDA)
	set(0xB1, "LDA", IndirectIndexed, 2, 5, true, opLDA)

	set(0xA2, "LDX", Immediate, 2, 2, false, opLDX)
	set(0xA6, "LDX", ZeroPage, 2, 3, false, opLDX)
	set(0xB6, "LDX", ZeroPageY, 2, 4, false, opLDX)
	set(0xAE, "LDX", Absolute, 3, 4, false, opLDX)
	set(0xBE, "LDX", AbsoluteY, 3, 4, true, opLDX)

	set(0xA0, "LDY", Immediate, 2, 2, false, opLDY)
	set(0xA4, "LDY", ZeroPage, 2, 3, false, opLDY)
	set(0xB4, "LDY", ZeroPageX, 2, 4, false, opLDY)
	set(0xAC, "LDY", Absolute, 3, 4, false, opLDY)
	set(0xBC, "LDY", AbsoluteX, 3, 4, true, opLDY)

	set(0x85, "STA", ZeroPage, 2, 3, false, opSTA)
	set(0x95, "STA", ZeroPageX, 2, 4, false, opSTA)
	set(0x8D, "STA", Absolute, 3, 4, false, opSTA)
	set(0x9D, "STA", AbsoluteX, 3, 5, false, opSTA)
	set(0x99, "STA", AbsoluteY, 3, 5, false, opSTA)
	set(0x81, "STA", IndexedIndirect, 2, 6, false, opSTA)
	set(0x91, "STA", IndirectIndexed, 2, 6, false, opSTA)

	set(0x86, "STX", ZeroPage, 2, 3, false, opSTX)
	set(0x96, "STX", ZeroPageY, 2, 4, false, opSTX)
	set(0x8E, "STX", Absolute, 3, 4, false, opSTX)

	set(0x84, "STY", ZeroPage, 2, 3, false, opSTY)
	set(0x94, "STY", ZeroPageX, 2, 4, false, opSTY)
	set(0x8C, "STY", Absolute, 3, 4, false, opSTY)

	set(0xAA, "TAX", Implied, 1, 2, false, opTAX)
	set(0xA8, "TAY", Implied, 1, 2, false, opTAY)
	set(0xBA, "TSX", Implied, 1, 2, false, opTSX)
	set(0x8A, "TXA", Implied, 1, 2, false, opTXA)
	set(0x9A, "TXS", Implied, 1, 2, false, opTXS)
	set(0x98, "TYA", Implied, 1, 2, false, opTYA)

	set(0x69, "ADC", Immediate, 2, 2, false, opADC)
	set(0x65, "ADC", ZeroPage, 2, 3, false, opADC)
	set(0x75, "ADC", ZeroPageX, 2, 4, false, opADC)
	set(0x6D, "ADC", Absolute, 3, 4, false, opADC)
	set(0x7D, "ADC", AbsoluteX, 3, 4, true, opADC)
	set(0x79, "ADC", AbsoluteY, 3, 4, true, opADC)
	set(0x61, "ADC", IndexedIndirect, 2, 6, false, opADC)
	set(0x71, "ADC", IndirectIndexed, 2, 5, true, opADC)

	set(0xE9, "SBC", Immediate, 2, 2, false, opSBC)
	set(0xE5, "SBC", ZeroPage, 2, 3, false, opSBC)
	set(0xF5, "SBC", ZeroPageX, 2, 4, false, opSBC)
	set(0xED, "SBC", Absolute, 3, 4, false, opSBC)
	set(0xFD, "SBC", AbsoluteX, 3, 4, true, opSBC)
	set(0xF9, "SBC", AbsoluteY, 3, 4, true, opSBC)
	set(0xE1, "SBC", IndexedIndirect, 2, 6, false, opSBC)
	set(0xF1, "SBC", IndirectIndexed, 2, 5, true, opSBC)

	set(0x29, "AND", Immediate, 2, 2, false, opAND)
	set(0x25, "AND", ZeroPage, 2, 3, false, opAND)
	set(0x35, "AND", ZeroPageX, 2, 4, false, opAND)
	set(0x2D, "AND", Absolute, 3, 4, false, opAND)
	set(0x3D, "AND", AbsoluteX, 3, 4, true, opAND)
	set(0x39, "AND", AbsoluteY, 3, 4, true, opAND)
	set(0x21, "AND", IndexedIndirect, 2, 6, false, opAND)
	set(0x31, "AND", IndirectIndexed, 2, 5, true, opAND)

	set(0x09, "ORA", Immediate, 2, 2, false, opORA)
	set(0x05, "ORA", ZeroPage, 2, 3, false, opORA)
	set(0x15, "ORA", ZeroPageX, 2, 4, false, opORA)
	set(0x0D, "ORA", Absolute, 3, 4, false, opORA)
	set(0x1D, "ORA", AbsoluteX, 3, 4, true, opORA)
	set(0x19, "ORA", AbsoluteY, 3, 4, true, opORA)
	set(0x01, "ORA", IndexedIndirect, 2, 6, false, opORA)
	set(0x11, "ORA", IndirectIndexed, 2, 5, true, opORA)

	set(0x49, "EOR", Immediate, 2, 2, false, opEOR)
	set(0x45, "EOR", ZeroPage, 2, 3, false, opEOR)
	set(0x55, "EOR", ZeroPageX, 2, 4, false, opEOR)
	set(0x4D, "EOR", Absolute, 3, 4, false, opEOR)
	set(0x5D, "EOR", AbsoluteX, 3, 4, true, opEOR)
	set(0x59, "EOR", AbsoluteY, 3, 4, true, opEOR)
	set(0x41, "EOR", IndexedIndirect, 2, 6, false, opEOR)
	set(0x51, "EOR", IndirectIndexed, 2, 5, true, opEOR)

	set(0x24, "BIT", ZeroPage, 2, 3, false, opBIT)
	set(0x2C, "BIT", Absolute, 3, 4, false, opBIT)

	set(0x0A, "ASL", Accumulator, 1, 2, false, opASLAcc)
	set(0x06, "ASL", ZeroPage, 2, 5, false, opASL)
	set(0x16, "ASL", ZeroPageX, 2, 6, false, opASL)
	set(0x0E, "ASL", Absolute, 3, 6, false, opASL)
	set(0x1E, "ASL", AbsoluteX, 3, 7, false, opASL)

	set(0x4A, "LSR", Accumulator, 1, 2, false, opLSRAcc)
	set(0x46, "LSR", ZeroPage, 2, 5, false, opLSR)
	set(0x56, "LSR", ZeroPageX, 2, 6, false, opLSR)
	set(0x4E, "LSR", Absolute, 3, 6, false, opLSR)
	set(0x5E, "LSR", AbsoluteX, 3, 7, false, opLSR)

	set(0x2A, "ROL", Accumulator, 1, 2, false, opROLAcc)
	set(0x26, "ROL", ZeroPage, 2, 5, false, opROL)
	set(0x36, "ROL", ZeroPageX, 2, 6, false, opROL)
	set(0x2E, "ROL", Absolute, 3, 6, false, opROL)
	set(0x3E, "ROL", AbsoluteX, 3, 7, false, opROL)

	set(0x6A, "ROR", Accumulator, 1, 2, false, opRORAcc)
	set(0x66, "ROR", ZeroPage, 2, 5, false, opROR)
	set(0x76, "ROR", ZeroPageX, 2, 6, false, opROR)
	set(0x6E, "ROR", Absolute, 3, 6, false, opROR)
	set(0x7E, "ROR", AbsoluteX, 3, 7, false, opROR)

	set(0xC9, "CMP", Immediate, 2, 2, false, opCMP)
	set(0xC5, "CMP", ZeroPage, 2, 3, false, opCMP)
	set(0xD5, "CMP", ZeroPageX, 2, 4, false, opCMP)
	set(0xCD, "CMP", Absolute, 3, 4, false, opCMP)
	set(0xDD, "CMP", AbsoluteX, 3, 4, true, opCMP)
	set(0xD9, "CMP", AbsoluteY, 3, 4, true, opCMP)
	set(0xC1, "CMP", IndexedIndirect, 2, 6, false, opCMP)
	set(0xD1, "CMP", IndirectIndexed, 2, 5, true, opCMP)

	set(0xE0, "CPX", Immediate, 2, 2, false, opCPX)
	set(0xE4, "CPX", ZeroPage, 2, 3, false, opCPX)
	set(0xEC, "CPX", Absolute, 3, 4, false, opCPX)

	set(0xC0, "CPY", Immediate, 2, 2, false, opCPY)
	set(0xC4, "CPY", ZeroPage, 2, 3, false, opCPY)
	set(0xCC, "CPY", Absolute, 3, 4, false, opCPY)

	set(0xE6, "INC", ZeroPage, 2, 5, false, opINC)
	set(0xF6, "INC", ZeroPageX, 2, 6, false, opINC)
	set(0xEE, "INC", Absolute, 3, 6, false, opINC)
	set(0xFE, "INC", AbsoluteX, 3, 7, false, opINC)

	set(0xC6, "DEC", ZeroPage, 2, 5, false, opDEC)
	set(0xD6, "DEC", ZeroPageX, 2, 6, false, opDEC)
	set(0xCE, "DEC", Absolute, 3, 6, false, opDEC)
	set(0xDE, "DEC", AbsoluteX, 3, 7, false, opDEC)

	set(0xE8, "INX", Implied, 1, 2, false, opINX)
	set(0xC8, "INY", Implied, 1, 2, false, opINY)
	set(0xCA, "DEX", Implied, 1, 2, false, opDEX)
	set(0x88, "DEY", Implied, 1, 2, false, opDEY)

	set(0x48, "PHA", Implied, 1, 3, false, opPHA)
	set(0x68, "PLA", Implied, 1, 4, false, opPLA)
	set(0x08, "PHP", Implied, 1, 3, false, opPHP)
	set(0x28, "PLP", Implied, 1, 4, false, opPLP)

	set(0x4C, "JMP", Absolute, 3, 3, false, opJMP)
	set(0x6C, "JMP", Indirect, 3, 5, false, opJMP)
	set(0x20, "JSR", Absolute, 3, 6, false, opJSR)
	set(0x60, "RTS", Implied, 1, 6, false, opRTS)
	set(0x40, "RTI", Implied, 1, 6, false, opRTI)
	set(0x00, "BRK", Implied, 1, 7, false, opBRK)

	set(0x90, "BCC", Relative, 2, 2, false, opBCC)
	set(0xB0, "BCS", Relative, 2, 2, false, opBCS)
	set(0xD0, "BNE", Relative, 2, 2, false, opBNE)
	set(0xF0, "BEQ", Relative, 2, 2, false, opBEQ)
	set(0x10, "BPL", Relative, 2, 2, false, opBPL)
	set(0x30, "BMI", Relative, 2, 2, false, opBMI)
	set(0x50, "BVC", Relative, 2, 2, false, opBVC)
	set(0x70, "BVS", Relative, 2, 2, false, opBVS)

	set(0x18, "CLC", Implied, 1, 2, false, opCLC)
	set(0x38, "SEC", Implied, 1, 2, false, opSEC)
	set(0x58, "CLI", Implied, 1, 2, false, opCLI)
	set(0x78, "SEI", Implied, 1, 2, false, opSEI)
	set(0xB8, "CLV", Implied, 1, 2, false, opCLV)
	set(0xD8, "CLD", Implied, 1, 2, false, opCLD)
	set(0xF8, "SED", Implied, 1, 2, false, opSED)

	set(0xEA, "NOP", Implied, 1, 2, false, opNOP)
}

// Mnemonic returns the instruction name for a fetched opcode, or "???" if
// the byte is outside the legal set. Used by the trace formatter.
func (cpu *CPU) Mnemonic(opcode uint8) string {
	if inst := cpu.instructions[opcode]; inst != nil {
		return inst.name
	}
	return "???"
}

// InstructionLen returns the instruction's byte length (1-3) for a fetched
// opcode, or 1 if the byte is illegal (so callers can still advance).
func (cpu *CPU) InstructionLen(opcode uint8) uint8 {
	if inst := cpu.instructions[opcode]; inst != nil {
		return inst.bytes
	}
	return 1
}

// Mode returns the addressing mode for a fetched opcode.
func (cpu *CPU) Mode(opcode uint8) (AddressingMode, bool) {
	inst := cpu.instructions[opcode]
	if inst == nil {
		return Implied, false
	}
	return inst.mode, true
}
