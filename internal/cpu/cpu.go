// Package cpu implements the 6502 (2A03) processor core used by the NES.
package cpu

import "fmt"

// AddressingMode identifies how an instruction's operand address is formed.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

const (
	stackBase = 0x0100

	nFlagMask = 0x80
	vFlagMask = 0x40
	uFlagMask = 0x20
	bFlagMask = 0x10
	dFlagMask = 0x08
	iFlagMask = 0x04
	zFlagMask = 0x02
	cFlagMask = 0x01

	nmiVector   = 0xFFFA
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
)

// Memory is the address-space collaborator the CPU reads and writes through.
// internal/bus.Bus satisfies this for production use; tests may substitute a
// flat array.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// IllegalOpcodeError reports a fetched opcode byte outside the legal 6502
// instruction set. It is always fatal to the run that produced it.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode $%02X at $%04X", e.Opcode, e.PC)
}

// CPU holds the architectural register state of a single 6502 core.
//
// B is deliberately not a struct field: on real hardware it is not a latch,
// only a bit pattern observed in the byte PHP/BRK push to the stack. PLP and
// RTI never write it back into live state.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16

	C bool
	Z bool
	I bool
	D bool
	V bool
	N bool

	mem Memory

	cycles uint64

	instructions [256]*instruction

	nmiPending bool
	nmiLine    bool
	irqPending bool
}

// New creates a CPU wired to mem, initialized to 6502 power-up state: A=X=Y=0,
// SP=$FD, P=$24 (I set, unused bit set), PC left at 0 until Reset is called.
func New(mem Memory) *CPU {
	cpu := &CPU{
		mem: mem,
		SP:  0xFD,
		I:   true,
	}
	cpu.initInstructions()
	return cpu
}

// Reset loads PC from the reset vector and restores the documented
// post-reset cycle count. Sub-instruction reset timing is out of scope; this
// performs the architecturally visible part only.
func (cpu *CPU) Reset() {
	cpu.PC = cpu.Read16(resetVector)
	cpu.SP = 0xFD
	cpu.I = true
	cpu.cycles = 7
}

// Cycles returns the running total of CPU cycles billed since New/Reset.
func (cpu *CPU) Cycles() uint64 {
	return cpu.cycles
}

// Read16 reads a little-endian word, wrapping at the 16-bit address
// boundary rather than crossing into a different page object.
func (cpu *CPU) Read16(address uint16) uint16 {
	low := uint16(cpu.mem.Read(address))
	high := uint16(cpu.mem.Read(address + 1))
	return (high << 8) | low
}

// Step fetches, decodes and executes a single instruction, returning the
// number of cycles it consumed. A fetched byte outside the legal opcode set
// is reported as *IllegalOpcodeError and no state beyond PC readout changes.
func (cpu *CPU) Step() (uint64, error) {
	pc := cpu.PC
	opcode := cpu.mem.Read(pc)
	inst := cpu.instructions[opcode]
	if inst == nil {
		return 0, &IllegalOpcodeError{Opcode: opcode, PC: pc}
	}
	cpu.PC++

	address, pageCrossed := cpu.operandAddress(inst.mode)
	extra := inst.exec(cpu, address, pageCrossed)

	if pageCrossed && inst.pageCrossPenalty {
		extra++
	}

	total := uint64(inst.cycles) + uint64(extra)
	cpu.cycles += total

	cpu.serviceInterrupts()

	return total, nil
}

// SetNMI drives the NMI line. The CPU latches a pending NMI on the
// true-to-false (falling) transition, matching the real /NMI pin.
func (cpu *CPU) SetNMI(asserted bool) {
	if cpu.nmiLine && !asserted {
		cpu.nmiPending = true
	}
	cpu.nmiLine = asserted
}

// SetIRQ drives the level-triggered /IRQ line.
func (cpu *CPU) SetIRQ(asserted bool) {
	cpu.irqPending = asserted
}

func (cpu *CPU) serviceInterrupts() {
	if cpu.nmiPending {
		cpu.nmiPending = false
		cpu.nmi()
		return
	}
	if cpu.irqPending && !cpu.I {
		cpu.irq()
	}
}

func (cpu *CPU) nmi() {
	cpu.pushWord(cpu.PC)
	cpu.push(cpu.statusByte(false))
	cpu.I = true
	cpu.PC = cpu.Read16(nmiVector)
	cpu.cycles += 7
}

func (cpu *CPU) irq() {
	cpu.pushWord(cpu.PC)
	cpu.push(cpu.statusByte(false))
	cpu.I = true
	cpu.PC = cpu.Read16(irqVector)
	cpu.cycles += 7
}

// statusByte builds the processor status byte. Bit 5 (unused) is always
// set; bit 4 (B) is set only when push is true, matching PHP/BRK, and
// cleared for NMI/IRQ stack frames.
func (cpu *CPU) statusByte(push bool) uint8 {
	var s uint8
	if cpu.N {
		s |= nFlagMask
	}
	if cpu.V {
		s |= vFlagMask
	}
	s |= uFlagMask
	if push {
		s |= bFlagMask
	}
	if cpu.D {
		s |= dFlagMask
	}
	if cpu.I {
		s |= iFlagMask
	}
	if cpu.Z {
		s |= zFlagMask
	}
	if cpu.C {
		s |= cFlagMask
	}
	return s
}

// restoreStatus loads C/Z/I/D/V/N from a pulled byte. Bits 4 and 5 are
// discarded: B is not a latch and bit 5 is always considered set.
func (cpu *CPU) restoreStatus(status uint8) {
	cpu.N = status&nFlagMask != 0
	cpu.V = status&vFlagMask != 0
	cpu.D = status&dFlagMask != 0
	cpu.I = status&iFlagMask != 0
	cpu.Z = status&zFlagMask != 0
	cpu.C = status&cFlagMask != 0
}

// StatusByte exposes the architectural P register, as it would read if
// pushed right now outside of an instruction (B clear), for trace/debug use.
func (cpu *CPU) StatusByte() uint8 {
	return cpu.statusByte(false)
}

func (cpu *CPU) setZN(value uint8) {
	cpu.Z = value == 0
	cpu.N = value&nFlagMask != 0
}

func (cpu *CPU) push(value uint8) {
	cpu.mem.Write(stackBase+uint16(cpu.SP), value)
	cpu.SP--
}

func (cpu *CPU) pop() uint8 {
	cpu.SP++
	return cpu.mem.Read(stackBase + uint16(cpu.SP))
}

func (cpu *CPU) pushWord(value uint16) {
	cpu.push(uint8(value >> 8))
	cpu.push(uint8(value))
}

func (cpu *CPU) popWord() uint16 {
	low := uint16(cpu.pop())
	high := uint16(cpu.pop())
	return (high << 8) | low
}

// fetchByte consumes the next instruction byte at PC.
func (cpu *CPU) fetchByte() uint8 {
	b := cpu.mem.Read(cpu.PC)
	cpu.PC++
	return b
}

// fetchWord consumes a little-endian operand word.
func (cpu *CPU) fetchWord() uint16 {
	lo := uint16(cpu.fetchByte())
	return uint16(cpu.fetchByte())<<8 | lo
}

// zeroPageWord reads a pointer stored in the zero page. Taking the slot as
// uint8 makes the second byte wrap within the page for free: a pointer at
// $FF has its high byte at $00.
func (cpu *CPU) zeroPageWord(slot uint8) uint16 {
	lo := uint16(cpu.mem.Read(uint16(slot)))
	return uint16(cpu.mem.Read(uint16(slot+1)))<<8 | lo
}

// samePage reports whether two addresses share a 256-byte page.
func samePage(a, b uint16) bool {
	return a>>8 == b>>8
}

// operandAddress consumes the instruction's operand bytes (PC already sits
// past the opcode) and returns the effective address, plus whether an
// indexed or relative access landed outside its base page.
// Implied/Accumulator consume nothing and return (0, false).
func (cpu *CPU) operandAddress(mode AddressingMode) (uint16, bool) {
	switch mode {
	case Implied, Accumulator:
		return 0, false

	case Immediate:
		// The operand byte itself is the target cell.
		address := cpu.PC
		cpu.PC++
		return address, false

	case ZeroPage:
		return uint16(cpu.fetchByte()), false

	case ZeroPageX:
		return uint16(cpu.fetchByte() + cpu.X), false

	case ZeroPageY:
		return uint16(cpu.fetchByte() + cpu.Y), false

	case Relative:
		offset := int8(cpu.fetchByte())
		target := cpu.PC + uint16(int16(offset))
		return target, !samePage(cpu.PC, target)

	case Absolute:
		return cpu.fetchWord(), false

	case AbsoluteX:
		base := cpu.fetchWord()
		effective := base + uint16(cpu.X)
		return effective, !samePage(base, effective)

	case AbsoluteY:
		base := cpu.fetchWord()
		effective := base + uint16(cpu.Y)
		return effective, !samePage(base, effective)

	case Indirect: // JMP only
		// The pointer's high byte is always fetched from the pointer's own
		// page, so a pointer at $xxFF reads its high byte from $xx00. That
		// is the 6502's indirect-jump bug, kept on purpose.
		ptr := cpu.fetchWord()
		lo := uint16(cpu.mem.Read(ptr))
		hi := uint16(cpu.mem.Read(ptr&0xFF00 | uint16(uint8(ptr)+1)))
		return hi<<8 | lo, false

	case IndexedIndirect: // (zp,X)
		return cpu.zeroPageWord(cpu.fetchByte() + cpu.X), false

	case IndirectIndexed: // (zp),Y
		base := cpu.zeroPageWord(cpu.fetchByte())
		effective := base + uint16(cpu.Y)
		return effective, !samePage(base, effective)

	default:
		return 0, false
	}
}
