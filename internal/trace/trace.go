// Package trace formats one nestest-style log line per instruction, for
// byte-for-byte diffing against a reference emulator's golden log.
package trace

import (
	"fmt"
	"strings"

	"nescore/internal/cpu"
)

// operandFormats renders the operand column per addressing mode, using the
// conventional 6502 assembler syntax the nestest log uses.
var operandFormats = map[cpu.AddressingMode]string{
	cpu.Immediate:       "#$%02X",
	cpu.ZeroPage:        "$%02X",
	cpu.ZeroPageX:       "$%02X,X",
	cpu.ZeroPageY:       "$%02X,Y",
	cpu.Absolute:        "$%04X",
	cpu.AbsoluteX:       "$%04X,X",
	cpu.AbsoluteY:       "$%04X,Y",
	cpu.Indirect:        "($%04X)",
	cpu.IndexedIndirect: "($%02X,X)",
	cpu.IndirectIndexed: "($%02X),Y",
	cpu.Relative:        "$%04X",
}

// registerColumn is where the A:/X:/... block starts; everything before it
// is space-padded to this width.
const registerColumn = 48

// Line renders the instruction at the CPU's current PC together with the
// pre-execution register state:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
//
// It performs only reads, so it is safe to call before every Step without
// disturbing RAM or ROM; calling it while PC points at a register-mapped
// window would make those reads visible to the PPU.
func Line(c *cpu.CPU, mem cpu.Memory) string {
	var b strings.Builder

	pc := c.PC
	opcode := mem.Read(pc)
	size := int(c.InstructionLen(opcode))

	fmt.Fprintf(&b, "%04X  ", pc)
	for i := 0; i < 3; i++ {
		if i < size {
			fmt.Fprintf(&b, "%02X ", mem.Read(pc+uint16(i)))
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString(" ")

	b.WriteString(c.Mnemonic(opcode))

	mode, legal := c.Mode(opcode)
	if legal {
		if operand := formatOperand(c, mem, pc, mode); operand != "" {
			b.WriteString(" ")
			b.WriteString(operand)
		}
	}

	if pad := registerColumn - b.Len(); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}

	fmt.Fprintf(&b, "A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.A, c.X, c.Y, c.StatusByte(), c.SP, c.Cycles())

	return b.String()
}

func formatOperand(c *cpu.CPU, mem cpu.Memory, pc uint16, mode cpu.AddressingMode) string {
	switch mode {
	case cpu.Implied:
		return ""
	case cpu.Accumulator:
		return "A"
	case cpu.Relative:
		// Branches display the resolved target, not the raw offset.
		offset := int8(mem.Read(pc + 1))
		return fmt.Sprintf(operandFormats[mode], uint16(int32(pc)+2+int32(offset)))
	case cpu.Absolute, cpu.AbsoluteX, cpu.AbsoluteY, cpu.Indirect:
		arg := uint16(mem.Read(pc+1)) | uint16(mem.Read(pc+2))<<8
		return fmt.Sprintf(operandFormats[mode], arg)
	default:
		return fmt.Sprintf(operandFormats[mode], mem.Read(pc+1))
	}
}
