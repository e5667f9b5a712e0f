package nes

import (
	"fmt"
)

// Disassemble the loaded 6502 program into human-readable CPU instructions
// mapped to their respective memory address. Memory is read with Peek so
// disassembling never disturbs the machine.
//
// Much help from https://github.com/OneLoneCoder/olcNES
func (cpu *Cpu6502) Disassemble(startAddr, endAddr uint16) map[uint16]string {
	disassembly := make(map[uint16]string)

	// this needs to be bigger than uint16, to determine when larger than endAddr
	addr := uint32(startAddr)

	for addr <= uint32(endAddr) {
		lineAddr := uint16(addr)
		text, length := cpu.disassembleAt(lineAddr)

		disassembly[lineAddr] = fmt.Sprintf("$%04X: %s", lineAddr, text)
		addr += uint32(length)
	}

	return disassembly
}

// Disassemble the single instruction at addr. Also returns the instruction's
// length in bytes. Opcodes that are not implemented show as "???" and are
// one byte long.
func (cpu *Cpu6502) disassembleAt(addr uint16) (string, int) {
	inst := &instLookup[cpu.bus.Peek(addr)]
	if inst.execute == nil {
		return "???", 1
	}

	lo := cpu.bus.Peek(addr + 1)
	hi := cpu.bus.Peek(addr + 2)
	word := uint16(hi)<<8 | uint16(lo)

	var operand string
	switch inst.mode {
	case IMP:
	case ACC:
		operand = "A"
	case IMM:
		operand = fmt.Sprintf("#$%02X", lo)
	case REL:
		// Branch target, relative to the following instruction.
		target := addr + 2 + uint16(int8(lo))
		operand = fmt.Sprintf("$%04X", target)
	case ZP0:
		operand = fmt.Sprintf("$%02X", lo)
	case ZPX:
		operand = fmt.Sprintf("$%02X,X", lo)
	case ZPY:
		operand = fmt.Sprintf("$%02X,Y", lo)
	case ABS:
		operand = fmt.Sprintf("$%04X", word)
	case ABX:
		operand = fmt.Sprintf("$%04X,X", word)
	case ABY:
		operand = fmt.Sprintf("$%04X,Y", word)
	case IND:
		operand = fmt.Sprintf("($%04X)", word)
	case IZX:
		operand = fmt.Sprintf("($%02X,X)", lo)
	case IZY:
		operand = fmt.Sprintf("($%02X),Y", lo)
	}

	if operand == "" {
		return inst.name, inst.mode.Length()
	}
	return inst.name + " " + operand, inst.mode.Length()
}
