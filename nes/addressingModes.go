package nes

type AddressingMode int

const (
	IMP AddressingMode = iota // Implied
	ACC                       // Accumulator
	IMM                       // Immediate
	REL                       // Relative
	ZP0                       // Zero Page
	ZPX                       // Zero Page, X
	ZPY                       // Zero Page, Y
	ABS                       // Absolute
	ABX                       // Absolute, X
	ABY                       // Absolute, Y
	IND                       // Indirect (JMP only)
	IZX                       // Indexed Indirect, (zp,X)
	IZY                       // Indirect Indexed, (zp),Y
)

var addressingModeNames = [...]string{
	IMP: "IMP", ACC: "ACC", IMM: "IMM", REL: "REL",
	ZP0: "ZP0", ZPX: "ZPX", ZPY: "ZPY",
	ABS: "ABS", ABX: "ABX", ABY: "ABY",
	IND: "IND", IZX: "IZX", IZY: "IZY",
}

func (m AddressingMode) String() string {
	if int(m) < len(addressingModeNames) {
		return addressingModeNames[m]
	}
	return "???"
}

// Length is the number of bytes, including the opcode, an instruction using
// the addressing mode occupies.
func (m AddressingMode) Length() int {
	switch m {
	case IMP, ACC:
		return 1
	case ABS, ABX, ABY, IND:
		return 3
	default:
		return 2
	}
}

////////////////////////////////////////////////////////////////
// Addressing Modes
// These functions return 1 if the effective address crossed a page boundary.
// On entry the program counter points at the first operand byte.

func (cpu *Cpu6502) address(mode AddressingMode) byte {
	switch mode {
	case IMM:
		return cpu.amIMM()
	case REL:
		return cpu.amREL()
	case ZP0:
		return cpu.amZP0()
	case ZPX:
		return cpu.amZPX()
	case ZPY:
		return cpu.amZPY()
	case ABS:
		return cpu.amABS()
	case ABX:
		return cpu.amABX()
	case ABY:
		return cpu.amABY()
	case IND:
		return cpu.amIND()
	case IZX:
		return cpu.amIZX()
	case IZY:
		return cpu.amIZY()
	}

	// Implied and accumulator take no operand.
	return 0
}

// Immediate:
func (cpu *Cpu6502) amIMM() byte {
	// The second byte of the instruction contains the operand.
	cpu.addrAbs = cpu.Pc
	cpu.Pc++

	return 0
}

// Relative:
func (cpu *Cpu6502) amREL() byte {
	rel := uint16(cpu.read(cpu.Pc))
	cpu.Pc++

	// Sign extend.
	if rel&0x80 != 0 {
		rel |= 0xFF00
	}
	cpu.addrRel = rel

	return 0
}

// Zero Page:
func (cpu *Cpu6502) amZP0() byte {
	// Use the second byte of the instruction to index into page zero.
	cpu.addrAbs = uint16(cpu.read(cpu.Pc))
	cpu.Pc++

	return 0
}

// Zero Page, X: the sum wraps within page zero.
func (cpu *Cpu6502) amZPX() byte {
	cpu.addrAbs = uint16(cpu.read(cpu.Pc) + cpu.X)
	cpu.Pc++

	return 0
}

// Zero Page, Y: the sum wraps within page zero.
func (cpu *Cpu6502) amZPY() byte {
	cpu.addrAbs = uint16(cpu.read(cpu.Pc) + cpu.Y)
	cpu.Pc++

	return 0
}

// Absolute:
func (cpu *Cpu6502) amABS() byte {
	// The second byte of the instruction contains the low order byte of the
	// address. The third byte of the instruction contains the high order byte.
	cpu.addrAbs = cpu.readWord(cpu.Pc)
	cpu.Pc += 2

	return 0
}

// Absolute, X:
func (cpu *Cpu6502) amABX() byte {
	addr := cpu.readWord(cpu.Pc)
	cpu.Pc += 2

	cpu.addrAbs = addr + uint16(cpu.X)

	return pageCrossed(addr, cpu.addrAbs)
}

// Absolute, Y:
func (cpu *Cpu6502) amABY() byte {
	addr := cpu.readWord(cpu.Pc)
	cpu.Pc += 2

	cpu.addrAbs = addr + uint16(cpu.Y)

	return pageCrossed(addr, cpu.addrAbs)
}

// Indirect:
func (cpu *Cpu6502) amIND() byte {
	// The next 16 bits contain a memory address pointing to the effective
	// address. The pointer's high byte is fetched without carrying into the
	// next page: JMP ($10FF) reads $10FF and $1000.
	ptr := cpu.readWord(cpu.Pc)
	cpu.Pc += 2

	lo := cpu.read(ptr)
	hi := cpu.read((ptr & 0xFF00) | uint16(byte(ptr)+1))
	cpu.addrAbs = uint16(hi)<<8 | uint16(lo)

	return 0
}

// Indexed Indirect:
func (cpu *Cpu6502) amIZX() byte {
	// Add the second byte of the instruction with the contents of register X.
	// This result is a zero page memory location pointing to the low order byte
	// of the effective address. The next memory location contains the high
	// order byte. Both memory locations must be in page zero.
	zp := cpu.read(cpu.Pc) + cpu.X
	cpu.Pc++

	lo := cpu.read(uint16(zp))
	hi := cpu.read(uint16(zp + 1)) // Zero page wraparound
	cpu.addrAbs = uint16(hi)<<8 | uint16(lo)

	return 0
}

// Indirect Indexed:
func (cpu *Cpu6502) amIZY() byte {
	// The second byte of the instruction points to a zero page memory location
	// holding the base address. Register Y is added to the base; the sum may
	// carry into the next page.
	zp := cpu.read(cpu.Pc)
	cpu.Pc++

	lo := cpu.read(uint16(zp))
	hi := cpu.read(uint16(zp + 1)) // Zero page wraparound
	base := uint16(hi)<<8 | uint16(lo)

	cpu.addrAbs = base + uint16(cpu.Y)

	return pageCrossed(base, cpu.addrAbs)
}

func pageCrossed(a, b uint16) byte {
	if a&0xFF00 != b&0xFF00 {
		return 1
	}
	return 0
}
