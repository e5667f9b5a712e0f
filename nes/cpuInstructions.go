package nes

////////////////////////////////////////////////////////////////
// Instructions
//
// CPU instructions. Each instruction method returns 1 if the instruction
// takes an extra cycle when its addressing mode crosses a page, else 0.

// Shared by ADC and SBC: A + m + C.
func (cpu *Cpu6502) addWithCarry(m byte) {
	// 16-bit to keep any carry.
	result := uint16(cpu.A) + uint16(m) + uint16(cpu.getFlag(StatusFlagC))
	r := byte(result)

	cpu.setFlag(StatusFlagC, result > 0xFF)

	// Overflow if both operands share a sign and the result's sign differs.
	cpu.setFlag(StatusFlagV, (cpu.A^r)&(m^r)&0x80 != 0)

	cpu.A = r
	cpu.setZN(cpu.A)
}

func (cpu *Cpu6502) compare(reg byte) {
	m := cpu.fetch()

	cpu.setFlag(StatusFlagC, reg >= m)
	cpu.setFlag(StatusFlagZ, reg == m)
	cpu.setFlag(StatusFlagN, (reg-m)&0x80 != 0)
}

// Taken branches cost a cycle, and another if the target is on a different
// page to the following instruction.
func (cpu *Cpu6502) branch(cond bool) {
	if !cond {
		return
	}

	cpu.extra++

	cpu.addrAbs = cpu.Pc + cpu.addrRel
	if pageCrossed(cpu.addrAbs, cpu.Pc) == 1 {
		cpu.extra++
	}

	cpu.Pc = cpu.addrAbs
}

// Write the result of a read-modify-write instruction back to A or memory.
func (cpu *Cpu6502) writeBack(v byte) {
	if cpu.mode == ACC {
		cpu.A = v
	} else {
		cpu.write(cpu.addrAbs, v)
	}
}

// ADC - Add with Carry
func (cpu *Cpu6502) opADC() byte {
	cpu.addWithCarry(cpu.fetch())
	return 1
}

// AND - Logical AND
func (cpu *Cpu6502) opAND() byte {
	cpu.A &= cpu.fetch()
	cpu.setZN(cpu.A)
	return 1
}

// ASL - Arithmetic Shift Left
func (cpu *Cpu6502) opASL() byte {
	v := cpu.fetch()
	cpu.setFlag(StatusFlagC, v&0x80 != 0)
	v <<= 1
	cpu.setZN(v)
	cpu.writeBack(v)
	return 0
}

// BCC - Branch if Carry Clear
func (cpu *Cpu6502) opBCC() byte {
	cpu.branch(cpu.getFlag(StatusFlagC) == 0)
	return 0
}

// BCS - Branch if Carry Set
func (cpu *Cpu6502) opBCS() byte {
	cpu.branch(cpu.getFlag(StatusFlagC) == 1)
	return 0
}

// BEQ - Branch if Equal
func (cpu *Cpu6502) opBEQ() byte {
	cpu.branch(cpu.getFlag(StatusFlagZ) == 1)
	return 0
}

// BIT - Bit Test
func (cpu *Cpu6502) opBIT() byte {
	m := cpu.fetch()
	cpu.setFlag(StatusFlagZ, cpu.A&m == 0)
	cpu.setFlag(StatusFlagV, m&0x40 != 0)
	cpu.setFlag(StatusFlagN, m&0x80 != 0)
	return 0
}

// BMI - Branch if Minus
func (cpu *Cpu6502) opBMI() byte {
	cpu.branch(cpu.getFlag(StatusFlagN) == 1)
	return 0
}

// BNE - Branch if Not Equal
func (cpu *Cpu6502) opBNE() byte {
	cpu.branch(cpu.getFlag(StatusFlagZ) == 0)
	return 0
}

// BPL - Branch if Positive
func (cpu *Cpu6502) opBPL() byte {
	cpu.branch(cpu.getFlag(StatusFlagN) == 0)
	return 0
}

// BRK - Force Interrupt
func (cpu *Cpu6502) opBRK() byte {
	// Skip the padding byte, RTI returns past it.
	cpu.Pc++

	// Set B flag according to: http://visual6502.org/wiki/index.php?title=6502_BRK_and_B_bit
	cpu.interrupt(irqVectAddr, true)
	return 0
}

// BVC - Branch if Overflow Clear
func (cpu *Cpu6502) opBVC() byte {
	cpu.branch(cpu.getFlag(StatusFlagV) == 0)
	return 0
}

// BVS - Branch if Overflow Set
func (cpu *Cpu6502) opBVS() byte {
	cpu.branch(cpu.getFlag(StatusFlagV) == 1)
	return 0
}

// CLC - Clear Carry Flag
func (cpu *Cpu6502) opCLC() byte {
	cpu.setFlag(StatusFlagC, false)
	return 0
}

// CLD - Clear Decimal Mode
func (cpu *Cpu6502) opCLD() byte {
	cpu.setFlag(StatusFlagD, false)
	return 0
}

// CLI - Clear Interrupt Disable
func (cpu *Cpu6502) opCLI() byte {
	cpu.setFlag(StatusFlagI, false)
	return 0
}

// CLV - Clear Overflow Flag
func (cpu *Cpu6502) opCLV() byte {
	cpu.setFlag(StatusFlagV, false)
	return 0
}

// CMP - Compare (Accumulator)
func (cpu *Cpu6502) opCMP() byte {
	cpu.compare(cpu.A)
	return 1
}

// CPX - Compare X Register
func (cpu *Cpu6502) opCPX() byte {
	cpu.compare(cpu.X)
	return 0
}

// CPY - Compare Y Register
func (cpu *Cpu6502) opCPY() byte {
	cpu.compare(cpu.Y)
	return 0
}

// DEC - Decrement Memory
func (cpu *Cpu6502) opDEC() byte {
	v := cpu.fetch() - 1
	cpu.write(cpu.addrAbs, v)
	cpu.setZN(v)
	return 0
}

// DEX - Decrement X Register
func (cpu *Cpu6502) opDEX() byte {
	cpu.X--
	cpu.setZN(cpu.X)
	return 0
}

// DEY - Decrement Y Register
func (cpu *Cpu6502) opDEY() byte {
	cpu.Y--
	cpu.setZN(cpu.Y)
	return 0
}

// EOR - Exclusive OR
func (cpu *Cpu6502) opEOR() byte {
	cpu.A ^= cpu.fetch()
	cpu.setZN(cpu.A)
	return 1
}

// INC - Increment Memory
func (cpu *Cpu6502) opINC() byte {
	v := cpu.fetch() + 1
	cpu.write(cpu.addrAbs, v)
	cpu.setZN(v)
	return 0
}

// INX - Increment X Register
func (cpu *Cpu6502) opINX() byte {
	cpu.X++
	cpu.setZN(cpu.X)
	return 0
}

// INY - Increment Y Register
func (cpu *Cpu6502) opINY() byte {
	cpu.Y++
	cpu.setZN(cpu.Y)
	return 0
}

// JMP - Jump
func (cpu *Cpu6502) opJMP() byte {
	cpu.Pc = cpu.addrAbs
	return 0
}

// JSR - Jump to Subroutine
func (cpu *Cpu6502) opJSR() byte {
	// The return address pushed is the last byte of the JSR instruction. RTS
	// adds one to it.
	ret := cpu.Pc - 1

	cpu.stackPush(byte(ret >> 8))
	cpu.stackPush(byte(ret))

	cpu.Pc = cpu.addrAbs
	return 0
}

// LDA - Load Accumulator
func (cpu *Cpu6502) opLDA() byte {
	cpu.A = cpu.fetch()
	cpu.setZN(cpu.A)
	return 1
}

// LDX - Load X Register
func (cpu *Cpu6502) opLDX() byte {
	cpu.X = cpu.fetch()
	cpu.setZN(cpu.X)
	return 1
}

// LDY - Load Y Register
func (cpu *Cpu6502) opLDY() byte {
	cpu.Y = cpu.fetch()
	cpu.setZN(cpu.Y)
	return 1
}

// LSR - Logical Shift Right
func (cpu *Cpu6502) opLSR() byte {
	v := cpu.fetch()
	cpu.setFlag(StatusFlagC, v&0x01 != 0)
	v >>= 1
	cpu.setZN(v)
	cpu.writeBack(v)
	return 0
}

// NOP - No Operation
func (cpu *Cpu6502) opNOP() byte { return 0 }

// ORA - Logical Inclusive OR
func (cpu *Cpu6502) opORA() byte {
	cpu.A |= cpu.fetch()
	cpu.setZN(cpu.A)
	return 1
}

// PHA - Push Accumulator
func (cpu *Cpu6502) opPHA() byte {
	cpu.stackPush(cpu.A)
	return 0
}

// PHP - Push Processor Status
func (cpu *Cpu6502) opPHP() byte {
	cpu.stackPush(cpu.Status | byte(StatusFlagB) | byte(StatusFlagU))
	return 0
}

// PLA - Pull Accumulator
func (cpu *Cpu6502) opPLA() byte {
	cpu.A = cpu.stackPop()
	cpu.setZN(cpu.A)
	return 0
}

// PLP - Pull Processor Status
func (cpu *Cpu6502) opPLP() byte {
	cpu.Status = cpu.stackPop()
	cpu.setFlag(StatusFlagB, false)
	cpu.setFlag(StatusFlagU, true)
	return 0
}

// ROL - Rotate Left
func (cpu *Cpu6502) opROL() byte {
	v := cpu.fetch()
	carry := cpu.getFlag(StatusFlagC)
	cpu.setFlag(StatusFlagC, v&0x80 != 0)
	v = v<<1 | carry
	cpu.setZN(v)
	cpu.writeBack(v)
	return 0
}

// ROR - Rotate Right
func (cpu *Cpu6502) opROR() byte {
	v := cpu.fetch()
	carry := cpu.getFlag(StatusFlagC)
	cpu.setFlag(StatusFlagC, v&0x01 != 0)
	v = v>>1 | carry<<7
	cpu.setZN(v)
	cpu.writeBack(v)
	return 0
}

// RTI - Return from Interrupt
func (cpu *Cpu6502) opRTI() byte {
	cpu.Status = cpu.stackPop()
	cpu.setFlag(StatusFlagB, false)
	cpu.setFlag(StatusFlagU, true)

	lo := cpu.stackPop()
	hi := cpu.stackPop()
	cpu.Pc = uint16(hi)<<8 | uint16(lo)
	return 0
}

// RTS - Return from Subroutine
func (cpu *Cpu6502) opRTS() byte {
	lo := cpu.stackPop()
	hi := cpu.stackPop()
	cpu.Pc = uint16(hi)<<8 | uint16(lo)

	// Step past the last byte of the JSR.
	cpu.Pc++
	return 0
}

// SBC - Subtract with Carry
func (cpu *Cpu6502) opSBC() byte {
	// A - m - (1 - C) is A + ^m + C.
	cpu.addWithCarry(cpu.fetch() ^ 0xFF)
	return 1
}

// SEC - Set Carry Flag
func (cpu *Cpu6502) opSEC() byte {
	cpu.setFlag(StatusFlagC, true)
	return 0
}

// SED - Set Decimal Flag
func (cpu *Cpu6502) opSED() byte {
	cpu.setFlag(StatusFlagD, true)
	return 0
}

// SEI - Set Interrupt Disable
func (cpu *Cpu6502) opSEI() byte {
	cpu.setFlag(StatusFlagI, true)
	return 0
}

// STA - Store Accumulator
func (cpu *Cpu6502) opSTA() byte {
	cpu.write(cpu.addrAbs, cpu.A)
	return 0
}

// STX - Store X Register
func (cpu *Cpu6502) opSTX() byte {
	cpu.write(cpu.addrAbs, cpu.X)
	return 0
}

// STY - Store Y Register
func (cpu *Cpu6502) opSTY() byte {
	cpu.write(cpu.addrAbs, cpu.Y)
	return 0
}

// TAX - Transfer Accumulator to X
func (cpu *Cpu6502) opTAX() byte {
	cpu.X = cpu.A
	cpu.setZN(cpu.X)
	return 0
}

// TAY - Transfer Accumulator to Y
func (cpu *Cpu6502) opTAY() byte {
	cpu.Y = cpu.A
	cpu.setZN(cpu.Y)
	return 0
}

// TSX - Transfer Stack Pointer to X
func (cpu *Cpu6502) opTSX() byte {
	cpu.X = cpu.Sp
	cpu.setZN(cpu.X)
	return 0
}

// TXA - Transfer X to Accumulator
func (cpu *Cpu6502) opTXA() byte {
	cpu.A = cpu.X
	cpu.setZN(cpu.A)
	return 0
}

// TXS - Transfer X to Stack Pointer
func (cpu *Cpu6502) opTXS() byte {
	cpu.Sp = cpu.X
	return 0
}

// TYA - Transfer Y to Accumulator
func (cpu *Cpu6502) opTYA() byte {
	cpu.A = cpu.Y
	cpu.setZN(cpu.A)
	return 0
}
