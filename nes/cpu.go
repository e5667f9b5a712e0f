package nes

import (
	"fmt"
	"io"
	"log"
)

// CpuBus is the CPU's view of its 16 bit address space. Peek must read
// without side effects; it is used for tracing and disassembly.
type CpuBus interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
	Peek(addr uint16) byte
}

type Cpu6502 struct {
	Pc     uint16 // Program Counter
	Sp     byte   // Stack Pointer: low 8 bits of next free location on stack.
	A      byte   // Accumulator Register
	X      byte   // X Register
	Y      byte   // Y Register
	Status byte   // Processor Status Flags

	bus  CpuBus // Communication Bus
	sink Sink

	// Internal variables
	opcode  byte           // Opcode of the instruction being executed
	mode    AddressingMode // Addressing mode of the instruction being executed
	addrAbs uint16         // Set by addressing mode functions, used by instructions
	addrRel uint16         // Relative displacement address used for branching
	fetched byte           // Byte of memory used by CPU instructions
	extra   int            // Cycles added by taken branches

	cycleCount uint64 // Total # of cycles executed by the CPU

	fault     *Fault // Set while the CPU is stalled on an unimplemented opcode
	lastFault string // Last soft fault reported, repeats are not reported again

	trace *log.Logger // Optional instruction trace
}

// Fault describes an unimplemented opcode the CPU refused to execute.
type Fault struct {
	Opcode byte
	Addr   uint16
}

func (f Fault) String() string {
	return fmt.Sprintf("unimplemented opcode $%02X at $%04X", f.Opcode, f.Addr)
}

// CpuRegisters is a snapshot of the register file.
type CpuRegisters struct {
	A      byte
	X      byte
	Y      byte
	Sp     byte
	Status byte
	Pc     uint16
	Cycles uint64
}

const (
	stackBase uint16 = 0x0100

	nmiVectAddr   uint16 = 0xFFFA
	resetVectAddr uint16 = 0xFFFC
	irqVectAddr   uint16 = 0xFFFE

	powerStatus = byte(StatusFlagU) | byte(StatusFlagI)
)

func NewCpu6502(sink Sink) *Cpu6502 {
	return &Cpu6502{
		Sp:     0xFD,
		Status: powerStatus,
		sink:   sinkOrDiscard(sink),
	}
}

// Connect the CPU to a 16-bit address bus.
func (cpu *Cpu6502) ConnectBus(b CpuBus) { cpu.bus = b }

// SetTrace enables a per-instruction trace written to w. A nil writer turns
// tracing off.
func (cpu *Cpu6502) SetTrace(w io.Writer) {
	if w == nil {
		cpu.trace = nil
		return
	}
	cpu.trace = log.New(w, "", 0)
}

// Read from the attached bus.
func (cpu *Cpu6502) read(addr uint16) byte {
	return cpu.bus.Read(addr)
}

// Write to the attached bus.
func (cpu *Cpu6502) write(addr uint16, data byte) {
	cpu.bus.Write(addr, data)
}

// Read a word from memory (little endian order).
func (cpu *Cpu6502) readWord(addr uint16) uint16 {
	lo := cpu.read(addr)
	hi := cpu.read(addr + 1)

	return (uint16(hi) << 8) | uint16(lo)
}

// Read a byte from memory at the address previously set by the appropriate
// addressing mode function. In accumulator mode the operand is A.
func (cpu *Cpu6502) fetch() byte {
	switch cpu.mode {
	case ACC:
		cpu.fetched = cpu.A
	case IMP:
	default:
		cpu.fetched = cpu.read(cpu.addrAbs)
	}
	return cpu.fetched
}

// Functions to push and pop from the stack. The stack is fixed to page one
// and the stack pointer wraps within it.
func (cpu *Cpu6502) stackPush(data byte) {
	cpu.write(stackBase|uint16(cpu.Sp), data)
	cpu.Sp--
}

func (cpu *Cpu6502) stackPop() byte {
	cpu.Sp++
	return cpu.read(stackBase | uint16(cpu.Sp))
}

////////////////////////////////////////////////////////////////
// Status Flags
type SF6502 byte // 6502 Status Flag

const (
	StatusFlagC SF6502 = 1 << iota // Carry
	StatusFlagZ                    // Zero
	StatusFlagI                    // Interrupt Disable
	StatusFlagD                    // Decimal Mode (not used on NES)
	StatusFlagB                    // Break Command
	StatusFlagU                    // UNUSED, set whenever pushed
	StatusFlagV                    // Overflow
	StatusFlagN                    // Negative
)

// Convenience functions used to get and set CPU status flags.
func (cpu *Cpu6502) getFlag(f SF6502) byte {
	if cpu.Status&byte(f) == 0 {
		return 0
	}
	return 1
}

func (cpu *Cpu6502) setFlag(f SF6502, b bool) {
	if b {
		cpu.Status |= byte(f)
	} else {
		cpu.Status &^= byte(f)
	}
}

// Set zero and negative flags from a result.
func (cpu *Cpu6502) setZN(v byte) {
	cpu.setFlag(StatusFlagZ, v == 0)
	cpu.setFlag(StatusFlagN, v&0x80 != 0)
}

////////////////////////////////////////////////////////////////
// Interrupts

// Power puts the CPU in its power up state and jumps through the reset
// vector.
func (cpu *Cpu6502) Power() {
	cpu.A = 0x00
	cpu.X = 0x00
	cpu.Y = 0x00
	cpu.Sp = 0xFD
	cpu.Status = powerStatus

	cpu.addrAbs = 0x0000
	cpu.addrRel = 0x0000
	cpu.fetched = 0x00
	cpu.fault = nil
	cpu.lastFault = ""

	cpu.Pc = cpu.readWord(resetVectAddr)

	// Spend time on reset
	cpu.cycleCount = 7
}

// Reset jumps through the reset vector. Registers other than the stack
// pointer and the interrupt disable flag keep their values.
func (cpu *Cpu6502) Reset() {
	cpu.Sp -= 3
	cpu.setFlag(StatusFlagI, true)
	cpu.fault = nil
	cpu.lastFault = ""

	cpu.Pc = cpu.readWord(resetVectAddr)

	cpu.cycleCount += 7
}

// Interrupt Request. Ignored while the interrupt disable flag is set.
func (cpu *Cpu6502) IRQ() {
	if cpu.getFlag(StatusFlagI) == 1 {
		return
	}

	cpu.interrupt(irqVectAddr, false)
	cpu.cycleCount += 7
}

// Non-Maskable Interrupt.
func (cpu *Cpu6502) NMI() {
	cpu.interrupt(nmiVectAddr, false)
	cpu.cycleCount += 8
}

// Push the program counter and status then continue from the vector. The
// break flag only appears in the pushed copy of the status and only for BRK.
func (cpu *Cpu6502) interrupt(vector uint16, brk bool) {
	cpu.stackPush(byte(cpu.Pc >> 8))
	cpu.stackPush(byte(cpu.Pc))

	status := cpu.Status | byte(StatusFlagU)
	if brk {
		status |= byte(StatusFlagB)
	} else {
		status &^= byte(StatusFlagB)
	}
	cpu.stackPush(status)

	cpu.setFlag(StatusFlagI, true)
	cpu.setFlag(StatusFlagB, false)

	cpu.Pc = cpu.readWord(vector)

	// An interrupt moves the CPU off a stalled opcode.
	cpu.fault = nil
}

// Run executes exactly one instruction and returns the number of cycles it
// took.
//
// An opcode with no entry in the instruction table is a soft fault: it is
// reported once to the sink, nothing is modified and the program counter
// does not advance, so the CPU stays on the opcode until an interrupt or
// reset moves it. Zero cycles are charged.
func (cpu *Cpu6502) Run() int {
	pc := cpu.Pc
	opcode := cpu.read(pc)
	inst := &instLookup[opcode]

	if inst.execute == nil {
		cpu.unimplemented(opcode, pc)
		return 0
	}

	var trace string
	if cpu.trace != nil {
		trace = cpu.traceLine(pc)
	}

	cpu.opcode = opcode
	cpu.mode = inst.mode
	cpu.extra = 0
	cpu.fault = nil

	cpu.Pc++

	// Page crossing only costs a cycle if both the addressing mode and the
	// instruction say so.
	extraCycles1 := cpu.address(inst.mode)
	extraCycles2 := inst.execute(cpu)

	cycles := int(inst.cycles) + int(extraCycles1&extraCycles2) + cpu.extra
	cpu.cycleCount += uint64(cycles)

	if cpu.trace != nil {
		cpu.trace.Print(trace)
	}

	return cycles
}

func (cpu *Cpu6502) unimplemented(opcode byte, pc uint16) {
	f := Fault{Opcode: opcode, Addr: pc}
	cpu.fault = &f

	msg := f.String()
	if msg == cpu.lastFault {
		return
	}
	cpu.lastFault = msg
	cpu.sink.Log("cpu", msg)
}

// Fault returns the unimplemented opcode the CPU is stalled on, if any.
func (cpu *Cpu6502) Fault() (Fault, bool) {
	if cpu.fault == nil {
		return Fault{}, false
	}
	return *cpu.fault, true
}

// Cycles is the total number of cycles executed since power up.
func (cpu *Cpu6502) Cycles() uint64 {
	return cpu.cycleCount
}

func (cpu *Cpu6502) Registers() CpuRegisters {
	return CpuRegisters{
		A:      cpu.A,
		X:      cpu.X,
		Y:      cpu.Y,
		Sp:     cpu.Sp,
		Status: cpu.Status,
		Pc:     cpu.Pc,
		Cycles: cpu.cycleCount,
	}
}

// Trace line in the style of the nestest log, state before execution.
func (cpu *Cpu6502) traceLine(pc uint16) string {
	text, length := cpu.disassembleAt(pc)

	var raw string
	for i := 0; i < length; i++ {
		raw += fmt.Sprintf("%02X ", cpu.bus.Peek(pc+uint16(i)))
	}

	return fmt.Sprintf("%04X  %-9s %-28s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		pc, raw, text, cpu.A, cpu.X, cpu.Y, cpu.Status, cpu.Sp, cpu.cycleCount)
}
