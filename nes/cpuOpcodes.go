package nes

// Instruction holds everything needed to execute one opcode.
type instruction struct {
	name    string              // Mnemonic, used for disassembly
	execute func(*Cpu6502) byte // Operation, nil for opcodes that are not implemented
	mode    AddressingMode      // Addressing mode
	cycles  byte                // Base cycle count
}

// The lookup table containing all the official CPU instructions. Opcodes
// without an entry are not implemented.
// Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
var instLookup = [16 * 16]instruction{
	0x69: {"ADC", (*Cpu6502).opADC, IMM, 2},
	0x65: {"ADC", (*Cpu6502).opADC, ZP0, 3},
	0x75: {"ADC", (*Cpu6502).opADC, ZPX, 4},
	0x6D: {"ADC", (*Cpu6502).opADC, ABS, 4},
	0x7D: {"ADC", (*Cpu6502).opADC, ABX, 4},
	0x79: {"ADC", (*Cpu6502).opADC, ABY, 4},
	0x61: {"ADC", (*Cpu6502).opADC, IZX, 6},
	0x71: {"ADC", (*Cpu6502).opADC, IZY, 5},

	0x29: {"AND", (*Cpu6502).opAND, IMM, 2},
	0x25: {"AND", (*Cpu6502).opAND, ZP0, 3},
	0x35: {"AND", (*Cpu6502).opAND, ZPX, 4},
	0x2D: {"AND", (*Cpu6502).opAND, ABS, 4},
	0x3D: {"AND", (*Cpu6502).opAND, ABX, 4},
	0x39: {"AND", (*Cpu6502).opAND, ABY, 4},
	0x21: {"AND", (*Cpu6502).opAND, IZX, 6},
	0x31: {"AND", (*Cpu6502).opAND, IZY, 5},

	0x0A: {"ASL", (*Cpu6502).opASL, ACC, 2},
	0x06: {"ASL", (*Cpu6502).opASL, ZP0, 5},
	0x16: {"ASL", (*Cpu6502).opASL, ZPX, 6},
	0x0E: {"ASL", (*Cpu6502).opASL, ABS, 6},
	0x1E: {"ASL", (*Cpu6502).opASL, ABX, 7},

	0x90: {"BCC", (*Cpu6502).opBCC, REL, 2},
	0xB0: {"BCS", (*Cpu6502).opBCS, REL, 2},
	0xF0: {"BEQ", (*Cpu6502).opBEQ, REL, 2},
	0x30: {"BMI", (*Cpu6502).opBMI, REL, 2},
	0xD0: {"BNE", (*Cpu6502).opBNE, REL, 2},
	0x10: {"BPL", (*Cpu6502).opBPL, REL, 2},
	0x50: {"BVC", (*Cpu6502).opBVC, REL, 2},
	0x70: {"BVS", (*Cpu6502).opBVS, REL, 2},

	0x24: {"BIT", (*Cpu6502).opBIT, ZP0, 3},
	0x2C: {"BIT", (*Cpu6502).opBIT, ABS, 4},

	0x00: {"BRK", (*Cpu6502).opBRK, IMP, 7},

	0x18: {"CLC", (*Cpu6502).opCLC, IMP, 2},
	0xD8: {"CLD", (*Cpu6502).opCLD, IMP, 2},
	0x58: {"CLI", (*Cpu6502).opCLI, IMP, 2},
	0xB8: {"CLV", (*Cpu6502).opCLV, IMP, 2},

	0xC9: {"CMP", (*Cpu6502).opCMP, IMM, 2},
	0xC5: {"CMP", (*Cpu6502).opCMP, ZP0, 3},
	0xD5: {"CMP", (*Cpu6502).opCMP, ZPX, 4},
	0xCD: {"CMP", (*Cpu6502).opCMP, ABS, 4},
	0xDD: {"CMP", (*Cpu6502).opCMP, ABX, 4},
	0xD9: {"CMP", (*Cpu6502).opCMP, ABY, 4},
	0xC1: {"CMP", (*Cpu6502).opCMP, IZX, 6},
	0xD1: {"CMP", (*Cpu6502).opCMP, IZY, 5},

	0xE0: {"CPX", (*Cpu6502).opCPX, IMM, 2},
	0xE4: {"CPX", (*Cpu6502).opCPX, ZP0, 3},
	0xEC: {"CPX", (*Cpu6502).opCPX, ABS, 4},

	0xC0: {"CPY", (*Cpu6502).opCPY, IMM, 2},
	0xC4: {"CPY", (*Cpu6502).opCPY, ZP0, 3},
	0xCC: {"CPY", (*Cpu6502).opCPY, ABS, 4},

	0xC6: {"DEC", (*Cpu6502).opDEC, ZP0, 5},
	0xD6: {"DEC", (*Cpu6502).opDEC, ZPX, 6},
	0xCE: {"DEC", (*Cpu6502).opDEC, ABS, 6},
	0xDE: {"DEC", (*Cpu6502).opDEC, ABX, 7},

	0xCA: {"DEX", (*Cpu6502).opDEX, IMP, 2},
	0x88: {"DEY", (*Cpu6502).opDEY, IMP, 2},

	0x49: {"EOR", (*Cpu6502).opEOR, IMM, 2},
	0x45: {"EOR", (*Cpu6502).opEOR, ZP0, 3},
	0x55: {"EOR", (*Cpu6502).opEOR, ZPX, 4},
	0x4D: {"EOR", (*Cpu6502).opEOR, ABS, 4},
	0x5D: {"EOR", (*Cpu6502).opEOR, ABX, 4},
	0x59: {"EOR", (*Cpu6502).opEOR, ABY, 4},
	0x41: {"EOR", (*Cpu6502).opEOR, IZX, 6},
	0x51: {"EOR", (*Cpu6502).opEOR, IZY, 5},

	0xE6: {"INC", (*Cpu6502).opINC, ZP0, 5},
	0xF6: {"INC", (*Cpu6502).opINC, ZPX, 6},
	0xEE: {"INC", (*Cpu6502).opINC, ABS, 6},
	0xFE: {"INC", (*Cpu6502).opINC, ABX, 7},

	0xE8: {"INX", (*Cpu6502).opINX, IMP, 2},
	0xC8: {"INY", (*Cpu6502).opINY, IMP, 2},

	0x4C: {"JMP", (*Cpu6502).opJMP, ABS, 3},
	0x6C: {"JMP", (*Cpu6502).opJMP, IND, 5},

	0x20: {"JSR", (*Cpu6502).opJSR, ABS, 6},

	0xA9: {"LDA", (*Cpu6502).opLDA, IMM, 2},
	0xA5: {"LDA", (*Cpu6502).opLDA, ZP0, 3},
	0xB5: {"LDA", (*Cpu6502).opLDA, ZPX, 4},
	0xAD: {"LDA", (*Cpu6502).opLDA, ABS, 4},
	0xBD: {"LDA", (*Cpu6502).opLDA, ABX, 4},
	0xB9: {"LDA", (*Cpu6502).opLDA, ABY, 4},
	0xA1: {"LDA", (*Cpu6502).opLDA, IZX, 6},
	0xB1: {"LDA", (*Cpu6502).opLDA, IZY, 5},

	0xA2: {"LDX", (*Cpu6502).opLDX, IMM, 2},
	0xA6: {"LDX", (*Cpu6502).opLDX, ZP0, 3},
	0xB6: {"LDX", (*Cpu6502).opLDX, ZPY, 4},
	0xAE: {"LDX", (*Cpu6502).opLDX, ABS, 4},
	0xBE: {"LDX", (*Cpu6502).opLDX, ABY, 4},

	0xA0: {"LDY", (*Cpu6502).opLDY, IMM, 2},
	0xA4: {"LDY", (*Cpu6502).opLDY, ZP0, 3},
	0xB4: {"LDY", (*Cpu6502).opLDY, ZPX, 4},
	0xAC: {"LDY", (*Cpu6502).opLDY, ABS, 4},
	0xBC: {"LDY", (*Cpu6502).opLDY, ABX, 4},

	0x4A: {"LSR", (*Cpu6502).opLSR, ACC, 2},
	0x46: {"LSR", (*Cpu6502).opLSR, ZP0, 5},
	0x56: {"LSR", (*Cpu6502).opLSR, ZPX, 6},
	0x4E: {"LSR", (*Cpu6502).opLSR, ABS, 6},
	0x5E: {"LSR", (*Cpu6502).opLSR, ABX, 7},

	0xEA: {"NOP", (*Cpu6502).opNOP, IMP, 2},

	0x09: {"ORA", (*Cpu6502).opORA, IMM, 2},
	0x05: {"ORA", (*Cpu6502).opORA, ZP0, 3},
	0x15: {"ORA", (*Cpu6502).opORA, ZPX, 4},
	0x0D: {"ORA", (*Cpu6502).opORA, ABS, 4},
	0x1D: {"ORA", (*Cpu6502).opORA, ABX, 4},
	0x19: {"ORA", (*Cpu6502).opORA, ABY, 4},
	0x01: {"ORA", (*Cpu6502).opORA, IZX, 6},
	0x11: {"ORA", (*Cpu6502).opORA, IZY, 5},

	0x48: {"PHA", (*Cpu6502).opPHA, IMP, 3},
	0x08: {"PHP", (*Cpu6502).opPHP, IMP, 3},
	0x68: {"PLA", (*Cpu6502).opPLA, IMP, 4},
	0x28: {"PLP", (*Cpu6502).opPLP, IMP, 4},

	0x2A: {"ROL", (*Cpu6502).opROL, ACC, 2},
	0x26: {"ROL", (*Cpu6502).opROL, ZP0, 5},
	0x36: {"ROL", (*Cpu6502).opROL, ZPX, 6},
	0x2E: {"ROL", (*Cpu6502).opROL, ABS, 6},
	0x3E: {"ROL", (*Cpu6502).opROL, ABX, 7},

	0x6A: {"ROR", (*Cpu6502).opROR, ACC, 2},
	0x66: {"ROR", (*Cpu6502).opROR, ZP0, 5},
	0x76: {"ROR", (*Cpu6502).opROR, ZPX, 6},
	0x6E: {"ROR", (*Cpu6502).opROR, ABS, 6},
	0x7E: {"ROR", (*Cpu6502).opROR, ABX, 7},

	0x40: {"RTI", (*Cpu6502).opRTI, IMP, 6},
	0x60: {"RTS", (*Cpu6502).opRTS, IMP, 6},

	0xE9: {"SBC", (*Cpu6502).opSBC, IMM, 2},
	0xE5: {"SBC", (*Cpu6502).opSBC, ZP0, 3},
	0xF5: {"SBC", (*Cpu6502).opSBC, ZPX, 4},
	0xED: {"SBC", (*Cpu6502).opSBC, ABS, 4},
	0xFD: {"SBC", (*Cpu6502).opSBC, ABX, 4},
	0xF9: {"SBC", (*Cpu6502).opSBC, ABY, 4},
	0xE1: {"SBC", (*Cpu6502).opSBC, IZX, 6},
	0xF1: {"SBC", (*Cpu6502).opSBC, IZY, 5},

	0x38: {"SEC", (*Cpu6502).opSEC, IMP, 2},
	0xF8: {"SED", (*Cpu6502).opSED, IMP, 2},
	0x78: {"SEI", (*Cpu6502).opSEI, IMP, 2},

	0x85: {"STA", (*Cpu6502).opSTA, ZP0, 3},
	0x95: {"STA", (*Cpu6502).opSTA, ZPX, 4},
	0x8D: {"STA", (*Cpu6502).opSTA, ABS, 4},
	0x9D: {"STA", (*Cpu6502).opSTA, ABX, 5},
	0x99: {"STA", (*Cpu6502).opSTA, ABY, 5},
	0x81: {"STA", (*Cpu6502).opSTA, IZX, 6},
	0x91: {"STA", (*Cpu6502).opSTA, IZY, 6},

	0x86: {"STX", (*Cpu6502).opSTX, ZP0, 3},
	0x96: {"STX", (*Cpu6502).opSTX, ZPY, 4},
	0x8E: {"STX", (*Cpu6502).opSTX, ABS, 4},

	0x84: {"STY", (*Cpu6502).opSTY, ZP0, 3},
	0x94: {"STY", (*Cpu6502).opSTY, ZPX, 4},
	0x8C: {"STY", (*Cpu6502).opSTY, ABS, 4},

	0xAA: {"TAX", (*Cpu6502).opTAX, IMP, 2},
	0xA8: {"TAY", (*Cpu6502).opTAY, IMP, 2},
	0xBA: {"TSX", (*Cpu6502).opTSX, IMP, 2},
	0x8A: {"TXA", (*Cpu6502).opTXA, IMP, 2},
	0x9A: {"TXS", (*Cpu6502).opTXS, IMP, 2},
	0x98: {"TYA", (*Cpu6502).opTYA, IMP, 2},
}
