package cpu

// addrFunc runs one addressing-mode tick. Implementations read c.ticks to
// find their place in the micro-sequence and must set c.addressingDone on
// the tick that makes operand/address resolution complete.
type addrFunc func(c *Chip)

// opFunc runs one operation tick once addressing has completed. Operations
// on a memory operand read c.ticksFunc to find their place; those whose
// addressing completes at once (implied-mode ops, JSR, branches, the BRK
// family) read c.ticks instead.
type opFunc func(c *Chip)

// opcode bundles an opcode byte's disassembly mnemonic with the two
// micro-sequencers that drive it and its nominal cycle budget.
type opcode struct {
	mnemonic string
	addr     addrFunc
	op       opFunc
	cycles   uint8
}

// opcodeTable is the 256-entry dispatch table indexed by opcode byte.
// Every documented NMOS 6502 instruction/addressing-mode combination has an
// entry; every undocumented byte dispatches to badOp with a fixed 2-cycle
// budget (see badOp's doc comment).
var opcodeTable [256]opcode

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = opcode{"BAD", addrImp, badOp, 2}
	}
	for _, e := range []struct {
		op       uint8
		mnemonic string
		addr     addrFunc
		fn       opFunc
		cycles   uint8
	}{
		{0x00, "BRK", addrImp, opBRK, 7},
		{0x01, "ORA", addrIndX, opORA, 6},
		{0x05, "ORA", addrZpg, opORA, 3},
		{0x06, "ASL", addrZpg, opASL, 5},
		{0x08, "PHP", addrImp, opPHP, 3},
		{0x09, "ORA", addrImm, opORA, 2},
		{0x0A, "ASL", addrImp, opASLA, 2},
		{0x0D, "ORA", addrAbs, opORA, 4},
		{0x0E, "ASL", addrAbs, opASL, 6},
		{0x10, "BPL", addrRel, opBPL, 4},
		{0x11, "ORA", addrIndY, opORA, 6},
		{0x15, "ORA", addrZpgX, opORA, 4},
		{0x16, "ASL", addrZpgX, opASL, 6},
		{0x18, "CLC", addrImp, opCLC, 2},
		{0x19, "ORA", addrAbsY, opORA, 5},
		{0x1D, "ORA", addrAbsX, opORA, 5},
		{0x1E, "ASL", addrAbsX, opASL, 7},
		{0x20, "JSR", addrJsr, opJSR, 6},
		{0x21, "AND", addrIndX, opAND, 6},
		{0x24, "BIT", addrZpg, opBIT, 3},
		{0x25, "AND", addrZpg, opAND, 3},
		{0x26, "ROL", addrZpg, opROL, 5},
		{0x28, "PLP", addrImp, opPLP, 4},
		{0x29, "AND", addrImm, opAND, 2},
		{0x2A, "ROL", addrImp, opROLA, 2},
		{0x2C, "BIT", addrAbs, opBIT, 4},
		{0x2D, "AND", addrAbs, opAND, 4},
		{0x2E, "ROL", addrAbs, opROL, 6},
		{0x30, "BMI", addrRel, opBMI, 4},
		{0x31, "AND", addrIndY, opAND, 6},
		{0x35, "AND", addrZpgX, opAND, 4},
		{0x36, "ROL", addrZpgX, opROL, 6},
		{0x38, "SEC", addrImp, opSEC, 2},
		{0x39, "AND", addrAbsY, opAND, 5},
		{0x3D, "AND", addrAbsX, opAND, 5},
		{0x3E, "ROL", addrAbsX, opROL, 7},
		{0x40, "RTI", addrImp, opRTI, 6},
		{0x41, "EOR", addrIndX, opEOR, 6},
		{0x45, "EOR", addrZpg, opEOR, 3},
		{0x46, "LSR", addrZpg, opLSR, 5},
		{0x48, "PHA", addrImp, opPHA, 3},
		{0x49, "EOR", addrImm, opEOR, 2},
		{0x4A, "LSR", addrImp, opLSRA, 2},
		{0x4C, "JMP", addrAbs, opJMP, 3},
		{0x4D, "EOR", addrAbs, opEOR, 4},
		{0x4E, "LSR", addrAbs, opLSR, 6},
		{0x50, "BVC", addrRel, opBVC, 4},
		{0x51, "EOR", addrIndY, opEOR, 6},
		{0x55, "EOR", addrZpgX, opEOR, 4},
		{0x56, "LSR", addrZpgX, opLSR, 6},
		{0x58, "CLI", addrImp, opCLI, 2},
		{0x59, "EOR", addrAbsY, opEOR, 5},
		{0x5D, "EOR", addrAbsX, opEOR, 5},
		{0x5E, "LSR", addrAbsX, opLSR, 7},
		{0x60, "RTS", addrImp, opRTS, 6},
		{0x61, "ADC", addrIndX, opADC, 6},
		{0x65, "ADC", addrZpg, opADC, 3},
		{0x66, "ROR", addrZpg, opROR, 5},
		{0x68, "PLA", addrImp, opPLA, 4},
		{0x69, "ADC", addrImm, opADC, 2},
		{0x6A, "ROR", addrImp, opRORA, 2},
		{0x6C, "JMP", addrInd, opJMP, 5},
		{0x6D, "ADC", addrAbs, opADC, 4},
		{0x6E, "ROR", addrAbs, opROR, 6},
		{0x70, "BVS", addrRel, opBVS, 4},
		{0x71, "ADC", addrIndY, opADC, 6},
		{0x75, "ADC", addrZpgX, opADC, 4},
		{0x76, "ROR", addrZpgX, opROR, 6},
		{0x78, "SEI", addrImp, opSEI, 2},
		{0x79, "ADC", addrAbsY, opADC, 5},
		{0x7D, "ADC", addrAbsX, opADC, 5},
		{0x7E, "ROR", addrAbsX, opROR, 7},
		{0x81, "STA", addrIndX, opSTA, 6},
		{0x84, "STY", addrZpg, opSTY, 3},
		{0x85, "STA", addrZpg, opSTA, 3},
		{0x86, "STX", addrZpg, opSTX, 3},
		{0x88, "DEY", addrImp, opDEY, 2},
		{0x8A, "TXA", addrImp, opTXA, 2},
		{0x8C, "STY", addrAbs, opSTY, 4},
		{0x8D, "STA", addrAbs, opSTA, 4},
		{0x8E, "STX", addrAbs, opSTX, 4},
		{0x90, "BCC", addrRel, opBCC, 4},
		{0x91, "STA", addrIndY, opSTA, 6},
		{0x94, "STY", addrZpgX, opSTY, 4},
		{0x95, "STA", addrZpgX, opSTA, 4},
		{0x96, "STX", addrZpgY, opSTX, 4},
		{0x98, "TYA", addrImp, opTYA, 2},
		{0x99, "STA", addrAbsY, opSTA, 5},
		{0x9A, "TXS", addrImp, opTXS, 2},
		{0x9D, "STA", addrAbsX, opSTA, 5},
		{0xA0, "LDY", addrImm, opLDY, 2},
		{0xA1, "LDA", addrIndX, opLDA, 6},
		{0xA2, "LDX", addrImm, opLDX, 2},
		{0xA4, "LDY", addrZpg, opLDY, 3},
		{0xA5, "LDA", addrZpg, opLDA, 3},
		{0xA6, "LDX", addrZpg, opLDX, 3},
		{0xA8, "TAY", addrImp, opTAY, 2},
		{0xA9, "LDA", addrImm, opLDA, 2},
		{0xAA, "TAX", addrImp, opTAX, 2},
		{0xAC, "LDY", addrAbs, opLDY, 4},
		{0xAD, "LDA", addrAbs, opLDA, 4},
		{0xAE, "LDX", addrAbs, opLDX, 4},
		{0xB0, "BCS", addrRel, opBCS, 4},
		{0xB1, "LDA", addrIndY, opLDA, 6},
		{0xB4, "LDY", addrZpgX, opLDY, 4},
		{0xB5, "LDA", addrZpgX, opLDA, 4},
		{0xB6, "LDX", addrZpgY, opLDX, 4},
		{0xB8, "CLV", addrImp, opCLV, 2},
		{0xB9, "LDA", addrAbsY, opLDA, 5},
		{0xBA, "TSX", addrImp, opTSX, 2},
		{0xBC, "LDY", addrAbsX, opLDY, 5},
		{0xBD, "LDA", addrAbsX, opLDA, 5},
		{0xBE, "LDX", addrAbsY, opLDX, 5},
		{0xC0, "CPY", addrImm, opCPY, 2},
		{0xC1, "CMP", addrIndX, opCMP, 6},
		{0xC4, "CPY", addrZpg, opCPY, 3},
		{0xC5, "CMP", addrZpg, opCMP, 3},
		{0xC6, "DEC", addrZpg, opDEC, 5},
		{0xC8, "INY", addrImp, opINY, 2},
		{0xC9, "CMP", addrImm, opCMP, 2},
		{0xCA, "DEX", addrImp, opDEX, 2},
		{0xCC, "CPY", addrAbs, opCPY, 4},
		{0xCD, "CMP", addrAbs, opCMP, 4},
		{0xCE, "DEC", addrAbs, opDEC, 6},
		{0xD0, "BNE", addrRel, opBNE, 4},
		{0xD1, "CMP", addrIndY, opCMP, 6},
		{0xD5, "CMP", addrZpgX, opCMP, 4},
		{0xD6, "DEC", addrZpgX, opDEC, 6},
		{0xD8, "CLD", addrImp, opCLD, 2},
		{0xD9, "CMP", addrAbsY, opCMP, 5},
		{0xDD, "CMP", addrAbsX, opCMP, 5},
		{0xDE, "DEC", addrAbsX, opDEC, 7},
		{0xE0, "CPX", addrImm, opCPX, 2},
		{0xE1, "SBC", addrIndX, opSBC, 6},
		{0xE4, "CPX", addrZpg, opCPX, 3},
		{0xE5, "SBC", addrZpg, opSBC, 3},
		{0xE6, "INC", addrZpg, opINC, 5},
		{0xE8, "INX", addrImp, opINX, 2},
		{0xE9, "SBC", addrImm, opSBC, 2},
		{0xEA, "NOP", addrImp, opNOP, 2},
		{0xEC, "CPX", addrAbs, opCPX, 4},
		{0xED, "SBC", addrAbs, opSBC, 4},
		{0xEE, "INC", addrAbs, opINC, 6},
		{0xF0, "BEQ", addrRel, opBEQ, 4},
		{0xF1, "SBC", addrIndY, opSBC, 6},
		{0xF5, "SBC", addrZpgX, opSBC, 4},
		{0xF6, "INC", addrZpgX, opINC, 6},
		{0xF8, "SED", addrImp, opSED, 2},
		{0xF9, "SBC", addrAbsY, opSBC, 5},
		{0xFD, "SBC", addrAbsX, opSBC, 5},
		{0xFE, "INC", addrAbsX, opINC, 7},
	} {
		opcodeTable[e.op] = opcode{e.mnemonic, e.addr, e.fn, e.cycles}
	}
}

// Mnemonic returns the documented mnemonic for an opcode byte, or "BAD" for
// any byte this core treats as the fixed-cost undocumented no-op.
func Mnemonic(op uint8) string { return opcodeTable[op].mnemonic }
