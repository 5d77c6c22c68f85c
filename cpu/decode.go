package cpu

import "fmt"

// Handler executes the semantic effect of one opcode given its already
// resolved operand.
type Handler func(c *Chip, ref OperandRef) error

// Instruction is a frozen decoder-table entry: everything Step needs to
// run one opcode byte.
type Instruction struct {
	Mnemonic string
	Mode     AddrMode
	Handler  Handler
}

// IllegalOpcode is returned by Step (and logged, if a logger was
// configured) when the fetched byte doesn't correspond to any documented
// NMOS 6502 opcode. It is a distinct, non-halting observable: PC has
// already advanced past the offending byte by the time this is returned.
type IllegalOpcode struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}

// illegalInstruction is decodeTable's entry for every one of the 105
// bytes that aren't a documented legal opcode. Undocumented/illegal
// opcode behaviors are not emulated; they trap instead.
var illegalInstruction = Instruction{
	Mnemonic: "???",
	Mode:     addrImplied,
	Handler:  illegalHandler,
}

func illegalHandler(c *Chip, _ OperandRef) error {
	err := IllegalOpcode{Opcode: c.op, PC: c.opPC}
	c.logf("%s", err.Error())
	return err
}

// decodeTable maps every one of the 256 possible opcode bytes to its
// (mnemonic, addressing mode, handler). Decoding is total: every entry is
// defined, defaulting to illegalInstruction.
var decodeTable [256]Instruction

// Decode returns the decoder-table entry for an opcode byte. It's exposed
// so host-level tools (e.g. a disassembler) can walk a program image
// without reaching into cpu package internals.
func Decode(op uint8) Instruction {
	return decodeTable[op]
}

func init() {
	for i := range decodeTable {
		decodeTable[i] = illegalInstruction
	}

	set := func(op uint8, mnemonic string, mode AddrMode, handler Handler) {
		decodeTable[op] = Instruction{Mnemonic: mnemonic, Mode: mode, Handler: handler}
	}

	// 0x00-0x0F
	set(0x00, "BRK", addrImplied, opBRK)
	set(0x01, "ORA", addrIndexedIndirect, opORA)
	set(0x05, "ORA", addrZeroPage, opORA)
	set(0x06, "ASL", addrZeroPage, opASL)
	set(0x08, "PHP", addrImplied, opPHP)
	set(0x09, "ORA", addrImmediate, opORA)
	set(0x0A, "ASL", addrAccumulator, opASL)
	set(0x0D, "ORA", addrAbsolute, opORA)
	set(0x0E, "ASL", addrAbsolute, opASL)

	// 0x10-0x1F
	set(0x10, "BPL", addrRelative, opBPL)
	set(0x11, "ORA", addrIndirectIndexed, opORA)
	set(0x15, "ORA", addrZeroPageX, opORA)
	set(0x16, "ASL", addrZeroPageX, opASL)
	set(0x18, "CLC", addrImplied, opCLC)
	set(0x19, "ORA", addrAbsoluteY, opORA)
	set(0x1D, "ORA", addrAbsoluteX, opORA)
	set(0x1E, "ASL", addrAbsoluteX, opASL)

	// 0x20-0x2F
	set(0x20, "JSR", addrAbsolute, opJSR)
	set(0x21, "AND", addrIndexedIndirect, opAND)
	set(0x24, "BIT", addrZeroPage, opBIT)
	set(0x25, "AND", addrZeroPage, opAND)
	set(0x26, "ROL", addrZeroPage, opROL)
	set(0x28, "PLP", addrImplied, opPLP)
	set(0x29, "AND", addrImmediate, opAND)
	set(0x2A, "ROL", addrAccumulator, opROL)
	set(0x2C, "BIT", addrAbsolute, opBIT)
	set(0x2D, "AND", addrAbsolute, opAND)
	set(0x2E, "ROL", addrAbsolute, opROL)

	// 0x30-0x3F
	set(0x30, "BMI", addrRelative, opBMI)
	set(0x31, "AND", addrIndirectIndexed, opAND)
	set(0x35, "AND", addrZeroPageX, opAND)
	set(0x36, "ROL", addrZeroPageX, opROL)
	set(0x38, "SEC", addrImplied, opSEC)
	set(0x39, "AND", addrAbsoluteY, opAND)
	set(0x3D, "AND", addrAbsoluteX, opAND)
	set(0x3E, "ROL", addrAbsoluteX, opROL)

	// 0x40-0x4F
	set(0x40, "RTI", addrImplied, opRTI)
	set(0x41, "EOR", addrIndexedIndirect, opEOR)
	set(0x45, "EOR", addrZeroPage, opEOR)
	set(0x46, "LSR", addrZeroPage, opLSR)
	set(0x48, "PHA", addrImplied, opPHA)
	set(0x49, "EOR", addrImmediate, opEOR)
	set(0x4A, "LSR", addrAccumulator, opLSR)
	set(0x4C, "JMP", addrAbsolute, opJMP)
	set(0x4D, "EOR", addrAbsolute, opEOR)
	set(0x4E, "LSR", addrAbsolute, opLSR)

	// 0x50-0x5F
	set(0x50, "BVC", addrRelative, opBVC)
	set(0x51, "EOR", addrIndirectIndexed, opEOR)
	set(0x55, "EOR", addrZeroPageX, opEOR)
	set(0x56, "LSR", addrZeroPageX, opLSR)
	set(0x58, "CLI", addrImplied, opCLI)
	set(0x59, "EOR", addrAbsoluteY, opEOR)
	set(0x5D, "EOR", addrAbsoluteX, opEOR)
	set(0x5E, "LSR", addrAbsoluteX, opLSR)

	// 0x60-0x6F
	set(0x60, "RTS", addrImplied, opRTS)
	set(0x61, "ADC", addrIndexedIndirect, opADC)
	set(0x65, "ADC", addrZeroPage, opADC)
	set(0x66, "ROR", addrZeroPage, opROR)
	set(0x68, "PLA", addrImplied, opPLA)
	set(0x69, "ADC", addrImmediate, opADC)
	set(0x6A, "ROR", addrAccumulator, opROR)
	set(0x6C, "JMP", addrIndirect, opJMP)
	set(0x6D, "ADC", addrAbsolute, opADC)
	set(0x6E, "ROR", addrAbsolute, opROR)

	// 0x70-0x7F
	set(0x70, "BVS", addrRelative, opBVS)
	set(0x71, "ADC", addrIndirectIndexed, opADC)
	set(0x75, "ADC", addrZeroPageX, opADC)
	set(0x76, "ROR", addrZeroPageX, opROR)
	set(0x78, "SEI", addrImplied, opSEI)
	set(0x79, "ADC", addrAbsoluteY, opADC)
	set(0x7D, "ADC", addrAbsoluteX, opADC)
	set(0x7E, "ROR", addrAbsoluteX, opROR)

	// 0x80-0x8F
	set(0x81, "STA", addrIndexedIndirect, opSTA)
	set(0x84, "STY", addrZeroPage, opSTY)
	set(0x85, "STA", addrZeroPage, opSTA)
	set(0x86, "STX", addrZeroPage, opSTX)
	set(0x88, "DEY", addrImplied, opDEY)
	set(0x8A, "TXA", addrImplied, opTXA)
	set(0x8C, "STY", addrAbsolute, opSTY)
	set(0x8D, "STA", addrAbsolute, opSTA)
	set(0x8E, "STX", addrAbsolute, opSTX)

	// 0x90-0x9F
	set(0x90, "BCC", addrRelative, opBCC)
	set(0x91, "STA", addrIndirectIndexed, opSTA)
	set(0x94, "STY", addrZeroPageX, opSTY)
	set(0x95, "STA", addrZeroPageX, opSTA)
	set(0x96, "STX", addrZeroPageY, opSTX)
	set(0x98, "TYA", addrImplied, opTYA)
	set(0x99, "STA", addrAbsoluteY, opSTA)
	set(0x9A, "TXS", addrImplied, opTXS)
	set(0x9D, "STA", addrAbsoluteX, opSTA)

	// 0xA0-0xAF
	set(0xA0, "LDY", addrImmediate, opLDY)
	set(0xA1, "LDA", addrIndexedIndirect, opLDA)
	set(0xA2, "LDX", addrImmediate, opLDX)
	set(0xA4, "LDY", addrZeroPage, opLDY)
	set(0xA5, "LDA", addrZeroPage, opLDA)
	set(0xA6, "LDX", addrZeroPage, opLDX)
	set(0xA8, "TAY", addrImplied, opTAY)
	set(0xA9, "LDA", addrImmediate, opLDA)
	set(0xAA, "TAX", addrImplied, opTAX)
	set(0xAC, "LDY", addrAbsolute, opLDY)
	set(0xAD, "LDA", addrAbsolute, opLDA)
	set(0xAE, "LDX", addrAbsolute, opLDX)

	// 0xB0-0xBF
	set(0xB0, "BCS", addrRelative, opBCS)
	set(0xB1, "LDA", addrIndirectIndexed, opLDA)
	set(0xB4, "LDY", addrZeroPageX, opLDY)
	set(0xB5, "LDA", addrZeroPageX, opLDA)
	set(0xB6, "LDX", addrZeroPageY, opLDX)
	set(0xB8, "CLV", addrImplied, opCLV)
	set(0xB9, "LDA", addrAbsoluteY, opLDA)
	set(0xBA, "TSX", addrImplied, opTSX)
	set(0xBC, "LDY", addrAbsoluteX, opLDY)
	set(0xBD, "LDA", addrAbsoluteX, opLDA)
	set(0xBE, "LDX", addrAbsoluteY, opLDX)

	// 0xC0-0xCF
	set(0xC0, "CPY", addrImmediate, opCPY)
	set(0xC1, "CMP", addrIndexedIndirect, opCMP)
	set(0xC4, "CPY", addrZeroPage, opCPY)
	set(0xC5, "CMP", addrZeroPage, opCMP)
	set(0xC6, "DEC", addrZeroPage, opDEC)
	set(0xC8, "INY", addrImplied, opINY)
	set(0xC9, "CMP", addrImmediate, opCMP)
	set(0xCA, "DEX", addrImplied, opDEX)
	set(0xCC, "CPY", addrAbsolute, opCPY)
	set(0xCD, "CMP", addrAbsolute, opCMP)
	set(0xCE, "DEC", addrAbsolute, opDEC)

	// 0xD0-0xDF
	set(0xD0, "BNE", addrRelative, opBNE)
	set(0xD1, "CMP", addrIndirectIndexed, opCMP)
	set(0xD5, "CMP", addrZeroPageX, opCMP)
	set(0xD6, "DEC", addrZeroPageX, opDEC)
	set(0xD8, "CLD", addrImplied, opCLD)
	set(0xD9, "CMP", addrAbsoluteY, opCMP)
	set(0xDD, "CMP", addrAbsoluteX, opCMP)
	set(0xDE, "DEC", addrAbsoluteX, opDEC)

	// 0xE0-0xEF
	set(0xE0, "CPX", addrImmediate, opCPX)
	set(0xE1, "SBC", addrIndexedIndirect, opSBC)
	set(0xE4, "CPX", addrZeroPage, opCPX)
	set(0xE5, "SBC", addrZeroPage, opSBC)
	set(0xE6, "INC", addrZeroPage, opINC)
	set(0xE8, "INX", addrImplied, opINX)
	set(0xE9, "SBC", addrImmediate, opSBC)
	set(0xEA, "NOP", addrImplied, opNOP)
	set(0xEC, "CPX", addrAbsolute, opCPX)
	set(0xED, "SBC", addrAbsolute, opSBC)
	set(0xEE, "INC", addrAbsolute, opINC)

	// 0xF0-0xFF
	set(0xF0, "BEQ", addrRelative, opBEQ)
	set(0xF1, "SBC", addrIndirectIndexed, opSBC)
	set(0xF5, "SBC", addrZeroPageX, opSBC)
	set(0xF6, "INC", addrZeroPageX, opINC)
	set(0xF8, "SED", addrImplied, opSED)
	set(0xF9, "SBC", addrAbsoluteY, opSBC)
	set(0xFD, "SBC", addrAbsoluteX, opSBC)
	set(0xFE, "INC", addrAbsoluteX, opINC)
}
