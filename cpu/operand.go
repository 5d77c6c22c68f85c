package cpu

// OperandKind tags which variant of OperandRef is populated, replacing
// a raw-pointer operand with a small tagged sum.
type OperandKind int

const (
	OperandAccumulator OperandKind = iota
	OperandMemory
	OperandImmediate
	OperandImplied
	OperandRelative
)

// OperandRef is what an addressing-mode resolver hands to an opcode
// handler: either the accumulator, a memory address, an immediate byte,
// nothing (implied), or a signed branch offset.
type OperandRef struct {
	Kind   OperandKind
	Addr   uint16 // valid when Kind == OperandMemory
	Value  uint8  // valid when Kind == OperandImmediate
	Offset int8   // valid when Kind == OperandRelative
}

// read dereferences an operand for instructions that consume a value.
// Implied and Relative operands are never read by a correctly wired
// handler; reading one is a programmer error and yields 0.
func (c *Chip) read(ref OperandRef) uint8 {
	switch ref.Kind {
	case OperandAccumulator:
		return c.A
	case OperandMemory:
		return c.ram.Read(ref.Addr)
	case OperandImmediate:
		return ref.Value
	default:
		c.logf("read of non-readable operand kind %d at PC %#04x", ref.Kind, c.opPC)
		return 0
	}
}

// write stores a value through an operand for instructions that mutate
// their target. Writing through Immediate/Implied/Relative is a
// programmer error and is a no-op beyond the diagnostic.
func (c *Chip) write(ref OperandRef, val uint8) {
	switch ref.Kind {
	case OperandAccumulator:
		c.A = val
	case OperandMemory:
		c.ram.Write(ref.Addr, val)
	default:
		c.logf("write to non-writable operand kind %d at PC %#04x", ref.Kind, c.opPC)
	}
}

// AddrMode resolves an addressing mode: it consumes however many operand
// bytes that mode needs from the instruction stream (advancing c.PC past
// them) and returns the resulting operand reference.
type AddrMode func(c *Chip) OperandRef

// addrAccumulator implements ACC: the operand is the accumulator itself,
// no bytes consumed.
func addrAccumulator(c *Chip) OperandRef {
	return OperandRef{Kind: OperandAccumulator}
}

// addrImplied implements IMP: no operand, no bytes consumed.
func addrImplied(c *Chip) OperandRef {
	return OperandRef{Kind: OperandImplied}
}

// addrImmediate implements IMM: the byte right after the opcode is the
// operand value itself.
func addrImmediate(c *Chip) OperandRef {
	v := c.ram.Read(c.PC)
	c.PC++
	return OperandRef{Kind: OperandImmediate, Value: v}
}

// addrRelative implements REL: the byte after the opcode is a signed
// 8-bit branch offset.
func addrRelative(c *Chip) OperandRef {
	v := c.ram.Read(c.PC)
	c.PC++
	return OperandRef{Kind: OperandRelative, Offset: int8(v)}
}

// addrZeroPage implements ZPG: a single byte is the address, high byte
// implicitly zero.
func addrZeroPage(c *Chip) OperandRef {
	addr := uint16(c.ram.Read(c.PC))
	c.PC++
	return OperandRef{Kind: OperandMemory, Addr: addr}
}

// addrZeroPageX implements ZPX: the zero-page address is offset by X,
// wrapping within the zero page.
func addrZeroPageX(c *Chip) OperandRef {
	b1 := c.ram.Read(c.PC)
	c.PC++
	return OperandRef{Kind: OperandMemory, Addr: uint16(b1 + c.X)}
}

// addrZeroPageY implements ZPY: as ZPX but offset by Y. Only used by
// LDX/STX.
func addrZeroPageY(c *Chip) OperandRef {
	b1 := c.ram.Read(c.PC)
	c.PC++
	return OperandRef{Kind: OperandMemory, Addr: uint16(b1 + c.Y)}
}

// addrAbsolute implements ABS: a little-endian 16-bit address follows
// the opcode.
func addrAbsolute(c *Chip) OperandRef {
	lo := uint16(c.ram.Read(c.PC))
	hi := uint16(c.ram.Read(c.PC + 1))
	c.PC += 2
	return OperandRef{Kind: OperandMemory, Addr: lo | hi<<8}
}

// addrAbsoluteX implements AIX: absolute address plus X, wrapping at 16
// bits.
func addrAbsoluteX(c *Chip) OperandRef {
	lo := uint16(c.ram.Read(c.PC))
	hi := uint16(c.ram.Read(c.PC + 1))
	c.PC += 2
	return OperandRef{Kind: OperandMemory, Addr: (lo | hi<<8) + uint16(c.X)}
}

// addrAbsoluteY implements AIY: absolute address plus Y, wrapping at 16
// bits.
func addrAbsoluteY(c *Chip) OperandRef {
	lo := uint16(c.ram.Read(c.PC))
	hi := uint16(c.ram.Read(c.PC + 1))
	c.PC += 2
	return OperandRef{Kind: OperandMemory, Addr: (lo | hi<<8) + uint16(c.Y)}
}

// addrIndexedIndirect implements IIX, (d,x): the zero-page pointer is
// computed as (B1+X) wrapped in the zero page, and both bytes of the
// pointer it holds are also read from the zero page (wrapping).
func addrIndexedIndirect(c *Chip) OperandRef {
	b1 := c.ram.Read(c.PC)
	c.PC++
	ptr := b1 + c.X
	lo := uint16(c.ram.Read(uint16(ptr)))
	hi := uint16(c.ram.Read(uint16(ptr + 1)))
	return OperandRef{Kind: OperandMemory, Addr: lo | hi<<8}
}

// addrIndirectIndexed implements IIY, (d),y: a zero-page pointer (whose
// own bytes wrap within the zero page) is read, then Y is added to the
// resulting 16-bit address with 16-bit wraparound.
func addrIndirectIndexed(c *Chip) OperandRef {
	b1 := c.ram.Read(c.PC)
	c.PC++
	lo := uint16(c.ram.Read(uint16(b1)))
	hi := uint16(c.ram.Read(uint16(b1 + 1)))
	base := lo | hi<<8
	return OperandRef{Kind: OperandMemory, Addr: base + uint16(c.Y)}
}

// addrIndirect implements IND (JMP only): a little-endian pointer follows
// the opcode; the target address is read from that pointer. Reproduces
// the hardware page-boundary bug exactly: if the pointer's low byte is
// 0xFF, the high byte of the target is fetched from the start of the
// same page rather than the next one.
func addrIndirect(c *Chip) OperandRef {
	ptrLo := c.ram.Read(c.PC)
	ptrHi := c.ram.Read(c.PC + 1)
	c.PC += 2
	ptr := uint16(ptrLo) | uint16(ptrHi)<<8

	lo := c.ram.Read(ptr)
	var hiAddr uint16
	if ptrLo == 0xFF {
		hiAddr = uint16(ptrHi) << 8
	} else {
		hiAddr = ptr + 1
	}
	hi := c.ram.Read(hiAddr)
	return OperandRef{Kind: OperandMemory, Addr: uint16(lo) | uint16(hi)<<8}
}
