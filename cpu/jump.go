package cpu

// opJMP sets PC directly to the resolved operand address. The same
// handler serves both absolute and indirect JMP: the addressing-mode
// resolver (addrAbsolute or addrIndirect) has already done the work of
// computing the final target, including the indirect page-boundary bug.
func opJMP(c *Chip, ref OperandRef) error {
	c.PC = ref.Addr
	return nil
}

// opJSR pushes the address of the last byte of the JSR instruction
// (PC-1, since the addressing mode has already advanced PC past the
// 2-byte target) high byte first, then jumps to the target.
func opJSR(c *Chip, ref OperandRef) error {
	ret := c.PC - 1
	c.push(uint8(ret >> 8))
	c.push(uint8(ret))
	c.PC = ref.Addr
	return nil
}

// opRTS pops a return address (low byte first) and resumes at addr+1,
// undoing JSR's PC-1 push.
func opRTS(c *Chip, _ OperandRef) error {
	lo := c.pull()
	hi := c.pull()
	c.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	return nil
}

// opBRK pushes the return address (PC+1, skipping the padding byte that
// follows the BRK opcode), then P with B and U forced set, sets I, and
// jumps through the IRQ/BRK vector.
func opBRK(c *Chip, _ OperandRef) error {
	ret := c.PC + 1
	c.push(uint8(ret >> 8))
	c.push(uint8(ret))
	c.push(c.P | P_BREAK | P_UNUSED)
	c.P |= P_INTERRUPT
	lo := uint16(c.ram.Read(IRQ_VECTOR))
	hi := uint16(c.ram.Read(IRQ_VECTOR + 1))
	c.PC = lo | hi<<8
	return nil
}

// opRTI pops P (ignoring the stacked B and U bits, per spec.md §4.3),
// then pops PC directly (no +1, unlike RTS).
func opRTI(c *Chip, _ OperandRef) error {
	v := c.pull()
	c.P = (c.P & P_BREAK) | (v &^ (P_BREAK | P_UNUSED)) | P_UNUSED
	lo := c.pull()
	hi := c.pull()
	c.PC = uint16(hi)<<8 | uint16(lo)
	return nil
}
