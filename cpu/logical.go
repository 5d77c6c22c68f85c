package cpu

// Logical ops: A <- A op operand; N, Z updated.

func opAND(c *Chip, ref OperandRef) error {
	c.A &= c.read(ref)
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

func opORA(c *Chip, ref OperandRef) error {
	c.A |= c.read(ref)
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

func opEOR(c *Chip, ref OperandRef) error {
	c.A ^= c.read(ref)
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

// opBIT sets Z from A&M, and copies bits 7 and 6 of M directly into N and
// V regardless of the result of the AND.
func opBIT(c *Chip, ref OperandRef) error {
	m := c.read(ref)
	c.setFlag(P_ZERO, c.A&m == 0)
	c.setFlag(P_NEGATIVE, m&P_NEGATIVE != 0)
	c.setFlag(P_OVERFLOW, m&P_OVERFLOW != 0)
	return nil
}
