package cpu

// opPHA pushes the accumulator.
func opPHA(c *Chip, _ OperandRef) error {
	c.push(c.A)
	return nil
}

// opPLA pulls into the accumulator and updates N, Z.
func opPLA(c *Chip, _ OperandRef) error {
	c.A = c.pull()
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

// opPHP pushes P with B and U forced set, regardless of their current
// internal state.
func opPHP(c *Chip, _ OperandRef) error {
	c.push(c.P | P_BREAK | P_UNUSED)
	return nil
}

// opPLP pulls into P but ignores the stacked B and U bits: B keeps its
// previous value and U is always forced back to 1.
func opPLP(c *Chip, _ OperandRef) error {
	v := c.pull()
	c.P = (c.P & P_BREAK) | (v &^ (P_BREAK | P_UNUSED)) | P_UNUSED
	return nil
}
