package cpu

// Loads: register <- operand; N and Z updated from the loaded value.

func opLDA(c *Chip, ref OperandRef) error {
	c.A = c.read(ref)
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

func opLDX(c *Chip, ref OperandRef) error {
	c.X = c.read(ref)
	c.negativeCheck(c.X)
	c.zeroCheck(c.X)
	return nil
}

func opLDY(c *Chip, ref OperandRef) error {
	c.Y = c.read(ref)
	c.negativeCheck(c.Y)
	c.zeroCheck(c.Y)
	return nil
}

// Stores: operand <- register; flags untouched.

func opSTA(c *Chip, ref OperandRef) error {
	c.write(ref, c.A)
	return nil
}

func opSTX(c *Chip, ref OperandRef) error {
	c.write(ref, c.X)
	return nil
}

func opSTY(c *Chip, ref OperandRef) error {
	c.write(ref, c.Y)
	return nil
}

// Transfers: dst <- src; N and Z updated except TXS which touches no flags.

func opTAX(c *Chip, _ OperandRef) error {
	c.X = c.A
	c.negativeCheck(c.X)
	c.zeroCheck(c.X)
	return nil
}

func opTAY(c *Chip, _ OperandRef) error {
	c.Y = c.A
	c.negativeCheck(c.Y)
	c.zeroCheck(c.Y)
	return nil
}

func opTXA(c *Chip, _ OperandRef) error {
	c.A = c.X
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

func opTYA(c *Chip, _ OperandRef) error {
	c.A = c.Y
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

func opTSX(c *Chip, _ OperandRef) error {
	c.X = c.S
	c.negativeCheck(c.X)
	c.zeroCheck(c.X)
	return nil
}

func opTXS(c *Chip, _ OperandRef) error {
	c.S = c.X
	return nil
}
