package cpu

// opINC/opDEC target memory; the register inc/dec variants target a
// register directly. All update N and Z from the new value.

func opINC(c *Chip, ref OperandRef) error {
	v := c.read(ref) + 1
	c.write(ref, v)
	c.negativeCheck(v)
	c.zeroCheck(v)
	return nil
}

func opDEC(c *Chip, ref OperandRef) error {
	v := c.read(ref) - 1
	c.write(ref, v)
	c.negativeCheck(v)
	c.zeroCheck(v)
	return nil
}

func opINX(c *Chip, _ OperandRef) error {
	c.X++
	c.negativeCheck(c.X)
	c.zeroCheck(c.X)
	return nil
}

func opDEX(c *Chip, _ OperandRef) error {
	c.X--
	c.negativeCheck(c.X)
	c.zeroCheck(c.X)
	return nil
}

func opINY(c *Chip, _ OperandRef) error {
	c.Y++
	c.negativeCheck(c.Y)
	c.zeroCheck(c.Y)
	return nil
}

func opDEY(c *Chip, _ OperandRef) error {
	c.Y--
	c.negativeCheck(c.Y)
	c.zeroCheck(c.Y)
	return nil
}
