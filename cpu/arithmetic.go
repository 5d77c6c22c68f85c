package cpu

// opADC implements ADC in both binary and BCD mode. In decimal mode N
// and V are computed from the pre-adjust binary sum, the NMOS 6502's
// well documented convention, while Z and the accumulator come from the
// decimal-adjusted result.
func opADC(c *Chip, ref OperandRef) error {
	m := c.read(ref)
	var carryIn uint8
	if c.flag(P_CARRY) {
		carryIn = 1
	}

	if c.flag(P_DECIMAL) {
		binSum := uint16(c.A) + uint16(m) + uint16(carryIn)
		binLow := uint8(binSum)
		c.negativeCheck(binLow)
		c.overflowCheck(c.A, m, binLow)

		al := (c.A & 0x0F) + (m & 0x0F) + carryIn
		if al >= 0x0A {
			al = ((al + 0x06) & 0x0F) + 0x10
		}
		sum := uint16(c.A&0xF0) + uint16(m&0xF0) + uint16(al)
		if sum >= 0xA0 {
			sum += 0x60
		}
		c.carryCheck(sum)
		c.A = uint8(sum)
		c.zeroCheck(c.A)
		return nil
	}

	sum := uint16(c.A) + uint16(m) + uint16(carryIn)
	result := uint8(sum)
	c.carryCheck(sum)
	c.overflowCheck(c.A, m, result)
	c.A = result
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

// opSBC implements SBC in both binary and BCD mode, mirroring opADC: N
// and V are computed from the pre-adjust binary difference (with M
// complemented) and Z and the accumulator from the decimal-adjusted
// result in decimal mode.
func opSBC(c *Chip, ref OperandRef) error {
	m := c.read(ref)
	var carryIn uint8
	if c.flag(P_CARRY) {
		carryIn = 1
	}
	borrow := int16(1 - carryIn)
	binDiff := int16(c.A) - int16(m) - borrow
	binLow := uint8(binDiff)

	if c.flag(P_DECIMAL) {
		c.negativeCheck(binLow)
		c.overflowCheck(c.A, ^m, binLow)

		al := int16(c.A&0x0F) - int16(m&0x0F) - borrow
		if al < 0 {
			al = ((al - 0x06) & 0x0F) - 0x10
		}
		total := int16(c.A&0xF0) - int16(m&0xF0) + al
		if total < 0 {
			total -= 0x60
		}
		c.setFlag(P_CARRY, binDiff >= 0)
		c.A = uint8(total)
		c.zeroCheck(c.A)
		return nil
	}

	c.setFlag(P_CARRY, binDiff >= 0)
	c.overflowCheck(c.A, ^m, binLow)
	c.A = binLow
	c.negativeCheck(c.A)
	c.zeroCheck(c.A)
	return nil
}

// compare implements the shared CMP/CPX/CPY semantics: C <- reg >= m,
// N from bit 7 of (reg - m), Z <- reg == m. V is unaffected.
func compare(c *Chip, reg, m uint8) {
	r := uint16(reg) - uint16(m)
	c.setFlag(P_CARRY, reg >= m)
	c.negativeCheck(uint8(r))
	c.setFlag(P_ZERO, reg == m)
}

func opCMP(c *Chip, ref OperandRef) error {
	compare(c, c.A, c.read(ref))
	return nil
}

func opCPX(c *Chip, ref OperandRef) error {
	compare(c, c.X, c.read(ref))
	return nil
}

func opCPY(c *Chip, ref OperandRef) error {
	compare(c, c.Y, c.read(ref))
	return nil
}
