package cpu

// branch applies a relative operand to PC when cond holds. PC has
// already been advanced past the branch instruction's operand byte by
// the time this runs, so the offset is added to that already-advanced
// value, wrapping mod 2^16.
func branch(c *Chip, cond bool, ref OperandRef) error {
	if cond {
		c.PC = uint16(int32(c.PC) + int32(ref.Offset))
	}
	return nil
}

func opBPL(c *Chip, ref OperandRef) error { return branch(c, !c.flag(P_NEGATIVE), ref) }
func opBMI(c *Chip, ref OperandRef) error { return branch(c, c.flag(P_NEGATIVE), ref) }
func opBVC(c *Chip, ref OperandRef) error { return branch(c, !c.flag(P_OVERFLOW), ref) }
func opBVS(c *Chip, ref OperandRef) error { return branch(c, c.flag(P_OVERFLOW), ref) }
func opBCC(c *Chip, ref OperandRef) error { return branch(c, !c.flag(P_CARRY), ref) }
func opBCS(c *Chip, ref OperandRef) error { return branch(c, c.flag(P_CARRY), ref) }
func opBNE(c *Chip, ref OperandRef) error { return branch(c, !c.flag(P_ZERO), ref) }
func opBEQ(c *Chip, ref OperandRef) error { return branch(c, c.flag(P_ZERO), ref) }
