package cpu

// Flag instructions each set or clear exactly one status bit. There is
// no SEV: overflow can only be cleared explicitly, never set by a flag
// instruction.

func opCLC(c *Chip, _ OperandRef) error { c.P &^= P_CARRY; return nil }
func opSEC(c *Chip, _ OperandRef) error { c.P |= P_CARRY; return nil }
func opCLD(c *Chip, _ OperandRef) error { c.P &^= P_DECIMAL; return nil }
func opSED(c *Chip, _ OperandRef) error { c.P |= P_DECIMAL; return nil }
func opCLI(c *Chip, _ OperandRef) error { c.P &^= P_INTERRUPT; return nil }
func opSEI(c *Chip, _ OperandRef) error { c.P |= P_INTERRUPT; return nil }
func opCLV(c *Chip, _ OperandRef) error { c.P &^= P_OVERFLOW; return nil }

// opNOP has no effect; the only thing it consumes is the PC advance
// already done by fetch.
func opNOP(c *Chip, _ OperandRef) error { return nil }
