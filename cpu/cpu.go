// Package cpu implements the core of a MOS Technology 6502 emulator: the
// register file, processor status, addressing-mode resolver, the 56 legal
// opcode handlers (including BCD arithmetic) and the 256-entry decoder
// table, driven by a small fetch-decode-execute loop.
//
// Only the documented NMOS 6502 instruction set is implemented. Bytes that
// don't correspond to a documented opcode resolve to a trap handler (see
// decode.go) rather than emulating any undocumented behavior.
package cpu

import (
	"fmt"
	"log"

	"github.com/arnholt/go6502/memory"
)

// CPUType enumerates the variant of 65xx processor being emulated. Only
// CPU_NMOS is implemented; the field exists (mirroring the construction
// pattern of larger multi-variant emulators) so a CMOS/Ricoh variant could
// be added later without reshaping ChipDef or Init's call sites.
type CPUType int

const (
	CPU_UNIMPLEMENTED CPUType = iota // zero value is never valid
	CPU_NMOS                         // the only implemented variant: documented NMOS 6502 opcodes
	CPU_MAX                          // end of valid enumeration
)

// Status flag bit masks, high bit to low: N V U B D I Z C.
const (
	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_UNUSED    = uint8(0x20) // always reads as 1
	P_BREAK     = uint8(0x10) // only meaningful as pushed onto the stack
	P_DECIMAL   = uint8(0x08)
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)
)

// Reset and IRQ/BRK vector addresses.
const (
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)
)

// InvalidCPUState indicates the emulator was asked to do something that
// should be impossible given a well-formed Chip (e.g. an out of range
// CPUType at construction). It is never returned for a legal program
// sequence, including jumps into uninitialized memory.
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// Chip is a single 6502 CPU instance: register file, processor status and
// a reference to the memory it's wired to. It is not safe for concurrent
// use; independent Chip values are fully independent of one another.
type Chip struct {
	A  uint8  // accumulator
	X  uint8  // index register X
	Y  uint8  // index register Y
	S  uint8  // stack pointer (effective address is 0x0100 | S)
	P  uint8  // processor status
	PC uint16 // program counter

	cpuType CPUType
	ram     memory.Bank
	logger  *log.Logger // optional diagnostic sink for illegal-opcode traps

	op   uint8  // opcode byte of the instruction currently executing
	opPC uint16 // PC at which op was fetched
}

// ChipDef configures a new Chip.
type ChipDef struct {
	// Cpu selects the processor variant. Must be CPU_NMOS.
	Cpu CPUType
	// Ram is the memory this CPU reads and writes.
	Ram memory.Bank
	// Logger, if non-nil, receives a line for every illegal-opcode trap,
	// reported as a side channel alongside the returned error.
	Logger *log.Logger
}

// Init constructs a Chip in its reset state. Ram must already be
// populated with whatever program image and vectors the caller wants;
// Init does not load anything itself.
func Init(def *ChipDef) (*Chip, error) {
	if def.Cpu <= CPU_UNIMPLEMENTED || def.Cpu >= CPU_MAX {
		return nil, InvalidCPUState{Reason: fmt.Sprintf("CPU type %d is invalid", def.Cpu)}
	}
	if def.Ram == nil {
		return nil, InvalidCPUState{Reason: "Ram must not be nil"}
	}
	c := &Chip{
		cpuType: def.Cpu,
		ram:     def.Ram,
		logger:  def.Logger,
	}
	c.Reset()
	return c, nil
}

// Reset restores the documented post-reset state: A=X=Y=0, SP=0xFD,
// P=0x24 (U and I set), and PC loaded from the reset vector. Memory
// contents are left untouched.
func (c *Chip) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = P_UNUSED | P_INTERRUPT
	lo := uint16(c.ram.Read(RESET_VECTOR))
	hi := uint16(c.ram.Read(RESET_VECTOR + 1))
	c.PC = lo | hi<<8
}

// Load copies data into memory starting at dest. Bytes that would land
// past 0xFFFF are dropped rather than wrapping to address 0. The caller
// is responsible for also writing the reset vector if it wants to direct
// where execution starts.
func (c *Chip) Load(data []byte, dest uint16) {
	for i, b := range data {
		addr := int(dest) + i
		if addr > 0xFFFF {
			break
		}
		c.ram.Write(uint16(addr), b)
	}
}

// Step fetches, decodes and executes exactly one instruction, advancing
// PC by however many bytes the addressing mode and opcode consume (or
// setting it directly for jumps/calls/returns/taken branches).
//
// An illegal opcode does not halt the CPU: it's logged via the optional
// diagnostic logger and an IllegalOpcode error is returned, but PC has
// already moved past the offending byte and the next Step call proceeds
// normally.
func (c *Chip) Step() error {
	c.opPC = c.PC
	c.op = c.ram.Read(c.PC)
	c.PC++

	inst := decodeTable[c.op]
	ref := inst.Mode(c)
	return inst.Handler(c, ref)
}

// Run executes exactly n instructions via repeated Step calls. It does
// not stop early on an illegal-opcode trap (that's a logged, recoverable
// event); it returns the most recent non-nil error encountered, if any,
// purely for diagnostics.
func (c *Chip) Run(n uint16) error {
	var last error
	for i := uint16(0); i < n; i++ {
		if err := c.Step(); err != nil {
			last = err
		}
	}
	return last
}

// GetA returns the accumulator.
func (c *Chip) GetA() uint8 { return c.A }

// SetA sets the accumulator.
func (c *Chip) SetA(v uint8) { c.A = v }

// GetX returns the X index register.
func (c *Chip) GetX() uint8 { return c.X }

// SetX sets the X index register.
func (c *Chip) SetX(v uint8) { c.X = v }

// GetY returns the Y index register.
func (c *Chip) GetY() uint8 { return c.Y }

// SetY sets the Y index register.
func (c *Chip) SetY(v uint8) { c.Y = v }

// GetSP returns the stack pointer.
func (c *Chip) GetSP() uint8 { return c.S }

// SetSP sets the stack pointer.
func (c *Chip) SetSP(v uint8) { c.S = v }

// GetPC returns the program counter.
func (c *Chip) GetPC() uint16 { return c.PC }

// SetPC sets the program counter.
func (c *Chip) SetPC(v uint16) { c.PC = v }

// GetStatus returns the processor status byte, with the unused bit
// always forced to 1 regardless of internal state.
func (c *Chip) GetStatus() uint8 { return c.P | P_UNUSED }

// SetStatus loads the processor status byte. The unused bit is always
// forced to 1; writes to it are silently ignored.
func (c *Chip) SetStatus(v uint8) { c.P = v | P_UNUSED }

// GetMemory returns the byte at addr.
func (c *Chip) GetMemory(addr uint16) uint8 { return c.ram.Read(addr) }

// SetMemory writes val at addr.
func (c *Chip) SetMemory(addr uint16, val uint8) { c.ram.Write(addr, val) }

// push stores val at the stack address and decrements S, wrapping within
// page 1 when S underflows.
func (c *Chip) push(val uint8) {
	c.ram.Write(0x0100|uint16(c.S), val)
	c.S--
}

// pull increments S, wrapping within page 1, and returns the byte at the
// resulting stack address.
func (c *Chip) pull() uint8 {
	c.S++
	return c.ram.Read(0x0100 | uint16(c.S))
}

// zeroCheck sets or clears P_ZERO based on reg.
func (c *Chip) zeroCheck(reg uint8) {
	c.P &^= P_ZERO
	if reg == 0 {
		c.P |= P_ZERO
	}
}

// negativeCheck sets or clears P_NEGATIVE from bit 7 of reg.
func (c *Chip) negativeCheck(reg uint8) {
	c.P &^= P_NEGATIVE
	if reg&P_NEGATIVE != 0 {
		c.P |= P_NEGATIVE
	}
}

// carryCheck sets P_CARRY if the 16-bit ALU result res represents a carry
// out of bit 7 (res >= 0x100).
func (c *Chip) carryCheck(res uint16) {
	c.P &^= P_CARRY
	if res >= 0x100 {
		c.P |= P_CARRY
	}
}

// overflowCheck sets P_OVERFLOW when adding reg and arg produced a result
// whose sign both operands' signs disagree with (signed overflow), per
// http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html.
func (c *Chip) overflowCheck(reg, arg, res uint8) {
	c.P &^= P_OVERFLOW
	if (reg^res)&(arg^res)&0x80 != 0 {
		c.P |= P_OVERFLOW
	}
}

// setFlag sets or clears a single status bit per cond.
func (c *Chip) setFlag(mask uint8, cond bool) {
	if cond {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

// flag reports whether a status bit is set.
func (c *Chip) flag(mask uint8) bool {
	return c.P&mask != 0
}

// logf writes a diagnostic line if a logger was configured.
func (c *Chip) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
