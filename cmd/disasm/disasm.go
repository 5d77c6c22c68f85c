// disasm walks a loaded memory image and prints one line per decoded
// instruction, using the cpu package's decoder-table mnemonic metadata.
// It does not interpret control flow: like the teacher's disassemble
// package, a JMP/branch target in the stream disassembles as whatever
// bytes happen to sit there next, straight-line.
//
// This is the "disassembler front-end" spec.md scopes out of the core:
// it drives the real addressing-mode resolvers on a scratch Chip wired
// to the image (which only read memory and advance PC, never write) so
// its output can never drift from what Step itself would do.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/arnholt/go6502/cpu"
	"github.com/arnholt/go6502/memory"
)

var (
	loadAddr = flag.Uint("load_addr", 0x0000, "address to load the image at")
	startPC  = flag.Uint("start_pc", 0x0000, "address to start disassembling from")
	count    = flag.Uint("count", 32, "number of instructions to disassemble")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s [flags] <image-file>", os.Args[0])
	}
	if *loadAddr > 0xFFFF || *startPC > 0xFFFF {
		log.Fatal("--load_addr/--start_pc out of range. Must be between 0-65535")
	}

	fn := flag.Args()[0]
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("can't open %s: %v", fn, err)
	}

	ram := memory.NewRAM()
	scratch, err := cpu.Init(&cpu.ChipDef{Cpu: cpu.CPU_NMOS, Ram: ram})
	if err != nil {
		log.Fatalf("can't init CPU: %v", err)
	}
	scratch.Load(b, uint16(*loadAddr))

	pc := uint16(*startPC)
	for i := uint(0); i < *count; i++ {
		op := scratch.GetMemory(pc)
		inst := cpu.Decode(op)

		scratch.SetPC(pc + 1)
		ref := inst.Mode(scratch)
		next := scratch.GetPC()

		fmt.Printf("%.4X: %s\n", pc, format(inst.Mnemonic, ref, next))
		pc = next
	}
}

// format renders a mnemonic and its resolved operand the way a 6502
// assembly listing would, independent of how many bytes it consumed.
func format(mnemonic string, ref cpu.OperandRef, next uint16) string {
	switch ref.Kind {
	case cpu.OperandAccumulator:
		return fmt.Sprintf("%s A", mnemonic)
	case cpu.OperandImmediate:
		return fmt.Sprintf("%s #$%.2X", mnemonic, ref.Value)
	case cpu.OperandMemory:
		return fmt.Sprintf("%s $%.4X", mnemonic, ref.Addr)
	case cpu.OperandRelative:
		return fmt.Sprintf("%s $%.2X (-> $%.4X)", mnemonic, uint8(ref.Offset), uint16(int32(next)+int32(ref.Offset)))
	default:
		return mnemonic
	}
}
