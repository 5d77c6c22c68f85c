// romload reads a raw binary memory image from the filesystem, loads it
// into a fresh 6502 Chip and runs it for a bounded instruction count,
// printing final register state.
//
// This is the "ROM loading from the host filesystem" collaborator
// spec.md places outside the emulator core: it talks to the core only
// through Chip's Load/Reset/Run/accessor methods.
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
	loadAddr   = flag.Uint("load_addr", 0x0000, "address to load the image at")
	resetVec   = flag.Int("reset_vector", -1, "override the reset vector to this address; -1 leaves whatever the image itself sets at 0xFFFC/FFFD")
	steps      = flag.Uint("steps", 1, "number of instructions to run via Chip.Run")
	verboseLog = flag.Bool("verbose", false, "log illegal-opcode traps to stderr as they occur")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s [flags] <image-file>", os.Args[0])
	}
	if *loadAddr > 0xFFFF {
		log.Fatal("--load_addr out of range. Must be between 0-65535")
	}

	fn := flag.Args()[0]
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("can't open %s: %v", fn, err)
	}

	ram := memory.NewRAM()
	var logger *log.Logger
	if *verboseLog {
		logger = log.New(os.Stderr, "romload: ", log.LstdFlags)
	}
	c, err := cpu.Init(&cpu.ChipDef{Cpu: cpu.CPU_NMOS, Ram: ram, Logger: logger})
	if err != nil {
		log.Fatalf("can't init CPU: %v", err)
	}

	c.Load(b, uint16(*loadAddr))
	if *resetVec >= 0 {
		if *resetVec > 0xFFFF {
			log.Fatal("--reset_vector out of range. Must be between 0-65535")
		}
		c.SetMemory(cpu.RESET_VECTOR, byte(*resetVec))
		c.SetMemory(cpu.RESET_VECTOR+1, byte(*resetVec>>8))
	}
	c.Reset()

	if err := c.Run(uint16(*steps)); err != nil {
		fmt.Fprintf(os.Stderr, "run stopped with: %v\n", err)
	}

	fmt.Printf("A=%.2X X=%.2X Y=%.2X SP=%.2X P=%.2X PC=%.4X\n",
		c.GetA(), c.GetX(), c.GetY(), c.GetSP(), c.GetStatus(), c.GetPC())
}
