// Package main implements the nes emulator executable: it loads an iNES
// ROM, wires the bus/CPU/PPU-register fabric together, and runs the
// fetch-decode-execute loop (optionally tracing, or under the interactive
// stepper).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"nescore/internal/bus"
	"nescore/internal/cartridge"
	"nescore/internal/cpu"
	"nescore/internal/debugger"
	"nescore/internal/ppu"
	"nescore/internal/trace"
)

func main() {
	var (
		debug   = flag.Bool("debug", false, "print one trace line per instruction to stdout")
		nestest = flag.Bool("nestest", false, "force PC to $C000 after reset (nestest automation harness)")
		steps   = flag.Int("steps", 0, "stop after this many instructions (0 = run forever)")
		tui     = flag.Bool("tui", false, "run the interactive single-step debugger")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fatal(errors.New("No ROM provided"))
	}

	cart, err := cartridge.Load(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	ppuMem := ppu.NewMemory(cart, cart.MirrorMode())
	regs := ppu.NewRegisters(ppuMem)
	b := bus.New(regs, cart)
	c := cpu.New(b)
	c.Reset()

	if *nestest {
		c.PC = 0xC000
	}

	if *tui {
		if err := debugger.Run(c, b); err != nil {
			fatal(err)
		}
		return
	}

	for executed := 0; *steps == 0 || executed < *steps; executed++ {
		if *debug {
			fmt.Println(trace.Line(c, b))
		}
		if _, err := c.Step(); err != nil {
			fatal(err)
		}
	}
}

// fatal is the single exit point for the error taxonomy: ROM I/O errors,
// ROM format errors, and illegal-opcode decode errors all end here.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "nes: %v\n", err)
	os.Exit(1)
}
