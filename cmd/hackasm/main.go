// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/hackasm/asm"
	"github.com/ezrec/hackasm/emulator"
	"github.com/ezrec/hackasm/translate"
)

// defines collects repeated -D NAME=EXPR flags.
type defines [][2]string

func (d *defines) String() string {
	var parts []string
	for _, def := range *d {
		parts = append(parts, def[0]+"="+def[1])
	}
	return strings.Join(parts, ",")
}

func (d *defines) Set(value string) error {
	name, expr, ok := strings.Cut(value, "=")
	if !ok || len(name) == 0 || len(expr) == 0 {
		return asm.ErrPredefineSyntax
	}
	*d = append(*d, [2]string{name, expr})
	return nil
}

// outputName maps Prog.asm to Prog.hack.
func outputName(input string) string {
	return strings.TrimSuffix(input, ".asm") + ".hack"
}

// dumpSymbols lists the symbol table.
func dumpSymbols(w io.Writer, prog *asm.Program) {
	for name, address := range prog.Symbols.All() {
		translate.Fprintf(w, "%-16s 0x%04x %d\n", name, address, address)
	}
}

// dumpRegisters lists the CPU registers and R0..R15 after a run.
func dumpRegisters(w io.Writer, emu *emulator.Emulator) {
	translate.Fprintf(w, "%v\n", emu.Cpu.String())
	for r := range 16 {
		translate.Fprintf(w, "R%-2d 0x%04x %d\n", r, emu.Cpu.Ram[r], int16(emu.Cpu.Ram[r]))
	}
}

func main() {
	var output string
	var verbose bool
	var symbols bool
	var run int
	var predefines defines

	flag.StringVar(&output, "o", "", ".hack file to write, '-' for stdout")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&symbols, "s", false, "Dump the symbol table to stderr")
	flag.IntVar(&run, "run", 0, "Run on the reference CPU for at most N ticks")
	flag.Var(&predefines, "D", "Predefine NAME=EXPR before assembly (repeatable)")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: %v", os.Args[0], translate.From("expected one .asm file, got %v", flag.Args()))
	}

	input := flag.Arg(0)
	if len(output) == 0 {
		output = outputName(input)
	}

	log.Printf("Input: %v", input)

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	for _, def := range predefines {
		assembler.Predefine(def[0], def[1])
	}

	prog, err := assembler.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	log.Print(translate.From("%v commands parsed", prog.Len()))

	if symbols {
		dumpSymbols(os.Stderr, prog)
	}

	if output == "-" {
		_, err = prog.WriteTo(os.Stdout)
	} else {
		log.Printf("Output: %v", output)
		var ouf *os.File
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		_, err = prog.WriteTo(ouf)
		if cerr := ouf.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if run > 0 {
		emu := emulator.NewEmulator()
		emu.Program = prog
		emu.Verbose = verbose
		err = emu.Reset()
		if err == nil {
			err = emu.Run(run)
		}
		dumpRegisters(os.Stderr, emu)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
	}
}
