// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/hackasm/asm"
	"github.com/ezrec/hackasm/cpu"
)

// Emulator runs an assembled program on the reference CPU.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *asm.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(nil),
		Program: &asm.Program{},
	}

	return
}

// Reset loads the program into ROM and resets the CPU.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Load(emu.Program.Binary())

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the source line number of the instruction at the PC, or 0
// if the PC is outside the program.
func (emu *Emulator) LineNo() int {
	inst, ok := emu.Program.Debug(emu.Cpu.PC)
	if !ok {
		return 0
	}

	return inst.LineNo
}

// Halted returns true if the CPU has run off the end of the program, or is
// parked in the canonical '@n; 0;JMP' loop that jumps back to itself.
func (emu *Emulator) Halted() bool {
	code, err := emu.Cpu.Code()
	if err != nil {
		return true
	}

	pc := emu.Cpu.PC
	if pc == 0 || !code.IsCompute() || code.Jump() != asm.JUMP_JMP {
		return false
	}

	prev := asm.Code(emu.Cpu.Rom[pc-1])
	return !prev.IsCompute() && uint16(prev) == pc-1 && emu.Cpu.A == pc-1
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	if emu.Halted() {
		done = true
		return
	}

	lineno := emu.LineNo()
	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrPcRange) {
		err = nil
		done = true
		return
	}
	if err != nil {
		err = &ErrRuntime{LineNo: lineno, Err: err}
		return
	}

	return
}

// Run ticks the emulator until the program halts, at most limit times.
func (emu *Emulator) Run(limit int) (err error) {
	for range limit {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			if emu.Verbose {
				log.Printf("emulator: stopped after %v ticks", emu.Ticks())
			}
			return
		}
	}

	if emu.Halted() {
		return
	}

	err = ErrTickLimit
	return
}
