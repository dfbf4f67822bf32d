// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"

	"github.com/ezrec/hackasm/asm"
)

const (
	RAM_SIZE = 0x8000 // Words of data memory.
	ROM_SIZE = 0x8000 // Words of instruction memory.
)

// ALU control bits of the comp field.
const (
	ALU_NO = uint16(1 << 0) // Negate the output.
	ALU_F  = uint16(1 << 1) // Add when set, and when clear.
	ALU_NY = uint16(1 << 2) // Negate y.
	ALU_ZY = uint16(1 << 3) // Zero y.
	ALU_NX = uint16(1 << 4) // Negate x.
	ALU_ZX = uint16(1 << 5) // Zero x.
	ALU_A  = uint16(1 << 6) // Select M rather than A as y.
)

// Cpu is the simulation context for the Hack CPU.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	A  uint16 // Address register.
	D  uint16 // Data register.
	PC uint16 // Program counter.

	Ram [RAM_SIZE]uint16 // Data memory.
	Rom []uint16         // Instruction memory.

	Ticks int // CPU ticks counter.
}

// NewCpu creates a new CPU with the ROM loaded.
func NewCpu(rom []uint16) (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Load(rom)

	return
}

// Load replaces the instruction memory and resets the CPU.
func (cpu *Cpu) Load(rom []uint16) {
	if len(rom) > ROM_SIZE {
		rom = rom[:ROM_SIZE]
	}
	cpu.Rom = rom
	cpu.Reset()
}

// Reset clears the registers. Data memory is left alone.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.A = 0
	cpu.D = 0
	cpu.PC = 0
	cpu.Ticks = 0
}

// Alu computes the Hack ALU function of x and y for the six control bits
// of comp. The a-bit is ignored.
func Alu(comp uint16, x, y uint16) (out uint16) {
	if comp&ALU_ZX != 0 {
		x = 0
	}
	if comp&ALU_NX != 0 {
		x = ^x
	}
	if comp&ALU_ZY != 0 {
		y = 0
	}
	if comp&ALU_NY != 0 {
		y = ^y
	}
	if comp&ALU_F != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if comp&ALU_NO != 0 {
		out = ^out
	}

	return
}

// taken returns true if the jump condition holds for an ALU output.
func taken(jump asm.Jump, out uint16) bool {
	value := int16(out)
	switch jump {
	case asm.JUMP_JGT:
		return value > 0
	case asm.JUMP_JEQ:
		return value == 0
	case asm.JUMP_JGE:
		return value >= 0
	case asm.JUMP_JLT:
		return value < 0
	case asm.JUMP_JNE:
		return value != 0
	case asm.JUMP_JLE:
		return value <= 0
	case asm.JUMP_JMP:
		return true
	}
	return false
}

// memory returns the data memory word addressed by A.
func (cpu *Cpu) memory() (m *uint16, err error) {
	if int(cpu.A) >= len(cpu.Ram) {
		err = ErrRamRange
		return
	}

	return &cpu.Ram[cpu.A], nil
}

// Code returns the instruction at the program counter.
func (cpu *Cpu) Code() (code asm.Code, err error) {
	if int(cpu.PC) >= len(cpu.Rom) {
		err = ErrPcRange
		return
	}

	code = asm.Code(cpu.Rom[cpu.PC])
	return
}

// Tick executes a single instruction.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.Code()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %v %v", cpu, code.Disassemble())
	}

	cpu.Ticks++

	if !code.IsCompute() {
		cpu.A = uint16(code)
		cpu.PC++
		return
	}

	comp := code.Comp()
	if _, ok := asm.CompName(comp); !ok {
		err = ErrOpcode(code)
		return
	}

	dest := code.Dest()
	reads_m := comp&ALU_A != 0
	writes_m := dest == asm.DEST_M || dest == asm.DEST_MD || dest == asm.DEST_AM || dest == asm.DEST_AMD

	var m *uint16
	if reads_m || writes_m {
		m, err = cpu.memory()
		if err != nil {
			return
		}
	}

	y := cpu.A
	if reads_m {
		y = *m
	}
	out := Alu(comp, cpu.D, y)

	// Jumps and memory writes use A as it was before this instruction.
	target := cpu.A
	if writes_m {
		*m = out
	}
	if dest == asm.DEST_D || dest == asm.DEST_MD || dest == asm.DEST_AD || dest == asm.DEST_AMD {
		cpu.D = out
	}
	if dest == asm.DEST_A || dest == asm.DEST_AM || dest == asm.DEST_AD || dest == asm.DEST_AMD {
		cpu.A = out
	}

	if taken(code.Jump(), out) {
		cpu.PC = target
	} else {
		cpu.PC++
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	m := "----"
	if int(cpu.A) < len(cpu.Ram) {
		m = fmt.Sprintf("%04X", cpu.Ram[cpu.A])
	}
	return fmt.Sprintf("pc:%04X a:%04X d:%04X m:%s", cpu.PC, cpu.A, cpu.D, m)
}
