package asm

import (
	"fmt"
	"strconv"
)

// Code is a single encoded 16-bit Hack instruction word.
type Code uint16

const (
	CODE_COMPUTE = Code(0b111 << 13) // Opcode and unused bits of a C-instruction.

	COMP_SHIFT = 6
	COMP_MASK  = 0x7f
	DEST_SHIFT = 3
	DEST_MASK  = 0x7
	JUMP_SHIFT = 0
	JUMP_MASK  = 0x7
)

// Dest is the destination field of a C-instruction.
type Dest int

//go:generate go tool stringer -linecomment -type=Dest
const (
	DEST_NONE = Dest(0) // null
	DEST_M    = Dest(1) // M
	DEST_D    = Dest(2) // D
	DEST_MD   = Dest(3) // MD
	DEST_A    = Dest(4) // A
	DEST_AM   = Dest(5) // AM
	DEST_AD   = Dest(6) // AD
	DEST_AMD  = Dest(7) // AMD
)

// Jump is the jump condition field of a C-instruction.
type Jump int

//go:generate go tool stringer -linecomment -type=Jump
const (
	JUMP_NONE = Jump(0) // null
	JUMP_JGT  = Jump(1) // JGT
	JUMP_JEQ  = Jump(2) // JEQ
	JUMP_JGE  = Jump(3) // JGE
	JUMP_JLT  = Jump(4) // JLT
	JUMP_JNE  = Jump(5) // JNE
	JUMP_JLE  = Jump(6) // JLE
	JUMP_JMP  = Jump(7) // JMP
)

// compMap maps comp mnemonics to the a-bit and six ALU control bits.
var compMap = map[string]uint16{
	// a = 0
	"0":   0b0_101010,
	"1":   0b0_111111,
	"-1":  0b0_111010,
	"D":   0b0_001100,
	"A":   0b0_110000,
	"!D":  0b0_001101,
	"!A":  0b0_110001,
	"-D":  0b0_001111,
	"-A":  0b0_110011,
	"D+1": 0b0_011111,
	"A+1": 0b0_110111,
	"D-1": 0b0_001110,
	"A-1": 0b0_110010,
	"D+A": 0b0_000010,
	"D-A": 0b0_010011,
	"A-D": 0b0_000111,
	"D&A": 0b0_000000,
	"D|A": 0b0_010101,
	// a = 1
	"M":   0b1_110000,
	"!M":  0b1_110001,
	"-M":  0b1_110011,
	"M+1": 0b1_110111,
	"M-1": 0b1_110010,
	"D+M": 0b1_000010,
	"D-M": 0b1_010011,
	"M-D": 0b1_000111,
	"D&M": 0b1_000000,
	"D|M": 0b1_010101,
}

// compName is the reverse of compMap.
var compName = func() map[uint16]string {
	names := make(map[uint16]string, len(compMap))
	for name, bits := range compMap {
		names[bits] = name
	}
	return names
}()

var destMap = map[string]Dest{
	"M":   DEST_M,
	"D":   DEST_D,
	"MD":  DEST_MD,
	"A":   DEST_A,
	"AM":  DEST_AM,
	"AD":  DEST_AD,
	"AMD": DEST_AMD,
}

var jumpMap = map[string]Jump{
	"JGT": JUMP_JGT,
	"JEQ": JUMP_JEQ,
	"JGE": JUMP_JGE,
	"JLT": JUMP_JLT,
	"JNE": JUMP_JNE,
	"JLE": JUMP_JLE,
	"JMP": JUMP_JMP,
}

// Encode converts a resolved command into its instruction word.
func Encode(cmd Command) (code Code, err error) {
	switch cmd := cmd.(type) {
	case AddressCommand:
		if cmd.Address > ADDRESS_LIMIT {
			err = ErrAddressRange(cmd.Address)
			return
		}
		code = MakeCodeAddress(cmd.Address)
	case ComputeCommand:
		comp, ok := compMap[cmd.Comp]
		if !ok {
			err = ErrCompInvalid(cmd.Comp)
			return
		}
		dest := DEST_NONE
		if cmd.Dest != nil {
			dest, ok = destMap[*cmd.Dest]
			if !ok {
				err = ErrDestInvalid(*cmd.Dest)
				return
			}
		}
		jump := JUMP_NONE
		if cmd.Jump != nil {
			jump, ok = jumpMap[*cmd.Jump]
			if !ok {
				err = ErrJumpInvalid(*cmd.Jump)
				return
			}
		}
		code = MakeCodeCompute(comp, dest, jump)
	case LabelDefinition, SymbolicAddress:
		err = ErrPseudoCommand
	default:
		err = ErrCommandInvalid
	}

	return
}

// MakeCodeAddress creates an A-instruction.
func MakeCodeAddress(address uint16) Code {
	return Code(address)
}

// MakeCodeCompute creates a C-instruction from its raw comp bits, dest and jump.
func MakeCodeCompute(comp uint16, dest Dest, jump Jump) Code {
	return CODE_COMPUTE |
		Code(comp&COMP_MASK)<<COMP_SHIFT |
		Code(uint16(dest)&DEST_MASK)<<DEST_SHIFT |
		Code(uint16(jump)&JUMP_MASK)<<JUMP_SHIFT
}

// IsCompute returns true if the word is a C-instruction.
func (code Code) IsCompute() bool {
	return code&0x8000 != 0
}

// Comp returns the a-bit and ALU control bits of a C-instruction.
func (code Code) Comp() uint16 {
	return (uint16(code) >> COMP_SHIFT) & COMP_MASK
}

// Dest returns the destination field of a C-instruction.
func (code Code) Dest() Dest {
	return Dest((uint16(code) >> DEST_SHIFT) & DEST_MASK)
}

// Jump returns the jump field of a C-instruction.
func (code Code) Jump() Jump {
	return Jump((uint16(code) >> JUMP_SHIFT) & JUMP_MASK)
}

// CompName returns the mnemonic for the comp bits of a C-instruction.
func CompName(comp uint16) (name string, ok bool) {
	name, ok = compName[comp&COMP_MASK]
	return
}

// String returns the word as sixteen binary digits, most significant first.
func (code Code) String() string {
	return fmt.Sprintf("%016b", uint16(code))
}

// Disassemble returns the assembly language form of the word.
func (code Code) Disassemble() (text string) {
	if !code.IsCompute() {
		return "@" + strconv.Itoa(int(code))
	}

	comp, ok := CompName(code.Comp())
	if !ok {
		comp = fmt.Sprintf("?%07b", code.Comp())
	}

	if dest := code.Dest(); dest != DEST_NONE {
		text = dest.String() + "="
	}
	text += comp
	if jump := code.Jump(); jump != JUMP_NONE {
		text += ";" + jump.String()
	}

	return
}
