package asm

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// Instruction is a single encoded instruction and its source location.
type Instruction struct {
	LineNo  int    // Source line number, starting at 1.
	Address uint16 // ROM address.
	Text    string // Trimmed source text.
	Code    Code   // Encoded word.
}

// Program is the result of an assembly run.
type Program struct {
	Instructions []Instruction
	Symbols      *SymbolTable
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Codes iterates the instruction words by ROM address.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	return func(yield func(address uint16, code Code) bool) {
		for _, inst := range prog.Instructions {
			if !yield(inst.Address, inst.Code) {
				return
			}
		}
	}
}

// Binary returns the ROM image.
func (prog *Program) Binary() (bins []uint16) {
	bins = make([]uint16, 0, len(prog.Instructions))
	for _, code := range prog.Codes() {
		bins = append(bins, uint16(code))
	}

	return
}

// Debug returns the instruction at a ROM address.
func (prog *Program) Debug(address uint16) (inst *Instruction, ok bool) {
	if int(address) >= len(prog.Instructions) {
		return
	}

	return &prog.Instructions[address], true
}

// WriteTo writes the program in .hack text form.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	for _, code := range prog.Codes() {
		var wrote int
		wrote, err = bw.WriteString(code.String() + "\n")
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}

// Text returns the program in .hack text form.
func (prog *Program) Text() string {
	var sb strings.Builder
	_, _ = prog.WriteTo(&sb)
	return sb.String()
}
