// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// COMMENT is the line comment marker.
const COMMENT = "//"

// predefine is a symbol bound from an expression before the first pass.
type predefine struct {
	name string
	expr string
}

// Assembler is a two pass assembler for the Hack computer.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine []predefine // Symbols to bind before the first pass.
}

// Predefine binds a symbol to the value of a starlark expression before
// labels are collected. Earlier predefines and the built-in symbols are in
// scope for the expression.
func (asm *Assembler) Predefine(name string, expr string) {
	asm.predefine = append(asm.predefine, predefine{name: name, expr: expr})
}

// source is a parsed command and where it came from.
type source struct {
	lineNo int
	line   string
	cmd    Command
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var sources []source
	var lineno int

	for scanner.Scan() {
		lineno += 1
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || strings.HasPrefix(line, COMMENT) {
			continue
		}

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		var cmd Command
		cmd, err = ParseLine(line)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}

		sources = append(sources, source{lineNo: lineno, line: line, cmd: cmd})
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrSyntax{LineNo: lineno + 1, Err: err}
		return
	}

	st := NewSymbolTable()
	for _, pre := range asm.predefine {
		err = asm.bindPredefine(st, pre)
		if err != nil {
			return
		}
	}

	cmds := make([]Command, len(sources))
	for n, src := range sources {
		cmds[n] = src.cmd
	}

	FirstPass(cmds, st)
	resolved := SecondPass(cmds, st)

	// Line information for everything that survived the second pass.
	var origin []source
	for _, src := range sources {
		if _, ok := src.cmd.(LabelDefinition); !ok {
			origin = append(origin, src)
		}
	}
	if len(origin) != len(resolved) {
		log.Panicf("second pass produced %d commands from %d instructions", len(resolved), len(origin))
	}

	prog = &Program{
		Instructions: make([]Instruction, 0, len(resolved)),
		Symbols:      st,
	}

	for n, cmd := range resolved {
		src := origin[n]

		var code Code
		code, err = Encode(cmd)
		if err != nil {
			if IsPseudo(cmd) {
				log.Panicf("line %d: %v survived the second pass", src.lineNo, cmd)
			}
			err = &ErrSyntax{LineNo: src.lineNo, Line: src.line, Err: err}
			prog = nil
			return
		}

		if asm.Verbose {
			log.Printf("%v: %04x %v ; %v\n", src.lineNo, n, code, cmd)
		}

		prog.Instructions = append(prog.Instructions, Instruction{
			LineNo:  src.lineNo,
			Address: uint16(n),
			Text:    src.line,
			Code:    code,
		})
	}

	return
}

// bindPredefine evaluates and binds a single predefined symbol.
func (asm *Assembler) bindPredefine(st *SymbolTable, pre predefine) (err error) {
	if !IsSymbol(pre.name) {
		err = &ErrPredefine{Name: pre.name, Expr: pre.expr, Err: ErrParseSymbol(pre.name)}
		return
	}

	address, err := evalAddress(pre.expr, st)
	if err != nil {
		err = &ErrPredefine{Name: pre.name, Expr: pre.expr, Err: err}
		return
	}

	if asm.Verbose {
		log.Printf("predefine %v = %v\n", pre.name, address)
	}

	st.Insert(pre.name, address)
	return
}

// Assemble translates Hack assembly source text into the text of a .hack
// file: one line of sixteen binary digits per instruction.
func Assemble(text string) (out string, err error) {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(text))
	if err != nil {
		return
	}

	out = prog.Text()
	return
}
