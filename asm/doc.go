// Package asm implements the two-pass assembler for the Hack computer.
//
// Source lines are parsed into commands. The first pass binds every label
// definition to the address of the instruction that follows it. The second
// pass replaces symbolic addresses with concrete ones, allocating RAM for
// user variables from address 16 upward. Each resolved command is then
// encoded into a 16-bit word, written as a line of sixteen '0' and '1'
// characters.
package asm
