// Package cpu implements a reference model of the Hack CPU.
//
// The CPU has two 16-bit registers, A and D, a program counter, a 32K word
// data memory and a read-only instruction memory. Each tick executes one
// instruction: an A-instruction loads A, and a C-instruction drives the ALU
// from D and either A or M (RAM[A]), stores the result to any of A, D and M,
// and optionally jumps to A depending on the sign of the result.
package cpu
