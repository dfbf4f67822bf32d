package asm

import (
	"errors"

	"github.com/ezrec/hackasm/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrLineEmpty      = errors.New(f("empty line"))
	ErrAddressMissing = errors.New(f("@ without address"))
	ErrLabelUnclosed  = errors.New(f("label missing ')'"))

	// Encode errors
	ErrPseudoCommand  = errors.New(f("pseudo-command cannot be encoded"))
	ErrCommandInvalid = errors.New(f("command invalid"))

	// Predefine errors
	ErrPredefineSyntax = errors.New(f("predefine syntax"))
)

// ErrParseNumber is an address literal that is not a 15-bit unsigned value.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not an address", string(err))
}

// ErrParseSymbol is a malformed symbol name.
type ErrParseSymbol string

func (err ErrParseSymbol) Error() string {
	return f("'%v' is not a symbol", string(err))
}

// ErrAddressRange is a resolved label or variable beyond the A-instruction range.
type ErrAddressRange uint16

func (err ErrAddressRange) Error() string {
	return f("address 0x%04x out of range", uint16(err))
}

type ErrCompInvalid string

func (err ErrCompInvalid) Error() string {
	return f("comp '%v' invalid", string(err))
}

type ErrDestInvalid string

func (err ErrDestInvalid) Error() string {
	return f("dest '%v' invalid", string(err))
}

type ErrJumpInvalid string

func (err ErrJumpInvalid) Error() string {
	return f("jump '%v' invalid", string(err))
}

// ErrSyntax locates an error in the assembly source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrPredefine is a failed predefined symbol expression.
type ErrPredefine struct {
	Name string
	Expr string
	Err  error
}

func (err ErrPredefine) Error() string {
	return f("predefine %v=%v: %v", err.Name, err.Expr, err.Err)
}

func (err ErrPredefine) Unwrap() error {
	return err.Err
}
