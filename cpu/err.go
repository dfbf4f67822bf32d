package cpu

import (
	"errors"

	"github.com/ezrec/hackasm/translate"
)

var f = translate.From

var (
	ErrPcRange      = errors.New(f("pc outside rom"))
	ErrRamRange     = errors.New(f("memory address outside ram"))
	ErrOpcodeDecode = errors.New(f("decode"))
)

// ErrOpcode is an instruction word that cannot be executed.
type ErrOpcode uint16

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x", uint16(eo))
}

func (eo ErrOpcode) Unwrap() error {
	return ErrOpcodeDecode
}
