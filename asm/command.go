package asm

import (
	"strconv"
)

// Command is a single parsed line of Hack assembly.
//
// AddressCommand and ComputeCommand are real instructions. LabelDefinition
// and SymbolicAddress are pseudo-commands that are consumed by the two
// resolver passes and never reach the encoder.
type Command interface {
	String() string
	command()
}

// AddressCommand is a resolved A-instruction: @value
type AddressCommand struct {
	Address uint16
}

// ComputeCommand is a C-instruction: dest=comp;jump
// Either Dest or Jump may be nil if the clause was absent.
type ComputeCommand struct {
	Comp string
	Dest *string
	Jump *string
}

// LabelDefinition is the pseudo-command (LABEL).
type LabelDefinition struct {
	Label string
}

// SymbolicAddress is the pseudo-command @symbol, resolved in the second pass.
type SymbolicAddress struct {
	Label string
}

var (
	_ Command = AddressCommand{}
	_ Command = ComputeCommand{}
	_ Command = LabelDefinition{}
	_ Command = SymbolicAddress{}
)

func (AddressCommand) command()  {}
func (ComputeCommand) command()  {}
func (LabelDefinition) command() {}
func (SymbolicAddress) command() {}

func (cmd AddressCommand) String() string {
	return "@" + strconv.Itoa(int(cmd.Address))
}

func (cmd ComputeCommand) String() (text string) {
	if cmd.Dest != nil {
		text = *cmd.Dest + "="
	}
	text += cmd.Comp
	if cmd.Jump != nil {
		text += ";" + *cmd.Jump
	}
	return
}

func (cmd LabelDefinition) String() string {
	return "(" + cmd.Label + ")"
}

func (cmd SymbolicAddress) String() string {
	return "@" + cmd.Label
}

// IsPseudo returns true for commands that must be eliminated before encoding.
func IsPseudo(cmd Command) bool {
	switch cmd.(type) {
	case LabelDefinition, SymbolicAddress:
		return true
	}
	return false
}
