package asm

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseLine parses a single trimmed, non-comment line of assembly.
func ParseLine(line string) (cmd Command, err error) {
	if len(line) == 0 {
		err = ErrLineEmpty
		return
	}

	switch line[0] {
	case '@':
		cmd, err = parseAddress(line[1:])
	case '(':
		cmd, err = parseLabel(line[1:])
	default:
		cmd = parseCompute(line)
	}

	return
}

// parseAddress parses the text after an '@'.
func parseAddress(word string) (cmd Command, err error) {
	if len(word) == 0 {
		err = ErrAddressMissing
		return
	}

	// Symbols cannot start with a digit, so a leading digit is a literal.
	if unicode.IsDigit(rune(word[0])) {
		var value uint64
		value, err = strconv.ParseUint(word, 10, 15)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		cmd = AddressCommand{Address: uint16(value)}
		return
	}

	if !IsSymbol(word) {
		err = ErrParseSymbol(word)
		return
	}

	cmd = SymbolicAddress{Label: word}
	return
}

// parseLabel parses the text after a '('.
func parseLabel(text string) (cmd Command, err error) {
	label, _, ok := strings.Cut(text, ")")
	if !ok {
		err = ErrLabelUnclosed
		return
	}

	if !IsSymbol(label) {
		err = ErrParseSymbol(label)
		return
	}

	cmd = LabelDefinition{Label: label}
	return
}

// parseCompute splits dest=comp;jump. Any clause text is accepted here;
// the encoder rejects unknown mnemonics.
func parseCompute(line string) Command {
	var cmd ComputeCommand
	var comp *string

	buffer := strings.Builder{}
	for _, ch := range line {
		switch ch {
		case '=':
			if cmd.Dest == nil {
				dest := buffer.String()
				cmd.Dest = &dest
				buffer.Reset()
				continue
			}
		case ';':
			if comp == nil {
				text := buffer.String()
				comp = &text
				buffer.Reset()
				continue
			}
		}
		buffer.WriteRune(ch)
	}

	if comp == nil {
		cmd.Comp = buffer.String()
	} else {
		jump := buffer.String()
		cmd.Comp = *comp
		cmd.Jump = &jump
	}

	return cmd
}

// IsSymbol returns true if name is a valid user symbol: a non-empty sequence
// of letters, digits, '_', '.', '$' and ':' that does not begin with a digit.
func IsSymbol(name string) bool {
	if len(name) == 0 || unicode.IsDigit(rune(name[0])) {
		return false
	}

	for _, r := range name {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("_.$:", r)) {
			return false
		}
	}

	return true
}
