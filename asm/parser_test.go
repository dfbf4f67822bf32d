package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string {
	return &s
}

func TestParseLine(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line string
		cmd  Command
	}{
		{"@0", AddressCommand{Address: 0}},
		{"@17", AddressCommand{Address: 17}},
		{"@32767", AddressCommand{Address: 32767}},
		{"@007", AddressCommand{Address: 7}},
		{"@R1", SymbolicAddress{Label: "R1"}},
		{"@counter", SymbolicAddress{Label: "counter"}},
		{"@Main.loop$if_true:1", SymbolicAddress{Label: "Main.loop$if_true:1"}},
		{"(LOOP)", LabelDefinition{Label: "LOOP"}},
		{"(END) ignored", LabelDefinition{Label: "END"}},
		{"D=M", ComputeCommand{Comp: "M", Dest: ptr("D")}},
		{"0;JMP", ComputeCommand{Comp: "0", Jump: ptr("JMP")}},
		{"AMD=D+1;JNE", ComputeCommand{Comp: "D+1", Dest: ptr("AMD"), Jump: ptr("JNE")}},
		{"D", ComputeCommand{Comp: "D"}},
		{"M=", ComputeCommand{Comp: "", Dest: ptr("M")}},
		{"D;", ComputeCommand{Comp: "D", Jump: ptr("")}},
	}

	for _, entry := range table {
		cmd, err := ParseLine(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.cmd, cmd, entry.line)
	}
}

func TestParseLine_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseLine("")
	assert.ErrorIs(err, ErrLineEmpty)

	_, err = ParseLine("@")
	assert.ErrorIs(err, ErrAddressMissing)

	_, err = ParseLine("(LOOP")
	assert.ErrorIs(err, ErrLabelUnclosed)

	var num ErrParseNumber
	for _, line := range []string{"@32768", "@65536", "@12ab", "@1.5"} {
		_, err = ParseLine(line)
		assert.True(errors.As(err, &num), line)
		assert.Equal(ErrParseNumber(line[1:]), num)
	}

	var sym ErrParseSymbol
	for _, line := range []string{"@-1", "@a b", "@x+1", "()", "(1ABC)"} {
		_, err = ParseLine(line)
		assert.True(errors.As(err, &sym), line)
	}
}

func TestCommand_String(t *testing.T) {
	assert := assert.New(t)

	for _, line := range []string{"@5", "@sum", "(LOOP)", "D=M", "0;JMP", "AM=M-1;JEQ", "D"} {
		cmd, err := ParseLine(line)
		assert.NoError(err)
		assert.Equal(line, cmd.String())
	}
}

func TestIsSymbol(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsSymbol("LOOP"))
	assert.True(IsSymbol("_x"))
	assert.True(IsSymbol("a1.b$c:d"))
	assert.False(IsSymbol(""))
	assert.False(IsSymbol("1a"))
	assert.False(IsSymbol("a-b"))
	assert.False(IsSymbol("a b"))
}

func TestIsPseudo(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsPseudo(LabelDefinition{Label: "x"}))
	assert.True(IsPseudo(SymbolicAddress{Label: "x"}))
	assert.False(IsPseudo(AddressCommand{}))
	assert.False(IsPseudo(ComputeCommand{Comp: "0"}))
}

func FuzzParseLine(f *testing.F) {
	for _, seed := range []string{"@0", "@x", "(L)", "D=M", "0;JMP", "AMD=M+1;JGT", "@32768", "("} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		cmd, err := ParseLine(line)
		if err != nil {
			assert.Nil(cmd)
			return
		}

		switch cmd := cmd.(type) {
		case AddressCommand:
			assert.LessOrEqual(cmd.Address, ADDRESS_LIMIT)
		case SymbolicAddress:
			assert.True(IsSymbol(cmd.Label))
		case LabelDefinition:
			assert.True(IsSymbol(cmd.Label))
		case ComputeCommand:
			assert.NotEqual(byte('@'), line[0])
			assert.NotEqual(byte('('), line[0])
		default:
			t.Fatalf("unexpected command %T", cmd)
		}

		// Encoding never panics, whatever was parsed.
		_, _ = Encode(cmd)
	})
}
