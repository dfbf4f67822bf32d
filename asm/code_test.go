package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodeLine(t *testing.T, line string) Code {
	cmd, err := ParseLine(line)
	if err != nil {
		t.Fatalf("%v: %v", line, err)
	}
	code, err := Encode(cmd)
	if err != nil {
		t.Fatalf("%v: %v", line, err)
	}
	return code
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := map[string]string{
		"@0":         "0000000000000000",
		"@1":         "0000000000000001",
		"@32767":     "0111111111111111",
		"@16384":     "0100000000000000",
		"D=M":        "1111110000010000",
		"D=D-M":      "1111010011010000",
		"D;JGT":      "1110001100000001",
		"0;JMP":      "1110101010000111",
		"M=D":        "1110001100001000",
		"D=A":        "1110110000010000",
		"D=D+A":      "1110000010010000",
		"AMD=M+1":    "1111110111111000",
		"A=-1;JLE":   "1110111010100110",
		"MD=D|M;JNE": "1111010101011101",
		"AD=!A;JLT":  "1110110001110100",
		"AM=D&A;JGE": "1110000000101011",
		"D;JEQ":      "1110001100000010",
	}

	for line, binary := range table {
		code := encodeLine(t, line)
		assert.Equal(binary, code.String(), line)
		assert.Len(code.String(), 16, line)
	}
}

func TestEncode_CompTable(t *testing.T) {
	assert := assert.New(t)

	aZero := 0
	aOne := 0
	for comp, bits := range compMap {
		code := encodeLine(t, comp)
		assert.Equal(bits, code.Comp(), comp)
		assert.Equal(DEST_NONE, code.Dest(), comp)
		assert.Equal(JUMP_NONE, code.Jump(), comp)
		assert.True(code.IsCompute())
		if bits&0b1_000000 == 0 {
			aZero++
		} else {
			aOne++
		}

		name, ok := CompName(code.Comp())
		assert.True(ok)
		assert.Equal(comp, name)
	}

	assert.Equal(18, aZero)
	assert.Equal(10, aOne)
}

func TestEncode_DestJump(t *testing.T) {
	assert := assert.New(t)

	for name, dest := range destMap {
		code := encodeLine(t, name+"=0")
		assert.Equal(dest, code.Dest())
		assert.Equal(name, code.Dest().String())
	}

	for name, jump := range jumpMap {
		code := encodeLine(t, "0;"+name)
		assert.Equal(jump, code.Jump())
		assert.Equal(name, code.Jump().String())
	}
}

func TestEncode_Deterministic(t *testing.T) {
	assert := assert.New(t)

	cmd := ComputeCommand{Comp: "D+M", Dest: ptr("AM"), Jump: ptr("JMP")}
	first, err := Encode(cmd)
	assert.NoError(err)
	for range 8 {
		again, err := Encode(cmd)
		assert.NoError(err)
		assert.Equal(first, again)
	}
}

func TestEncode_Errors(t *testing.T) {
	assert := assert.New(t)

	var comp ErrCompInvalid
	_, err := Encode(ComputeCommand{Comp: "D*M"})
	assert.True(errors.As(err, &comp))
	assert.Equal(ErrCompInvalid("D*M"), comp)

	_, err = Encode(ComputeCommand{Comp: ""})
	assert.True(errors.As(err, &comp))

	var dest ErrDestInvalid
	_, err = Encode(ComputeCommand{Comp: "0", Dest: ptr("MM")})
	assert.True(errors.As(err, &dest))
	assert.Equal(ErrDestInvalid("MM"), dest)

	var jump ErrJumpInvalid
	_, err = Encode(ComputeCommand{Comp: "0", Jump: ptr("JMPX")})
	assert.True(errors.As(err, &jump))
	_, err = Encode(ComputeCommand{Comp: "0", Jump: ptr("")})
	assert.True(errors.As(err, &jump))

	var rng ErrAddressRange
	_, err = Encode(AddressCommand{Address: ADDRESS_LIMIT + 1})
	assert.True(errors.As(err, &rng))
	assert.Equal(ErrAddressRange(0x8000), rng)
	assert.Equal("address 0x8000 out of range", rng.Error())
	_, err = Encode(AddressCommand{Address: ADDRESS_MAX})
	assert.True(errors.As(err, &rng))

	_, err = Encode(LabelDefinition{Label: "LOOP"})
	assert.ErrorIs(err, ErrPseudoCommand)
	_, err = Encode(SymbolicAddress{Label: "x"})
	assert.ErrorIs(err, ErrPseudoCommand)
	_, err = Encode(nil)
	assert.ErrorIs(err, ErrCommandInvalid)
}

func TestCode_Disassemble(t *testing.T) {
	assert := assert.New(t)

	for _, line := range []string{"@0", "@24576", "D=M", "0;JMP", "AMD=D+1;JNE", "M=-1", "D|M"} {
		assert.Equal(line, encodeLine(t, line).Disassemble())
	}

	// Comp bits outside the table
	code := MakeCodeCompute(0b0_111110, DEST_D, JUMP_NONE)
	assert.Equal("D=?0111110", code.Disassemble())
}

func TestDestJump_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("null", DEST_NONE.String())
	assert.Equal("AMD", DEST_AMD.String())
	assert.Equal("Dest(8)", Dest(8).String())
	assert.Equal("null", JUMP_NONE.String())
	assert.Equal("JLE", JUMP_JLE.String())
	assert.Equal("Jump(-1)", Jump(-1).String())
}
