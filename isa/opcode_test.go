package isa

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	table := Default()
	assert.Equal(17, table.Len())

	for op := range table.Opcodes() {
		assert.NoError(op.Validate(), op.Name)
		assert.Equal(WORD_BITS, op.Width()+op.Layout.Width(), op.Name)
	}

	op, ok := table.Lookup("Li")
	assert.True(ok)
	assert.Equal(Opcode{"Li", "0001", LAYOUT_IMM_REG}, op)
	assert.Equal(uint16(0b0001), op.Bits())

	op, ok = table.Lookup("Out")
	assert.True(ok)
	assert.Equal(uint16(0b100101), op.Bits())
	assert.Equal(6, op.Width())

	_, ok = table.Lookup("li")
	assert.False(ok)
	_, ok = table.Lookup("LI")
	assert.False(ok)
	_, ok = table.Lookup("")
	assert.False(ok)
}

func TestDefault_PrefixFree(t *testing.T) {
	assert := assert.New(t)

	ops := slices.Collect(Default().Opcodes())
	for _, a := range ops {
		for _, b := range ops {
			if a.Name == b.Name {
				continue
			}
			assert.False(strings.HasPrefix(b.Code, a.Code), "%v prefixes %v", a.Name, b.Name)
		}
	}
}

func TestOpcode_Validate(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		op  Opcode
		err error
	}{
		{Opcode{"Nop", "000000", LAYOUT_NONE}, nil},
		{Opcode{"", "000000", LAYOUT_NONE}, ErrOpcodeName},
		{Opcode{"N op", "000000", LAYOUT_NONE}, ErrOpcodeName},
		{Opcode{"Nop", "", LAYOUT_NONE}, ErrOpcodeCode},
		{Opcode{"Nop", "00a000", LAYOUT_NONE}, ErrOpcodeCode},
		{Opcode{"Nop", "0000", LAYOUT_NONE}, ErrOpcodeWidth},
		{Opcode{"Li", "000001", LAYOUT_IMM_REG}, ErrOpcodeWidth},
	}

	for _, tc := range cases {
		err := tc.op.Validate()
		if tc.err == nil {
			assert.NoError(err)
		} else {
			assert.ErrorIs(err, tc.err, tc.op.Name)
		}
	}

	err := Opcode{"Bad", "0000", Layout(99)}.Validate()
	var layoutErr ErrLayoutUnknown
	assert.True(errors.As(err, &layoutErr))
	assert.Equal("Layout(99)", string(layoutErr))
}

func TestNewTable(t *testing.T) {
	assert := assert.New(t)

	table, err := NewTable()
	assert.NoError(err)
	assert.Equal(0, table.Len())

	_, err = NewTable(
		Opcode{"Nop", "000000", LAYOUT_NONE},
		Opcode{"Nop", "000001", LAYOUT_NONE},
	)
	assert.ErrorIs(err, ErrOpcodeDuplicate)

	var opErr *ErrOpcode
	assert.True(errors.As(err, &opErr))
	assert.Equal(1, opErr.Index)
	assert.Equal("Nop", opErr.Name)

	// Extending the instruction set needs no encoder changes.
	table, err = NewTable(
		Opcode{"Halt", "111111", LAYOUT_NONE},
		Opcode{"Xor", "1000", LAYOUT_REG3},
	)
	assert.NoError(err)
	op, ok := table.Lookup("Xor")
	assert.True(ok)
	assert.Equal(LAYOUT_REG3, op.Layout)
}

func TestLayout(t *testing.T) {
	assert := assert.New(t)

	for layout := range Layout(8) {
		assert.True(layout.Valid())
		parsed, err := ParseLayout(layout.String())
		assert.NoError(err)
		assert.Equal(layout, parsed)
	}

	assert.False(Layout(8).Valid())
	assert.False(Layout(-1).Valid())
	assert.Equal(0, Layout(8).Width())

	assert.Equal(12, LAYOUT_IMM_REG.Width())
	assert.Equal(10, LAYOUT_ADDR10.Width())
	assert.Equal("port_addr", LAYOUT_PORT_ADDR.String())

	_, err := ParseLayout("reg4")
	assert.Equal(ErrLayoutUnknown("reg4"), err)
}
