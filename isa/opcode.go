package isa

import (
	"iter"
	"slices"
	"strings"
)

// Opcode describes one instruction of the architecture.
type Opcode struct {
	Name   string `yaml:"name"`   // Mnemonic, matched exactly.
	Code   string `yaml:"code"`   // Opcode bits, most significant first.
	Layout Layout `yaml:"layout"` // Operand field layout following the code bits.
}

// Width returns the width of the opcode code bits.
func (op Opcode) Width() int {
	return len(op.Code)
}

// Bits returns the opcode code bits as an integer.
func (op Opcode) Bits() (bits uint16) {
	for _, c := range op.Code {
		bits <<= 1
		if c == '1' {
			bits |= 1
		}
	}
	return
}

// Validate checks that the opcode is well formed, and that its code
// bits and operand fields fill exactly one instruction word.
func (op Opcode) Validate() (err error) {
	switch {
	case len(op.Name) == 0, strings.ContainsAny(op.Name, " \t\r\n"):
		err = ErrOpcodeName
	case len(op.Code) == 0, strings.Trim(op.Code, "01") != "":
		err = ErrOpcodeCode
	case !op.Layout.Valid():
		err = ErrLayoutUnknown(op.Layout.String())
	case op.Width()+op.Layout.Width() != WORD_BITS:
		err = ErrOpcodeWidth
	}

	return
}

// Table is a read-only set of opcodes, indexed by name.
type Table struct {
	opcodes []Opcode
	index   map[string]int
}

// NewTable creates a table from a list of opcodes.
func NewTable(ops ...Opcode) (table *Table, err error) {
	index := make(map[string]int, len(ops))
	for n, op := range ops {
		err = op.Validate()
		if err == nil {
			if _, ok := index[op.Name]; ok {
				err = ErrOpcodeDuplicate
			}
		}
		if err != nil {
			err = &ErrOpcode{Index: n, Name: op.Name, Err: err}
			return
		}
		index[op.Name] = n
	}

	table = &Table{
		opcodes: slices.Clone(ops),
		index:   index,
	}

	return
}

// Lookup finds the opcode with the given name.
func (table *Table) Lookup(name string) (op Opcode, ok bool) {
	n, ok := table.index[name]
	if ok {
		op = table.opcodes[n]
	}
	return
}

// Len returns the number of opcodes in the table.
func (table *Table) Len() int {
	return len(table.opcodes)
}

// Opcodes iterates over the opcodes in table order.
func (table *Table) Opcodes() iter.Seq[Opcode] {
	return slices.Values(table.opcodes)
}
