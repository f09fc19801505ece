package isa

// defaultOpcodes is the reference instruction set.
//
// The four bit codes are used by the opcodes with twelve bits of operands,
// and the six bit codes by those with ten. No code is a prefix of another,
// and an all-zero word is a Nop.
var defaultOpcodes = []Opcode{
	{"Nop", "000000", LAYOUT_NONE},
	{"Li", "0001", LAYOUT_IMM_REG},
	{"Jmp", "000001", LAYOUT_ADDR10},
	{"Jz", "000010", LAYOUT_ADDR10},
	{"Jnz", "000011", LAYOUT_ADDR10},
	{"Mov", "0010", LAYOUT_REG_REG},
	{"Not", "0011", LAYOUT_REG_REG},
	{"Add", "0100", LAYOUT_REG3},
	{"Sub", "0101", LAYOUT_REG3},
	{"And", "0110", LAYOUT_REG3},
	{"Or", "0111", LAYOUT_REG3},
	{"Call", "100000", LAYOUT_ADDR10},
	{"Ret", "100001", LAYOUT_NONE},
	{"Lw", "100010", LAYOUT_ADDR_REG},
	{"Sw", "100011", LAYOUT_REG_ADDR},
	{"In", "100100", LAYOUT_PORT_ADDR},
	{"Out", "100101", LAYOUT_PORT_ADDR},
}

var defaultTable *Table

func init() {
	var err error
	defaultTable, err = NewTable(defaultOpcodes...)
	if err != nil {
		panic(err)
	}
}

// Default returns the reference instruction set table.
func Default() *Table {
	return defaultTable
}
