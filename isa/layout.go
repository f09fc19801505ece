package isa

import (
	"gopkg.in/yaml.v3"
)

const (
	WORD_BITS = 16 // Width of every instruction word.
)

// Layout identifies the operand field layout that follows an opcode's code
// bits in an instruction word.
type Layout int

//go:generate go tool stringer -linecomment -type=Layout
const (
	LAYOUT_NONE      = Layout(0) // none
	LAYOUT_IMM_REG   = Layout(1) // imm_reg
	LAYOUT_ADDR10    = Layout(2) // addr10
	LAYOUT_REG_REG   = Layout(3) // reg_reg
	LAYOUT_REG3      = Layout(4) // reg3
	LAYOUT_ADDR_REG  = Layout(5) // addr_reg
	LAYOUT_REG_ADDR  = Layout(6) // reg_addr
	LAYOUT_PORT_ADDR = Layout(7) // port_addr
)

// layoutWidth is the operand field width, in bits, of each layout.
var layoutWidth = [...]int{
	LAYOUT_NONE:      10, // 0(10)
	LAYOUT_IMM_REG:   12, // imm(8) rd(4)
	LAYOUT_ADDR10:    10, // addr(10)
	LAYOUT_REG_REG:   12, // rs(4) 0(4) rd(4)
	LAYOUT_REG3:      12, // r1(4) r2(4) rd(4)
	LAYOUT_ADDR_REG:  10, // addr(6) rd(4)
	LAYOUT_REG_ADDR:  10, // rs(4) addr(6)
	LAYOUT_PORT_ADDR: 10, // port(4) addr(6)
}

// Valid returns true if the layout is a known layout.
func (layout Layout) Valid() bool {
	return layout >= 0 && int(layout) < len(layoutWidth)
}

// Width returns the operand field width of the layout, in bits.
func (layout Layout) Width() int {
	if !layout.Valid() {
		return 0
	}
	return layoutWidth[layout]
}

// ParseLayout returns the layout with the given name.
func ParseLayout(name string) (layout Layout, err error) {
	for layout = range Layout(len(layoutWidth)) {
		if layout.String() == name {
			return
		}
	}

	layout = LAYOUT_NONE
	err = ErrLayoutUnknown(name)
	return
}

// UnmarshalYAML decodes a layout from its name.
func (layout *Layout) UnmarshalYAML(value *yaml.Node) (err error) {
	var name string
	err = value.Decode(&name)
	if err != nil {
		return
	}

	*layout, err = ParseLayout(name)
	return
}

// MarshalYAML encodes a layout as its name.
func (layout Layout) MarshalYAML() (any, error) {
	return layout.String(), nil
}
