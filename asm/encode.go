package asm

import (
	"github.com/ezrec/asm16/isa"
)

const (
	REG_BITS    = 4  // Width of a register field.
	PORT_BITS   = 4  // Width of a port field.
	IMM_BITS    = 8  // Width of an immediate field.
	JUMP_BITS   = 10 // Width of a jump or call address field.
	MEMORY_BITS = 6  // Width of a memory address field.
)

// operandKind selects the operand extractor for a field.
type operandKind int

const (
	operandRegister = operandKind(iota)
	operandPort
	operandNumber
)

// operand consumes the next operand. In strict mode the value must fit in
// width bits.
func (asm *Assembler) operand(cur *Cursor, kind operandKind, width int) (value uint, err error) {
	switch kind {
	case operandRegister:
		var id uint8
		id, err = cur.Register()
		value = uint(id)
	case operandPort:
		var id uint8
		id, err = cur.Port()
		value = uint(id)
	case operandNumber:
		var num uint16
		num, err = cur.RawNumber()
		value = uint(num)
	}
	if err != nil {
		return
	}

	if asm.Strict && value >= 1<<width {
		err = cur.fail(cur.Tokens[cur.Index-1], ErrOperandRange)
	}

	return
}

// operands consumes one operand per kind, all of the same width.
func (asm *Assembler) operands(cur *Cursor, kind operandKind, width int, values ...*uint) (err error) {
	for _, value := range values {
		*value, err = asm.operand(cur, kind, width)
		if err != nil {
			return
		}
	}
	return
}

// Encode encodes an instruction from its opcode and operand tokens.
//
// A Li register id that does not fit, or a jump address that does not fit,
// yields a word of the opcode bits alone. Other values are truncated to
// their field. In strict mode all of these are errors, as are any
// unconsumed operand tokens.
func (asm *Assembler) Encode(op isa.Opcode, cur *Cursor) (word Word, err error) {
	var rd, rs, r1, r2, imm, addr, port uint

	switch op.Layout {
	case isa.LAYOUT_NONE:
		word = makeWord(op, field{0, op.Layout.Width()})
	case isa.LAYOUT_IMM_REG:
		rd, err = asm.operand(cur, operandRegister, REG_BITS)
		if err != nil {
			return
		}
		if rd >= 1<<REG_BITS {
			word = makeWord(op)
			break
		}
		imm, err = asm.operand(cur, operandNumber, IMM_BITS)
		if err != nil {
			return
		}
		word = makeWord(op, field{imm, IMM_BITS}, field{rd, REG_BITS})
	case isa.LAYOUT_ADDR10:
		addr, err = asm.operand(cur, operandNumber, JUMP_BITS)
		if err != nil {
			return
		}
		if addr >= 1<<JUMP_BITS {
			word = makeWord(op)
			break
		}
		word = makeWord(op, field{addr, JUMP_BITS})
	case isa.LAYOUT_REG_REG:
		err = asm.operands(cur, operandRegister, REG_BITS, &rd, &rs)
		if err != nil {
			return
		}
		word = makeWord(op, field{rs, REG_BITS}, field{0, REG_BITS}, field{rd, REG_BITS})
	case isa.LAYOUT_REG3:
		err = asm.operands(cur, operandRegister, REG_BITS, &rd, &r1, &r2)
		if err != nil {
			return
		}
		word = makeWord(op, field{r1, REG_BITS}, field{r2, REG_BITS}, field{rd, REG_BITS})
	case isa.LAYOUT_ADDR_REG:
		rd, err = asm.operand(cur, operandRegister, REG_BITS)
		if err != nil {
			return
		}
		addr, err = asm.operand(cur, operandNumber, MEMORY_BITS)
		if err != nil {
			return
		}
		word = makeWord(op, field{addr, MEMORY_BITS}, field{rd, REG_BITS})
	case isa.LAYOUT_REG_ADDR:
		rs, err = asm.operand(cur, operandRegister, REG_BITS)
		if err != nil {
			return
		}
		addr, err = asm.operand(cur, operandNumber, MEMORY_BITS)
		if err != nil {
			return
		}
		word = makeWord(op, field{rs, REG_BITS}, field{addr, MEMORY_BITS})
	case isa.LAYOUT_PORT_ADDR:
		port, err = asm.operand(cur, operandPort, PORT_BITS)
		if err != nil {
			return
		}
		addr, err = asm.operand(cur, operandNumber, MEMORY_BITS)
		if err != nil {
			return
		}
		word = makeWord(op, field{port, PORT_BITS}, field{addr, MEMORY_BITS})
	default:
		err = isa.ErrLayoutUnknown(op.Layout.String())
		return
	}

	if rest := cur.Rest(); asm.Strict && len(rest) > 0 {
		cur.Index++
		err = cur.fail(rest[0], ErrOperandExtra)
	}

	return
}
