package asm

import (
	"strconv"
	"strings"
)

// Cursor consumes the operand tokens of a line, in order.
type Cursor struct {
	Tokens []string // Operand tokens following the mnemonic.
	Index  int      // Index of the next token to consume.
}

// Remaining returns the number of unconsumed tokens.
func (cur *Cursor) Remaining() int {
	return max(len(cur.Tokens)-cur.Index, 0)
}

// Rest returns the unconsumed tokens.
func (cur *Cursor) Rest() []string {
	if cur.Remaining() == 0 {
		return nil
	}
	return cur.Tokens[cur.Index:]
}

// next consumes a token.
func (cur *Cursor) next() (token string, err error) {
	if cur.Remaining() == 0 {
		err = cur.fail("", ErrOperandMissing)
		return
	}

	token = cur.Tokens[cur.Index]
	cur.Index++

	return
}

// fail wraps an error for the most recently consumed token.
func (cur *Cursor) fail(token string, err error) error {
	index := cur.Index
	if err == ErrOperandMissing {
		index++
	}
	return &ErrOperand{Index: index, Token: token, Err: err}
}

// prefixed consumes a token of the form <prefix><decimal 0-255>.
func (cur *Cursor) prefixed(prefix string) (id uint8, err error) {
	token, err := cur.next()
	if err != nil {
		return
	}

	digits, ok := strings.CutPrefix(token, prefix)
	if !ok {
		err = cur.fail(token, ErrOperandMalformed)
		return
	}

	value, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		err = cur.fail(token, ErrOperandMalformed)
		return
	}

	id = uint8(value)
	return
}

// Register consumes a register operand, 'R' followed by a decimal id.
func (cur *Cursor) Register() (id uint8, err error) {
	return cur.prefixed("R")
}

// Port consumes a port operand, 'P' followed by a decimal id.
func (cur *Cursor) Port() (id uint8, err error) {
	return cur.prefixed("P")
}

// RawNumber consumes an unsigned decimal operand.
func (cur *Cursor) RawNumber() (value uint16, err error) {
	token, err := cur.next()
	if err != nil {
		return
	}

	v64, err := strconv.ParseUint(token, 10, 16)
	if err != nil {
		err = cur.fail(token, ErrOperandMalformed)
		return
	}

	value = uint16(v64)
	return
}
