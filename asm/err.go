package asm

import (
	"errors"

	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	// Line errors
	ErrMnemonicUnknown = errors.New(f("mnemonic unknown"))

	// Operand errors
	ErrOperandMalformed = errors.New(f("operand malformed"))
	ErrOperandMissing   = errors.New(f("operand missing"))
	ErrOperandRange     = errors.New(f("operand out of range"))
	ErrOperandExtra     = errors.New(f("excessive operands"))
)

// ErrOverflow is the number of instructions in a program that does not fit
// in the program image.
type ErrOverflow int

func (err ErrOverflow) Error() string {
	return f(translate.MsgOverflow, int(err), PROGRAM_WORDS)
}

// ErrOutputDuplicate indicates two source files that would be written to
// the same output file.
type ErrOutputDuplicate struct {
	Output string
	Inputs [2]string
}

func (err *ErrOutputDuplicate) Error() string {
	return f("%v: output of both '%v' and '%v'", err.Output, err.Inputs[0], err.Inputs[1])
}

// ErrIo wraps a failure to read or write a file.
type ErrIo struct {
	Path string
	Err  error
}

func (err *ErrIo) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrIo) Unwrap() error {
	return err.Err
}

// ErrSyntax indicates the source line that could not be assembled.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrOperand indicates the operand token, by 1-based position after the
// mnemonic, that could not be used.
type ErrOperand struct {
	Index int
	Token string
	Err   error
}

func (err *ErrOperand) Error() string {
	return f("operand %d '%v' %v", err.Index, err.Token, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}
