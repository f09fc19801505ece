package isa

import (
	"errors"

	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	// Opcode descriptor errors
	ErrOpcodeName      = errors.New(f("opcode name invalid"))
	ErrOpcodeCode      = errors.New(f("opcode code bits invalid"))
	ErrOpcodeWidth     = errors.New(f("opcode width invalid"))
	ErrOpcodeDuplicate = errors.New(f("opcode duplicated"))

	// Descriptor file errors
	ErrDescriptor    = errors.New(f("descriptor invalid"))
	ErrFormatUnknown = errors.New(f("descriptor format unknown"))
)

type ErrLayoutUnknown string

func (err ErrLayoutUnknown) Error() string {
	return f("layout '%v' unknown", string(err))
}

// ErrOpcode identifies the opcode descriptor that failed validation.
type ErrOpcode struct {
	Index int
	Name  string
	Err   error
}

func (err *ErrOpcode) Error() string {
	return f("opcode %d '%v' %v", err.Index, err.Name, err.Err)
}

func (err *ErrOpcode) Unwrap() error {
	return err.Err
}
