// Package asm implements the assembler for a fixed-width 16-bit instruction
// word architecture.
//
// Each non-empty source line holds a mnemonic followed by its operands,
// separated by single spaces. The mnemonic selects an opcode from an
// isa.Table, whose layout decides which operands are read and how they are
// packed after the opcode bits. Registers are written R<n>, ports P<n>, and
// immediates and addresses as unsigned decimal numbers.
//
// A program image is always PROGRAM_WORDS words long, padded with zero
// words, and is written one word per line as four '_' separated nibbles.
//
// By default the assembler drops lines with unknown mnemonics, and truncates
// operands that are too wide for their field. Strict mode reports both as
// errors.
package asm
