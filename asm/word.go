package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/asm16/isa"
)

const (
	PROGRAM_WORDS = 1024          // Number of words in a program image.
	WORD_BITS     = isa.WORD_BITS // Width of a well formed word.
	NIBBLE_SEP    = "_"           // Separator between nibbles of a formatted word.
)

// Word is an encoded instruction. Bits holds Width bits, right aligned.
type Word struct {
	Bits  uint16
	Width int
}

// Valid returns true if the word fills a whole instruction word.
func (word Word) Valid() bool {
	return word.Width == WORD_BITS
}

// String returns the word as a string of binary digits, most significant first.
func (word Word) String() string {
	if word.Width <= 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", word.Width, word.Bits)
}

// Format returns the word as binary digits grouped into nibbles.
func (word Word) Format() string {
	return FormatWord(word.String())
}

// FormatWord groups a string of binary digits into nibbles. A separator is
// placed between each complete nibble; any trailing partial nibble stays
// attached to the last complete one.
func FormatWord(bits string) string {
	nibbles := len(bits) / 4
	if nibbles < 2 {
		return bits
	}

	var out strings.Builder
	out.Grow(len(bits) + nibbles - 1)
	for n := range nibbles - 1 {
		out.WriteString(bits[n*4 : n*4+4])
		out.WriteString(NIBBLE_SEP)
	}
	out.WriteString(bits[(nibbles-1)*4:])

	return out.String()
}

// field is an operand field of an instruction word.
type field struct {
	value uint
	width int
}

// makeWord packs the opcode bits followed by the operand fields, most
// significant first. Field values are truncated to their width.
func makeWord(op isa.Opcode, fields ...field) Word {
	bits := uint(op.Bits())
	width := op.Width()
	for _, fl := range fields {
		mask := uint(1)<<fl.width - 1
		bits = (bits << fl.width) | (fl.value & mask)
		width += fl.width
	}

	return Word{Bits: uint16(bits), Width: width}
}
