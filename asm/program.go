package asm

import (
	"bufio"
	"io"
	"iter"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Instruction is a line of source with its encoded word.
type Instruction struct {
	LineNo int      // Source line number.
	Ip     int      // Address of the word in the program image.
	Words  []string // Mnemonic and operand tokens.
	Word   Word     // Encoded instruction.
}

// Program is an assembled program.
type Program struct {
	Instructions []Instruction
}

// Debug returns the instruction at an address, or nil if the address is
// padding or outside the program image.
func (prog *Program) Debug(ip int) (inst *Instruction) {
	if ip < 0 || ip >= len(prog.Instructions) {
		return
	}

	inst = &prog.Instructions[ip]
	return
}

// Words iterates over every word of the program image, padded with
// all-zero words to PROGRAM_WORDS.
func (prog *Program) Words() iter.Seq2[int, Word] {
	return func(yield func(ip int, word Word) bool) {
		for ip := range PROGRAM_WORDS {
			word := Word{Width: WORD_BITS}
			if ip < len(prog.Instructions) {
				word = prog.Instructions[ip].Word
			}
			if !yield(ip, word) {
				return
			}
		}
	}
}

// Lines returns the formatted lines of the program image.
func (prog *Program) Lines() (lines []string) {
	lines = make([]string, 0, PROGRAM_WORDS)
	for _, word := range prog.Words() {
		lines = append(lines, word.Format())
	}
	return
}

// WriteTo writes the program image, one newline terminated line per word.
func (prog *Program) WriteTo(output io.Writer) (n int64, err error) {
	buf := bufio.NewWriter(output)
	for _, line := range prog.Lines() {
		var wrote int
		wrote, err = buf.WriteString(line + "\n")
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	err = buf.Flush()
	return
}

// WriteFile writes the program image to a file. The file is either
// replaced with the complete image, synced to disk, or left untouched.
func (prog *Program) WriteFile(path string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrIo{Path: path, Err: err}
		}
	}()

	ouf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithStaticPermissions(0o644))
	if err != nil {
		return
	}
	defer ouf.Cleanup()

	_, err = prog.WriteTo(ouf)
	if err != nil {
		return
	}

	err = ouf.CloseAtomicallyReplace()
	return
}
