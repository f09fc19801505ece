// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ezrec/asm16/internal"
	"github.com/ezrec/asm16/isa"
	"github.com/ezrec/asm16/translate"
)

// Assembler is a single pass assembler for 16-bit instruction words.
//
// An Assembler holds no state between calls, and may be used from
// multiple goroutines at once.
type Assembler struct {
	Verbose bool       // If set, verbosely logs the assembler actions.
	Strict  bool       // If set, unknown mnemonics and out of range operands are errors.
	Table   *isa.Table // Instruction set. If nil, isa.Default() is used.
}

// table returns the instruction set in use.
func (asm *Assembler) table() *isa.Table {
	if asm.Table == nil {
		return isa.Default()
	}
	return asm.Table
}

// Mnemonic normalizes a mnemonic token by upper-casing its first character.
// The rest of the token is left as is.
func Mnemonic(token string) string {
	r, size := utf8.DecodeRuneInString(token)
	if size == 0 || r == utf8.RuneError {
		return token
	}

	return cases.Upper(language.Und).String(token[:size]) + token[size:]
}

// parseLine encodes a single line. If the mnemonic is not known, and the
// assembler is not strict, ok is false.
func (asm *Assembler) parseLine(line string) (word Word, words []string, ok bool, err error) {
	words = internal.Fields(line)
	if len(words) == 0 {
		words = []string{""}
	}

	op, ok := asm.table().Lookup(Mnemonic(words[0]))
	if !ok {
		if asm.Strict {
			err = ErrMnemonicUnknown
		}
		return
	}

	cur := &Cursor{Tokens: words[1:]}
	word, err = asm.Encode(op, cur)

	return
}

// Assemble assembles source text into a program.
func (asm *Assembler) Assemble(text string) (prog *Program, err error) {
	prog = &Program{}
	count := 0

	for lineno, line := range internal.NonEmpty(internal.Lines(text)) {
		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		word, words, ok, lerr := asm.parseLine(line)
		if lerr != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: lerr}
			return
		}

		if !ok {
			if asm.Verbose {
				log.Printf("%v: %v", lineno, f("'%v' dropped, %v", words[0], ErrMnemonicUnknown))
			}
			continue
		}

		if asm.Verbose && !word.Valid() {
			log.Printf("%v: %v", lineno, f(translate.MsgPartialWord, line, word.Width))
		}

		// Lines past the image are still checked, but not kept.
		count++
		if count > PROGRAM_WORDS {
			continue
		}

		prog.Instructions = append(prog.Instructions, Instruction{
			LineNo: lineno,
			Ip:     len(prog.Instructions),
			Words:  words,
			Word:   word,
		})
	}

	if count > PROGRAM_WORDS {
		err = ErrOverflow(count)
		prog = nil
		return
	}

	return
}

// Parse parses an input stream into a program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	src, err := io.ReadAll(input)
	if err != nil {
		err = &ErrIo{Path: "-", Err: err}
		return
	}

	return asm.Assemble(string(src))
}

// ParseFile assembles infile, and if outfile is not empty writes the program
// image to it. The source text of infile is returned.
//
// The output file is only written once the whole program has assembled.
func (asm *Assembler) ParseFile(infile string, outfile string) (text string, err error) {
	src, err := os.ReadFile(infile)
	if err != nil {
		err = &ErrIo{Path: infile, Err: err}
		return
	}

	prog, err := asm.Assemble(string(src))
	if err != nil {
		return
	}

	if len(outfile) != 0 {
		err = prog.WriteFile(outfile)
		if err != nil {
			return
		}
	}

	text = string(src)
	return
}

// Job is a source file to assemble, and its output file.
type Job struct {
	Input  string
	Output string
}

// ParseFiles assembles a set of independent files concurrently. The first
// failure stops any jobs that have not yet started. Jobs must not share an
// output file.
func (asm *Assembler) ParseFiles(ctx context.Context, jobs ...Job) (err error) {
	outputs := make(map[string]string, len(jobs))
	for _, job := range jobs {
		if len(job.Output) == 0 {
			continue
		}
		key := filepath.Clean(job.Output)
		if input, ok := outputs[key]; ok {
			err = &ErrOutputDuplicate{Output: job.Output, Inputs: [2]string{input, job.Input}}
			return
		}
		outputs[key] = job.Input
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for _, job := range jobs {
		group.Go(func() (err error) {
			err = ctx.Err()
			if err != nil {
				return
			}
			_, err = asm.ParseFile(job.Input, job.Output)
			if err == nil && asm.Verbose {
				log.Print(f(translate.MsgWrote, job.Output, PROGRAM_WORDS))
			}
			return
		})
	}

	return group.Wait()
}
