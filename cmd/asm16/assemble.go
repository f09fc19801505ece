package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ezrec/asm16/asm"
	"github.com/ezrec/asm16/isa"
	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	ErrFileMissing  = errors.New(f("FILE is required"))
	ErrOutfileMulti = errors.New(f("--outfile cannot be used with more than one FILE"))
)

var (
	OutfileFlag = &cli.PathFlag{
		Name:    "outfile",
		Aliases: []string{"o"},
		Usage:   "Specifies the name for the machine code file",
		Value:   "a.out",
	}
	IsaFlag = &cli.PathFlag{
		Name:  "isa",
		Usage: "Instruction set descriptor (.yaml, .yml or .star). Default: built in",
	}
	StrictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "Reject unknown mnemonics, out of range and excess operands",
	}
	DumpIsaFlag = &cli.BoolFlag{
		Name:  "dump-isa",
		Usage: "Write the instruction set as a YAML descriptor, and exit",
	}
	VerboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log each source line as it is assembled",
	}
)

// outputOf derives the output file of a source file when assembling
// more than one file at once.
func outputOf(infile string) (outfile string) {
	outfile = strings.TrimSuffix(infile, filepath.Ext(infile)) + ".out"
	if outfile == infile {
		outfile += ".out"
	}
	return
}

// Assemble assembles each FILE argument.
func Assemble(ctx *cli.Context) (err error) {
	assembler := &asm.Assembler{
		Strict:  ctx.Bool(StrictFlag.Name),
		Verbose: ctx.Bool(VerboseFlag.Name),
	}

	table := isa.Default()
	if path := ctx.Path(IsaFlag.Name); len(path) != 0 {
		table, err = isa.LoadFile(path)
		if err != nil {
			return fmt.Errorf("%v: %w", f("instruction set"), err)
		}
		if assembler.Verbose {
			log.Print(f(translate.MsgOpcodes, path, table.Len()))
		}
		assembler.Table = table
	}

	if ctx.Bool(DumpIsaFlag.Name) {
		return table.Save(ctx.App.Writer)
	}

	files := ctx.Args().Slice()
	if len(files) == 0 {
		_ = cli.ShowAppHelp(ctx)
		return ErrFileMissing
	}

	if len(files) == 1 {
		_, err = assembler.ParseFile(files[0], ctx.Path(OutfileFlag.Name))
		return
	}

	if ctx.IsSet(OutfileFlag.Name) {
		return ErrOutfileMulti
	}

	jobs := make([]asm.Job, 0, len(files))
	for _, infile := range files {
		jobs = append(jobs, asm.Job{Input: infile, Output: outputOf(infile)})
	}

	return assembler.ParseFiles(ctx.Context, jobs...)
}
