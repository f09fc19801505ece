package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asm16/asm"
	"github.com/ezrec/asm16/isa"
)

func run(args ...string) (out string, err error) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	app.ErrWriter = &buf
	err = app.Run(append([]string{"asm16"}, args...))
	out = buf.String()
	return
}

func TestOutputOf(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("prog.out", outputOf("prog.asm"))
	assert.Equal("dir/prog.out", outputOf("dir/prog.s"))
	assert.Equal("prog.out", outputOf("prog"))
	assert.Equal("prog.out.out", outputOf("prog.out"))
}

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	infile := filepath.Join(dir, "prog.asm")
	outfile := filepath.Join(dir, "prog.bin")
	assert.NoError(os.WriteFile(infile, []byte("li R3 200\nAdd R1 R2 R3\n"), 0o644))

	_, err := run("-o", outfile, infile)
	assert.NoError(err)

	out, err := os.ReadFile(outfile)
	assert.NoError(err)
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	assert.Equal(asm.PROGRAM_WORDS, len(lines))
	assert.Equal("0001_1100_1000_0011", lines[0])
	assert.Equal("0100_0010_0011_0001", lines[1])
}

func TestAssemble_DefaultOutfile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	infile := filepath.Join(dir, "prog.asm")
	assert.NoError(os.WriteFile(infile, []byte("Nop\n"), 0o644))

	t.Chdir(dir)

	_, err := run(infile)
	assert.NoError(err)

	_, err = os.Stat("a.out")
	assert.NoError(err)
}

func TestAssemble_Strict(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	infile := filepath.Join(dir, "prog.asm")
	outfile := filepath.Join(dir, "prog.out")
	assert.NoError(os.WriteFile(infile, []byte("Foo R1\n"), 0o644))

	_, err := run("--strict", "-o", outfile, infile)
	assert.ErrorIs(err, asm.ErrMnemonicUnknown)
	assert.NoFileExists(outfile)

	_, err = run("-o", outfile, infile)
	assert.NoError(err)
	assert.FileExists(outfile)
}

func TestAssemble_Isa(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	infile := filepath.Join(dir, "prog.asm")
	outfile := filepath.Join(dir, "prog.out")
	isafile := filepath.Join(dir, "isa.yaml")
	assert.NoError(os.WriteFile(infile, []byte("halt\n"), 0o644))
	assert.NoError(os.WriteFile(isafile, []byte("opcodes: [{name: Halt, code: '111111', layout: none}]\n"), 0o644))

	_, err := run("--strict", "--isa", isafile, "-o", outfile, infile)
	assert.NoError(err)

	out, err := os.ReadFile(outfile)
	assert.NoError(err)
	assert.True(strings.HasPrefix(string(out), "1111_1100_0000_0000\n"))

	_, err = run("--isa", filepath.Join(dir, "isa.json"), infile)
	assert.ErrorIs(err, isa.ErrFormatUnknown)
}

func TestAssemble_Multiple(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a.asm", "b.asm", "c.asm"} {
		infile := filepath.Join(dir, name)
		assert.NoError(os.WriteFile(infile, []byte("Ret\n"), 0o644))
		files = append(files, infile)
	}

	_, err := run(files...)
	assert.NoError(err)
	for _, infile := range files {
		assert.FileExists(outputOf(infile))
	}

	_, err = run(append([]string{"-o", filepath.Join(dir, "x.out")}, files...)...)
	assert.ErrorIs(err, ErrOutfileMulti)
}

func TestAssemble_SharedOutput(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a.asm", "a.s"} {
		infile := filepath.Join(dir, name)
		assert.NoError(os.WriteFile(infile, []byte("Ret\n"), 0o644))
		files = append(files, infile)
	}
	assert.Equal(outputOf(files[0]), outputOf(files[1]))

	_, err := run(files...)
	var dup *asm.ErrOutputDuplicate
	assert.True(errors.As(err, &dup))
	assert.Equal(outputOf(files[0]), dup.Output)
	assert.NoFileExists(outputOf(files[0]))
}

func TestAssemble_DumpIsa(t *testing.T) {
	assert := assert.New(t)

	out, err := run("--dump-isa")
	assert.NoError(err)

	table, err := isa.Load(strings.NewReader(out), isa.FORMAT_YAML)
	assert.NoError(err)
	assert.Equal(slices.Collect(isa.Default().Opcodes()), slices.Collect(table.Opcodes()))

	dir := t.TempDir()
	isafile := filepath.Join(dir, "isa.yaml")
	assert.NoError(os.WriteFile(isafile, []byte("opcodes: [{name: Halt, code: '111111', layout: none}]\n"), 0o644))

	out, err = run("--verbose", "--isa", isafile, "--dump-isa")
	assert.NoError(err)
	assert.Contains(out, "name: Halt")
	assert.NotContains(out, "name: Nop")
}

func TestAssemble_Usage(t *testing.T) {
	assert := assert.New(t)

	out, err := run()
	assert.ErrorIs(err, ErrFileMissing)
	assert.Contains(out, "FILE...")

	out, err = run("-v")
	assert.NoError(err)
	assert.Contains(out, version)

	out, err = run("--help")
	assert.NoError(err)
	assert.Contains(out, "--outfile")
}
