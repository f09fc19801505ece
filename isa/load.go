package isa

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of an instruction set descriptor file.
type Format int

const (
	FORMAT_YAML     = Format(0) // YAML document with an 'opcodes' list.
	FORMAT_STARLARK = Format(1) // Starlark script defining an 'opcodes' list.
)

// FormatOf determines the descriptor format from a file name extension.
func FormatOf(path string) (format Format, err error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		format = FORMAT_YAML
	case ".star":
		format = FORMAT_STARLARK
	default:
		err = fmt.Errorf("%v: %w", path, ErrFormatUnknown)
	}
	return
}

// LoadFile loads an instruction set table from a descriptor file.
func LoadFile(path string) (table *Table, err error) {
	format, err := FormatOf(path)
	if err != nil {
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	table, err = Load(inf, format)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}

// Load loads an instruction set table from a descriptor.
func Load(input io.Reader, format Format) (table *Table, err error) {
	var ops []Opcode

	switch format {
	case FORMAT_YAML:
		ops, err = loadYaml(input)
	case FORMAT_STARLARK:
		ops, err = loadStarlark(input)
	default:
		err = ErrFormatUnknown
	}
	if err != nil {
		return
	}

	return NewTable(ops...)
}

// descriptor is the YAML descriptor document.
type descriptor struct {
	Opcodes []Opcode `yaml:"opcodes"`
}

func loadYaml(input io.Reader) (ops []Opcode, err error) {
	var desc descriptor

	dec := yaml.NewDecoder(input)
	dec.KnownFields(true)
	err = dec.Decode(&desc)
	if errors.Is(err, io.EOF) {
		err = ErrDescriptor
		return
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrDescriptor, err)
		return
	}

	ops = desc.Opcodes
	return
}

func loadStarlark(input io.Reader) (ops []Opcode, err error) {
	src, err := io.ReadAll(input)
	if err != nil {
		return
	}

	thread := starlark.Thread{Name: "isa"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"WORD_BITS": starlark.MakeInt(WORD_BITS),
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, "isa.star", src, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrDescriptor, err)
		return
	}

	st_ops, ok := dict["opcodes"]
	if !ok {
		err = fmt.Errorf("%w: %v", ErrDescriptor, f("'opcodes' not defined"))
		return
	}

	st_iter := starlark.Iterate(st_ops)
	if st_iter == nil {
		err = fmt.Errorf("%w: %v", ErrDescriptor, f("'opcodes' is not iterable"))
		return
	}
	defer st_iter.Done()

	var st_op starlark.Value
	for st_iter.Next(&st_op) {
		var op Opcode
		op, err = starlarkOpcode(st_op)
		if err != nil {
			err = &ErrOpcode{Index: len(ops), Name: op.Name, Err: err}
			return
		}
		ops = append(ops, op)
	}

	return
}

// starlarkOpcode converts a Starlark dict into an opcode.
func starlarkOpcode(value starlark.Value) (op Opcode, err error) {
	st_dict, ok := value.(*starlark.Dict)
	if !ok {
		err = fmt.Errorf("%w: %v", ErrDescriptor, f("%v is not a dict", value.Type()))
		return
	}

	field := func(key string) (str string, err error) {
		st_val, found, err := st_dict.Get(starlark.String(key))
		if err != nil {
			return
		}
		if !found {
			err = fmt.Errorf("%w: %v", ErrDescriptor, f("'%v' missing", key))
			return
		}
		str, ok := starlark.AsString(st_val)
		if !ok {
			err = fmt.Errorf("%w: %v", ErrDescriptor, f("'%v' is not a string", key))
			return
		}
		return
	}

	op.Name, err = field("name")
	if err != nil {
		return
	}

	op.Code, err = field("code")
	if err != nil {
		return
	}

	layout, err := field("layout")
	if err != nil {
		return
	}

	op.Layout, err = ParseLayout(layout)
	return
}

// Save writes the table as a YAML descriptor, which Load reads back.
func (table *Table) Save(output io.Writer) (err error) {
	enc := yaml.NewEncoder(output)
	enc.SetIndent(2)

	err = enc.Encode(&descriptor{Opcodes: table.opcodes})
	if err != nil {
		return
	}

	err = enc.Close()
	return
}
