package internal

import (
	"iter"
	"strings"
)

// Lines iterates over the lines of text, yielding the 1-based line number and
// the line with its line terminator removed. A trailing '\r' is stripped, and
// a final empty line after the last '\n' is not yielded.
func Lines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lineno := 0
		for len(text) > 0 {
			lineno += 1
			line, rest, found := strings.Cut(text, "\n")
			if !found {
				rest = ""
			}
			text = rest
			line = strings.TrimSuffix(line, "\r")
			if !yield(lineno, line) {
				return // Stop if the consumer stops
			}
		}
	}
}

// NonEmpty filters out empty lines from a line sequence.
func NonEmpty(seq iter.Seq2[int, string]) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for lineno, line := range seq {
			if len(line) == 0 {
				continue
			}
			if !yield(lineno, line) {
				return
			}
		}
	}
}

// Fields splits a line on single spaces. Consecutive spaces yield empty
// fields; a single trailing empty field is dropped.
func Fields(line string) (fields []string) {
	if len(line) == 0 {
		return
	}

	fields = strings.Split(line, " ")
	if fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	return
}
