// core/fasta/reader.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Record represents a parsed FASTA sequence.
type Record struct {
	ID       string
	Residues string
}

// Len returns the number of residues.
func (r Record) Len() int { return len(r.Residues) }

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// Parse scans FASTA text from r and returns the records in input order.
// The only error is a read error from r.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var t tokenizer
	for sc.Scan() {
		t.line(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	return t.finish(), nil
}

// ParseLines tokenizes lines that have already been split.
// Trailing line terminators are tolerated.
func ParseLines(lines []string) []Record {
	var t tokenizer
	for _, l := range lines {
		t.line(l)
	}
	return t.finish()
}

// tokenizer holds the record being built during one parse.
// open is false until the first header, so the first header never
// flushes an empty record.
type tokenizer struct {
	out      []Record
	id       string
	residues strings.Builder
	open     bool
}

func (t *tokenizer) line(raw string) {
	line := strings.TrimRightFunc(raw, unicode.IsSpace)
	if strings.HasPrefix(line, ">") {
		if t.open {
			t.flush()
		}
		t.residues.Reset()
		t.id = strings.TrimSpace(line[1:])
		t.open = true
		return
	}
	t.residues.WriteString(line)
}

func (t *tokenizer) flush() {
	t.out = append(t.out, Record{ID: t.id, Residues: t.residues.String()})
	t.residues.Reset()
}

// finish seals the last open record. It is appended even when no header was
// ever seen, so header-less input yields a single record with an empty ID.
func (t *tokenizer) finish() []Record {
	t.flush()
	out := t.out
	t.out = nil
	t.id, t.open = "", false
	return out
}
