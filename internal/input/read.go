// internal/input/read.go
package input

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"biofx-core/fasta"
	"biofx/internal/pipeline"
)

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// ReadLines returns every line of path without its terminator. A final line
// without a newline is kept; an empty file yields no lines.
func ReadLines(path string) ([]string, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", DisplayName(path), err)
	}
	return lines, nil
}

// ReadSequences returns the line-delimited sequences of path, each trimmed of
// surrounding whitespace.
func ReadSequences(path string) ([]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines, nil
}

// FastaFile is the tokenized content of one input.
type FastaFile struct {
	Path    string
	Records []fasta.Record
}

// ReadFasta tokenizes one FASTA input.
func ReadFasta(path string) (FastaFile, error) {
	rc, err := Open(path)
	if err != nil {
		return FastaFile{}, err
	}
	defer rc.Close()

	recs, err := fasta.Parse(rc)
	if err != nil {
		return FastaFile{}, fmt.Errorf("%s: %w", DisplayName(path), err)
	}
	return FastaFile{Path: path, Records: recs}, nil
}

// ReadFastaFiles tokenizes each path independently on up to threads workers
// and returns the files in presentation order.
func ReadFastaFiles(ctx context.Context, paths []string, threads int) ([]FastaFile, error) {
	return pipeline.Map(ctx, pipeline.Config{Threads: threads}, paths, ReadFasta)
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPaths expands any globs among path-like arguments. "-" passes through.
func ExpandPaths(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		if a == "-" || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}
