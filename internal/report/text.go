// internal/report/text.go
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"biofx-core/gc"
	"biofx-core/hamming"
	"biofx-core/stats"
	"biofx/internal/input"
)

func init() {
	RegisterLength(FormatText, writeLengthText)
	RegisterGC(FormatText, writeGCText)
	RegisterRecords(FormatText, writeRecordsText)
	RegisterMatrix(FormatText, writeMatrixText)
}

// NotApplicable replaces the average when no sequence was observed.
const NotApplicable = "N/A"

// Unset replaces an extremum when no sequence was observed.
const Unset = "None"

// FormatFloat renders f in its shortest round-trip form with at least one
// decimal digit (23 → "23.0", 389.4 → "389.4").
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// LengthText renders the three-line length report.
func LengthText(s stats.LengthStats) string {
	hi, lo, avg := Unset, Unset, NotApplicable
	if s.HasData() {
		hi = strconv.Itoa(s.Max)
		lo = strconv.Itoa(s.Min)
		avg = FormatFloat(s.Avg)
	}
	return fmt.Sprintf("Maximum Length: %s\nMinimum Length: %s\nAverage Length: %s\n", hi, lo, avg)
}

// WriteGroupFile writes one group's report. A group without sequences gets
// an empty file.
func WriteGroupFile(w io.Writer, s stats.LengthStats) error {
	if !s.HasData() {
		return nil
	}
	_, err := io.WriteString(w, LengthText(s))
	return err
}

// GroupFileName is the per-group output file name inside the output directory.
func GroupFileName(path string) string {
	if path == "-" {
		return input.StdinName + ".txt"
	}
	return filepath.Base(path)
}

// CombinedFileName is the combined report inside the output directory.
const CombinedFileName = "combined_data.txt"

// LengthSummary is the one-line message printed after a lengths run.
func LengthSummary(seqs, files int, outDir string) string {
	return fmt.Sprintf("Calculated length statistics for %d sequence%s in %d file%s to directory \"%s\".",
		seqs, plural(seqs), files, plural(files), outDir)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// writeLengthText prints the combined report to w.
func writeLengthText(w io.Writer, p LengthPayload) error {
	_, err := io.WriteString(w, LengthText(p.Combined))
	return err
}

// GCLine renders "<best_id> <best_pct>" with six decimals.
func GCLine(r gc.Result) string {
	return fmt.Sprintf("%s %.6f", r.BestID, r.BestPct)
}

func writeGCText(w io.Writer, p GCPayload) error {
	_, err := fmt.Fprintln(w, GCLine(p.Result))
	return err
}

func writeRecordsText(w io.Writer, p RecordsPayload) error {
	for _, f := range p.Files {
		if _, err := fmt.Fprintf(w, "file = %q\n", input.DisplayName(f.Path)); err != nil {
			return err
		}
		for _, r := range f.Records {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", r.ID, r.Residues); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeMatrixText(w io.Writer, p MatrixPayload) error {
	if p.Pretty {
		_, err := fmt.Fprintln(w, PrettyMatrix(p.Matrix))
		return err
	}
	_, err := fmt.Fprintln(w, MatrixText(p.Matrix))
	return err
}

// MatrixText renders m as bracketed rows with right-aligned cells:
//
//	[[0 2 1]
//	 [0 0 3]
//	 [0 0 0]]
func MatrixText(m hamming.Matrix) string {
	if m.Size() == 0 {
		return "[]"
	}
	width := 1
	for _, row := range m {
		for _, v := range row {
			if n := len(strconv.Itoa(v)); n > width {
				width = n
			}
		}
	}
	var b strings.Builder
	for i, row := range m {
		if i == 0 {
			b.WriteString("[[")
		} else {
			b.WriteString(" [")
		}
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", width, v)
		}
		b.WriteByte(']')
		if i < len(m)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// TraceWriter prints matrix progress lines as the matrix is built.
// The first write error is kept and later writes are skipped.
type TraceWriter struct {
	W   io.Writer
	Err error
}

var _ hamming.Tracer = (*TraceWriter)(nil)

func (t *TraceWriter) Row(i int, seq string) {
	if t.Err != nil {
		return
	}
	_, t.Err = fmt.Fprintf(t.W, "Seq %d: %s:\n", i, seq)
}

func (t *TraceWriter) Pair(j int, seq string, dist int) {
	if t.Err != nil {
		return
	}
	_, t.Err = fmt.Fprintf(t.W, "\tSeq %d: %s - Dist: %d\n", j, seq, dist)
}
