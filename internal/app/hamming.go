// internal/app/hamming.go
package app

import (
	"context"
	"fmt"
	"io"

	"biofx-core/hamming"
	"biofx/internal/cmdutil"
	"biofx/internal/input"
	"biofx/internal/report"
)

// HammingOptions configures Hamming.
type HammingOptions struct {
	File   string
	Format string
	Pretty bool
}

// Hamming builds the pairwise distance matrix of the line-delimited
// sequences in one file. In text format the per-pair trace is printed while
// the matrix is built, followed by the matrix itself.
func Hamming(ctx context.Context, env Env, o HammingOptions) (hamming.Matrix, error) {
	if o.File == "" {
		return nil, cmdutil.Usagef("an input file is required")
	}
	if err := validFormat(o.Format, report.Formats()); err != nil {
		return nil, err
	}
	if o.Pretty && o.Format != report.FormatText {
		return nil, cmdutil.Usagef("--pretty requires --format text")
	}
	if err := input.CheckReadable([]string{o.File}); err != nil {
		return nil, cmdutil.UsageError(err)
	}
	seqs, err := input.ReadSequences(o.File)
	if err != nil {
		return nil, cmdutil.UsageError(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(seqs) < 2 {
		cmdutil.Warnf(env.logger(), env.Quiet, "%s has %d sequence(s); no pairs to compare", input.DisplayName(o.File), len(seqs))
	}

	var m hamming.Matrix
	err = env.emit(func(w io.Writer) error {
		var tr hamming.Tracer
		tw := &report.TraceWriter{W: w}
		if o.Format == report.FormatText {
			tr = tw
		}
		m = hamming.BuildMatrix(seqs, tr)
		if tw.Err != nil {
			return tw.Err
		}
		return report.WriteMatrix(o.Format, w, report.MatrixPayload{
			Meta:      env.Meta,
			Path:      o.File,
			Sequences: seqs,
			Matrix:    m,
			Pretty:    o.Pretty,
		})
	})
	return m, err
}

// HammingPair prints the distance between two sequences given directly.
func HammingPair(env Env, a, b string) (int, error) {
	d := hamming.Distance(a, b)
	err := env.emit(func(w io.Writer) error {
		_, err := fmt.Fprintln(w, d)
		return err
	})
	return d, err
}
