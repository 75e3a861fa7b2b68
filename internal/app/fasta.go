// internal/app/fasta.go
package app

import (
	"context"
	"errors"
	"io"

	"biofx/internal/cmdutil"
	"biofx/internal/input"
	"biofx/internal/report"
)

// FastaOptions configures Fasta.
type FastaOptions struct {
	Files  []string
	Format string
}

// Fasta tokenizes each file independently and prints the records.
func Fasta(ctx context.Context, env Env, o FastaOptions) ([]input.FastaFile, error) {
	if len(o.Files) == 0 {
		return nil, cmdutil.Usagef("at least one FASTA file is required")
	}
	if err := validFormat(o.Format, report.RecordFormats()); err != nil {
		return nil, err
	}
	if err := input.CheckReadable(o.Files); err != nil {
		return nil, cmdutil.UsageError(err)
	}
	files, err := input.ReadFastaFiles(ctx, o.Files, env.Threads)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, cmdutil.UsageError(err)
	}
	n := 0
	for _, f := range files {
		n += len(f.Records)
	}
	env.logger().Debug("parsed", "files", len(files), "records", n)

	err = env.emit(func(w io.Writer) error {
		return report.WriteRecords(o.Format, w, report.RecordsPayload{Meta: env.Meta, Files: files})
	})
	return files, err
}
