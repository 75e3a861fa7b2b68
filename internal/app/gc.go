// internal/app/gc.go
package app

import (
	"context"
	"io"

	"biofx-core/gc"
	"biofx/internal/cmdutil"
	"biofx/internal/input"
	"biofx/internal/report"
)

// GCOptions configures GC.
type GCOptions struct {
	Files  []string
	Format string
}

// GC reports the record with the highest GC content across all files.
func GC(ctx context.Context, env Env, o GCOptions) (gc.Result, error) {
	if len(o.Files) == 0 {
		return gc.Result{}, cmdutil.Usagef("at least one FASTA file is required")
	}
	if err := validFormat(o.Format, report.Formats()); err != nil {
		return gc.Result{}, err
	}
	if err := input.CheckReadable(o.Files); err != nil {
		return gc.Result{}, cmdutil.UsageError(err)
	}
	lg := env.logger()

	files, err := input.ReadFastaFiles(ctx, o.Files, env.Threads)
	if err != nil {
		if ctx.Err() != nil {
			return gc.Result{}, ctx.Err()
		}
		return gc.Result{}, cmdutil.UsageError(err)
	}
	var ev gc.Evaluator
	for _, f := range files {
		for _, r := range f.Records {
			ev.Observe(r)
		}
		lg.Debug("scanned", "path", input.DisplayName(f.Path), "records", len(f.Records))
	}
	res := ev.Result()
	if !res.Found {
		cmdutil.Warnf(lg, env.Quiet, "no record with GC content found")
	}
	err = env.emit(func(w io.Writer) error {
		return report.WriteGC(o.Format, w, report.GCPayload{Meta: env.Meta, Result: res})
	})
	return res, err
}
