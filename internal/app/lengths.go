// internal/app/lengths.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"biofx-core/stats"
	"biofx/internal/cmdutil"
	"biofx/internal/input"
	"biofx/internal/pipeline"
	"biofx/internal/report"
)

// LengthsOptions configures Lengths.
type LengthsOptions struct {
	Files  []string
	OutDir string
	Format string
}

// LengthsResult is returned for callers that want the numbers as well as the
// files on disk.
type LengthsResult struct {
	Groups    []report.GroupStats
	Combined  stats.LengthStats
	Sequences int
}

// Lengths computes per-file and combined length statistics of line-delimited
// sequences. One report file per input plus combined_data.txt are written
// into OutDir; a one-line summary goes to stdout.
func Lengths(ctx context.Context, env Env, o LengthsOptions) (LengthsResult, error) {
	var res LengthsResult
	if len(o.Files) == 0 {
		return res, cmdutil.Usagef("at least one input file is required")
	}
	if o.OutDir == "" {
		return res, cmdutil.Usagef("--out-dir must not be empty")
	}
	if err := validFormat(o.Format, report.Formats()); err != nil {
		return res, err
	}
	if err := input.CheckReadable(o.Files); err != nil {
		return res, cmdutil.UsageError(err)
	}
	if err := os.MkdirAll(o.OutDir, 0o755); err != nil {
		return res, cmdutil.OutputError(err)
	}
	lg := env.logger()

	groups, err := pipeline.Map(ctx, pipeline.Config{Threads: env.Threads}, o.Files, groupStats)
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		return res, cmdutil.UsageError(err)
	}

	var comb stats.Combined
	for i, path := range o.Files {
		g := groups[i]
		comb.Merge(g)
		res.Groups = append(res.Groups, report.GroupStats{Path: path, Stats: g})
		lg.Debug("group stats", "path", input.DisplayName(path), "count", g.Count, "max", g.Max, "min", g.Min)

		if err := writeFile(filepath.Join(o.OutDir, report.GroupFileName(path)), func(f *os.File) error {
			return report.WriteGroupFile(f, g)
		}); err != nil {
			return res, err
		}
	}
	res.Combined = comb.Stats()
	res.Sequences = res.Combined.Count
	if res.Sequences == 0 {
		cmdutil.Warnf(lg, env.Quiet, "no sequences found in %d file(s)", len(o.Files))
	}

	payload := report.LengthPayload{Meta: env.Meta, Groups: res.Groups, Combined: res.Combined}
	if err := writeFile(filepath.Join(o.OutDir, report.CombinedFileName), func(f *os.File) error {
		return report.WriteLength(report.FormatText, f, payload)
	}); err != nil {
		return res, err
	}
	if o.Format == report.FormatJSON {
		if err := writeFile(filepath.Join(o.OutDir, "combined_data.json"), func(f *os.File) error {
			return report.WriteLength(report.FormatJSON, f, payload)
		}); err != nil {
			return res, err
		}
	}
	lg.Info("length statistics written", "dir", o.OutDir, "files", comb.Groups(), "sequences", res.Sequences)

	err = env.emit(func(w io.Writer) error {
		_, err := fmt.Fprintln(w, report.LengthSummary(res.Sequences, comb.Groups(), o.OutDir))
		return err
	})
	return res, err
}

func groupStats(path string) (stats.LengthStats, error) {
	lines, err := input.ReadLines(path)
	if err != nil {
		return stats.LengthStats{}, err
	}
	var acc stats.Accumulator
	for _, l := range lines {
		acc.AddLine(l)
	}
	return acc.Stats(), nil
}

// writeFile creates path, runs write, and closes it, keeping the first error.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return cmdutil.OutputError(err)
	}
	werr := write(f)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		return cmdutil.OutputError(fmt.Errorf("write %s: %w", path, err))
	}
	return nil
}
