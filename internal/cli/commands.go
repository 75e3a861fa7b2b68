// internal/cli/commands.go
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"biofx/internal/app"
	"biofx/internal/cmdutil"
	"biofx/internal/input"
	"biofx/internal/report"
	"biofx/internal/version"
)

func addFormatFlag(cmd *cobra.Command, dst *string, formats []string) {
	cmd.Flags().StringVar(dst, "format", "text", "output format: "+strings.Join(formats, " | "))
}

func addOutDirFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVarP(dst, "out-dir", "o", "out", "output directory")
}

func expand(args []string) ([]string, error) {
	files, err := input.ExpandPaths(args)
	return files, cmdutil.UsageError(err)
}

func newLengthsCmd(g *globals) *cobra.Command {
	var outDir, format string
	cmd := &cobra.Command{
		Use:   "lengths FILE...",
		Short: "Report sequence length statistics per file and combined",
		Long: `Report the maximum, minimum and average length of line-delimited
sequences. One report per input file plus combined_data.txt are written to
the output directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expand(args)
			if err != nil {
				return err
			}
			_, err = app.Lengths(cmd.Context(), g.env, app.LengthsOptions{
				Files:  files,
				OutDir: g.outDir(cmd, outDir),
				Format: g.format(cmd, format),
			})
			return err
		},
	}
	addOutDirFlag(cmd, &outDir)
	addFormatFlag(cmd, &format, report.Formats())
	return cmd
}

func newGCCmd(g *globals) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "gc FILE...",
		Short: "Report the FASTA record with the highest GC content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expand(args)
			if err != nil {
				return err
			}
			_, err = app.GC(cmd.Context(), g.env, app.GCOptions{Files: files, Format: g.format(cmd, format)})
			return err
		},
	}
	addFormatFlag(cmd, &format, report.Formats())
	return cmd
}

func newFastaCmd(g *globals) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "fasta FILE...",
		Short: "Parse FASTA file(s) and print the records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expand(args)
			if err != nil {
				return err
			}
			_, err = app.Fasta(cmd.Context(), g.env, app.FastaOptions{Files: files, Format: g.format(cmd, format)})
			return err
		},
	}
	addFormatFlag(cmd, &format, report.RecordFormats())
	return cmd
}

func newHammingCmd(g *globals) *cobra.Command {
	var (
		format string
		pretty bool
		pair   bool
	)
	cmd := &cobra.Command{
		Use:   "hamming FILE | hamming --pair SEQ1 SEQ2",
		Short: "Pairwise Hamming distances between line-delimited sequences",
		Long: `Compute the Hamming distance between every pair of sequences in FILE.
Sequences of different length are allowed: each extra trailing residue of the
longer sequence counts as one mismatch.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if pair {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if pair {
				_, err := app.HammingPair(g.env, args[0], args[1])
				return err
			}
			_, err := app.Hamming(cmd.Context(), g.env, app.HammingOptions{
				File:   args[0],
				Format: g.format(cmd, format),
				Pretty: pretty,
			})
			return err
		},
	}
	addFormatFlag(cmd, &format, report.Formats())
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render the matrix as a table (text format)")
	cmd.Flags().BoolVar(&pair, "pair", false, "compare the two sequences given as arguments")
	return cmd
}

func newFibCmd(g *globals) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "fib GENERATIONS LITTER",
		Short: "Rabbit pairs after n generations with k pairs per litter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := strconv.Atoi(args[0])
			if err != nil {
				return cmdutil.Usagef("invalid generations %q", args[0])
			}
			litter, err := strconv.Atoi(args[1])
			if err != nil {
				return cmdutil.Usagef("invalid litter %q", args[1])
			}
			_, err = app.Fib(g.env, app.FibOptions{Generations: gen, Litter: litter, OutDir: g.outDir(cmd, outDir)})
			return err
		},
	}
	addOutDirFlag(cmd, &outDir)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "biofx %s\n", version.Full())
			return err
		},
	}
}
