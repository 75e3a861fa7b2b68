// internal/cli/root.go
package cli

import (
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"biofx/internal/app"
	"biofx/internal/cmdutil"
	"biofx/internal/config"
	"biofx/internal/logging"
	"biofx/internal/version"
	"biofx/pkg/api"
)

// globals holds the persistent flags and what PersistentPreRunE derives
// from them. Subcommands read env and cfg.
type globals struct {
	configPath string
	logLevel   string
	logFile    string
	verbose    bool
	quiet      bool
	threads    int

	cfg      config.Config
	env      app.Env
	closeLog func() error
}

// NewRootCmd creates the biofx command tree.
func NewRootCmd() *cobra.Command {
	g := &globals{closeLog: func() error { return nil }}

	root := &cobra.Command{
		Use:   "biofx",
		Short: "biofx - sequence length, GC content and Hamming distance statistics",
		Long: `biofx computes statistics over biological sequences.

Inputs are FASTA files (gc, fasta) or plain files with one sequence per line
(lengths, hamming). Use '-' to read standard input; gzip input is detected
automatically and glob patterns are expanded.`,
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return g.closeLog()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "JSON config file (default ./"+config.DefaultPath+" if present)")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug | info | warn | error")
	pf.StringVar(&g.logFile, "log-file", "", "also append logs to this file")
	pf.BoolVar(&g.verbose, "verbose", false, "debug logging (overrides --log-level)")
	pf.BoolVarP(&g.quiet, "quiet", "q", false, "suppress non-essential warnings")
	pf.IntVarP(&g.threads, "threads", "t", 0, "files processed in parallel (0 = all CPUs)")

	groupStats := "stats"
	groupUtil := "utilities"
	root.AddGroup(&cobra.Group{ID: groupStats, Title: "Sequence Statistics"})
	root.AddGroup(&cobra.Group{ID: groupUtil, Title: "Utility Commands"})

	for _, c := range []*cobra.Command{
		newLengthsCmd(g), newGCCmd(g), newHammingCmd(g),
	} {
		c.GroupID = groupStats
		root.AddCommand(c)
	}
	for _, c := range []*cobra.Command{
		newFastaCmd(g), newFibCmd(g), newVersionCmd(),
	} {
		c.GroupID = groupUtil
		root.AddCommand(c)
	}
	root.SetGlobalNormalizationFunc(underscoreToDash)
	return root
}

// setup loads config, builds the logger, and fills g.env.
func (g *globals) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	threads := cfg.Threads
	if cmd.Flags().Changed("threads") {
		threads = g.threads
	}
	if threads < 0 {
		return cmdutil.Usagef("--threads must be >= 0 (got %d)", threads)
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = g.logLevel
	}
	logFile := cfg.LogFile
	if cmd.Flags().Changed("log-file") {
		logFile = g.logFile
	}
	logger, closeFn := logging.New(logging.Options{
		Level:   level,
		Verbose: g.verbose,
		File:    logFile,
		Out:     cmd.ErrOrStderr(),
	})
	g.closeLog = closeFn

	g.env = app.Env{
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Log:     logger,
		Meta:    api.Meta{RunID: uuid.NewString(), ToolVersion: version.Get()},
		Quiet:   g.quiet,
		Threads: threads,
	}
	logger.Debug("starting", "command", cmd.Name(), "run_id", g.env.Meta.RunID, "config", g.configPath)
	return nil
}

// format returns --format if given, else the configured default.
func (g *globals) format(cmd *cobra.Command, flagVal string) string {
	if cmd.Flags().Changed("format") {
		return flagVal
	}
	return g.cfg.Format
}

// outDir returns --out-dir if given, else the configured default.
func (g *globals) outDir(cmd *cobra.Command, flagVal string) string {
	if cmd.Flags().Changed("out-dir") {
		return flagVal
	}
	return g.cfg.OutDir
}

// underscoreToDash accepts --out_dir for --out-dir.
func underscoreToDash(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
