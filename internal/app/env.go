// Package app runs the biofx commands. Each Run function validates its
// options, checks inputs, computes, and writes reports; it never parses flags.
package app

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"biofx/internal/cmdutil"
	"biofx/internal/logging"
	"biofx/internal/report"
	"biofx/pkg/api"
)

// Env is what every command needs from the shell.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Log    *log.Logger
	Meta   api.Meta
	Quiet  bool

	// Threads bounds per-file parallelism; <1 means one worker per CPU.
	Threads int
}

func (e Env) logger() *log.Logger {
	if e.Log == nil {
		return logging.Discard()
	}
	return e.Log
}

// emit buffers stdout for write, flushes, and classifies the result.
// Broken pipes count as success.
func (e Env) emit(write func(w io.Writer) error) error {
	outw := bufio.NewWriterSize(e.Stdout, 64<<10)
	err := write(outw)
	if err == nil {
		err = outw.Flush()
	}
	if report.IsBrokenPipe(err) {
		return nil
	}
	return cmdutil.OutputError(err)
}

func validFormat(f string, formats []string) error {
	for _, ok := range formats {
		if f == ok {
			return nil
		}
	}
	return cmdutil.Usagef("invalid --format %q (want %s)", f, strings.Join(formats, " | "))
}
