// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options selects where and how much to log.
type Options struct {
	Level   string // debug | info | warn | error
	Verbose bool   // forces debug
	File    string // optional; logs are written to both Out and File
	Out     io.Writer
}

// New returns a logger and a close func for the optional log file.
func New(o Options) (*log.Logger, func() error) {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	closeFn := func() error { return nil }
	var fileErr error
	if o.File != "" {
		f, err := os.OpenFile(o.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			out = io.MultiWriter(out, f)
			closeFn = f.Close
		} else {
			fileErr = err
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "biofx",
	})

	if o.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		switch strings.ToLower(o.Level) {
		case "debug":
			logger.SetLevel(log.DebugLevel)
		case "info", "":
			logger.SetLevel(log.InfoLevel)
		case "warn", "warning":
			logger.SetLevel(log.WarnLevel)
		case "error":
			logger.SetLevel(log.ErrorLevel)
		default:
			logger.SetLevel(log.InfoLevel)
			logger.Warn("unknown log level, defaulting to info", "provided", o.Level)
		}
	}
	if fileErr != nil {
		logger.Warn("log file could not be opened; logging to stderr only", "path", o.File, "err", fileErr)
	}
	return logger, closeFn
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	l := log.New(io.Discard)
	l.SetLevel(log.FatalLevel)
	return l
}
