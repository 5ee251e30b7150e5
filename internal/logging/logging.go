// Package logging builds the diagnostic logger shared by the CLI.
//
// Diagnostics are separate from the session transcript: they go to stderr and
// stay quiet unless something goes wrong or --verbose is given.
package logging

import (
	"io"

	clog "github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New returns a logger writing to w at warn level, or debug level when verbose.
func New(w io.Writer, verbose bool) *clog.Logger {
	level := clog.WarnLevel
	if verbose {
		level = clog.DebugLevel
	}
	return clog.NewWithOptions(w, clog.Options{
		Level:           level,
		Prefix:          "algosort",
		ReportTimestamp: verbose,
	})
}

// ForRun tags logger with a fresh run id so lines from one session can be grouped.
func ForRun(logger *clog.Logger) *clog.Logger {
	return logger.With("run", uuid.NewString())
}

// Discard returns a logger that drops everything.
func Discard() *clog.Logger {
	return clog.New(io.Discard)
}
