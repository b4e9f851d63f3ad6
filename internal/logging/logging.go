// Package logging builds the diagnostics logger.
//
// Diagnostics go to stderr in zerolog's console format so they never mix with
// command output on stdout. They are separate from the audit log in package
// log, which records operations rather than internals.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// TimeFormat is the timestamp layout used in console output.
const TimeFormat = "15:04:05"

// New returns a console logger writing to w at level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
		NoColor:    !isTerminal(w),
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewCLI returns the logger used by the command line: stderr, at level, or
// debug when verbose is set.
func NewCLI(level zerolog.Level, verbose bool) zerolog.Logger {
	if verbose {
		level = zerolog.DebugLevel
	}
	return New(os.Stderr, level)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
