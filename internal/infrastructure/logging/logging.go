// Package logging builds the console logger shared by the CLI and its adapters.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options contains configuration for creating a console logger.
type Options struct {
	Debug bool
	// Timestamps adds a time column. Off for interactive runs.
	Timestamps bool
}

// New creates a console logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: opts.Timestamps,
		Level:           level,
		Prefix:          "famplex",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
