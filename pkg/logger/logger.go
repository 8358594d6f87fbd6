// Package logger builds the console logger shared by commands, runners and
// the store. It travels on the context with log.WithContext.
package logger

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

const prefix = "journal"

// Options configures the console logger.
type Options struct {
	Verbose   bool
	Formatter log.Formatter
}

// New returns a text logger writing to w at info level, or debug level when
// verbose.
func New(w io.Writer, opts Options) *log.Logger {
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.Verbose,
		Prefix:          prefix,
	})
}

// ParseFormatter maps a formatter name to a log.Formatter, defaulting to text.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// Context attaches l to ctx.
func Context(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return log.WithContext(ctx, l)
}
