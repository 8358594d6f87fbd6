package options

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/logger"
)

// LogOptions
type LogOptions struct {
	Verbose   bool
	LogFormat string
	NoColor   bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log what the journal store is doing.")
	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"Log format. One of 'text', 'logfmt' or 'json'.")
	cmd.PersistentFlags().BoolVar(&o.NoColor, "no-color", false,
		"Disable colored output.")
}

// ApplyColor turns color off when asked to, when NO_COLOR is set or when
// stdout is not a terminal.
func (o *LogOptions) ApplyColor() {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if o.NoColor || os.Getenv("NO_COLOR") != "" || !tty {
		color.NoColor = true
	}
}

// Context returns ctx carrying a logger that writes to w.
func (o *LogOptions) Context(ctx context.Context, w io.Writer) context.Context {
	l := logger.New(w, logger.Options{
		Verbose:   o.Verbose,
		Formatter: logger.ParseFormatter(o.LogFormat),
	})
	return logger.Context(ctx, l)
}
