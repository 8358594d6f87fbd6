package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	journal options.JournalOptions
	log     options.LogOptions
}

// context carries the logger configured by the persistent flags.
func (ro *rootOptions) context(cmd *cobra.Command) context.Context {
	return ro.log.Context(cmd.Context(), cmd.ErrOrStderr())
}

func New() *cobra.Command {
	ro := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "journal",
		Short:         "A personal task journal on the command line.",
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			ro.log.ApplyColor()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddJournalArgs(cmd, &ro.journal)
	options.AddLogArgs(cmd, &ro.log)

	addCommands(cmd, ro)
	return cmd
}

func addCommands(topLevel *cobra.Command, ro *rootOptions) {
	addAdd(topLevel, ro)
	addComplete(topLevel, ro)
	addList(topLevel, ro)
	addInfo(topLevel, ro)
	addVersion(topLevel)
}
