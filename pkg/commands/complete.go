package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command, ro *rootOptions) {
	po := &options.PositionOptions{}

	cmd := &cobra.Command{
		Use:     "done <position>",
		Aliases: []string{"complete", "completed"},
		Short:   "Complete the task at a position, removing it from the journal",
		Example: `
journal done 2
`,
		Args: func(_ *cobra.Command, args []string) error {
			return po.ParsePosition(args)
		},
		ValidArgsFunction: positionCompletions(ro),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, err := ro.journal.Persistence()
			if err != nil {
				return err
			}
			s := complete.Complete{
				Position:    po.Position,
				Persistence: p,
			}
			return s.Do(ro.context(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
