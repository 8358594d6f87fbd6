package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command, ro *rootOptions) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "add <task>",
		Short: "Add a task to the end of the journal",
		Example: `
journal add buy milk
journal -j ~/work.json add review the release notes
`,
		Args: func(_ *cobra.Command, args []string) error {
			return ao.ParseText(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, err := ro.journal.Persistence()
			if err != nil {
				return err
			}
			s := add.Add{
				Text:        ao.Text,
				Persistence: p,
			}
			return s.Do(ro.context(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
