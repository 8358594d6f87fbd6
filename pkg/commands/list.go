package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/runner/list"
)

func addList(topLevel *cobra.Command, ro *rootOptions) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the tasks in the journal",
		Example: `
journal list
journal list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			_, p, err := ro.journal.Persistence()
			if err != nil {
				return oo.HandleError(err)
			}
			s := list.List{
				JSON:        oo.JSON,
				Printer:     &printers.PrettyPrint{Out: cmd.OutOrStdout()},
				Persistence: p,
			}
			err = s.Do(ro.context(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
