package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the journal file and where it is stored.",
		Example: `
journal info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := ro.journal.Persistence()
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
				Printer:     &printers.PrettyPrint{Out: cmd.OutOrStdout()},
			}
			return s.Do(ro.context(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
