package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// positionCompletions offers the positions of the journal, described by the
// task text.
func positionCompletions(ro *rootOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		_, p, err := ro.journal.Persistence()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		all, err := p.Load(ro.context(cmd))
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		cs := make([]string, 0, len(all))
		for i, e := range all {
			cs = append(cs, fmt.Sprintf("%d\t%s", i+1, e.Text))
		}
		return cs, cobra.ShellCompDirectiveNoFileComp
	}
}
