package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/store"
)

// JournalOptions
type JournalOptions struct {
	File string
}

func AddJournalArgs(cmd *cobra.Command, o *JournalOptions) {
	cmd.PersistentFlags().StringVarP(&o.File, "journal-file", "j", "",
		"Use a different journal file. Defaults to $JOURNAL_PATH, the config file, or ~/.journal.json.")
}

// Persistence resolves the configuration and opens the journal store.
func (o *JournalOptions) Persistence() (store.Config, store.Persistence, error) {
	cfg, err := store.LoadConfig(o.File)
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}
