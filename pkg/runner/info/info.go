// Package info reports where the journal lives and how it is configured.
package info

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

// Info prints the resolved configuration and a summary of the journal.
type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Printer     *printers.PrettyPrint
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig("")
		if err != nil {
			return err
		}
	}
	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	configFile := n.Config.ConfigFile()
	if configFile == "" {
		configFile = "none"
	}
	configDir := os.Getenv(store.ConfigPathEnv)
	if configDir == "" {
		configDir = "not set"
	}

	rows := [][2]string{
		{store.ConfigPathEnv, configDir},
		{"Config file", configFile},
		{"Journal", n.Persistence.Path()},
		{"Locking", strconv.FormatBool(n.Config.Locking())},
		{"Lock timeout", n.Config.LockTimeout().String()},
		{"Atomic writes", strconv.FormatBool(n.Config.AtomicWrites())},
	}

	fi, err := os.Stat(n.Persistence.Path())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		rows = append(rows, [2]string{"Size", "not created yet"})
	case err != nil:
		return fmt.Errorf("stat journal: %w", err)
	default:
		rows = append(rows, [2]string{"Size", fmt.Sprintf("%d bytes", fi.Size())})
		all, err := n.Persistence.Load(ctx)
		if err != nil {
			return err
		}
		rows = append(rows, [2]string{"Tasks", strconv.Itoa(len(all))})
	}

	rows = append(rows, [2]string{"Lock file", lockFile(n.Config, n.Persistence.Path())})
	pp.Table(rows)
	return nil
}

func lockFile(cfg store.Config, path string) string {
	lf := store.LockFile(path)
	if !cfg.Locking() {
		return lf + " (unused)"
	}
	if _, err := os.Stat(lf); err != nil {
		return lf + " (created on first use, kept between runs)"
	}
	return lf + " (kept between runs)"
}
