package main

import (
	"os"

	"github.com/charmbracelet/log"

	"tableflip.dev/journal/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.NewWithOptions(os.Stderr, log.Options{Prefix: "journal"}).
			Fatal("error during command execution", "err", err)
	}
}
