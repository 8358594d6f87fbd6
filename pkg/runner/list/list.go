// Package list provides the runner logic for printing the journal.
package list

import (
	"context"
	"errors"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

// List prints every task of the journal with its position.
type List struct {
	JSON        bool
	Printer     *printers.PrettyPrint
	Persistence store.Persistence
}

// Do loads the journal and renders it. Nothing is written back.
func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	all, err := n.Persistence.Load(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		return pp.JSON(all...)
	}
	pp.Entries(all...)
	return nil
}
