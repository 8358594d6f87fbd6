// Package add provides the runner logic for appending a task to the journal.
package add

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/store"
)

// Add appends a new task to the end of the journal.
type Add struct {
	Text string
	// Now defaults to time.Now.
	Now func() time.Time

	Persistence store.Persistence
}

// Do creates the journal when it is missing and appends the task.
func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	e := entry.New(n.Text, now())

	position := 0
	err := n.Persistence.Update(ctx, true, func(list []*entry.Entry) ([]*entry.Entry, error) {
		list = append(list, e)
		position = len(list)
		return list, nil
	})
	if err != nil {
		return err
	}
	log.FromContext(ctx).Debug("added task", "position", position, "text", e.Text)
	return nil
}
