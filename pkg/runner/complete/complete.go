// Package complete provides the runner logic for marking tasks done.
package complete

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/store"
)

// ErrInvalidPosition is returned when a position does not address a task in
// the journal. The journal is left untouched.
var ErrInvalidPosition = errors.New("invalid task position")

// Complete removes the task at a 1-based position. Later tasks shift down
// by one.
type Complete struct {
	Position    int
	Persistence store.Persistence
}

// Do executes the completion for the configured position.
func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	var done *entry.Entry
	err := n.Persistence.Update(ctx, false, func(list []*entry.Entry) ([]*entry.Entry, error) {
		if n.Position < 1 || n.Position > len(list) {
			return nil, fmt.Errorf("%w %d: journal has %d tasks", ErrInvalidPosition, n.Position, len(list))
		}
		i := n.Position - 1
		done = list[i]
		return append(list[:i], list[i+1:]...), nil
	})
	if err != nil {
		return err
	}
	log.FromContext(ctx).Debug("completed task", "position", n.Position, "text", done.Text)
	return nil
}
