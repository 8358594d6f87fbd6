package options

import (
	"errors"
	"fmt"
	"strconv"
)

// PositionOptions
type PositionOptions struct {
	Position int
}

// ParsePosition reads the 1-based task position from the first argument.
// Range checking against the journal happens when it is loaded.
func (o *PositionOptions) ParsePosition(args []string) error {
	if len(args) != 1 {
		return errors.New("requires exactly one task position")
	}
	p, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("task position %q is not a number", args[0])
	}
	o.Position = p
	return nil
}
