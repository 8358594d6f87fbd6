package options

import (
	"errors"
	"strings"
)

// AddOptions
type AddOptions struct {
	Text string
}

// ParseText joins the remaining arguments into the task text.
func (o *AddOptions) ParseText(args []string) error {
	if len(args) < 1 {
		return errors.New("requires a task")
	}
	o.Text = strings.Join(args, " ")
	return nil
}
