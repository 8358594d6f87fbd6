// Package entry defines the journal record and its on-disk encoding.
package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/muesli/reflow/padding"
)

// TextWidth is the minimum number of display cells the text of an entry
// occupies when rendered, so the creation dates line up.
const TextWidth = 50

// New creates an entry for text, stamped with now in UTC at second precision.
func New(text string, now time.Time) *Entry {
	return &Entry{
		Text:      text,
		CreatedAt: Timestamp{Time: now.UTC().Truncate(time.Second)},
	}
}

// Entry is a single task in the journal. Entries are never mutated once
// created; completing a task removes its entry from the journal.
type Entry struct {
	Text      string    `json:"text"`
	CreatedAt Timestamp `json:"created_at"`
}

// Equal reports whether both entries carry the same text and creation second.
func (e *Entry) Equal(o *Entry) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.Text == o.Text && e.CreatedAt.Unix() == o.CreatedAt.Unix()
}

func (e *Entry) String() string {
	text := e.Text
	if text == "" {
		text = strings.Repeat(" ", TextWidth)
	}
	return fmt.Sprintf("%s [%s]", padding.String(text, TextWidth), e.CreatedAt.Display())
}

// UnmarshalJSON requires both fields to be present.
func (e *Entry) UnmarshalJSON(b []byte) error {
	var raw struct {
		Text      *string    `json:"text"`
		CreatedAt *Timestamp `json:"created_at"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.Text == nil:
		return errors.New("entry: missing field text")
	case raw.CreatedAt == nil:
		return errors.New("entry: missing field created_at")
	}
	e.Text = *raw.Text
	e.CreatedAt = *raw.CreatedAt
	return nil
}
