package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/journal/pkg/entry"
)

// EmptyMessage is printed by Entries for a journal without tasks.
const EmptyMessage = "Task list is empty."

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// Entries prints one numbered line per entry, in journal order.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	w := pp.out()
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(w, EmptyMessage)
		return
	}

	b := color.New(color.Bold)
	for i, e := range entries {
		_, _ = b.Fprint(w, strconv.Itoa(i+1)+".")
		_, _ = fmt.Fprintf(w, " %s\n", e)
	}
}

type jsonEntry struct {
	Position  int    `json:"position"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// JSON prints the entries as an indented JSON array.
func (pp *PrettyPrint) JSON(entries ...*entry.Entry) error {
	out := make([]jsonEntry, 0, len(entries))
	for i, e := range entries {
		out = append(out, jsonEntry{
			Position:  i + 1,
			Text:      e.Text,
			CreatedAt: e.CreatedAt.String(),
		})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}

// Table prints key/value rows with the keys right aligned.
func (pp *PrettyPrint) Table(rows [][2]string) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range rows {
		tbl.AddRow(bold.Sprint(r[0]), r[1])
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}
