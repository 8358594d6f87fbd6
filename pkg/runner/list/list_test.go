package list

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) JournalPath() string        { return t.path }
func (t testConfig) Locking() bool              { return true }
func (t testConfig) AtomicWrites() bool         { return true }
func (t testConfig) LockTimeout() time.Duration { return time.Second }
func (t testConfig) ConfigFile() string         { return "" }

func persistence(t *testing.T, content string) (store.Persistence, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	p, err := store.Load(testConfig{path: path})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p, path
}

func TestListEmpty(t *testing.T) {
	color.NoColor = true
	for _, content := range []string{"", "[]"} {
		p, _ := persistence(t, content)
		var buf bytes.Buffer
		l := List{Printer: &printers.PrettyPrint{Out: &buf}, Persistence: p}
		if err := l.Do(context.Background()); err != nil {
			t.Fatalf("%q: list: %v", content, err)
		}
		if got := buf.String(); got != printers.EmptyMessage+"\n" {
			t.Fatalf("%q: expected empty message, got %q", content, got)
		}
	}
}

func TestListNumbersInOrder(t *testing.T) {
	color.NoColor = true
	list := []*entry.Entry{
		entry.New("A", time.Unix(1700000000, 0)),
		entry.New("C", time.Unix(1700000100, 0)),
	}
	data, _ := entry.MarshalList(list)
	p, path := persistence(t, string(data))

	var buf bytes.Buffer
	l := List{Printer: &printers.PrettyPrint{Out: &buf}, Persistence: p}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if want := "1. " + list[0].String(); lines[0] != want {
		t.Fatalf("expected %q, got %q", want, lines[0])
	}
	if want := "2. " + list[1].String(); lines[1] != want {
		t.Fatalf("expected %q, got %q", want, lines[1])
	}

	after, _ := os.ReadFile(path)
	if string(after) != string(data) {
		t.Fatalf("list must not write the journal")
	}
}

func TestListJSON(t *testing.T) {
	data, _ := entry.MarshalList([]*entry.Entry{entry.New("A", time.Unix(60, 0))})
	p, _ := persistence(t, string(data))

	var buf bytes.Buffer
	l := List{JSON: true, Printer: &printers.PrettyPrint{Out: &buf}, Persistence: p}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode output %q: %v", buf.String(), err)
	}
	if len(got) != 1 || got[0]["text"] != "A" || got[0]["position"] != float64(1) ||
		got[0]["created_at"] != "1970-01-01T00:01:00Z" {
		t.Fatalf("unexpected output: %v", got)
	}
}

func TestListMissingJournal(t *testing.T) {
	p, err := store.Load(testConfig{path: filepath.Join(t.TempDir(), "missing.json")})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	l := List{Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}}, Persistence: p}
	if err := l.Do(context.Background()); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not exist, got %v", err)
	}
}

func TestListMalformed(t *testing.T) {
	p, _ := persistence(t, "not json")
	l := List{Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}}, Persistence: p}
	var fe *entry.FormatError
	if err := l.Do(context.Background()); !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}
