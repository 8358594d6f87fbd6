package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{})
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug suppressed, got %q", buf.String())
	}

	buf.Reset()
	l = New(&buf, Options{Verbose: true})
	l.Debug("shown", "path", "/tmp/j.json")
	if got := buf.String(); !strings.Contains(got, "shown") || !strings.Contains(got, "/tmp/j.json") {
		t.Fatalf("expected debug record, got %q", got)
	}
}

func TestParseFormatter(t *testing.T) {
	if ParseFormatter("json") != log.JSONFormatter {
		t.Fatalf("expected json formatter")
	}
	if ParseFormatter("logfmt") != log.LogfmtFormatter {
		t.Fatalf("expected logfmt formatter")
	}
	if ParseFormatter("other") != log.TextFormatter {
		t.Fatalf("expected text formatter")
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Verbose: true, Formatter: log.JSONFormatter})
	ctx := Context(context.Background(), l)
	log.FromContext(ctx).Debug("via context")
	if !strings.Contains(buf.String(), `"msg":"via context"`) {
		t.Fatalf("expected json record, got %q", buf.String())
	}
}
