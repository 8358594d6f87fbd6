package entry

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewTruncatesToUTCSecond(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 999, time.FixedZone("X", 3600))
	e := New("buy milk", now)
	if e.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", e.CreatedAt.Location())
	}
	if e.CreatedAt.Nanosecond() != 0 {
		t.Fatalf("expected second precision, got %v", e.CreatedAt)
	}
	if e.CreatedAt.Unix() != now.Unix() {
		t.Fatalf("expected %d, got %d", now.Unix(), e.CreatedAt.Unix())
	}
}

func TestListRoundTrip(t *testing.T) {
	list := []*Entry{
		New("buy milk", time.Unix(1700000000, 0)),
		New("walk dog", time.Unix(1700000060, 0)),
		New("ünïcode 日本", time.Unix(0, 0)),
	}
	data, err := MarshalList(list)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalList(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != len(list) {
		t.Fatalf("expected %d entries, got %d", len(list), len(got))
	}
	for i := range list {
		if !list[i].Equal(got[i]) {
			t.Fatalf("entry %d: expected %+v, got %+v", i, list[i], got[i])
		}
	}
}

func TestMarshalListFormat(t *testing.T) {
	data, err := MarshalList([]*Entry{New("a", time.Unix(42, 0))})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `[{"text":"a","created_at":42}]`; string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}

	data, err = MarshalList(nil)
	if err != nil {
		t.Fatalf("marshal nil: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected [], got %s", data)
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, in := range []string{"", "  \n", "null", "[]"} {
		got, err := Decode(strings.NewReader(in))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("%q: expected empty list, got %v", in, got)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{
		`[{"text":"a","created_at":1}`,
		`{"text":"a","created_at":1}`,
		`[{"text":"a","created_at":"yesterday"}]`,
		`[{"text":"a","created_at":1.5}]`,
		`[{"text":"a"}]`,
		`[{"created_at":1}]`,
		`[null]`,
		`garbage`,
	} {
		_, err := Decode(strings.NewReader(in))
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("%q: expected FormatError, got %v", in, err)
		}
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	got, err := UnmarshalList([]byte(`[{"text":"a","created_at":5,"tags":["x"]}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Text != "a" || got[0].CreatedAt.Unix() != 5 {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, []*Entry{New("x", time.Unix(7, 0))}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Text != "x" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestString(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)
	e := New("buy milk", created)
	want := "buy milk" + strings.Repeat(" ", TextWidth-len("buy milk")) +
		" [" + created.Local().Format("2006-01-02 15:04") + "]"
	if got := e.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	long := strings.Repeat("x", TextWidth+10)
	if got := New(long, created).String(); !strings.HasPrefix(got, long+" [") {
		t.Fatalf("expected long text kept in full, got %q", got)
	}
}
