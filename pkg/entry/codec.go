package entry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// FormatError reports persisted content that is not a valid entry list.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed journal: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

var errNullEntry = errors.New("null entry")

// MarshalList encodes entries as a JSON array. A nil list encodes as [].
func MarshalList(list []*Entry) ([]byte, error) {
	if list == nil {
		list = []*Entry{}
	}
	return json.Marshal(list)
}

// UnmarshalList decodes a JSON array of entries. Content that is empty or
// only whitespace is an empty journal.
func UnmarshalList(data []byte) ([]*Entry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []*Entry{}, nil
	}
	var list []*Entry
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, &FormatError{Err: err}
	}
	if list == nil {
		return []*Entry{}, nil
	}
	for i, e := range list {
		if e == nil {
			return nil, &FormatError{Err: fmt.Errorf("record %d: %w", i+1, errNullEntry)}
		}
	}
	return list, nil
}

// Decode reads r to the end and decodes it with UnmarshalList.
func Decode(r io.Reader) ([]*Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return UnmarshalList(data)
}

// Encode writes the encoding of list to w.
func Encode(w io.Writer, list []*Entry) error {
	data, err := MarshalList(list)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
