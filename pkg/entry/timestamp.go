package entry

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const layoutDisplay = "2006-01-02 15:04"

// Timestamp is a UTC instant persisted as whole seconds since the Unix epoch.
type Timestamp struct {
	time.Time
}

// Display formats the timestamp in the local zone as date and minute.
func (t Timestamp) Display() string {
	return t.Local().Format(layoutDisplay)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.Unix(), 10), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var seconds int64
	if err := json.Unmarshal(b, &seconds); err != nil {
		return fmt.Errorf("timestamp: expected integer seconds, got %s", b)
	}
	t.Time = time.Unix(seconds, 0).UTC()
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
