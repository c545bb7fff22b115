package household

import (
	"encoding/json"
	"time"
)

// isoMillis matches the ISO-8601 format browsers produce with
// Date.toISOString(): UTC with millisecond precision and a literal Z.
const isoMillis = "2006-01-02T15:04:05.000Z"

// Timestamp is a time.Time that marshals as a UTC ISO-8601 string with
// millisecond precision. Using a fixed precision keeps replayed idempotent
// responses and created_at/updated_at equality comparisons exact.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to millisecond precision in UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) String() string {
	return t.UTC().Format(isoMillis)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	*t = NewTimestamp(parsed)
	return nil
}
