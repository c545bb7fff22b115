package household

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampMarshal(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 6, 1, 12, 30, 45, 987654321, time.FixedZone("CEST", 2*3600)))

	if got := ts.String(); got != "2024-06-01T10:30:45.987Z" {
		t.Errorf("String() = %q, want UTC millisecond form", got)
	}

	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `"2024-06-01T10:30:45.987Z"` {
		t.Errorf("Marshal = %s", b)
	}

	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(ts.Time) {
		t.Errorf("roundtrip = %v, want %v", back, ts)
	}
}

func TestTimestampWholeSecondKeepsMillis(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	if got := ts.String(); got != "2024-06-01T12:00:00.000Z" {
		t.Errorf("String() = %q, want trailing .000Z", got)
	}
}
