package model

import (
	"fmt"
	"time"
)

// DiscordEpoch is the first second of 2015 in milliseconds since the
// Unix epoch. Snowflake timestamps are measured from this instant.
const DiscordEpoch int64 = 1420070400000

const timestampFormat = "2006-01-02T15:04:05.000Z"

// Timestamp is a calendar instant with millisecond precision, rendered
// in UTC. It embeds time.Time, so the full time API is available.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns the Timestamp for t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}

// TimestampFromMillis returns the Timestamp for a millisecond offset
// from the Unix epoch.
func TimestampFromMillis(ms int64) Timestamp {
	return Timestamp{time.UnixMilli(ms).UTC()}
}

// String renders the instant as an ISO8601 string with millisecond
// precision, e.g. "2016-04-30T11:18:25.796Z".
func (t Timestamp) String() string {
	return t.UTC().Format(timestampFormat)
}

// MarshalJSON encodes the instant as a quoted ISO8601 string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted ISO8601 string.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("expected a JSON string, got %s", data)
	}
	parsed, err := time.Parse(time.RFC3339, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("failed to parse timestamp: %w", err)
	}
	t.Time = parsed.UTC()
	return nil
}
