package validation

import (
	"fmt"
	"time"
)

// ParseSyncTimestamp parses a stored or configured sync checkpoint. The value
// must be RFC3339 (nanosecond precision accepted) and not in the future by
// more than the allowed clock skew; anything else is a configuration error
// and must be rejected before any network request is issued.
func ParseSyncTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("sync timestamp cannot be empty")
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed sync timestamp %q: %w", value, err)
	}

	const maxSkew = time.Hour
	if t.After(time.Now().Add(maxSkew)) {
		return time.Time{}, fmt.Errorf("sync timestamp %q is in the future", value)
	}

	return t, nil
}

// FormatSyncTimestamp renders a checkpoint in the stored wire format.
func FormatSyncTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
