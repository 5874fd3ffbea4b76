package repository

import (
	"fmt"
	"time"
)

// timeLayout is RFC3339 with fixed nine-digit fractional seconds. The fixed
// width keeps UTC timestamps lexicographically ordered as TEXT, so ORDER BY
// created_at and latest-attempt selection see sub-second creation order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// parseTime parses a stored TEXT timestamp. RFC3339Nano accepts both the
// fixed-width form written here and plain RFC3339 rows from older databases.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// formatTime renders a timestamp for TEXT storage in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted for TEXT storage.
func nowUTC() string {
	return formatTime(time.Now())
}
