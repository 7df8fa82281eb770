package repository

import (
	"fmt"
	"time"
)

// DateTimeLayout is the storage format for trade dates: fixed-width UTC with
// millisecond precision, so lexicographic comparison in SQL matches time
// order and the month-end boundary (23:59:59.999) round-trips exactly.
const DateTimeLayout = "2006-01-02T15:04:05.000Z"

// FormatTime renders a time in the storage format, normalizing to UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// ParseTime parses a stored date string in the storage layout, plain
// "2006-01-02", or RFC3339 format.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{DateTimeLayout, "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}
