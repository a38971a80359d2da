package models

import "time"

// TimestampLayout is the fixed-width ISO-8601 layout used for all stored
// timestamps. Fixed width keeps string comparison equivalent to time order,
// which the report range filters and ORDER BY clauses rely on.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
