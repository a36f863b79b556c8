package directory

import "time"

// TimestampLayout is how derived profile timestamps are rendered,
// e.g. "12:30:00, 1 Jun, 2024".
const TimestampLayout = "15:04:05, 2 Jan, 2006"

// FormatTimestamp renders t in loc using TimestampLayout.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(TimestampLayout)
}
