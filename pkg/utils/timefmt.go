package utils

import (
	"strings"
	"time"
)

// Layouts the feed has been seen to use for departure times
var feedTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseFeedTime parses a feed timestamp. Values without an offset are UTC.
func ParseFeedTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range feedTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatClock renders t as "HH:MM" in loc
func FormatClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(CLOCK_LAYOUT)
}

// FormatUpdated renders the "last updated" stamp shown on the board
func FormatUpdated(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(UPDATED_LAYOUT)
}
