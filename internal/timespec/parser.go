package timespec

import (
	"fmt"
	"time"
)

// Layout is the primary timestamp format: a date with a 24h wall-clock time.
const Layout = "2006-01-02 15:04"

// clockLayout is the wall-clock-only format used for the day boundary.
const clockLayout = "15:04"

// Parse parses a timestamp specification.
// Supports two formats:
//   - date and time: "2026-05-16 10:30"
//   - RFC3339 timestamps: "2026-05-16T10:30:00Z"
func Parse(spec string) (time.Time, error) {
	if spec == "" {
		return time.Time{}, fmt.Errorf("empty time specification")
	}

	// Try the date-and-time layout first
	if t, err := time.Parse(Layout, spec); err == nil {
		return t, nil
	}

	// Try RFC3339
	if t, err := time.Parse(time.RFC3339, spec); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid time specification: %s (use '2026-05-16 10:30' or RFC3339 like '2026-05-16T10:30:00Z')", spec)
}

// ParseClock parses a wall-clock specification like "19:30" and anchors it
// on day's date, keeping day's location.
func ParseClock(spec string, day time.Time) (time.Time, error) {
	c, err := time.Parse(clockLayout, spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock specification: %s (use a 24h time like '19:30')", spec)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, day.Location()), nil
}
