// Package dates provides the timezone-aware date arithmetic and timestamp
// formats shared by extract jobs: pull windows relative to today, canonical
// date/timestamp layouts, and tags safe to embed in file paths.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// DefaultZone is the reporting timezone used when a requested zone is
// invalid or unspecified.
const DefaultZone = "America/Los_Angeles"

// Canonical layouts for dates and timestamps in extract files.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"

	// taggedLayout adds the meridiem and zone abbreviation for resource tags.
	taggedLayout = "2006-01-02 15:04:05 PM MST"
)

// Zone returns the named location, falling back to DefaultZone when the name
// is unknown, and to UTC if no zone database is available at all.
func Zone(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultZone); err == nil {
		return loc
	}
	return time.UTC
}

// StartEndDates returns the date strings bounding a pull window: daysAgo days
// before now, and now, both in the default zone.
func StartEndDates(daysAgo int) (start, end string) {
	now := time.Now().In(Zone(DefaultZone))
	return now.AddDate(0, 0, -daysAgo).Format(DateLayout), now.Format(DateLayout)
}

// ParseDate converts a date string with the given layout.
func ParseDate(value, layout string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q for layout %q: %w", value, layout, err)
	}
	return t, nil
}

// DaysSince returns the number of whole days between now and the given
// DateLayout string. An unparsable date counts as zero days.
func DaysSince(date string) int {
	hist, err := ParseDate(date, DateLayout)
	if err != nil {
		return 0
	}
	return int(time.Since(hist).Hours() / 24)
}

// HistoricalDate returns the date string for the given number of days before
// now in the default zone.
func HistoricalDate(days int) string {
	return time.Now().In(Zone(DefaultZone)).AddDate(0, 0, -days).Format(DateLayout)
}

// Today returns today's date string in the default zone.
func Today() string {
	return time.Now().In(Zone(DefaultZone)).Format(DateLayout)
}

// PullTimestamp returns the timestamp used to stamp extracted rows:
// YYYY-MM-DD HH:MM:SS with no meridiem or zone.
func PullTimestamp() string {
	return time.Now().In(Zone(DefaultZone)).Format(TimestampLayout)
}

// Timestamp returns a resource tag with meridiem and zone abbreviation.
// The path-safe variant swaps colons for hyphens and spaces for underscores
// so the tag can name a file or directory.
func Timestamp(pathSafe bool) string {
	now := time.Now().In(Zone(DefaultZone)).Format(taggedLayout)
	if pathSafe {
		now = strings.ReplaceAll(now, ":", "-")
		now = strings.ReplaceAll(now, " ", "_")
	}
	return now
}
