package formatters

import (
	"fmt"
	"time"
)

const (
	absoluteLayout = "Jan 2, 03:04 PM"
	headerLayout   = "Monday, January 2, 2006"
	clockLayout    = "03:04 PM"
)

// FormatRelativeTime describes how long ago unixTimestamp was, relative to
// the current wall clock.
func FormatRelativeTime(unixTimestamp int64) string {
	return FormatRelativeTimeAt(unixTimestamp, time.Now())
}

// FormatRelativeTimeAt is FormatRelativeTime against a fixed now. Within an
// hour it counts whole minutes, within a day whole hours, after that it
// prints the absolute time in now's location. Timestamps ahead of now are
// not clamped and produce negative counts.
func FormatRelativeTimeAt(unixTimestamp int64, now time.Time) string {
	diffMs := now.UnixMilli() - unixTimestamp*1000
	minutes := floorDiv(diffMs, 60000)
	hours := floorDiv(minutes, 60)

	switch {
	case minutes < 60:
		return plural(minutes, "minute")
	case hours < 24:
		return plural(hours, "hour")
	default:
		return time.Unix(unixTimestamp, 0).In(now.Location()).Format(absoluteLayout)
	}
}

// FormatHeaderDate renders the long date shown at the top of the screen.
func FormatHeaderDate(t time.Time) string {
	return t.Format(headerLayout)
}

// FormatClockTime renders a 12-hour clock time such as "09:05 PM".
func FormatClockTime(t time.Time) string {
	return t.Format(clockLayout)
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s ago", n, unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
