// Package dates provides pure date formatting and classification helpers.
package dates

import (
	"fmt"
	"time"
)

// InvalidDate is the sentinel returned for unusable timestamps. Malformed
// input never raises; it surfaces as this fixed string.
const InvalidDate = "Invalid date"

// InputLayout is the calendar-date-only form used by form inputs and flags.
const InputLayout = "2006-01-02"

// Format renders t using the given layout, or InvalidDate for a zero time.
func Format(t time.Time, layout string) string {
	if t.IsZero() {
		return InvalidDate
	}
	return t.Format(layout)
}

// FormatForInput renders t in calendar-date-only form.
func FormatForInput(t time.Time) string {
	return Format(t, InputLayout)
}

// NowISO returns the current timestamp in RFC 3339 interchange form.
func NowISO() string {
	return time.Now().Format(time.RFC3339)
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// IsPast returns true when t is strictly before now.
func IsPast(t time.Time, now time.Time) bool {
	return !t.IsZero() && t.Before(now)
}

// IsFuture returns true when t is strictly after now.
func IsFuture(t time.Time, now time.Time) bool {
	return !t.IsZero() && t.After(now)
}

// DaysUntil returns the calendar-day difference between t and now.
// Negative for past dates, zero for the same calendar day.
func DaysUntil(t time.Time, now time.Time) int {
	tDay := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(tDay.Sub(nowDay) / (24 * time.Hour))
}

// FormatRelative renders t as a "time ago" or "time until" phrase
// relative to now.
func FormatRelative(t time.Time, now time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}

	diff := now.Sub(t)
	past := diff >= 0
	if !past {
		diff = -diff
	}

	phrase := relativeAmount(diff)
	if phrase == "just now" {
		return phrase
	}
	if past {
		return phrase + " ago"
	}
	return "in " + phrase
}

func relativeAmount(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d < 365*24*time.Hour:
		return plural(int(d.Hours()/(24*30)), "month")
	default:
		return plural(int(d.Hours()/(24*365)), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
