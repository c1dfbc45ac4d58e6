package utils

import "time"

const (
	// DateKeyLayout is the machine-readable day key used across the journal.
	DateKeyLayout = "2006-01-02"
	// DateLabelLayout is the short human label shown next to chart points.
	DateLabelLayout = "Jan 02"
)

// DateKey truncates t to its calendar date in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// DateLabel renders the short display form of a day key. Unparseable keys
// fall back to the key itself.
func DateLabel(key string) string {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format(DateLabelLayout)
}

// Midnight returns t with the clock zeroed, same location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday of t's week at midnight.
func StartOfWeek(t time.Time) time.Time {
	d := Midnight(t)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	return d.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first day of t's month at midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of t's month at midnight.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
