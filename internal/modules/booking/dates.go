package booking

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a calendar day ("2006-01-02") to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// DateOnly truncates a timestamp to its UTC calendar day.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights counts the whole days between two calendar dates.
func Nights(start, end time.Time) int {
	return int(DateOnly(end).Sub(DateOnly(start)) / (24 * time.Hour))
}
