package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/studyplan/internal/constants"
)

// ParseDate parses a date string (YYYY-MM-DD) as midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate formats a time as a date string (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", timeStr, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfWeek returns the Sunday on or before the given date.
func StartOfWeek(date time.Time) time.Time {
	return date.AddDate(0, 0, -int(date.Weekday()))
}

// DaysBetween returns the whole number of calendar days from a to b.
// Both are expected at midnight UTC.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// InRange reports whether date lies within [start, end] inclusive.
func InRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}
