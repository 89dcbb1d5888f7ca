package utils

import (
	"time"

	"github.com/julianstephens/studyplan/internal/constants"
)

// ClampMonthDay returns day, or the month's last day when the month is shorter.
func ClampMonthDay(year int, month time.Month, day int) int {
	if last := DaysInMonth(year, month); day > last {
		return last
	}
	return day
}

// IsMonthlyDate reports whether date is the configured day of its month,
// clamping days past the end of shorter months (31 matches Feb 28/29).
func IsMonthlyDate(date time.Time, monthDay int) bool {
	return date.Day() == ClampMonthDay(date.Year(), date.Month(), monthDay)
}

// IsWeekdayIn reports whether the date's day of week (0 = Sunday) is in days.
func IsWeekdayIn(date time.Time, days []int) bool {
	wd := int(date.Weekday())
	for _, d := range days {
		if d == wd {
			return true
		}
	}
	return false
}

// IsOnBiweeklyCadence reports whether date falls in a week an even number of
// weeks away from the week containing anchor. Weeks start on Sunday.
func IsOnBiweeklyCadence(date, anchor time.Time) bool {
	weeks := DaysBetween(StartOfWeek(anchor), StartOfWeek(date)) / constants.DaysPerWeek
	return weeks%2 == 0
}
