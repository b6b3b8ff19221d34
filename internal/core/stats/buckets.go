package stats

import (
	"fmt"
	"time"
)

// WeekStart truncates a timestamp to the Monday of its week.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}

// WeekLabel formats a bucket start date as "YYYY-Wnn" using the ISO week of
// the start date.
func WeekLabel(start time.Time) string {
	year, week := start.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthLabel formats a timestamp's calendar month as "YYYY-MM".
func MonthLabel(t time.Time) string {
	return t.Format("2006-01")
}
