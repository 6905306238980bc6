package entity

import "time"

// MonthWindow returns [start, end) of the calendar month containing now in loc.
func MonthWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}

	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)

	return start, start.AddDate(0, 1, 0)
}

// AddCalendarMonth moves t forward one calendar month, clamping the day to the
// last day of the target month (Jan 31 becomes Feb 28 or 29).
func AddCalendarMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+1, 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
