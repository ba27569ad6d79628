package calendar

import (
	"time"

	"github.com/trezcool/housepoints/core"
)

// WeekStart returns the Monday of the calendar week containing the wall-clock value ref.
// Sunday belongs to the week that started six days earlier.
func WeekStart(ref time.Time) core.Date {
	ref = wall(ref)
	offset := (int(ref.Weekday()) + 6) % daysInWeek
	return core.DateOf(ref).AddDays(-offset)
}

// ReopenAt returns Friday 15:15:00 of week, as a wall-clock value.
func ReopenAt(week core.Date) time.Time {
	return week.AddDays(reopenOffsetDays).At(reopenHour, reopenMinute, 0)
}

// EntryWeekStart returns the week a submission made at the wall-clock value ref belongs to:
// the calendar week, or the following one once that week's reopen instant is reached.
func EntryWeekStart(ref time.Time) core.Date {
	ref = wall(ref)
	week := WeekStart(ref)
	if !ref.Before(ReopenAt(week)) {
		return week.AddDays(daysInWeek)
	}
	return week
}

func IsWeekStart(d core.Date) bool {
	return d.Weekday() == time.Monday
}
