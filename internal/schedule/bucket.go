package schedule

import (
	"time"

	"planner/internal/model"
)

// NextWeekday returns the first date strictly after today that falls on wd.
// When today is already wd the result is a week out.
func NextWeekday(today model.Date, wd time.Weekday) model.Date {
	days := (int(wd) - int(today.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return today.AddDays(days)
}

// Window holds the boundaries the dated sections are cut at.
type Window struct {
	Today                   model.Date
	NextSaturday            model.Date
	NextSunday              model.Date
	SaturdayAfterNextSunday model.Date
}

func WindowFor(today model.Date) Window {
	nextSunday := NextWeekday(today, time.Sunday)
	return Window{
		Today:                   today,
		NextSaturday:            NextWeekday(today, time.Saturday),
		NextSunday:              nextSunday,
		SaturdayAfterNextSunday: nextSunday.AddDays(6),
	}
}

// Bucket classifies a due date relative to today. Overdue dates land in
// Today; upper bounds are inclusive.
func Bucket(due *model.Date, today model.Date) Section {
	if due == nil || due.IsZero() {
		return LongerTerm
	}
	if !due.After(today) {
		return Today
	}

	w := WindowFor(today)
	switch {
	case !due.After(w.NextSaturday):
		return ThisWeek
	case !due.After(w.SaturdayAfterNextSunday):
		return NextWeek
	default:
		return AfterNextWeek
	}
}
