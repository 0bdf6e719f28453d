package analytics

import "time"

// Window is an inclusive time interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// WeekWindow returns the Monday 00:00:00.000 to Sunday 23:59:59.999 interval
// containing ref, in ref's location. Sunday is the last day of the week.
func WeekWindow(ref time.Time) Window {
	offset := int(ref.Weekday()) - int(time.Monday)
	if ref.Weekday() == time.Sunday {
		offset = 6
	}

	year, month, day := ref.Date()
	start := time.Date(year, month, day-offset, 0, 0, 0, 0, ref.Location())
	end := time.Date(year, month, day-offset+6, 23, 59, 59, int(999*time.Millisecond), ref.Location())

	return Window{Start: start, End: end}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// calendarDate reinterprets the calendar day of t as midnight in loc. Screening
// dates are plain dates and must not shift across a day boundary when the
// store returns them in another zone.
func calendarDate(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
