package tasks

import "time"

const dateLayout = "2006-01-02"

// OccursOn reports whether the task's series produces an occurrence on the
// target calendar date. Pure and total: malformed dates or rules match
// nothing rather than erroring.
//
// The AFTER_OCCURRENCES end condition is stored on rules but deliberately
// not evaluated here; counting past occurrences was never implemented in
// the product and the field is kept for forward compatibility.
func OccursOn(t *Task, target time.Time) bool {
	day := dateOnly(target)

	anchor, err := time.Parse(dateLayout, t.DueDate)
	if err != nil {
		return false
	}

	if t.Recurrence == nil {
		return day.Equal(anchor)
	}

	r := t.Recurrence
	if day.Before(anchor) {
		return false
	}

	if r.EndCondition == EndOnDate {
		end, err := time.Parse(dateLayout, r.EndDate)
		if err != nil || day.After(end) {
			return false
		}
	}

	interval := r.Interval
	if interval < 1 {
		interval = 1
	}

	diffDays := int(day.Sub(anchor).Hours() / 24)

	switch r.Frequency {
	case FreqDaily:
		return diffDays%interval == 0

	case FreqWeekly:
		if !containsWeekday(r.WeekDays, int(day.Weekday())) {
			return false
		}
		return (diffDays/7)%interval == 0

	case FreqMonthly:
		if day.Day() != anchor.Day() {
			return false
		}
		months := (day.Year()-anchor.Year())*12 + int(day.Month()) - int(anchor.Month())
		return months >= 0 && months%interval == 0

	case FreqYearly:
		if day.Month() != anchor.Month() || day.Day() != anchor.Day() {
			return false
		}
		years := day.Year() - anchor.Year()
		return years >= 0 && years%interval == 0

	default:
		return false
	}
}

// dateOnly strips time-of-day and pins the date to UTC so day arithmetic
// against parsed anchors is exact.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func containsWeekday(weekDays []int, day int) bool {
	for _, wd := range weekDays {
		if wd == day {
			return true
		}
	}
	return false
}
