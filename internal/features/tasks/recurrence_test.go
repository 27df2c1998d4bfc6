package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOccursOn_NoRecurrence(t *testing.T) {
	task := &Task{Title: "dentist", DueDate: "2024-03-15"}

	assert.True(t, OccursOn(task, date("2024-03-15")))
	assert.False(t, OccursOn(task, date("2024-03-14")))
	assert.False(t, OccursOn(task, date("2024-03-16")))

	// Time of day on the target is ignored.
	noon := time.Date(2024, 3, 15, 12, 30, 0, 0, time.Local)
	assert.True(t, OccursOn(task, noon))
}

func TestOccursOn_Daily(t *testing.T) {
	task := &Task{
		DueDate:    "2024-01-01",
		Recurrence: &Recurrence{Frequency: FreqDaily, Interval: 1, EndCondition: EndNever},
	}

	assert.False(t, OccursOn(task, date("2023-12-31")), "before anchor")
	assert.True(t, OccursOn(task, date("2024-01-01")))
	assert.True(t, OccursOn(task, date("2024-01-02")))
	assert.True(t, OccursOn(task, date("2025-06-30")))
}

func TestOccursOn_DailyWithInterval(t *testing.T) {
	task := &Task{
		DueDate:    "2024-01-01",
		Recurrence: &Recurrence{Frequency: FreqDaily, Interval: 3, EndCondition: EndNever},
	}

	assert.True(t, OccursOn(task, date("2024-01-01")))
	assert.False(t, OccursOn(task, date("2024-01-02")))
	assert.False(t, OccursOn(task, date("2024-01-03")))
	assert.True(t, OccursOn(task, date("2024-01-04")))
	assert.True(t, OccursOn(task, date("2024-01-07")))
}

func TestOccursOn_WeeklyWithInterval(t *testing.T) {
	// Anchored at a Monday; every other week on Monday and Wednesday.
	task := &Task{
		DueDate: "2024-01-01",
		Recurrence: &Recurrence{
			Frequency:    FreqWeekly,
			Interval:     2,
			WeekDays:     []int{1, 3},
			EndCondition: EndNever,
		},
	}

	assert.True(t, OccursOn(task, date("2024-01-01")), "anchor Monday")
	assert.True(t, OccursOn(task, date("2024-01-03")), "Wednesday same week")
	assert.False(t, OccursOn(task, date("2024-01-02")), "Tuesday not selected")
	assert.False(t, OccursOn(task, date("2024-01-08")), "Monday of skipped week")
	assert.False(t, OccursOn(task, date("2024-01-10")), "Wednesday of skipped week")
	assert.True(t, OccursOn(task, date("2024-01-15")), "Monday two weeks on")
	assert.True(t, OccursOn(task, date("2024-01-17")), "Wednesday two weeks on")
}

func TestOccursOn_WeeklyMissingWeekDays(t *testing.T) {
	// A weekly rule with no weekday set matches no day at all.
	task := &Task{
		DueDate:    "2024-01-01",
		Recurrence: &Recurrence{Frequency: FreqWeekly, Interval: 1, EndCondition: EndNever},
	}

	for d := 0; d < 14; d++ {
		assert.False(t, OccursOn(task, date("2024-01-01").AddDate(0, 0, d)))
	}
}

func TestOccursOn_Monthly(t *testing.T) {
	task := &Task{
		DueDate:    "2024-01-15",
		Recurrence: &Recurrence{Frequency: FreqMonthly, Interval: 1, EndCondition: EndNever},
	}

	assert.True(t, OccursOn(task, date("2024-01-15")))
	assert.True(t, OccursOn(task, date("2024-02-15")))
	assert.True(t, OccursOn(task, date("2025-01-15")))
	assert.False(t, OccursOn(task, date("2024-02-14")))
}

func TestOccursOn_MonthlyInterval(t *testing.T) {
	task := &Task{
		DueDate:    "2024-01-10",
		Recurrence: &Recurrence{Frequency: FreqMonthly, Interval: 3, EndCondition: EndNever},
	}

	assert.True(t, OccursOn(task, date("2024-04-10")))
	assert.False(t, OccursOn(task, date("2024-02-10")))
	assert.False(t, OccursOn(task, date("2024-03-10")))
	assert.True(t, OccursOn(task, date("2024-07-10")))
	assert.True(t, OccursOn(task, date("2025-01-10")))
}

func TestOccursOn_MonthlyShortMonthNoMatch(t *testing.T) {
	// Anchored on the 31st: months without a 31st produce no occurrence,
	// never a rolled-forward one.
	task := &Task{
		DueDate:    "2024-01-31",
		Recurrence: &Recurrence{Frequency: FreqMonthly, Interval: 1, EndCondition: EndNever},
	}

	assert.False(t, OccursOn(task, date("2024-02-29")))
	assert.False(t, OccursOn(task, date("2024-03-01")))
	assert.True(t, OccursOn(task, date("2024-03-31")))
	assert.False(t, OccursOn(task, date("2024-04-30")))
	assert.True(t, OccursOn(task, date("2024-05-31")))
}

func TestOccursOn_Yearly(t *testing.T) {
	task := &Task{
		DueDate:    "2024-07-04",
		Recurrence: &Recurrence{Frequency: FreqYearly, Interval: 2, EndCondition: EndNever},
	}

	assert.True(t, OccursOn(task, date("2024-07-04")))
	assert.False(t, OccursOn(task, date("2025-07-04")))
	assert.True(t, OccursOn(task, date("2026-07-04")))
	assert.False(t, OccursOn(task, date("2026-07-05")))
	assert.False(t, OccursOn(task, date("2026-06-04")))
}

func TestOccursOn_EndOnDate(t *testing.T) {
	task := &Task{
		DueDate: "2024-01-01",
		Recurrence: &Recurrence{
			Frequency:    FreqDaily,
			Interval:     1,
			EndCondition: EndOnDate,
			EndDate:      "2024-01-10",
		},
	}

	assert.True(t, OccursOn(task, date("2024-01-10")))
	assert.False(t, OccursOn(task, date("2024-01-11")), "past end date")
	assert.False(t, OccursOn(task, date("2024-06-01")))
}

func TestOccursOn_AfterOccurrencesNotCounted(t *testing.T) {
	// AFTER_OCCURRENCES is carried on the rule but not enforced; the series
	// keeps matching past the count.
	task := &Task{
		DueDate: "2024-01-01",
		Recurrence: &Recurrence{
			Frequency:    FreqDaily,
			Interval:     1,
			EndCondition: EndAfterOccurrences,
			EndCount:     3,
		},
	}

	assert.True(t, OccursOn(task, date("2024-01-04")))
	assert.True(t, OccursOn(task, date("2024-02-01")))
}

func TestOccursOn_Degenerate(t *testing.T) {
	t.Run("unknown frequency", func(t *testing.T) {
		task := &Task{
			DueDate:    "2024-01-01",
			Recurrence: &Recurrence{Frequency: "HOURLY", Interval: 1},
		}
		assert.False(t, OccursOn(task, date("2024-01-01")))
	})

	t.Run("malformed anchor", func(t *testing.T) {
		task := &Task{DueDate: "not-a-date"}
		require.NotPanics(t, func() {
			assert.False(t, OccursOn(task, date("2024-01-01")))
		})
	})

	t.Run("malformed end date", func(t *testing.T) {
		task := &Task{
			DueDate: "2024-01-01",
			Recurrence: &Recurrence{
				Frequency:    FreqDaily,
				Interval:     1,
				EndCondition: EndOnDate,
				EndDate:      "garbage",
			},
		}
		assert.False(t, OccursOn(task, date("2024-01-02")))
	})

	t.Run("zero interval treated as one", func(t *testing.T) {
		task := &Task{
			DueDate:    "2024-01-01",
			Recurrence: &Recurrence{Frequency: FreqDaily, Interval: 0},
		}
		assert.True(t, OccursOn(task, date("2024-01-05")))
	})
}
