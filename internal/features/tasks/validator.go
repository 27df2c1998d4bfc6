package tasks

import (
	"errors"
	"strings"

	"github.com/homehub-app/homehub/internal/pkg/validator"
)

func ValidateCreateTask(req *CreateTaskRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("Title is required")
	}
	if !validator.IsValidDate(req.DueDate) {
		return errors.New("Due date must be in YYYY-MM-DD format")
	}
	if req.DueTime != "" && !validator.IsValidTime(req.DueTime) {
		return errors.New("Due time must be in HH:MM format")
	}
	return validateRecurrence(req.Recurrence)
}

func ValidateUpdateTask(req *UpdateTaskRequest) error {
	if req.DueDate != "" && !validator.IsValidDate(req.DueDate) {
		return errors.New("Due date must be in YYYY-MM-DD format")
	}
	if req.DueTime != nil && *req.DueTime != "" && !validator.IsValidTime(*req.DueTime) {
		return errors.New("Due time must be in HH:MM format")
	}
	return validateRecurrence(req.Recurrence)
}

func validateRecurrence(r *Recurrence) error {
	if r == nil {
		return nil
	}

	switch r.Frequency {
	case FreqDaily, FreqWeekly, FreqMonthly, FreqYearly:
	default:
		return errors.New("Recurrence frequency must be DAILY, WEEKLY, MONTHLY or YEARLY")
	}

	if r.Interval < 1 {
		return errors.New("Recurrence interval must be at least 1")
	}

	for _, wd := range r.WeekDays {
		if wd < 0 || wd > 6 {
			return errors.New("Week days must be between 0 (Sunday) and 6 (Saturday)")
		}
	}

	switch r.EndCondition {
	case "", EndNever:
	case EndOnDate:
		if !validator.IsValidDate(r.EndDate) {
			return errors.New("End date must be in YYYY-MM-DD format")
		}
	case EndAfterOccurrences:
		if r.EndCount < 1 {
			return errors.New("End count must be at least 1")
		}
	default:
		return errors.New("End condition must be NEVER, ON_DATE or AFTER_OCCURRENCES")
	}

	return nil
}
