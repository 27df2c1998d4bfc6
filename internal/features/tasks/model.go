package tasks

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Frequency of a recurrence rule
type Frequency string

const (
	FreqDaily   Frequency = "DAILY"
	FreqWeekly  Frequency = "WEEKLY"
	FreqMonthly Frequency = "MONTHLY"
	FreqYearly  Frequency = "YEARLY"
)

// End condition of a recurrence rule
const (
	EndNever            = "NEVER"
	EndOnDate           = "ON_DATE"
	EndAfterOccurrences = "AFTER_OCCURRENCES"
)

// Recurrence describes how a task series repeats.
// @Description Recurrence rule for a repeating task
type Recurrence struct {
	Frequency    Frequency `bson:"frequency" json:"frequency" example:"WEEKLY" enums:"DAILY,WEEKLY,MONTHLY,YEARLY"`
	Interval     int       `bson:"interval" json:"interval" example:"2"`
	WeekDays     []int     `bson:"weekDays,omitempty" json:"weekDays,omitempty" example:"1,3"`
	EndCondition string    `bson:"endCondition" json:"endCondition" example:"NEVER" enums:"NEVER,ON_DATE,AFTER_OCCURRENCES"`
	EndDate      string    `bson:"endDate,omitempty" json:"endDate,omitempty" example:"2024-12-31"`
	EndCount     int       `bson:"endCount,omitempty" json:"endCount,omitempty" example:"10"`
}

// Task is a household to-do item, optionally recurring.
// Completion is tracked at the series level for recurring tasks.
// @Description Task with all its properties
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	HouseholdID string             `bson:"householdId" json:"householdId" example:"507f1f77bcf86cd799439011"`
	Title       string             `bson:"title" json:"title" example:"Water the plants"`
	Notes       string             `bson:"notes" json:"notes" example:"Balcony and kitchen"`
	DueDate     string             `bson:"dueDate" json:"dueDate" example:"2024-06-01"`
	DueTime     string             `bson:"dueTime,omitempty" json:"dueTime,omitempty" example:"18:30"`
	Completed   bool               `bson:"completed" json:"completed" example:"false"`
	AssigneeID  string             `bson:"assigneeId,omitempty" json:"assigneeId,omitempty" example:"507f1f77bcf86cd799439011"`
	Recurrence  *Recurrence        `bson:"recurrence,omitempty" json:"recurrence,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt" example:"2024-01-01T00:00:00Z"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt" example:"2024-01-01T00:00:00Z"`
}

// CreateTaskRequest is the payload for creating a task
// @Description Data required to create a new task
type CreateTaskRequest struct {
	Title      string      `json:"title" binding:"required" example:"Water the plants"`
	Notes      string      `json:"notes" example:"Balcony and kitchen"`
	DueDate    string      `json:"dueDate" binding:"required" example:"2024-06-01"`
	DueTime    string      `json:"dueTime" example:"18:30"`
	AssigneeID string      `json:"assigneeId" example:"507f1f77bcf86cd799439011"`
	Recurrence *Recurrence `json:"recurrence"`
}

// UpdateTaskRequest is the payload for updating a task
// @Description Data for updating an existing task
type UpdateTaskRequest struct {
	Title      string      `json:"title" example:"Water the plants"`
	Notes      *string     `json:"notes"`
	DueDate    string      `json:"dueDate" example:"2024-06-02"`
	DueTime    *string     `json:"dueTime"`
	Completed  *bool       `json:"completed" example:"true"`
	AssigneeID *string     `json:"assigneeId"`
	Recurrence *Recurrence `json:"recurrence"`
}
