package client

import (
	"fmt"
	"strings"
	"time"
)

type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type User struct {
	ID          string `json:"id"`
	HouseholdID string `json:"householdId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

type InviteResult struct {
	User       *User  `json:"user"`
	InviteLink string `json:"inviteLink"`
}

type InviteInfo struct {
	HouseholdName string `json:"householdName"`
	InviteeName   string `json:"inviteeName"`
	InviteeRole   string `json:"inviteeRole"`
	InvitedBy     string `json:"invitedBy"`
	Greeting      string `json:"greeting"`
}

// ShoppingItem satisfies listsync.Entry so a shopping list view can run an
// optimistic session over it.
type ShoppingItem struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"householdId,omitempty"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    string    `json:"quantity,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Done        bool      `json:"completed"`
	AssigneeID  string    `json:"assigneeId,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

func (i ShoppingItem) ItemID() string { return i.ID }

// IdentityKey matches a placeholder to its server twin: trimmed lowercase
// name, category, quantity and completion flag.
func (i ShoppingItem) IdentityKey() string {
	return fmt.Sprintf("%s|%s|%s|%t",
		strings.ToLower(strings.TrimSpace(i.Name)), i.Category, i.Quantity, i.Done)
}

func (i ShoppingItem) Completed() bool { return i.Done }

func (i ShoppingItem) WithCompleted(completed bool) ShoppingItem {
	i.Done = completed
	return i
}

type Recurrence struct {
	Frequency    string `json:"frequency"`
	Interval     int    `json:"interval,omitempty"`
	WeekDays     []int  `json:"weekDays,omitempty"`
	EndCondition string `json:"endCondition,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	EndCount     int    `json:"endCount,omitempty"`
}

// Task also satisfies listsync.Entry for the unified to-do view, where
// identity is the title plus due date.
type Task struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	DueDate    string      `json:"dueDate"`
	DueTime    string      `json:"dueTime,omitempty"`
	Recurrence *Recurrence `json:"recurrence,omitempty"`
	Done       bool        `json:"completed"`
	AssigneeID string      `json:"assigneeId,omitempty"`
}

func (t Task) ItemID() string { return t.ID }

func (t Task) IdentityKey() string {
	return fmt.Sprintf("%s|%s|%t", strings.ToLower(strings.TrimSpace(t.Title)), t.DueDate, t.Done)
}

func (t Task) Completed() bool { return t.Done }

func (t Task) WithCompleted(completed bool) Task {
	t.Done = completed
	return t
}
