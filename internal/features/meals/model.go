package meals

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
	SlotSnack     = "snack"
)

type Meal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HouseholdID string             `bson:"householdId" json:"householdId"`
	Date        string             `bson:"date" json:"date"`
	Slot        string             `bson:"slot" json:"slot"`
	Title       string             `bson:"title" json:"title"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	AssigneeID  string             `bson:"assigneeId,omitempty" json:"assigneeId,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateMealRequest struct {
	Date       string `json:"date" binding:"required"`
	Slot       string `json:"slot" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Notes      string `json:"notes"`
	AssigneeID string `json:"assigneeId"`
}

type UpdateMealRequest struct {
	Date       *string `json:"date"`
	Slot       *string `json:"slot"`
	Title      *string `json:"title"`
	Notes      *string `json:"notes"`
	AssigneeID *string `json:"assigneeId"`
}

func IsValidSlot(slot string) bool {
	switch slot {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	}
	return false
}
