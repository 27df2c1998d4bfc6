package training

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Module is a how-things-work-here guide for household helpers.
type Module struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HouseholdID string             `bson:"householdId" json:"householdId"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Steps       []string           `bson:"steps" json:"steps"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Progress records whether a member has worked through a module.
type Progress struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HouseholdID string             `bson:"householdId" json:"householdId"`
	ModuleID    string             `bson:"moduleId" json:"moduleId"`
	UserID      string             `bson:"userId" json:"userId"`
	Completed   bool               `bson:"completed" json:"completed"`
	CompletedAt *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateModuleRequest struct {
	Title    string   `json:"title" binding:"required"`
	Category string   `json:"category"`
	Steps    []string `json:"steps" binding:"required"`
}

type UpdateModuleRequest struct {
	Title    *string   `json:"title"`
	Category *string   `json:"category"`
	Steps    *[]string `json:"steps"`
}

type ToggleProgressRequest struct {
	Completed bool `json:"completed"`
}
