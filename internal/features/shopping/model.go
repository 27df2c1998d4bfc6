package shopping

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories form a closed set matching the frontend's grouping.
var Categories = []string{
	"produce",
	"dairy",
	"meat",
	"bakery",
	"frozen",
	"pantry",
	"beverages",
	"household",
	"personal",
	"other",
}

// Item is one entry on the household shopping list.
type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HouseholdID string             `bson:"householdId" json:"householdId"`
	Name        string             `bson:"name" json:"name" example:"Milk"`
	Category    string             `bson:"category" json:"category" example:"dairy"`
	Quantity    string             `bson:"quantity,omitempty" json:"quantity,omitempty" example:"2"`
	Unit        string             `bson:"unit,omitempty" json:"unit,omitempty" example:"l"`
	Completed   bool               `bson:"completed" json:"completed"`
	AssigneeID  string             `bson:"assigneeId,omitempty" json:"assigneeId,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateItemRequest struct {
	Name       string `json:"name" binding:"required" example:"Milk"`
	Category   string `json:"category" example:"dairy"`
	Quantity   string `json:"quantity" example:"2"`
	Unit       string `json:"unit" example:"l"`
	AssigneeID string `json:"assigneeId"`
}

type UpdateItemRequest struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Quantity   *string `json:"quantity"`
	Unit       *string `json:"unit"`
	Completed  *bool   `json:"completed"`
	AssigneeID *string `json:"assigneeId"`
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
