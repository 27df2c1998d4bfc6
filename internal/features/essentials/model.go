package essentials

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	KindContact = "contact"
	KindPlace   = "place"
)

// Essential is a household reference card, either a contact or a place.
type Essential struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HouseholdID string             `bson:"householdId" json:"householdId"`
	Kind        string             `bson:"kind" json:"kind"`
	Name        string             `bson:"name" json:"name"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateEssentialRequest struct {
	Kind    string `json:"kind" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type UpdateEssentialRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

func IsValidKind(kind string) bool {
	return kind == KindContact || kind == KindPlace
}
