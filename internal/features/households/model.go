package households

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PlanFree    = "free"
	PlanPremium = "premium"
)

// Household groups members and all their shared collections.
type Household struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name" example:"The Tans"`
	OwnerID          string             `bson:"ownerId" json:"ownerId"`
	Plan             string             `bson:"plan" json:"plan" example:"free" enums:"free,premium"`
	StripeCustomerID string             `bson:"stripeCustomerId,omitempty" json:"-"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
