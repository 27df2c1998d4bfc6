package invites

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invitee is a view over the users collection restricted to the fields the
// invite flow reads and writes.
type Invitee struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HouseholdID     string             `bson:"householdId" json:"householdId"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Role            string             `bson:"role" json:"role"`
	Status          string             `bson:"status" json:"status"`
	InviteExpiresAt time.Time          `bson:"inviteExpiresAt,omitempty" json:"inviteExpiresAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type InviteRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

type ResendRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type AcceptRequest struct {
	HouseholdID string `json:"hid" binding:"required"`
	UserID      string `json:"uid" binding:"required"`
	Token       string `json:"tok" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type InviteResponse struct {
	User       *Invitee `json:"user"`
	InviteLink string   `json:"inviteLink"`
}

type InviteInfo struct {
	HouseholdName string `json:"householdName"`
	InviteeName   string `json:"inviteeName"`
	InviteeRole   string `json:"inviteeRole"`
	InvitedBy     string `json:"invitedBy"`
	Greeting      string `json:"greeting"`
}
