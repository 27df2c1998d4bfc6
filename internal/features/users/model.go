package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member roles
const (
	RoleAdmin  = "admin"
	RoleSpouse = "spouse"
	RoleHelper = "helper"
	RoleChild  = "child"
)

// Invitation statuses
const (
	StatusPending = "pending"
	StatusActive  = "active"
	StatusExpired = "expired"
)

// Member is a household member profile. Members join either at household
// creation (the admin) or through an invite, in which case they start out
// pending until the invite is accepted.
type Member struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HouseholdID     string             `bson:"householdId" json:"householdId"`
	Name            string             `bson:"name" json:"name" example:"Maria"`
	Email           string             `bson:"email" json:"email" example:"maria@example.com"`
	Role            string             `bson:"role" json:"role" example:"helper" enums:"admin,spouse,helper,child"`
	AvatarURL       string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	AvatarPublicID  string             `bson:"avatarPublicId,omitempty" json:"-"`
	Allergies       []string           `bson:"allergies,omitempty" json:"allergies,omitempty" example:"peanuts"`
	Preferences     map[string]string  `bson:"preferences,omitempty" json:"preferences,omitempty"`
	Status          string             `bson:"status" json:"status" example:"active" enums:"pending,active,expired"`
	InviteExpiresAt *time.Time         `bson:"inviteExpiresAt,omitempty" json:"inviteExpiresAt,omitempty"`
	DeviceTokens    []string           `bson:"deviceTokens,omitempty" json:"-"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type UpdateMemberRequest struct {
	Name        string             `json:"name"`
	Role        string             `json:"role" enums:"admin,spouse,helper,child"`
	Allergies   *[]string          `json:"allergies"`
	Preferences *map[string]string `json:"preferences"`
}

type RegisterDeviceRequest struct {
	DeviceToken string `json:"deviceToken" binding:"required"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSpouse, RoleHelper, RoleChild:
		return true
	}
	return false
}
