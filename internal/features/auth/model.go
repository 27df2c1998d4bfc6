package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the credential-bearing view of a household member. It maps onto
// the same "users" collection the users feature reads profiles from.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HouseholdID string             `bson:"householdId" json:"householdId"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password,omitempty" json:"-"`
	Role        string             `bson:"role" json:"role"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterRequest creates a new household with its admin member
type RegisterRequest struct {
	HouseholdName string `json:"householdName" binding:"required" example:"The Tans"`
	Name          string `json:"name" binding:"required" example:"Amy Tan"`
	Email         string `json:"email" binding:"required" example:"amy@example.com"`
	Password      string `json:"password" binding:"required" example:"hunter2hunter2"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after successful registration or login
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
