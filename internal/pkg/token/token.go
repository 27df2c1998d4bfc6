package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/homehub-app/homehub/internal/config"
)

const (
	audienceSession = "homehub-session"
	audienceInvite  = "homehub-invite"
)

type Claims struct {
	UserID      string `json:"userId"`
	HouseholdID string `json:"householdId"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateSession issues a signed session token for an authenticated member.
func GenerateSession(userID, householdID, email, role string) (string, error) {
	cfg := config.Load()
	expiry := time.Duration(cfg.JWTExpireHours) * time.Hour
	return generate(userID, householdID, email, role, audienceSession, expiry, cfg.JWTSecret)
}

// GenerateInvite issues a signed invite token embedded in invite links.
// Its lifetime matches the pending member's invite expiry.
func GenerateInvite(userID, householdID string, ttl time.Duration) (string, error) {
	cfg := config.Load()
	return generate(userID, householdID, "", "", audienceInvite, ttl, cfg.JWTSecret)
}

func generate(userID, householdID, email, role, audience string, expiry time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:      userID,
		HouseholdID: householdID,
		Email:       email,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Audience:  []string{audience},
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSession validates a session token and returns its claims.
func ValidateSession(tokenString string) (*Claims, error) {
	return validate(tokenString, audienceSession)
}

// ValidateInvite validates an invite token and returns its claims.
func ValidateInvite(tokenString string) (*Claims, error) {
	return validate(tokenString, audienceInvite)
}

func validate(tokenString, audience string) (*Claims, error) {
	cfg := config.Load()

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithAudience(audience))

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
