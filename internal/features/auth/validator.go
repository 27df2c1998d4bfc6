package auth

import (
	"fmt"
	"strings"

	"github.com/homehub-app/homehub/internal/pkg/validator"
)

func ValidateRegister(req *RegisterRequest) error {
	req.HouseholdName = strings.TrimSpace(req.HouseholdName)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.HouseholdName == "" {
		return fmt.Errorf("household name is required")
	}
	if !validator.IsValidName(req.Name) {
		return fmt.Errorf("name is required")
	}
	if !validator.IsValidEmail(req.Email) {
		return fmt.Errorf("invalid email address")
	}
	if !validator.IsStrongPassword(req.Password) {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}
