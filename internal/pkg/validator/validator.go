package validator

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex  = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// IsValidEmail checks if the email format is valid
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidName checks if the name contains only letters, spaces, and common punctuation
func IsValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}

	nameRegex := regexp.MustCompile(`^[\p{L}\s\-'\.]+$`)
	return nameRegex.MatchString(name) && len(name) >= 2
}

// IsValidDate checks if the date string is in YYYY-MM-DD format
func IsValidDate(date string) bool {
	return dateRegex.MatchString(date)
}

// IsValidTime checks if the time string is in HH:MM format
func IsValidTime(t string) bool {
	return timeRegex.MatchString(t)
}

// IsStrongPassword checks minimum password requirements
func IsStrongPassword(password string) bool {
	return len(password) >= 8
}
