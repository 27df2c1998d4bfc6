package shopping

import (
	"errors"
	"strings"
)

func ValidateCreateItem(req *CreateItemRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("Name is required")
	}
	if req.Category != "" && !IsValidCategory(req.Category) {
		return errors.New("Unknown category")
	}
	return nil
}

func ValidateUpdateItem(req *UpdateItemRequest) error {
	if req.Category != "" && !IsValidCategory(req.Category) {
		return errors.New("Unknown category")
	}
	return nil
}
