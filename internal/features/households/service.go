package households

import (
	"context"

	apperrors "github.com/homehub-app/homehub/pkg/errors"
)

// Service is the cross-feature surface other slices depend on. Auth creates
// households, invites reads display data, billing maps customers.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateHousehold(ctx context.Context, name string) (string, error) {
	h := &Household{Name: name}
	if err := s.repo.Create(ctx, h); err != nil {
		return "", err
	}
	return h.ID.Hex(), nil
}

func (s *Service) SetOwner(ctx context.Context, householdID, ownerID string) error {
	return s.repo.SetOwner(ctx, householdID, ownerID)
}

func (s *Service) HouseholdInfo(ctx context.Context, householdID string) (string, string, error) {
	h, err := s.repo.GetByID(ctx, householdID)
	if err != nil {
		return "", "", err
	}
	if h == nil {
		return "", "", apperrors.ErrNotFound
	}
	return h.Name, h.OwnerID, nil
}

func (s *Service) StripeCustomer(ctx context.Context, householdID string) (string, error) {
	h, err := s.repo.GetByID(ctx, householdID)
	if err != nil {
		return "", err
	}
	if h == nil {
		return "", apperrors.ErrNotFound
	}
	return h.StripeCustomerID, nil
}

func (s *Service) SetStripeCustomer(ctx context.Context, householdID, customerID string) error {
	return s.repo.SetStripeCustomer(ctx, householdID, customerID)
}

func (s *Service) SetPlan(ctx context.Context, householdID, plan string) error {
	return s.repo.SetPlan(ctx, householdID, plan)
}
