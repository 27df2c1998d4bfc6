package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v78"
	portalsession "github.com/stripe/stripe-go/v78/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v78/checkout/session"
	"github.com/stripe/stripe-go/v78/customer"

	"github.com/homehub-app/homehub/internal/config"
	"github.com/homehub-app/homehub/internal/pkg/response"
)

// HouseholdAccounts maps households to their payment customer records.
type HouseholdAccounts interface {
	StripeCustomer(ctx context.Context, householdID string) (string, error)
	SetStripeCustomer(ctx context.Context, householdID, customerID string) error
}

type Handler struct {
	households HouseholdAccounts
	plans      PlanStore
	cfg        *config.Config
}

func NewHandler(households HouseholdAccounts, plans PlanStore, cfg *config.Config) *Handler {
	stripe.Key = cfg.StripeSecretKey
	return &Handler{households: households, plans: plans, cfg: cfg}
}

// ensureCustomer returns the household's customer id, creating one on first use.
func (h *Handler) ensureCustomer(ctx context.Context, householdID, email string) (string, error) {
	customerID, err := h.households.StripeCustomer(ctx, householdID)
	if err != nil {
		return "", err
	}
	if customerID != "" {
		return customerID, nil
	}

	created, err := customer.New(&stripe.CustomerParams{
		Email: stripe.String(email),
		Metadata: map[string]string{
			"householdId": householdID,
		},
	})
	if err != nil {
		return "", err
	}

	if err := h.households.SetStripeCustomer(ctx, householdID, created.ID); err != nil {
		return "", err
	}
	return created.ID, nil
}

// CreateCheckoutSession godoc
// @Summary Start a premium subscription checkout
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 500 {object} response.ErrorResponse
// @Router /create-checkout-session [post]
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	householdID := c.GetString("householdID")
	email := c.GetString("email")

	customerID, err := h.ensureCustomer(c.Request.Context(), householdID, email)
	if err != nil {
		response.InternalServerError(c, "Failed to prepare billing account")
		return
	}

	base := strings.TrimRight(h.cfg.FrontendURL, "/")
	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(h.cfg.StripePriceID),
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(householdID),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{"householdId": householdID},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/settings?checkout=success", base)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/settings?checkout=cancelled", base)),
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		response.InternalServerError(c, "Failed to create checkout session")
		return
	}

	c.JSON(200, gin.H{"url": s.URL})
}

// CreatePortalSession godoc
// @Summary Open the subscription management portal
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse
// @Router /create-portal-session [post]
func (h *Handler) CreatePortalSession(c *gin.Context) {
	householdID := c.GetString("householdID")

	customerID, err := h.households.StripeCustomer(c.Request.Context(), householdID)
	if err != nil {
		response.InternalServerError(c, "Failed to load billing account")
		return
	}
	if customerID == "" {
		response.BadRequest(c, "No billing account for this household")
		return
	}

	base := strings.TrimRight(h.cfg.FrontendURL, "/")
	s, err := portalsession.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(fmt.Sprintf("%s/settings", base)),
	})
	if err != nil {
		response.InternalServerError(c, "Failed to create portal session")
		return
	}

	c.JSON(200, gin.H{"url": s.URL})
}
