package billing

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"

	"github.com/homehub-app/homehub/internal/pkg/response"
)

// PlanStore flips a household's plan when a subscription starts or ends.
type PlanStore interface {
	SetPlan(ctx context.Context, householdID, plan string) error
}

// Webhook processes subscription lifecycle events. Signature verification
// uses the endpoint secret, unsigned payloads are rejected.
func (h *Handler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 64*1024))
	if err != nil {
		response.BadRequest(c, "Failed to read payload")
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.cfg.StripeWebhookSecret)
	if err != nil {
		response.BadRequest(c, "Invalid signature")
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			response.BadRequest(c, "Malformed event payload")
			return
		}
		if session.ClientReferenceID != "" {
			if err := h.plans.SetPlan(c.Request.Context(), session.ClientReferenceID, "premium"); err != nil {
				log.Error().Err(err).Str("householdId", session.ClientReferenceID).Msg("failed to upgrade plan")
				response.InternalServerError(c, "Failed to record upgrade")
				return
			}
			log.Info().Str("householdId", session.ClientReferenceID).Msg("household upgraded to premium")
		}

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			response.BadRequest(c, "Malformed event payload")
			return
		}
		if householdID := sub.Metadata["householdId"]; householdID != "" {
			if err := h.plans.SetPlan(c.Request.Context(), householdID, "free"); err != nil {
				log.Error().Err(err).Str("householdId", householdID).Msg("failed to downgrade plan")
				response.InternalServerError(c, "Failed to record downgrade")
				return
			}
			log.Info().Str("householdId", householdID).Msg("household downgraded to free")
		}
	}

	c.Status(http.StatusOK)
}
