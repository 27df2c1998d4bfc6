package billing

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homehub-app/homehub/internal/config"
	"github.com/homehub-app/homehub/internal/middleware"
	"github.com/homehub-app/homehub/internal/pkg/ratelimit"
)

// RegisterRoutes mounts the billing endpoints on the stable /api prefix the
// payment redirects expect.
func RegisterRoutes(router *gin.RouterGroup, households HouseholdAccounts, plans PlanStore, cfg *config.Config) {
	handler := NewHandler(households, plans, cfg)

	limited := ratelimit.Middleware(10, time.Minute)

	router.POST("/create-checkout-session", limited, middleware.Auth(), handler.CreateCheckoutSession)
	router.POST("/create-portal-session", limited, middleware.Auth(), handler.CreatePortalSession)
	router.POST("/stripe-webhook", handler.Webhook)
}
