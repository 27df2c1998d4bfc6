package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/homehub-app/homehub/internal/config"
	"github.com/homehub-app/homehub/internal/database"
	"github.com/homehub-app/homehub/internal/features/auth"
	"github.com/homehub-app/homehub/internal/features/billing"
	"github.com/homehub-app/homehub/internal/features/essentials"
	"github.com/homehub-app/homehub/internal/features/households"
	"github.com/homehub-app/homehub/internal/features/invites"
	"github.com/homehub-app/homehub/internal/features/meals"
	"github.com/homehub-app/homehub/internal/features/media"
	"github.com/homehub-app/homehub/internal/features/shopping"
	"github.com/homehub-app/homehub/internal/features/tasks"
	"github.com/homehub-app/homehub/internal/features/training"
	"github.com/homehub-app/homehub/internal/features/users"
	"github.com/homehub-app/homehub/internal/pkg/cloudinary"
	"github.com/homehub-app/homehub/internal/pkg/push"
	"github.com/homehub-app/homehub/internal/pkg/stream"
)

// SetupRoutes wires every feature slice. It returns the invites repository so
// main can schedule the expiry sweep against the same collection handle.
func SetupRoutes(router *gin.Engine, db *database.MongoDB, cfg *config.Config, hub *stream.Hub, notifier *push.Notifier) *invites.Repository {
	v1 := router.Group("/api/v1")

	householdSvc := households.RegisterRoutes(v1, db)
	auth.RegisterRoutes(v1, db, householdSvc)
	usersRepo := users.RegisterRoutes(v1, db)
	tasks.RegisterRoutes(v1, db, hub, notifier, usersRepo)
	shopping.RegisterRoutes(v1, db, hub)
	meals.RegisterRoutes(v1, db)
	essentials.RegisterRoutes(v1, db)
	training.RegisterRoutes(v1, db)

	uploads, err := cloudinary.NewService(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		"homehub",
	)
	if err != nil {
		log.Warn().Err(err).Msg("media uploads disabled")
		uploads = nil
	}
	media.RegisterRoutes(v1, uploads, usersRepo)

	// Invite links and payment redirects were minted against /api, keep those
	// paths stable outside the versioned group.
	api := router.Group("/api")
	inviteRepo := invites.RegisterRoutes(api, db, householdSvc, cfg)
	billing.RegisterRoutes(api, householdSvc, householdSvc, cfg)

	return inviteRepo
}
