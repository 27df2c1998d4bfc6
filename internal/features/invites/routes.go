package invites

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/homehub-app/homehub/internal/config"
	"github.com/homehub-app/homehub/internal/database"
	"github.com/homehub-app/homehub/internal/middleware"
	"github.com/homehub-app/homehub/internal/pkg/ratelimit"
)

// RegisterRoutes mounts the invite endpoints on the stable /api prefix used
// by the invite emails, not the versioned group. It returns the repository so
// the expiry sweep can share it.
func RegisterRoutes(router *gin.RouterGroup, db *database.MongoDB, households HouseholdDirectory, cfg *config.Config) *Repository {
	repo := NewRepository(db)
	handler := NewHandler(repo, households, cfg)

	public := ratelimit.Middleware(30, time.Minute)

	router.POST("/invite", middleware.Auth(), middleware.RequireAdmin(), handler.Issue)
	router.POST("/invite/resend", middleware.Auth(), middleware.RequireAdmin(), handler.Resend)
	router.GET("/get-invite-info", public, handler.Info)
	router.POST("/invite/accept", public, handler.Accept)

	return repo
}

// Sweep expires pending invites past their window. Wired to an hourly cron.
func Sweep(repo *Repository) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		expired, err := repo.MarkExpired(ctx, time.Now())
		if err != nil {
			log.Error().Err(err).Msg("invite expiry sweep failed")
			return
		}
		if expired > 0 {
			log.Info().Int64("expired", expired).Msg("invite expiry sweep")
		}
	}
}
