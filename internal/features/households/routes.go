package households

import (
	"github.com/gin-gonic/gin"

	"github.com/homehub-app/homehub/internal/database"
	"github.com/homehub-app/homehub/internal/middleware"
)

// RegisterRoutes returns the household service so other slices can be wired
// against it.
func RegisterRoutes(router *gin.RouterGroup, db *database.MongoDB) *Service {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	group := router.Group("/household")
	group.Use(middleware.Auth())
	{
		group.GET("/", handler.Get)
		group.PUT("/", middleware.RequireAdmin(), handler.Update)
	}

	return NewService(repo)
}
