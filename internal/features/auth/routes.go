package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/homehub-app/homehub/internal/database"
	"github.com/homehub-app/homehub/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *database.MongoDB, households HouseholdService) {
	repo := NewRepository(db)
	handler := NewHandler(repo, households)

	group := router.Group("/auth")
	{
		group.POST("/register", handler.Register)
		group.POST("/login", handler.Login)
		group.GET("/me", middleware.Auth(), handler.Me)
	}
}
