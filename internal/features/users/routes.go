package users

import (
	"github.com/gin-gonic/gin"

	"github.com/homehub-app/homehub/internal/database"
	"github.com/homehub-app/homehub/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *database.MongoDB) *Repository {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	users := router.Group("/users")
	users.Use(middleware.Auth())
	{
		users.GET("/", handler.List)
		users.POST("/me/devices", handler.RegisterDevice)
		users.GET("/:id", handler.Get)
		users.PUT("/:id", handler.Update)
		users.DELETE("/:id", middleware.RequireAdmin(), handler.Delete)
	}

	return repo
}
