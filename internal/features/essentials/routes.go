package essentials

import (
	"github.com/gin-gonic/gin"

	"github.com/homehub-app/homehub/internal/database"
	"github.com/homehub-app/homehub/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *database.MongoDB) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	group := router.Group("/essentials")
	group.Use(middleware.Auth())
	{
		group.POST("/", handler.Create)
		group.GET("/", handler.List)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}
}
