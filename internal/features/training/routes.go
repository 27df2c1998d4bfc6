package training

import (
	"github.com/gin-gonic/gin"

	"github.com/homehub-app/homehub/internal/database"
	"github.com/homehub-app/homehub/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *database.MongoDB) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	group := router.Group("/training")
	group.Use(middleware.Auth())
	{
		group.POST("/", middleware.RequireAdmin(), handler.CreateModule)
		group.GET("/", handler.ListModules)
		group.GET("/progress", handler.ListProgress)
		group.GET("/:id", handler.GetModule)
		group.PUT("/:id", middleware.RequireAdmin(), handler.UpdateModule)
		group.DELETE("/:id", middleware.RequireAdmin(), handler.DeleteModule)
		group.PUT("/:id/progress", handler.ToggleProgress)
	}
}
