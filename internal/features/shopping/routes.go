package shopping

import (
	"github.com/gin-gonic/gin"

	"github.com/homehub-app/homehub/internal/database"
	"github.com/homehub-app/homehub/internal/middleware"
	"github.com/homehub-app/homehub/internal/pkg/stream"
)

func RegisterRoutes(router *gin.RouterGroup, db *database.MongoDB, hub *stream.Hub) {
	repo := NewRepository(db)
	handler := NewHandler(repo, hub)

	shopping := router.Group("/shopping")
	shopping.Use(middleware.Auth())
	{
		shopping.POST("/", handler.Create)
		shopping.GET("/", handler.List)
		shopping.GET("/stream", handler.Stream)
		shopping.DELETE("/completed", handler.ClearCompleted)
		shopping.PUT("/:id", handler.Update)
		shopping.DELETE("/:id", handler.Delete)
	}
}
