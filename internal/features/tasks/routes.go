package tasks

import (
	"github.com/gin-gonic/gin"

	"github.com/homehub-app/homehub/internal/database"
	"github.com/homehub-app/homehub/internal/middleware"
	"github.com/homehub-app/homehub/internal/pkg/push"
	"github.com/homehub-app/homehub/internal/pkg/stream"
)

func RegisterRoutes(router *gin.RouterGroup, db *database.MongoDB, hub *stream.Hub, notifier *push.Notifier, members MemberDirectory) {
	repo := NewRepository(db)
	handler := NewHandler(repo, hub, notifier, members)

	tasks := router.Group("/tasks")
	tasks.Use(middleware.Auth())
	{
		tasks.POST("/", handler.Create)
		tasks.GET("/", handler.List)
		tasks.GET("/agenda", handler.Agenda)
		tasks.GET("/stream", handler.Stream)
		tasks.DELETE("/completed", handler.ClearCompleted)
		tasks.GET("/:id", handler.Get)
		tasks.PUT("/:id", handler.Update)
		tasks.DELETE("/:id", handler.Delete)
	}
}
