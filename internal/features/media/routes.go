package media

import (
	"github.com/gin-gonic/gin"

	"github.com/homehub-app/homehub/internal/middleware"
	"github.com/homehub-app/homehub/internal/pkg/cloudinary"
)

func RegisterRoutes(router *gin.RouterGroup, uploads *cloudinary.Service, avatars AvatarStore) {
	handler := NewHandler(uploads, avatars)

	group := router.Group("/media")
	group.Use(middleware.Auth())
	{
		group.POST("/avatar", handler.UploadAvatar)
	}
}
