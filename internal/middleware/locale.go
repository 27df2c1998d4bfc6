package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/homehub-app/homehub/internal/pkg/lang"
)

// Locale resolves the request's Accept-Language header to a supported
// locale and stores it in the context for handlers that localize output.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("locale", lang.Detect(c.GetHeader("Accept-Language")))
		c.Next()
	}
}
