package ratelimit

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homehub-app/homehub/internal/pkg/response"
)

// Middleware limits requests per client IP. Used on the public invite and
// billing endpoints, which are reachable without a session.
func Middleware(limit int, window time.Duration) gin.HandlerFunc {
	limiter := New(limit, window)

	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			response.Error(c, 429, "Too many requests", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Next()
	}
}
