package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/homehub-app/homehub/internal/pkg/token"
)

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Auth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(200, gin.H{
			"userID":      c.GetString("userID"),
			"householdID": c.GetString("householdID"),
			"role":        c.GetString("role"),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "Authorization header required", body["error"])
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	sessionToken, err := token.GenerateSession("u1", "h1", "ana@example.com", "admin")
	require.NoError(t, err)

	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "u1", body["userID"])
	require.Equal(t, "h1", body["householdID"])
	require.Equal(t, "admin", body["role"])
}

func TestAuthMiddleware_RawTokenHeader(t *testing.T) {
	sessionToken, err := token.GenerateSession("u1", "h1", "ana@example.com", "spouse")
	require.NoError(t, err)

	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", sessionToken)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
}

func TestRequireAdmin_NonAdminForbidden(t *testing.T) {
	sessionToken, err := token.GenerateSession("u2", "h1", "kid@example.com", "child")
	require.NoError(t, err)

	r := protectedRouter(RequireAdmin())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken)
	r.ServeHTTP(w, req)

	require.Equal(t, 403, w.Code)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	sessionToken, err := token.GenerateSession("u1", "h1", "ana@example.com", "admin")
	require.NoError(t, err)

	r := protectedRouter(RequireAdmin())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
}
