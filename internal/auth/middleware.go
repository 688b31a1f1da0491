package auth

import (
	"net/http"
	"strings"

	apperrors "github.com/Matias222/d-melo/internal/errors"

	"github.com/gin-gonic/gin"
)

// Header names for service-to-service authentication. The agent front end
// authenticates callers itself and relays the resolved handle; the shared
// API key proves the relay is trusted.
const (
	APIKeyHeader = "X-MCP-API-Key"
	HandleHeader = "X-GitHub-Handle"
)

// handleContextKey is the gin context key carrying the actor's handle
const handleContextKey = "handle"

// AuthMiddleware resolves the acting identity for API requests
type AuthMiddleware struct {
	service *AuthService
	apiKey  string
}

// NewAuthMiddleware creates a new authentication middleware. The auth
// service may be nil when only shared-key authentication is configured.
func NewAuthMiddleware(service *AuthService, apiKey string) *AuthMiddleware {
	return &AuthMiddleware{service: service, apiKey: apiKey}
}

// RequireAuth accepts either the shared-key header pair or a Bearer JWT and
// sets the actor handle on the request context. The core never sees
// credentials, only the resolved handle.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader(APIKeyHeader); key != "" {
			if m.apiKey == "" || key != m.apiKey {
				abortUnauthorized(c, apperrors.ErrMissingAPIKey)
				return
			}
			handle := c.GetHeader(HandleHeader)
			if handle == "" {
				abortUnauthorized(c, apperrors.ErrMissingHandle)
				return
			}
			c.Set(handleContextKey, handle)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || m.service == nil {
			abortUnauthorized(c, apperrors.ErrMissingAPIKey)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abortUnauthorized(c, apperrors.ErrInvalidAuthToken)
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			abortUnauthorized(c, apperrors.ErrInvalidAuthToken)
			return
		}

		c.Set(handleContextKey, claims.Handle)
		c.Next()
	}
}

// HandleFromContext returns the authenticated actor handle set by RequireAuth
func HandleFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(handleContextKey)
	if !exists {
		return "", false
	}
	handle, ok := value.(string)
	return handle, ok && handle != ""
}

func abortUnauthorized(c *gin.Context, err error) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	c.Abort()
}
