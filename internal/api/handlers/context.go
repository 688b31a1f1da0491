package handlers

import (
	"net/http"

	"github.com/Matias222/d-melo/internal/auth"

	"github.com/gin-gonic/gin"
)

// actorHandle extracts the authenticated handle set by the auth middleware.
// Returns false after writing a 401 when the handle is absent; routes are
// always mounted behind RequireAuth so this is a wiring safety net.
func actorHandle(c *gin.Context) (string, bool) {
	handle, ok := auth.HandleFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return "", false
	}
	return handle, true
}
