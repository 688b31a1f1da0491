package auth

import (
	"net/http"

	"github.com/Matias222/d-melo/internal/logger"
	"github.com/Matias222/d-melo/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for the OAuth exchange flow
type AuthHandler struct {
	service     *AuthService
	userService service.UserServiceInterface
	log         *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *AuthService, userService service.UserServiceInterface, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service:     authService,
		userService: userService,
		log:         log,
	}
}

// ExchangeRequest carries the GitHub authorization code
type ExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeGitHubCode handles POST /api/auth/github/exchange
// @Summary Exchange GitHub authorization code for a token
// @Description Exchange a GitHub OAuth authorization code for a signed bearer token. The caller's profile is registered on first exchange.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ExchangeRequest true "Authorization code"
// @Success 200 {object} ExchangeResult "Token and profile"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Code exchange failed"
// @Router /api/auth/github/exchange [post]
func (h *AuthHandler) ExchangeGitHubCode(c *gin.Context) {
	var req ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.AuthenticateWithCode(c.Request.Context(), req.Code)
	if err != nil {
		h.log.WithError(err).Warn("github code exchange failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed"})
		return
	}

	// Register the profile so the handle exists before any API call
	_, err = h.userService.ValidateOrCreate(result.Profile.Login, &service.ValidateOrCreateRequest{
		Email:       result.Profile.Email,
		DisplayName: result.Profile.Name,
	})
	if err != nil {
		h.log.WithError(err).WithField("handle", result.Profile.Login).Error("failed to register authenticated user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}

	c.JSON(http.StatusOK, result)
}
