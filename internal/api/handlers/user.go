package handlers

import (
	"net/http"

	apperrors "github.com/Matias222/d-melo/internal/errors"
	"github.com/Matias222/d-melo/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for identity operations
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ValidateOrCreate handles POST /fenix/auth/validate-or-create
// @Summary Resolve or register the calling user
// @Description Resolve the authenticated handle to a user record, creating it on first contact. Safe to call repeatedly.
// @Tags users
// @Accept json
// @Produce json
// @Param profile body service.ValidateOrCreateRequest false "Optional profile fields"
// @Success 200 {object} service.ValidateOrCreateResponse "Resolved user"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /fenix/auth/validate-or-create [post]
func (h *UserHandler) ValidateOrCreate(c *gin.Context) {
	actor, ok := actorHandle(c)
	if !ok {
		return
	}

	// Body is optional; an empty body resolves the handle without touching profile fields
	req := service.ValidateOrCreateRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	user, err := h.userService.ValidateOrCreate(actor, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetMe handles GET /fenix/users/me
// @Summary Get the calling user
// @Description Get the user record for the authenticated handle
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} service.UserResponse "Current user"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /fenix/users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	actor, ok := actorHandle(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByHandle(actor)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
