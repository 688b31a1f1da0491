package handlers

import (
	"net/http"

	apperrors "github.com/Matias222/d-melo/internal/errors"
	"github.com/Matias222/d-melo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamSessionHandler handles HTTP requests for team-session sharing
type TeamSessionHandler struct {
	sharingService service.SharingServiceInterface
}

// NewTeamSessionHandler creates a new team-session handler
func NewTeamSessionHandler(sharingService service.SharingServiceInterface) *TeamSessionHandler {
	return &TeamSessionHandler{
		sharingService: sharingService,
	}
}

// ShareSession handles POST /fenix/teams/:id/sessions
// @Summary Share a session with a team
// @Description Grant a team read access to a session. The caller must own the session and belong to the team.
// @Tags sharing
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param share body service.ShareSessionRequest true "Session to share"
// @Success 201 {object} service.ShareSessionResponse "Successfully shared session"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Caller is not a team member or not the session owner"
// @Failure 404 {object} ErrorResponse "Team or session not found"
// @Failure 409 {object} ErrorResponse "Session already shared with this team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /fenix/teams/{id}/sessions [post]
func (h *TeamSessionHandler) ShareSession(c *gin.Context) {
	actor, ok := actorHandle(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var req service.ShareSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	share, err := h.sharingService.Share(actor, teamID, req.SessionID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsForbidden(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, share)
}

// ListTeamSessions handles GET /fenix/teams/:id/sessions
// @Summary List sessions shared with a team
// @Description Get all sessions shared with the team, newest share first. Only team members may list.
// @Tags sharing
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {array} service.TeamSessionResponse "Shared sessions"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /fenix/teams/{id}/sessions [get]
func (h *TeamSessionHandler) ListTeamSessions(c *gin.Context) {
	actor, ok := actorHandle(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	shares, err := h.sharingService.ListTeamSessions(actor, teamID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsForbidden(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shares)
}

// UnshareSession handles DELETE /fenix/teams/:id/sessions/:session_id
// @Summary Revoke a session share
// @Description Remove a session from a team. Allowed for the session owner or for the team owner or an admin.
// @Tags sharing
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param session_id path string true "Session ID (UUID)"
// @Success 204 "Successfully unshared session"
// @Failure 400 {object} ErrorResponse "Invalid identifiers"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Caller may not revoke this share"
// @Failure 404 {object} ErrorResponse "Team, session or share not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /fenix/teams/{id}/sessions/{session_id} [delete]
func (h *TeamSessionHandler) UnshareSession(c *gin.Context) {
	actor, ok := actorHandle(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	if err := h.sharingService.Unshare(actor, teamID, sessionID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsForbidden(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
