package handlers

import (
	"net/http"

	apperrors "github.com/Matias222/d-melo/internal/errors"
	"github.com/Matias222/d-melo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler handles HTTP requests for session operations
type SessionHandler struct {
	sessionService service.SessionServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService service.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// CreateSession handles POST /fenix/sessions
// @Summary Export a session
// @Description Store a session transcript owned by the calling user. The rendered report is mirrored to object storage on a best-effort basis.
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body service.CreateSessionRequest true "Session data"
// @Success 201 {object} service.SessionResponse "Successfully created session"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Owner not registered"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /fenix/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	actor, ok := actorHandle(c)
	if !ok {
		return
	}

	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ListSessions handles GET /fenix/sessions
// @Summary List own sessions
// @Description Get the calling user's sessions, newest first, optionally filtered by assistant type
// @Tags sessions
// @Accept json
// @Produce json
// @Param assistant_type query string false "Assistant type filter"
// @Success 200 {array} service.SessionResponse "Sessions"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /fenix/sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	actor, ok := actorHandle(c)
	if !ok {
		return
	}

	sessions, err := h.sessionService.List(actor, c.Query("assistant_type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// ListSessionsByRepo handles GET /fenix/sessions/by-repo
// @Summary List shared sessions for a repository
// @Description Get sessions tagged with the given repository that were shared with any team the caller belongs to, newest first
// @Tags sessions
// @Accept json
// @Produce json
// @Param repo query string true "Repository name"
// @Success 200 {array} service.SessionResponse "Sessions"
// @Failure 400 {object} ErrorResponse "repo parameter is required"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /fenix/sessions/by-repo [get]
func (h *SessionHandler) ListSessionsByRepo(c *gin.Context) {
	actor, ok := actorHandle(c)
	if !ok {
		return
	}

	sessions, err := h.sessionService.ListByRepo(actor, c.Query("repo"))
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// GetSession handles GET /fenix/sessions/:id
// @Summary Get a session
// @Description Get a session with its transcript. Readable by the owner, by anyone when public, or by members of a team it was shared with.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.SessionDetailResponse "Session with transcript"
// @Failure 400 {object} ErrorResponse "Invalid session ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "No read access"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /fenix/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	actor, ok := actorHandle(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	session, err := h.sessionService.Get(actor, id)
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

	c.JSON(http.StatusOK, session)
}

// UpdateSession handles PATCH /fenix/sessions/:id
// @Summary Update a session
// @Description Update session fields. Only the owner may update; omitted fields are left untouched.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param session body service.UpdateSessionRequest true "Fields to update"
// @Success 200 {object} service.SessionResponse "Successfully updated session"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /fenix/sessions/{id} [patch]
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	actor, ok := actorHandle(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	var req service.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.Update(actor, id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsForbidden(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// DeleteSession handles DELETE /fenix/sessions/:id
// @Summary Delete a session
// @Description Delete a session and all of its team shares. Only the owner may delete.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 204 "Successfully deleted session"
// @Failure 400 {object} ErrorResponse "Invalid session ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /fenix/sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	actor, ok := actorHandle(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	if err := h.sessionService.Delete(actor, id); err != nil {
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
