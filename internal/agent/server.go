package agent

import (
	"errors"
	"net/http"

	"github.com/Matias222/d-melo/internal/auth"
	"github.com/Matias222/d-melo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Server exposes the toolset over HTTP so tool-calling front ends can list
// and invoke the tools on behalf of an authenticated user
type Server struct {
	tools *Toolset
}

// NewServer creates a new tool server
func NewServer(tools *Toolset) *Server {
	return &Server{tools: tools}
}

// Routes registers the tool endpoints. The group must already carry the auth
// middleware so the acting handle is on the context.
func (s *Server) Routes(r gin.IRoutes) {
	r.GET("/tools", s.listTools)
	r.POST("/tools/:name", s.callTool)
}

// toolRequest is the union of all tool arguments; each tool reads the
// fields it needs
type toolRequest struct {
	SessionID     string                 `json:"session_id"`
	TeamID        string                 `json:"team_id"`
	Repo          string                 `json:"repo"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	SessionData   string                 `json:"session_data"`
	AssistantType string                 `json:"assistant_type"`
	Metadata      map[string]interface{} `json:"metadata"`
	IsPublic      bool                   `json:"is_public"`
}

// toolResult carries the rendered markdown back to the front end. Tool
// errors are results too, not transport failures.
type toolResult struct {
	Result  string `json:"result"`
	IsError bool   `json:"is_error,omitempty"`
}

func (s *Server) listTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": Definitions()})
}

func (s *Server) callTool(c *gin.Context) {
	handle, ok := auth.HandleFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req toolRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	out, err := s.dispatch(c, handle, c.Param("name"), &req)
	if err != nil {
		var toolErr *ToolError
		if errors.As(err, &toolErr) {
			c.JSON(http.StatusOK, toolResult{Result: toolErr.Message, IsError: true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toolResult{Result: out})
}

func (s *Server) dispatch(c *gin.Context, handle, name string, req *toolRequest) (string, error) {
	ctx := c.Request.Context()

	switch name {
	case "list_own_creations":
		return s.tools.ListOwnCreations(ctx, handle)
	case "list_user_teams":
		return s.tools.ListUserTeams(ctx, handle)
	case "list_team_sessions":
		teamID, err := uuid.Parse(req.TeamID)
		if err != nil {
			return "", toolErrorf("Invalid team_id: %s", req.TeamID)
		}
		return s.tools.ListTeamSessions(ctx, handle, teamID)
	case "list_repo_sessions":
		if req.Repo == "" {
			return "", toolErrorf("repo is required")
		}
		return s.tools.ListRepoSessions(ctx, handle, req.Repo)
	case "import_session":
		sessionID, err := uuid.Parse(req.SessionID)
		if err != nil {
			return "", toolErrorf("Invalid session_id: %s", req.SessionID)
		}
		return s.tools.ImportSession(ctx, handle, sessionID)
	case "export_session":
		return s.tools.ExportSession(ctx, handle, &service.CreateSessionRequest{
			Title:         req.Title,
			Description:   req.Description,
			SessionData:   req.SessionData,
			AssistantType: req.AssistantType,
			Repo:          req.Repo,
			Metadata:      req.Metadata,
			IsPublic:      req.IsPublic,
		})
	case "update_session":
		sessionID, err := uuid.Parse(req.SessionID)
		if err != nil {
			return "", toolErrorf("Invalid session_id: %s", req.SessionID)
		}
		return s.tools.UpdateSession(ctx, handle, sessionID, req.SessionData)
	case "share_session_with_team":
		sessionID, err := uuid.Parse(req.SessionID)
		if err != nil {
			return "", toolErrorf("Invalid session_id: %s", req.SessionID)
		}
		teamID, err := uuid.Parse(req.TeamID)
		if err != nil {
			return "", toolErrorf("Invalid team_id: %s", req.TeamID)
		}
		return s.tools.ShareSessionWithTeam(ctx, handle, sessionID, teamID)
	default:
		return "", toolErrorf("Unknown tool: %s", name)
	}
}
