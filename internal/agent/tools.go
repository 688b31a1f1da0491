package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Matias222/d-melo/internal/service"

	"github.com/google/uuid"
)

// ToolError is a user-facing failure returned to the assistant verbatim
type ToolError struct {
	Message string
}

func (e *ToolError) Error() string {
	return e.Message
}

func toolErrorf(format string, args ...interface{}) error {
	return &ToolError{Message: fmt.Sprintf(format, args...)}
}

// Toolset exposes the session API as assistant-callable tools. Every tool
// takes the resolved handle of the authenticated user and returns rendered
// markdown.
type Toolset struct {
	client *Client
}

// NewToolset creates a new toolset backed by the given API client
func NewToolset(client *Client) *Toolset {
	return &Toolset{client: client}
}

// translateAPIError converts an API failure into a friendly tool error
func translateAPIError(err error, forbidden, notFound string) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return toolErrorf("request failed: %v", err)
	}
	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return toolErrorf("Authentication failed - invalid API key")
	case http.StatusForbidden:
		if forbidden != "" {
			return toolErrorf("%s", forbidden)
		}
		return toolErrorf("Access denied: %s", apiErr.Detail)
	case http.StatusNotFound:
		if notFound != "" {
			return toolErrorf("%s", notFound)
		}
		return toolErrorf("Not found: %s", apiErr.Detail)
	case http.StatusConflict:
		return toolErrorf("Conflict: %s", apiErr.Detail)
	case http.StatusBadRequest:
		return toolErrorf("Invalid request: %s", apiErr.Detail)
	default:
		return toolErrorf("API error (%d): %s", apiErr.StatusCode, apiErr.Detail)
	}
}

// ListOwnCreations lists the user's own sessions
func (t *Toolset) ListOwnCreations(ctx context.Context, handle string) (string, error) {
	sessions, err := t.client.ListSessions(ctx, handle)
	if err != nil {
		return "", translateAPIError(err, "", "")
	}
	if len(sessions) == 0 {
		return "No sessions found.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Your Sessions (%d found)\n\n", len(sessions))
	for _, s := range sessions {
		renderSessionSummary(&b, &s, false)
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// ListUserTeams lists the teams the user belongs to
func (t *Toolset) ListUserTeams(ctx context.Context, handle string) (string, error) {
	teams, err := t.client.ListTeams(ctx, handle)
	if err != nil {
		return "", translateAPIError(err, "", "")
	}
	if len(teams) == 0 {
		return "No teams found. You are not a member of any team yet.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Your Teams (%d found)\n\n", len(teams))
	for _, team := range teams {
		fmt.Fprintf(&b, "### %s\n", team.Name)
		fmt.Fprintf(&b, "- **ID:** `%s`\n", team.ID)
		fmt.Fprintf(&b, "- **Owner:** @%s\n", team.Owner.Handle)
		if team.Description != "" {
			fmt.Fprintf(&b, "- **Description:** %s\n", team.Description)
		}
		fmt.Fprintf(&b, "- **Created:** %s\n\n", team.CreatedAt)
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// ListTeamSessions lists the sessions shared with a team
func (t *Toolset) ListTeamSessions(ctx context.Context, handle string, teamID uuid.UUID) (string, error) {
	shares, err := t.client.ListTeamSessions(ctx, handle, teamID)
	if err != nil {
		return "", translateAPIError(err,
			"Access denied: you are not a member of this team.",
			fmt.Sprintf("Team '%s' not found.", teamID))
	}
	if len(shares) == 0 {
		return "No sessions shared with this team yet.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Team Sessions (%d found)\n\n", len(shares))
	for _, share := range shares {
		s := share.Session
		fmt.Fprintf(&b, "### %s\n", s.Title)
		fmt.Fprintf(&b, "- **ID:** `%s`\n", s.ID)
		fmt.Fprintf(&b, "- **Owner:** @%s\n", s.Owner.Handle)
		if s.Repo != "" {
			fmt.Fprintf(&b, "- **Repo:** %s\n", s.Repo)
		}
		if s.Description != "" {
			fmt.Fprintf(&b, "- **Description:** %s\n", s.Description)
		}
		if s.ReportURL != "" {
			fmt.Fprintf(&b, "- **Report:** %s\n", s.ReportURL)
		}
		fmt.Fprintf(&b, "- **Shared:** %s\n\n", share.SharedAt)
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// ListRepoSessions lists team-shared sessions for a repository
func (t *Toolset) ListRepoSessions(ctx context.Context, handle, repo string) (string, error) {
	sessions, err := t.client.ListRepoSessions(ctx, handle, repo)
	if err != nil {
		return "", translateAPIError(err, "", "")
	}
	if len(sessions) == 0 {
		return fmt.Sprintf("No sessions found for repository '%s'.", repo), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Sessions for %s (%d found)\n\n", repo, len(sessions))
	for _, s := range sessions {
		renderSessionSummary(&b, &s, true)
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// ImportSession fetches a session with its full body
func (t *Toolset) ImportSession(ctx context.Context, handle string, sessionID uuid.UUID) (string, error) {
	session, err := t.client.GetSession(ctx, handle, sessionID)
	if err != nil {
		return "", translateAPIError(err,
			"Access denied: you don't have access to this session.",
			fmt.Sprintf("Session '%s' not found.", sessionID))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", session.Title)
	if session.Description != "" {
		fmt.Fprintf(&b, "**Description:** %s\n", session.Description)
	}
	if session.ReportURL != "" {
		fmt.Fprintf(&b, "**Report URL:** %s\n", session.ReportURL)
	}
	b.WriteString("\n### Session Data\n\n")
	b.WriteString(session.SessionData)
	return b.String(), nil
}

// ExportSession stores the current session
func (t *Toolset) ExportSession(ctx context.Context, handle string, req *service.CreateSessionRequest) (string, error) {
	session, err := t.client.CreateSession(ctx, handle, req)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
			return "", toolErrorf("Could not export session: %s", apiErr.Detail)
		}
		return "", translateAPIError(err, "", "")
	}

	var b strings.Builder
	b.WriteString("Session exported successfully!\n")
	fmt.Fprintf(&b, "**ID:** `%s`\n", session.ID)
	fmt.Fprintf(&b, "**Title:** %s", session.Title)
	if session.ReportURL != "" {
		fmt.Fprintf(&b, "\n**Report:** %s", session.ReportURL)
	}
	return b.String(), nil
}

// UpdateSession replaces the body of an existing session
func (t *Toolset) UpdateSession(ctx context.Context, handle string, sessionID uuid.UUID, sessionData string) (string, error) {
	req := &service.UpdateSessionRequest{SessionData: &sessionData}
	session, err := t.client.UpdateSession(ctx, handle, sessionID, req)
	if err != nil {
		return "", translateAPIError(err,
			"Access denied: only the session owner can update it.",
			fmt.Sprintf("Session '%s' not found.", sessionID))
	}

	return fmt.Sprintf("Session updated successfully!\n**ID:** `%s`\n**Title:** %s", session.ID, session.Title), nil
}

// ShareSessionWithTeam shares a session with a team
func (t *Toolset) ShareSessionWithTeam(ctx context.Context, handle string, sessionID, teamID uuid.UUID) (string, error) {
	share, err := t.client.ShareSession(ctx, handle, teamID, sessionID)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			return "", toolErrorf("Session is already shared with this team.")
		}
		return "", translateAPIError(err, "", "")
	}

	return fmt.Sprintf(
		"Session shared successfully!\n\n**Session ID:** `%s`\n**Team ID:** `%s`\n**Message:** %s",
		share.SessionID, share.TeamID, share.Message,
	), nil
}

func renderSessionSummary(b *strings.Builder, s *service.SessionResponse, withOwner bool) {
	fmt.Fprintf(b, "### %s\n", s.Title)
	fmt.Fprintf(b, "- **ID:** `%s`\n", s.ID)
	if withOwner {
		fmt.Fprintf(b, "- **Owner:** @%s\n", s.Owner.Handle)
	}
	if s.Repo != "" && !withOwner {
		fmt.Fprintf(b, "- **Repo:** %s\n", s.Repo)
	}
	if s.Description != "" {
		fmt.Fprintf(b, "- **Description:** %s\n", s.Description)
	}
	if s.ReportURL != "" {
		fmt.Fprintf(b, "- **Report:** %s\n", s.ReportURL)
	}
	if withOwner {
		if branch, ok := s.Metadata["git_branch"].(string); ok && branch != "" {
			fmt.Fprintf(b, "- **Branch:** %s\n", branch)
		}
	} else {
		if s.IsPublic {
			b.WriteString("- **Public:** Yes\n")
		} else {
			b.WriteString("- **Public:** No\n")
		}
	}
	fmt.Fprintf(b, "- **Created:** %s\n\n", s.CreatedAt)
}
