package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Matias222/d-melo/internal/service"

	"github.com/google/uuid"
)

// APIError carries the status code and message of a failed API call
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("API error (%d)", e.StatusCode)
}

// Client is an HTTP client for the session API, authenticating as a trusted
// relay with the shared key plus the resolved user handle.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path, handle string, body interface{}, expected int, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-MCP-API-Key", c.apiKey)
	req.Header.Set("X-GitHub-Handle", handle)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != expected {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Detail: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ValidateOrCreate resolves the handle to a user record
func (c *Client) ValidateOrCreate(ctx context.Context, handle string) (*service.ValidateOrCreateResponse, error) {
	var out service.ValidateOrCreateResponse
	if err := c.do(ctx, http.MethodPost, "/fenix/auth/validate-or-create", handle, struct{}{}, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSessions returns the handle's own sessions
func (c *Client) ListSessions(ctx context.Context, handle string) ([]service.SessionResponse, error) {
	var out []service.SessionResponse
	if err := c.do(ctx, http.MethodGet, "/fenix/sessions", handle, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTeams returns the teams the handle belongs to
func (c *Client) ListTeams(ctx context.Context, handle string) ([]service.TeamResponse, error) {
	var out []service.TeamResponse
	if err := c.do(ctx, http.MethodGet, "/fenix/teams", handle, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTeamSessions returns the sessions shared with a team
func (c *Client) ListTeamSessions(ctx context.Context, handle string, teamID uuid.UUID) ([]service.TeamSessionResponse, error) {
	var out []service.TeamSessionResponse
	if err := c.do(ctx, http.MethodGet, "/fenix/teams/"+teamID.String()+"/sessions", handle, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRepoSessions returns team-shared sessions tagged with a repository
func (c *Client) ListRepoSessions(ctx context.Context, handle, repo string) ([]service.SessionResponse, error) {
	var out []service.SessionResponse
	path := "/fenix/sessions/by-repo?repo=" + url.QueryEscape(repo)
	if err := c.do(ctx, http.MethodGet, path, handle, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSession returns a session with its full body
func (c *Client) GetSession(ctx context.Context, handle string, sessionID uuid.UUID) (*service.SessionDetailResponse, error) {
	var out service.SessionDetailResponse
	if err := c.do(ctx, http.MethodGet, "/fenix/sessions/"+sessionID.String(), handle, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSession exports a new session
func (c *Client) CreateSession(ctx context.Context, handle string, req *service.CreateSessionRequest) (*service.SessionResponse, error) {
	var out service.SessionResponse
	if err := c.do(ctx, http.MethodPost, "/fenix/sessions", handle, req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSession patches an existing session
func (c *Client) UpdateSession(ctx context.Context, handle string, sessionID uuid.UUID, req *service.UpdateSessionRequest) (*service.SessionResponse, error) {
	var out service.SessionResponse
	if err := c.do(ctx, http.MethodPatch, "/fenix/sessions/"+sessionID.String(), handle, req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShareSession shares a session with a team
func (c *Client) ShareSession(ctx context.Context, handle string, teamID, sessionID uuid.UUID) (*service.ShareSessionResponse, error) {
	var out service.ShareSessionResponse
	req := service.ShareSessionRequest{SessionID: sessionID}
	if err := c.do(ctx, http.MethodPost, "/fenix/teams/"+teamID.String()+"/sessions", handle, req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
