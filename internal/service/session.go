package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Matias222/d-melo/internal/database/models"
	apperrors "github.com/Matias222/d-melo/internal/errors"
	"github.com/Matias222/d-melo/internal/logger"
	"github.com/Matias222/d-melo/internal/repository"
	"github.com/Matias222/d-melo/internal/storage"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService handles business logic for sessions, including the read
// visibility rule: a session is readable iff the actor owns it, it is public,
// or it is shared with a team the actor belongs to.
type SessionService struct {
	repo      repository.SessionRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	reports   storage.ReportStore
	validator *validator.Validate
}

// NewSessionService creates a new session service. The report store is an
// injected collaborator; session creation works with or without it.
func NewSessionService(repo repository.SessionRepositoryInterface, userRepo repository.UserRepositoryInterface, reports storage.ReportStore, validator *validator.Validate) *SessionService {
	return &SessionService{
		repo:      repo,
		userRepo:  userRepo,
		reports:   reports,
		validator: validator,
	}
}

// CreateSessionRequest represents the request to create a session
type CreateSessionRequest struct {
	Title         string                 `json:"title" validate:"required,max=500"`
	Description   string                 `json:"description"`
	SessionData   string                 `json:"session_data" validate:"required"`
	AssistantType string                 `json:"assistant_type" validate:"max=50"`
	Repo          string                 `json:"repo" validate:"max=100"`
	Metadata      map[string]interface{} `json:"metadata"`
	IsPublic      bool                   `json:"is_public"`
}

// UpdateSessionRequest represents a partial session update; nil fields are
// left untouched
type UpdateSessionRequest struct {
	Title       *string                `json:"title" validate:"omitempty,max=500"`
	Description *string                `json:"description"`
	SessionData *string                `json:"session_data"`
	Repo        *string                `json:"repo" validate:"omitempty,max=100"`
	Metadata    map[string]interface{} `json:"metadata"`
	IsPublic    *bool                  `json:"is_public"`
}

// SessionResponse represents a session without its body
type SessionResponse struct {
	ID            uuid.UUID              `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description,omitempty"`
	AssistantType string                 `json:"assistant_type"`
	Repo          string                 `json:"repo,omitempty"`
	Metadata      map[string]interface{} `json:"metadata"`
	Owner         UserResponse           `json:"owner"`
	IsPublic      bool                   `json:"is_public"`
	ReportURL     string                 `json:"report_url,omitempty"`
	CreatedAt     string                 `json:"created_at"`
}

// SessionDetailResponse represents a session with its full body
type SessionDetailResponse struct {
	SessionResponse
	SessionData string `json:"session_data"`
	UpdatedAt   string `json:"updated_at"`
}

// Create persists a session owned by the actor and then mirrors the body to
// the report store. Mirroring is best-effort: on failure the session is kept
// without a report URL and the error is absorbed.
func (s *SessionService) Create(ctx context.Context, actor string, req *CreateSessionRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	owner, err := s.userRepo.GetByHandle(actor)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}

	assistantType := req.AssistantType
	if assistantType == "" {
		assistantType = "claude-code"
	}

	metadata, err := marshalMetadata(req.Metadata)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		Title:         req.Title,
		Description:   req.Description,
		SessionData:   req.SessionData,
		AssistantType: assistantType,
		Repo:          req.Repo,
		Metadata:      metadata,
		OwnerHandle:   actor,
		IsPublic:      req.IsPublic,
	}
	if err := s.repo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	session.Owner = *owner

	if s.reports != nil {
		url, err := s.reports.Upload(ctx, session.ID.String(), req.SessionData, actor)
		if err != nil {
			logger.WithActor(actor).WithField("session_id", session.ID).
				WithError(err).Warn("report upload failed, session kept without report URL")
			sentry.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("operation", "report_upload")
				scope.SetExtra("session_id", session.ID.String())
				sentry.CaptureException(err)
			})
		} else if err := s.repo.SetReportURL(session.ID, url); err != nil {
			logger.WithActor(actor).WithField("session_id", session.ID).
				WithError(err).Warn("failed to attach report URL")
		} else {
			session.ReportURL = url
		}
	}

	resp := s.toResponse(session)
	return &resp, nil
}

// List returns sessions owned by the actor, optionally filtered by assistant
// type. Sessions merely shared with the actor's teams or public sessions
// owned by others are deliberately excluded.
func (s *SessionService) List(actor, assistantType string) ([]SessionResponse, error) {
	sessions, err := s.repo.ListByOwner(actor, assistantType)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return s.toResponses(sessions), nil
}

// ListByRepo returns the sessions matching the exact repo string that are
// shared with at least one of the actor's teams. The repo filter is required.
func (s *SessionService) ListByRepo(actor, repo string) ([]SessionResponse, error) {
	if repo == "" {
		return nil, apperrors.ErrRepoRequired
	}

	sessions, err := s.repo.ListSharedByRepo(actor, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions by repo: %w", err)
	}
	return s.toResponses(sessions), nil
}

// Get returns the full session detail, body included, if the actor may read
// it
func (s *SessionService) Get(actor string, id uuid.UUID) (*SessionDetailResponse, error) {
	session, err := s.getSession(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkReadAccess(session, actor); err != nil {
		return nil, err
	}

	return &SessionDetailResponse{
		SessionResponse: s.toResponse(session),
		SessionData:     session.SessionData,
		UpdatedAt:       session.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// Update applies a partial update. Only the owner may update; team sharing
// or public visibility never grants write. The mirrored report is not
// regenerated even when the body changes.
func (s *SessionService) Update(actor string, id uuid.UUID, req *UpdateSessionRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	session, err := s.getSession(id)
	if err != nil {
		return nil, err
	}
	if session.OwnerHandle != actor {
		return nil, apperrors.ErrNotSessionOwner
	}

	if req.Title != nil {
		session.Title = *req.Title
	}
	if req.Description != nil {
		session.Description = *req.Description
	}
	if req.SessionData != nil {
		session.SessionData = *req.SessionData
	}
	if req.Repo != nil {
		session.Repo = *req.Repo
	}
	if req.Metadata != nil {
		metadata, err := marshalMetadata(req.Metadata)
		if err != nil {
			return nil, err
		}
		session.Metadata = metadata
	}
	if req.IsPublic != nil {
		session.IsPublic = *req.IsPublic
	}

	if err := s.repo.Update(session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	resp := s.toResponse(session)
	return &resp, nil
}

// Delete removes a session and, through the storage-layer cascade, all its
// team shares. The mirrored object-store copy is not cleaned up.
func (s *SessionService) Delete(actor string, id uuid.UUID) error {
	session, err := s.getSession(id)
	if err != nil {
		return err
	}
	if session.OwnerHandle != actor {
		return apperrors.ErrNotSessionOwner
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *SessionService) getSession(id uuid.UUID) (*models.Session, error) {
	session, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// checkReadAccess enforces the visibility rule. The three true-conditions
// are equivalent for read purposes; they share a single denial.
func (s *SessionService) checkReadAccess(session *models.Session, actor string) error {
	if session.OwnerHandle == actor || session.IsPublic {
		return nil
	}
	shared, err := s.repo.SharedWithUser(session.ID, actor)
	if err != nil {
		return fmt.Errorf("failed to check session visibility: %w", err)
	}
	if !shared {
		return apperrors.ErrSessionAccessDenied
	}
	return nil
}

func (s *SessionService) toResponse(session *models.Session) SessionResponse {
	return SessionResponse{
		ID:            session.ID,
		Title:         session.Title,
		Description:   session.Description,
		AssistantType: session.AssistantType,
		Repo:          session.Repo,
		Metadata:      unmarshalMetadata(session.Metadata),
		Owner:         toUserResponse(&session.Owner),
		IsPublic:      session.IsPublic,
		ReportURL:     session.ReportURL,
		CreatedAt:     session.CreatedAt.Format(time.RFC3339),
	}
}

func (s *SessionService) toResponses(sessions []models.Session) []SessionResponse {
	responses := make([]SessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, s.toResponse(&sessions[i]))
	}
	return responses
}

func marshalMetadata(metadata map[string]interface{}) (json.RawMessage, error) {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return raw, nil
}

func unmarshalMetadata(raw json.RawMessage) map[string]interface{} {
	metadata := map[string]interface{}{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &metadata)
	}
	return metadata
}
