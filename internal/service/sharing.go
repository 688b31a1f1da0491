package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Matias222/d-melo/internal/database/models"
	apperrors "github.com/Matias222/d-melo/internal/errors"
	"github.com/Matias222/d-melo/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SharingService handles the team-session relation: pushing a session into a
// team's shared list and taking it back out. Sharing grants read visibility
// to all team members and nothing else.
type SharingService struct {
	teamRepo       repository.TeamRepositoryInterface
	sessionRepo    repository.SessionRepositoryInterface
	shareRepo      repository.TeamSessionRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
}

// NewSharingService creates a new sharing service
func NewSharingService(teamRepo repository.TeamRepositoryInterface, sessionRepo repository.SessionRepositoryInterface, shareRepo repository.TeamSessionRepositoryInterface, membershipRepo repository.MembershipRepositoryInterface) *SharingService {
	return &SharingService{
		teamRepo:       teamRepo,
		sessionRepo:    sessionRepo,
		shareRepo:      shareRepo,
		membershipRepo: membershipRepo,
	}
}

// ShareSessionRequest identifies the session to share with a team
type ShareSessionRequest struct {
	SessionID uuid.UUID `json:"session_id" binding:"required"`
}

// ShareSessionResponse confirms a new share
type ShareSessionResponse struct {
	Success   bool      `json:"success"`
	TeamID    uuid.UUID `json:"team_id"`
	SessionID uuid.UUID `json:"session_id"`
	Message   string    `json:"message"`
}

// TeamSessionResponse represents a share with nested session detail
type TeamSessionResponse struct {
	ID       uuid.UUID       `json:"id"`
	Session  SessionResponse `json:"session"`
	SharedAt string          `json:"shared_at"`
}

// Share links a session to a team. The actor must be a member of the team in
// any role AND the owner of the session; a team admin cannot push someone
// else's session.
func (s *SharingService) Share(actor string, teamID, sessionID uuid.UUID) (*ShareSessionResponse, error) {
	team, err := s.getTeam(teamID)
	if err != nil {
		return nil, err
	}
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := s.membershipRepo.GetByTeamAndUser(teamID, actor); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotTeamMember
		}
		return nil, fmt.Errorf("failed to check actor membership: %w", err)
	}

	if session.OwnerHandle != actor {
		return nil, apperrors.ErrShareNotOwner
	}

	if _, err := s.shareRepo.GetByTeamAndSession(teamID, sessionID); err == nil {
		return nil, apperrors.ErrTeamSessionExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing share: %w", err)
	}

	share := &models.TeamSession{
		TeamID:    teamID,
		SessionID: sessionID,
	}
	if err := s.shareRepo.Create(share); err != nil {
		// Concurrent duplicate shares lose the unique index race; surface
		// the same conflict as the sequential check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamSessionExists
		}
		return nil, fmt.Errorf("failed to share session: %w", err)
	}

	return &ShareSessionResponse{
		Success:   true,
		TeamID:    teamID,
		SessionID: sessionID,
		Message:   fmt.Sprintf("Session shared with team %s", team.Name),
	}, nil
}

// Unshare removes the share row. Allowed for the session's owner or for any
// owner/admin of the team; the session and team themselves are untouched.
func (s *SharingService) Unshare(actor string, teamID, sessionID uuid.UUID) error {
	if _, err := s.getTeam(teamID); err != nil {
		return err
	}
	session, err := s.getSession(sessionID)
	if err != nil {
		return err
	}

	isTeamAdmin := false
	membership, err := s.membershipRepo.GetByTeamAndUser(teamID, actor)
	if err == nil {
		isTeamAdmin = membership.Role.CanManageMembers()
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check actor membership: %w", err)
	}

	if !isTeamAdmin && session.OwnerHandle != actor {
		return apperrors.ErrNotShareManager
	}

	share, err := s.shareRepo.GetByTeamAndSession(teamID, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamSessionNotFound
		}
		return fmt.Errorf("failed to look up share: %w", err)
	}

	if err := s.shareRepo.Delete(share.ID); err != nil {
		return fmt.Errorf("failed to unshare session: %w", err)
	}
	return nil
}

// ListTeamSessions returns every share for the team with nested session and
// owner detail, most recently shared first. Only team members may browse.
func (s *SharingService) ListTeamSessions(actor string, teamID uuid.UUID) ([]TeamSessionResponse, error) {
	if _, err := s.getTeam(teamID); err != nil {
		return nil, err
	}

	if _, err := s.membershipRepo.GetByTeamAndUser(teamID, actor); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotTeamMember
		}
		return nil, fmt.Errorf("failed to check actor membership: %w", err)
	}

	shares, err := s.shareRepo.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team sessions: %w", err)
	}

	responses := make([]TeamSessionResponse, 0, len(shares))
	for i := range shares {
		share := &shares[i]
		sessionResp := SessionResponse{
			ID:            share.Session.ID,
			Title:         share.Session.Title,
			Description:   share.Session.Description,
			AssistantType: share.Session.AssistantType,
			Repo:          share.Session.Repo,
			Metadata:      unmarshalMetadata(share.Session.Metadata),
			Owner:         toUserResponse(&share.Session.Owner),
			IsPublic:      share.Session.IsPublic,
			ReportURL:     share.Session.ReportURL,
			CreatedAt:     share.Session.CreatedAt.Format(time.RFC3339),
		}
		responses = append(responses, TeamSessionResponse{
			ID:       share.ID,
			Session:  sessionResp,
			SharedAt: share.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

func (s *SharingService) getTeam(teamID uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *SharingService) getSession(sessionID uuid.UUID) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}
