package repository

import (
	"github.com/Matias222/d-melo/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByHandle(handle string) (*models.User, error)
	Update(user *models.User) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateWithOwner(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	ListByMember(handle string) ([]models.Team, error)
	Delete(id uuid.UUID) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.TeamMembership) error
	GetByTeamAndUser(teamID uuid.UUID, handle string) (*models.TeamMembership, error)
	ListByTeam(teamID uuid.UUID) ([]models.TeamMembership, error)
	Delete(id uuid.UUID) error
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByID(id uuid.UUID) (*models.Session, error)
	ListByOwner(handle, assistantType string) ([]models.Session, error)
	ListSharedByRepo(handle, repo string) ([]models.Session, error)
	SharedWithUser(sessionID uuid.UUID, handle string) (bool, error)
	Update(session *models.Session) error
	SetReportURL(id uuid.UUID, url string) error
	Delete(id uuid.UUID) error
}

// TeamSessionRepositoryInterface defines the interface for team-session share repository operations
type TeamSessionRepositoryInterface interface {
	Create(share *models.TeamSession) error
	GetByTeamAndSession(teamID, sessionID uuid.UUID) (*models.TeamSession, error)
	ListByTeam(teamID uuid.UUID) ([]models.TeamSession, error)
	Delete(id uuid.UUID) error
}
