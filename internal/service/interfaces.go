package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for identity resolution
type UserServiceInterface interface {
	ValidateOrCreate(handle string, req *ValidateOrCreateRequest) (*ValidateOrCreateResponse, error)
	GetByHandle(handle string) (*UserResponse, error)
}

// TeamServiceInterface defines the interface for team operations
type TeamServiceInterface interface {
	Create(actor string, req *CreateTeamRequest) (*TeamResponse, error)
	List(actor string) ([]TeamResponse, error)
	Get(actor string, teamID uuid.UUID) (*TeamDetailResponse, error)
	AddMember(actor string, teamID uuid.UUID, req *AddMemberRequest) (*TeamMemberResponse, error)
	RemoveMember(actor string, teamID uuid.UUID, handle string) error
}

// SessionServiceInterface defines the interface for session operations
type SessionServiceInterface interface {
	Create(ctx context.Context, actor string, req *CreateSessionRequest) (*SessionResponse, error)
	List(actor, assistantType string) ([]SessionResponse, error)
	ListByRepo(actor, repo string) ([]SessionResponse, error)
	Get(actor string, id uuid.UUID) (*SessionDetailResponse, error)
	Update(actor string, id uuid.UUID, req *UpdateSessionRequest) (*SessionResponse, error)
	Delete(actor string, id uuid.UUID) error
}

// SharingServiceInterface defines the interface for team-session sharing
type SharingServiceInterface interface {
	Share(actor string, teamID, sessionID uuid.UUID) (*ShareSessionResponse, error)
	Unshare(actor string, teamID, sessionID uuid.UUID) error
	ListTeamSessions(actor string, teamID uuid.UUID) ([]TeamSessionResponse, error)
}
