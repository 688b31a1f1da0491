package testutils

import (
	"time"

	"github.com/Matias222/d-melo/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The handle is salted with
// a UUID fragment so repeated calls never collide on the primary key.
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Handle:      "testuser-" + uuid.New().String()[:8],
		Email:       "testuser@example.com",
		DisplayName: "Test User",
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// WithHandle sets a custom handle for the user
func (f *UserFactory) WithHandle(handle string) *models.User {
	user := f.Create()
	user.Handle = handle
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values. OwnerHandle must point at
// an existing user before the row is persisted.
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-team",
		Description: "A test team",
	}
}

// WithOwner sets the owner handle for the team
func (f *TeamFactory) WithOwner(handle string) *models.Team {
	team := f.Create()
	team.OwnerHandle = handle
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// MembershipFactory provides methods to create test TeamMembership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a membership linking a team and a user
func (f *MembershipFactory) Create(teamID uuid.UUID, handle string, role models.TeamRole) *models.TeamMembership {
	return &models.TeamMembership{
		ID:         uuid.New(),
		TeamID:     teamID,
		UserHandle: handle,
		Role:       role,
		CreatedAt:  time.Now(),
	}
}

// SessionFactory provides methods to create test Session data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates a test Session with default values
func (f *SessionFactory) Create() *models.Session {
	return &models.Session{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:         "Test Session",
		Description:   "A test session transcript",
		SessionData:   "<html><body><h1>Test Session</h1></body></html>",
		AssistantType: "claude-code",
	}
}

// WithOwner sets the owner handle for the session
func (f *SessionFactory) WithOwner(handle string) *models.Session {
	session := f.Create()
	session.OwnerHandle = handle
	return session
}

// WithRepo sets the repository tag for the session
func (f *SessionFactory) WithRepo(handle, repo string) *models.Session {
	session := f.WithOwner(handle)
	session.Repo = repo
	return session
}

// Public marks the session as publicly readable
func (f *SessionFactory) Public(handle string) *models.Session {
	session := f.WithOwner(handle)
	session.IsPublic = true
	return session
}

// TeamSessionFactory provides methods to create test TeamSession data
type TeamSessionFactory struct{}

// NewTeamSessionFactory creates a new TeamSessionFactory
func NewTeamSessionFactory() *TeamSessionFactory {
	return &TeamSessionFactory{}
}

// Create creates a share linking a team and a session
func (f *TeamSessionFactory) Create(teamID, sessionID uuid.UUID) *models.TeamSession {
	return &models.TeamSession{
		ID:        uuid.New(),
		TeamID:    teamID,
		SessionID: sessionID,
		CreatedAt: time.Now(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User        *UserFactory
	Team        *TeamFactory
	Membership  *MembershipFactory
	Session     *SessionFactory
	TeamSession *TeamSessionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        NewUserFactory(),
		Team:        NewTeamFactory(),
		Membership:  NewMembershipFactory(),
		Session:     NewSessionFactory(),
		TeamSession: NewTeamSessionFactory(),
	}
}
