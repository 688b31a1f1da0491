package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Matias222/d-melo/internal/database/models"
	apperrors "github.com/Matias222/d-melo/internal/errors"
	"github.com/Matias222/d-melo/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams and their membership roster
type TeamService struct {
	repo           repository.TeamRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, membershipRepo repository.MembershipRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:           repo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		validator:      validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description"`
}

// AddMemberRequest represents the request to add a member to a team.
// Role is restricted to admin|member: the owner role exists only through
// team creation, keeping exactly one owner membership per team.
type AddMemberRequest struct {
	Handle string          `json:"github_handle" validate:"required,max=255"`
	Role   models.TeamRole `json:"role" validate:"required,oneof=admin member"`
}

// TeamResponse represents a team in API responses
type TeamResponse struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Owner       UserResponse `json:"owner"`
	CreatedAt   string       `json:"created_at"`
}

// TeamMemberResponse represents a membership row with user detail
type TeamMemberResponse struct {
	ID        uuid.UUID       `json:"id"`
	User      UserResponse    `json:"user"`
	Role      models.TeamRole `json:"role"`
	CreatedAt string          `json:"created_at"`
}

// TeamDetailResponse represents a team with its full membership roster
type TeamDetailResponse struct {
	TeamResponse
	Members []TeamMemberResponse `json:"members"`
}

// Create creates a team for any authenticated actor. The team row and the
// actor's owner-role membership are written in one transaction.
func (s *TeamService) Create(actor string, req *CreateTeamRequest) (*TeamResponse, error) {
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

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		OwnerHandle: actor,
	}
	if err := s.repo.CreateWithOwner(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	team.Owner = *owner

	resp := s.toResponse(team)
	return &resp, nil
}

// List returns every team where the actor holds any membership row
func (s *TeamService) List(actor string) ([]TeamResponse, error) {
	teams, err := s.repo.ListByMember(actor)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, s.toResponse(&teams[i]))
	}
	return responses, nil
}

// Get returns the team with its full roster. Only members of the team, in
// any role, may see it.
func (s *TeamService) Get(actor string, teamID uuid.UUID) (*TeamDetailResponse, error) {
	team, err := s.repo.GetWithMembers(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if !s.isMember(team, actor) {
		return nil, apperrors.ErrNotTeamMember
	}

	members := make([]TeamMemberResponse, 0, len(team.Memberships))
	for i := range team.Memberships {
		m := &team.Memberships[i]
		members = append(members, TeamMemberResponse{
			ID:        m.ID,
			User:      toUserResponse(&m.User),
			Role:      m.Role,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		})
	}

	return &TeamDetailResponse{
		TeamResponse: s.toResponse(team),
		Members:      members,
	}, nil
}

// AddMember inserts a membership row for an existing user. Only owners and
// admins of the team may invite.
func (s *TeamService) AddMember(actor string, teamID uuid.UUID, req *AddMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		if !req.Role.IsValid() || req.Role == models.TeamRoleOwner {
			return nil, apperrors.ErrInvalidRole
		}
		return nil, validationError(err)
	}

	if _, err := s.getTeam(teamID); err != nil {
		return nil, err
	}

	if err := s.requireManager(teamID, actor); err != nil {
		return nil, err
	}

	target, err := s.userRepo.GetByHandle(req.Handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve target user: %w", err)
	}

	if _, err := s.membershipRepo.GetByTeamAndUser(teamID, req.Handle); err == nil {
		return nil, apperrors.ErrMembershipExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}

	membership := &models.TeamMembership{
		TeamID:     teamID,
		UserHandle: req.Handle,
		Role:       req.Role,
	}
	if err := s.membershipRepo.Create(membership); err != nil {
		// Concurrent duplicate inserts lose the unique index race; surface
		// the same conflict as the sequential check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMembershipExists
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return &TeamMemberResponse{
		ID:        membership.ID,
		User:      toUserResponse(target),
		Role:      membership.Role,
		CreatedAt: membership.CreatedAt.Format(time.RFC3339),
	}, nil
}

// RemoveMember deletes a membership row. Only owners and admins may remove,
// and the owner membership can never be removed while the team exists.
func (s *TeamService) RemoveMember(actor string, teamID uuid.UUID, handle string) error {
	if _, err := s.getTeam(teamID); err != nil {
		return err
	}

	if err := s.requireManager(teamID, actor); err != nil {
		return err
	}

	membership, err := s.membershipRepo.GetByTeamAndUser(teamID, handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to look up membership: %w", err)
	}

	if membership.Role == models.TeamRoleOwner {
		return apperrors.ErrCannotRemoveOwner
	}

	if err := s.membershipRepo.Delete(membership.ID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (s *TeamService) getTeam(teamID uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// requireManager fails unless the actor holds an owner or admin membership
// in the team
func (s *TeamService) requireManager(teamID uuid.UUID, actor string) error {
	membership, err := s.membershipRepo.GetByTeamAndUser(teamID, actor)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotTeamAdmin
		}
		return fmt.Errorf("failed to check actor membership: %w", err)
	}
	if !membership.Role.CanManageMembers() {
		return apperrors.ErrNotTeamAdmin
	}
	return nil
}

func (s *TeamService) isMember(team *models.Team, actor string) bool {
	for i := range team.Memberships {
		if team.Memberships[i].UserHandle == actor {
			return true
		}
	}
	return false
}

func (s *TeamService) toResponse(team *models.Team) TeamResponse {
	return TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		Owner:       toUserResponse(&team.Owner),
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
	}
}
