package repository

import (
	"github.com/Matias222/d-melo/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for team memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create inserts a membership row. The (team_id, user_handle) unique index
// closes the race between concurrent duplicate inserts.
func (r *MembershipRepository) Create(membership *models.TeamMembership) error {
	return r.db.Create(membership).Error
}

// GetByTeamAndUser retrieves the membership of a user in a team
func (r *MembershipRepository) GetByTeamAndUser(teamID uuid.UUID, handle string) (*models.TeamMembership, error) {
	var membership models.TeamMembership
	err := r.db.First(&membership, "team_id = ? AND user_handle = ?", teamID, handle).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListByTeam retrieves all membership rows for a team with user detail
func (r *MembershipRepository) ListByTeam(teamID uuid.UUID) ([]models.TeamMembership, error) {
	var memberships []models.TeamMembership
	err := r.db.Preload("User").
		Where("team_id = ?", teamID).
		Order("role, created_at").
		Find(&memberships).Error
	return memberships, err
}

// Delete removes a membership row
func (r *MembershipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamMembership{}, "id = ?", id).Error
}
