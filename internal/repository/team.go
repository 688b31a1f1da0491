package repository

import (
	"github.com/Matias222/d-melo/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithOwner creates a team and its owner-role membership in a single
// transaction so the owner field and the membership row cannot diverge.
func (r *TeamRepository) CreateWithOwner(team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		membership := &models.TeamMembership{
			TeamID:     team.ID,
			UserHandle: team.OwnerHandle,
			Role:       models.TeamRoleOwner,
		}
		return tx.Create(membership).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Owner").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembers retrieves a team with its full membership roster
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Owner").
		Preload("Memberships", func(db *gorm.DB) *gorm.DB {
			return db.Order("role, created_at")
		}).
		Preload("Memberships.User").
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListByMember retrieves every team in which the user holds any membership
// row regardless of role, newest team first.
func (r *TeamRepository) ListByMember(handle string) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Joins("JOIN team_memberships ON team_memberships.team_id = teams.id").
		Where("team_memberships.user_handle = ?", handle).
		Order("teams.created_at DESC").
		Preload("Owner").
		Find(&teams).Error
	return teams, err
}

// Delete deletes a team; memberships and shares cascade at the storage layer
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
