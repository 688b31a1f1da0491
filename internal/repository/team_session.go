package repository

import (
	"github.com/Matias222/d-melo/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamSessionRepository handles database operations for team-session shares
type TeamSessionRepository struct {
	db *gorm.DB
}

// NewTeamSessionRepository creates a new team session repository
func NewTeamSessionRepository(db *gorm.DB) *TeamSessionRepository {
	return &TeamSessionRepository{db: db}
}

// Create inserts a share row. The (team_id, session_id) unique index closes
// the race between concurrent duplicate shares.
func (r *TeamSessionRepository) Create(share *models.TeamSession) error {
	return r.db.Create(share).Error
}

// GetByTeamAndSession retrieves the share row linking a team and a session
func (r *TeamSessionRepository) GetByTeamAndSession(teamID, sessionID uuid.UUID) (*models.TeamSession, error) {
	var share models.TeamSession
	err := r.db.First(&share, "team_id = ? AND session_id = ?", teamID, sessionID).Error
	if err != nil {
		return nil, err
	}
	return &share, nil
}

// ListByTeam retrieves every share for a team with nested session and owner
// detail, most recently shared first.
func (r *TeamSessionRepository) ListByTeam(teamID uuid.UUID) ([]models.TeamSession, error) {
	var shares []models.TeamSession
	err := r.db.Preload("Session").Preload("Session.Owner").
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&shares).Error
	return shares, err
}

// Delete removes a share row; the session and team themselves are untouched
func (r *TeamSessionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamSession{}, "id = ?", id).Error
}
