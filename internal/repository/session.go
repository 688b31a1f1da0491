package repository

import (
	"github.com/Matias222/d-melo/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetByID retrieves a session with owner detail
func (r *SessionRepository) GetByID(id uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.Preload("Owner").First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListByOwner retrieves sessions owned by a user, newest first, optionally
// filtered by an exact assistant-type match.
func (r *SessionRepository) ListByOwner(handle, assistantType string) ([]models.Session, error) {
	var sessions []models.Session
	query := r.db.Where("owner_handle = ?", handle)
	if assistantType != "" {
		query = query.Where("assistant_type = ?", assistantType)
	}
	err := query.Order("created_at DESC").Preload("Owner").Find(&sessions).Error
	return sessions, err
}

// ListSharedByRepo retrieves sessions matching the exact repo string that are
// currently shared with at least one team the user belongs to. Sessions the
// user owns or that are public but not shared that way are excluded.
func (r *SessionRepository) ListSharedByRepo(handle, repo string) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.
		Distinct("sessions.*").
		Joins("JOIN team_sessions ON team_sessions.session_id = sessions.id").
		Joins("JOIN team_memberships ON team_memberships.team_id = team_sessions.team_id").
		Where("sessions.repo = ? AND team_memberships.user_handle = ?", repo, handle).
		Order("sessions.created_at DESC").
		Preload("Owner").
		Find(&sessions).Error
	return sessions, err
}

// SharedWithUser reports whether the session is shared with any team the
// user holds a membership in. Used as the third branch of the read
// visibility rule.
func (r *SessionRepository) SharedWithUser(sessionID uuid.UUID, handle string) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamSession{}).
		Joins("JOIN team_memberships ON team_memberships.team_id = team_sessions.team_id").
		Where("team_sessions.session_id = ? AND team_memberships.user_handle = ?", sessionID, handle).
		Count(&count).Error
	return count > 0, err
}

// Update updates a session
func (r *SessionRepository) Update(session *models.Session) error {
	return r.db.Save(session).Error
}

// SetReportURL attaches the mirrored report URL after a successful upload
func (r *SessionRepository) SetReportURL(id uuid.UUID, url string) error {
	return r.db.Model(&models.Session{}).Where("id = ?", id).Update("report_url", url).Error
}

// Delete deletes a session; team shares cascade at the storage layer
func (r *SessionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}
