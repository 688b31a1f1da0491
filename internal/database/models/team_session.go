package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamSession is the (team, session) relation granting read visibility of a
// session to all members of the team. It never transfers ownership or write
// access. A session can be shared with a given team at most once.
type TeamSession struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_sessions_team_session"`
	SessionID uuid.UUID `json:"session_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_sessions_team_session;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Team    Team    `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Session Session `json:"session,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets the UUID if not already set
func (ts *TeamSession) BeforeCreate(tx *gorm.DB) error {
	if ts.ID == uuid.Nil {
		ts.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for TeamSession
func (TeamSession) TableName() string {
	return "team_sessions"
}
