package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMembership is the (team, user, role) relation governing team-scoped
// permissions. A user can hold at most one role per team.
type TeamMembership struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeamID     uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_memberships_team_user"`
	UserHandle string    `json:"user_handle" gorm:"not null;size:255;uniqueIndex:idx_team_memberships_team_user;index"`
	Role       TeamRole  `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserHandle;references:Handle;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets the UUID if not already set
func (m *TeamMembership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}
