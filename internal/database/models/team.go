package models

// TeamRole represents the role of a user within a team
type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleMember TeamRole = "member"
)

// IsValid checks if the TeamRole is valid
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleOwner, TeamRoleAdmin, TeamRoleMember:
		return true
	}
	return false
}

// CanManageMembers reports whether the role can add or remove members
func (r TeamRole) CanManageMembers() bool {
	return r == TeamRoleOwner || r == TeamRoleAdmin
}

// Team represents a group of users sessions can be shared with.
// The owner_handle field and the single owner-role membership row are created
// in one transaction and must never diverge while the team exists.
type Team struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:255;index"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	OwnerHandle string `json:"owner_handle" gorm:"not null;size:255;index"`

	// Relationships
	Owner       User             `json:"owner,omitempty" gorm:"foreignKey:OwnerHandle;references:Handle;constraint:OnDelete:CASCADE"`
	Memberships []TeamMembership `json:"memberships,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
