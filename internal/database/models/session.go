package models

import "encoding/json"

// Session is an exported AI assistant transcript. Owned by exactly one user;
// readable by the owner, by anyone when public, or by members of teams it has
// been shared with. Only the owner can mutate or delete it.
type Session struct {
	BaseModel
	Title         string          `json:"title" gorm:"not null;size:500;index"`
	Description   string          `json:"description,omitempty" gorm:"type:text"`
	SessionData   string          `json:"session_data" gorm:"type:text;not null"`
	AssistantType string          `json:"assistant_type" gorm:"size:50;not null;default:'claude-code';index"`
	Repo          string          `json:"repo,omitempty" gorm:"size:100;index"`
	Metadata      json.RawMessage `json:"metadata,omitempty" gorm:"type:jsonb"`
	OwnerHandle   string          `json:"owner_handle" gorm:"not null;size:255;index:idx_sessions_owner_created"`
	IsPublic      bool            `json:"is_public" gorm:"default:false"`

	// URL of the mirrored report in object storage. Set once after creation
	// when the upload succeeds; never regenerated on update.
	ReportURL string `json:"report_url,omitempty" gorm:"size:1000"`

	// Relationships
	Owner  User          `json:"owner,omitempty" gorm:"foreignKey:OwnerHandle;references:Handle;constraint:OnDelete:CASCADE"`
	Shares []TeamSession `json:"shares,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}
