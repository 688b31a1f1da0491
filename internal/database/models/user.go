package models

import "time"

// User represents an identity resolved by the external authenticator.
// The GitHub handle is the primary key and is immutable; users are created
// lazily on first successful authentication and never hard-deleted.
type User struct {
	Handle      string    `json:"github_handle" gorm:"column:github_handle;primaryKey;size:255"`
	Email       string    `json:"email,omitempty" gorm:"size:255"`
	DisplayName string    `json:"display_name,omitempty" gorm:"size:255"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
