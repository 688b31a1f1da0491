package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a creation that violates a uniqueness
// invariant
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a malformed or incomplete request
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents a caller whose identity could not be
// established
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents an authenticated caller lacking the required
// relationship (ownership, membership, role) for an operation
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrMembershipNotFound  = &NotFoundError{Entity: "team membership"}
	ErrSessionNotFound     = &NotFoundError{Entity: "session"}
	ErrTeamSessionNotFound = &NotFoundError{Entity: "team share"}
)

// Already Exists Errors
var (
	ErrMembershipExists  = &AlreadyExistsError{Entity: "membership", Context: "for this user in the team"}
	ErrTeamSessionExists = &AlreadyExistsError{Entity: "session share", Context: "with this team"}
)

// Authorization Errors
var (
	ErrNotTeamMember       = &AuthorizationError{Message: "you are not a member of this team"}
	ErrNotTeamAdmin        = &AuthorizationError{Message: "only owners and admins can manage members"}
	ErrCannotRemoveOwner   = &AuthorizationError{Message: "cannot remove team owner"}
	ErrNotSessionOwner     = &AuthorizationError{Message: "only the owner can modify this session"}
	ErrShareNotOwner       = &AuthorizationError{Message: "you can only share your own sessions"}
	ErrSessionAccessDenied = &AuthorizationError{Message: "you don't have access to this session"}
	ErrNotShareManager     = &AuthorizationError{Message: "only team admins or the session owner can unshare"}
)

// Authentication Errors
var (
	ErrMissingAPIKey    = &AuthenticationError{Message: "missing or invalid API key"}
	ErrMissingHandle    = &AuthenticationError{Message: "caller handle could not be established"}
	ErrInvalidAuthToken = &AuthenticationError{Message: "invalid or expired token"}
)

// Request Errors
var (
	ErrRepoRequired = &ValidationError{Field: "repo", Message: "repo parameter is required"}
	ErrInvalidRole  = &ValidationError{Field: "role", Message: "role must be one of: admin, member"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsForbidden checks if an error is an AuthorizationError
func IsForbidden(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}
