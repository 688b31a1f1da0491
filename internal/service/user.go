package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Matias222/d-melo/internal/database/models"
	apperrors "github.com/Matias222/d-melo/internal/errors"
	"github.com/Matias222/d-melo/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UserService handles identity resolution. It is the single place new
// identities enter the system; there is no deletion path.
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// ValidateOrCreateRequest carries the optional profile fields supplied by the
// authenticating front end
type ValidateOrCreateRequest struct {
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	DisplayName string `json:"display_name" validate:"max=255"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	Handle      string `json:"github_handle"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

// ValidateOrCreateResponse reports the resolved user and whether the record
// pre-existed
type ValidateOrCreateResponse struct {
	UserResponse
	Existed bool `json:"existed"`
}

// ValidateOrCreate resolves or lazily creates the user for an authenticated
// handle. Existing records only have email/display name overwritten when the
// caller supplies non-empty replacements; empty fields never null anything
// out. Idempotent under repeated calls with the same handle.
func (s *UserService) ValidateOrCreate(handle string, req *ValidateOrCreateRequest) (*ValidateOrCreateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := s.repo.GetByHandle(handle)
	if err == nil {
		if req.Email != "" {
			user.Email = req.Email
		}
		if req.DisplayName != "" {
			user.DisplayName = req.DisplayName
		}
		if err := s.repo.Update(user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		return &ValidateOrCreateResponse{UserResponse: toUserResponse(user), Existed: true}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &models.User{
		Handle:      handle,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		IsActive:    true,
	}
	if err := s.repo.Create(user); err != nil {
		// A concurrent first-authentication for the same handle may win the
		// insert; resolve the race by treating it as the existing-user path.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.ValidateOrCreate(handle, req)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &ValidateOrCreateResponse{UserResponse: toUserResponse(user), Existed: false}, nil
}

// GetByHandle retrieves the user record for an authenticated handle
func (s *UserService) GetByHandle(handle string) (*UserResponse, error) {
	user, err := s.repo.GetByHandle(handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		Handle:      user.Handle,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}
