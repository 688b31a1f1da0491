package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates JWTs for interactive callers and drives
// the GitHub OAuth exchange that resolves their handle.
type AuthService struct {
	config *AuthConfig
	github *GitHubClient
}

// NewAuthService creates a new auth service
func NewAuthService(config *AuthConfig) *AuthService {
	return &AuthService{
		config: config,
		github: NewGitHubClient(&config.GitHub),
	}
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Handle string `json:"handle"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ExchangeResult is the outcome of a completed OAuth exchange
type ExchangeResult struct {
	AccessToken string      `json:"accessToken"`
	TokenType   string      `json:"tokenType"`
	ExpiresIn   int64       `json:"expiresIn"`
	Profile     UserProfile `json:"profile"`
}

// AuthenticateWithCode exchanges a GitHub authorization code, resolves the
// caller's profile and mints a JWT bound to their handle.
func (s *AuthService) AuthenticateWithCode(ctx context.Context, code string) (*ExchangeResult, error) {
	accessToken, err := s.github.ExchangeCode(ctx, s.config.RedirectURL, code)
	if err != nil {
		return nil, err
	}

	profile, err := s.github.GetUserProfile(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if profile.Login == "" {
		return nil, fmt.Errorf("github profile has no login")
	}

	ttl := time.Duration(s.config.TokenTTLMinutes) * time.Minute
	token, err := s.GenerateJWT(profile, ttl)
	if err != nil {
		return nil, err
	}

	return &ExchangeResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		Profile:     *profile,
	}, nil
}

// GenerateJWT mints a signed token carrying the caller's handle
func (s *AuthService) GenerateJWT(profile *UserProfile, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Handle: profile.Login,
		Email:  profile.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "damelo",
			Subject:   profile.Login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT parses and validates a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Handle == "" {
		return nil, fmt.Errorf("token carries no handle")
	}
	return claims, nil
}
