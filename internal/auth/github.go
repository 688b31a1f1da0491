package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

// GitHubClient wraps the GitHub API client for OAuth code exchange and
// profile resolution
type GitHubClient struct {
	config *ProviderConfig
}

// UserProfile represents the GitHub profile of an authenticated caller. The
// login is the stable handle the rest of the system keys on.
type UserProfile struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// NewGitHubClient creates a new GitHub OAuth client
func NewGitHubClient(config *ProviderConfig) *GitHubClient {
	return &GitHubClient{config: config}
}

// OAuth2Config builds the oauth2 configuration for the GitHub provider
func (c *GitHubClient) OAuth2Config(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		Endpoint:     githuboauth.Endpoint,
		RedirectURL:  redirectURL,
		Scopes:       []string{"read:user", "user:email"},
	}
}

// ExchangeCode trades an OAuth authorization code for an access token
func (c *GitHubClient) ExchangeCode(ctx context.Context, redirectURL, code string) (string, error) {
	token, err := c.OAuth2Config(redirectURL).Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token.AccessToken, nil
}

// GetUserProfile fetches the authenticated user's profile from the GitHub API
func (c *GitHubClient) GetUserProfile(ctx context.Context, accessToken string) (*UserProfile, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: accessToken},
	)
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("invalid access token")
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	profile := &UserProfile{
		ID:        user.GetID(),
		Login:     user.GetLogin(),
		Email:     user.GetEmail(),
		Name:      user.GetName(),
		AvatarURL: user.GetAvatarURL(),
	}

	// The profile email may be hidden; fall back to the primary verified
	// email from the emails endpoint.
	if profile.Email == "" {
		emails, _, err := client.Users.ListEmails(ctx, nil)
		if err == nil {
			for _, email := range emails {
				if email.GetPrimary() && email.GetVerified() {
					profile.Email = email.GetEmail()
					break
				}
			}
		}
	}

	return profile, nil
}
