package auth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AuthConfig holds authentication configuration for interactive callers
type AuthConfig struct {
	JWTSecret       string         `yaml:"jwt_secret"`
	TokenTTLMinutes int            `yaml:"token_ttl_minutes"`
	RedirectURL     string         `yaml:"redirect_url"`
	GitHub          ProviderConfig `yaml:"github"`
}

// ProviderConfig holds the OAuth app credentials for a provider
type ProviderConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// LoadAuthConfig loads authentication configuration from a YAML file with
// environment variable fallbacks
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	config := &AuthConfig{
		TokenTTLMinutes: 60,
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("error reading auth config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing auth config file: %w", err)
		}
	}

	// Environment variables take precedence over the file
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.JWTSecret = v
	}
	if v := os.Getenv("GITHUB_CLIENT_ID"); v != "" {
		config.GitHub.ClientID = v
	}
	if v := os.Getenv("GITHUB_CLIENT_SECRET"); v != "" {
		config.GitHub.ClientSecret = v
	}
	if v := os.Getenv("AUTH_REDIRECT_URL"); v != "" {
		config.RedirectURL = v
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}

	return config, nil
}
