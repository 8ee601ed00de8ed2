package auth

import (
	"fmt"
	"time"

	"seating-planner-backend/internal/config"
	"seating-planner-backend/internal/database/models"
)

const minPasswordLength = 6

// AuthConfig holds the identity provider settings
type AuthConfig struct {
	JWTSecret            string
	Issuer               string
	TokenTTL             time.Duration
	SessionTTL           time.Duration
	DefaultRole          models.Role
	AllowRoleSelfService bool
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:            cfg.JWTSecret,
		Issuer:               "seating-planner-backend",
		TokenTTL:             cfg.TokenTTL,
		SessionTTL:           cfg.SessionTTL,
		DefaultRole:          models.Role(cfg.DefaultRole),
		AllowRoleSelfService: cfg.AllowRoleSelfService,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	if c.SessionTTL < c.TokenTTL {
		return fmt.Errorf("session TTL must not be shorter than token TTL")
	}

	if !c.DefaultRole.IsValid() {
		return fmt.Errorf("default role %q is not a known role", c.DefaultRole)
	}

	return nil
}
