package auth

import (
	"fmt"
	"time"
)

// AuthConfig holds the token-signing configuration. The secret and TTL are
// injected at construction and never mutated afterwards.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Issuer    string
}

// ValidateConfig checks the auth configuration is usable
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
