// Package config loads process-wide configuration once at startup. The
// resulting Config is immutable afterwards and injected by reference into the
// services that need it.
package config

import (
	"fmt"

	"github.com/skillsenselab/fintrack/internal/auth/token"
	"github.com/skillsenselab/fintrack/internal/database"
	"github.com/skillsenselab/fintrack/internal/logger"
	"github.com/skillsenselab/fintrack/internal/server"
)

// Config is the root configuration for the service.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Database database.Config `mapstructure:"database"`
	Auth     AuthConfig      `mapstructure:"auth"`
	Log      logger.Config   `mapstructure:"log"`
}

// AuthConfig groups the token signing configuration with password hashing.
type AuthConfig struct {
	token.Config `mapstructure:",squash"`

	// BcryptCost is the bcrypt work factor (default: 10).
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// ApplyDefaults fills zero-valued fields across all sections.
func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Auth.Config.ApplyDefaults()
	c.Log.ApplyDefaults()
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 10
	}
}

// Validate checks all sections.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Auth.Config.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
