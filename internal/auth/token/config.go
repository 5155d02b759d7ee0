package token

import (
	"errors"
	"time"
)

// Config configures the token service. Access and refresh tokens are signed
// with independent secrets so a leaked key only compromises one token class.
type Config struct {
	// AccessSecret is the HMAC key for access tokens (required).
	AccessSecret string `mapstructure:"access_secret"`

	// RefreshSecret is the HMAC key for refresh tokens (required).
	RefreshSecret string `mapstructure:"refresh_secret"`

	// AccessTokenTTL is the lifetime of access tokens (default: 168h).
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`

	// RefreshTokenTTL is the lifetime of refresh tokens (default: 8h).
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`

	// Issuer is the "iss" claim (optional).
	Issuer string `mapstructure:"issuer"`
}

// ApplyDefaults fills in zero-value fields.
// The default lifetimes mirror the upstream API contract: long-lived access
// tokens and shorter-lived refresh tokens, the reverse of the usual scheme.
func (c *Config) ApplyDefaults() {
	if c.AccessTokenTTL == 0 {
		c.AccessTokenTTL = 7 * 24 * time.Hour
	}
	if c.RefreshTokenTTL == 0 {
		c.RefreshTokenTTL = 8 * time.Hour
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.AccessSecret == "" {
		return errors.New("token: access secret is required")
	}
	if c.RefreshSecret == "" {
		return errors.New("token: refresh secret is required")
	}
	if c.AccessSecret == c.RefreshSecret {
		return errors.New("token: access and refresh secrets must differ")
	}
	if c.AccessTokenTTL < 0 || c.RefreshTokenTTL < 0 {
		return errors.New("token: TTLs must be non-negative")
	}
	return nil
}
