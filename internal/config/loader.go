package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that feed them.
// The token secret names match the upstream deployment environment.
var envBindings = map[string][]string{
	"server.host":            {"HOST"},
	"server.port":            {"PORT"},
	"database.dsn":           {"DATABASE_DSN", "DATABASE_URL"},
	"database.auto_migrate":  {"DB_AUTO_MIGRATE"},
	"database.log_level":     {"DB_LOG_LEVEL"},
	"auth.access_secret":     {"JWT_SECRET", "ACCESS_TOKEN_SECRET"},
	"auth.refresh_secret":    {"JWT_REFRESH_SECRET", "REFRESH_TOKEN_SECRET"},
	"auth.access_token_ttl":  {"ACCESS_TOKEN_TTL"},
	"auth.refresh_token_ttl": {"REFRESH_TOKEN_TTL"},
	"auth.bcrypt_cost":       {"BCRYPT_COST"},
	"log.level":              {"LOG_LEVEL"},
	"log.format":             {"LOG_FORMAT"},
}

// LoaderOption customizes Load.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	envFile string
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.envFile = path }
}

// Load builds the Config from an optional .env file and the process
// environment, applies defaults, and validates the result.
func Load(opts ...LoaderOption) (*Config, error) {
	lc := loaderConfig{envFile: ".env"}
	for _, opt := range opts {
		opt(&lc)
	}

	if _, err := os.Stat(lc.envFile); err == nil {
		if err := godotenv.Load(lc.envFile); err != nil {
			return nil, fmt.Errorf("config: load env file %s: %w", lc.envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
