package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.CORS.validate(); err != nil {
		return fmt.Errorf("cors: %w", err)
	}

	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	if c.RateLimit.LoginPerMinute < 0 {
		return fmt.Errorf("ratelimit.login_per_minute must be >= 0 (got %d)", c.RateLimit.LoginPerMinute)
	}

	return nil
}

func (c *CORSConfig) validate() error {
	if !c.AllowCredentials {
		return nil
	}
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if strings.TrimSpace(o) == "*" {
			return fmt.Errorf("allowed_origins must list explicit origins when allow_credentials is set")
		}
	}
	return nil
}

func (s *SessionConfig) validate() error {
	if len(s.Secret) < 32 {
		return fmt.Errorf("secret must be at least 32 characters (got %d)", len(s.Secret))
	}
	if s.CookieName == "" {
		return fmt.Errorf("cookie_name is required")
	}
	if s.MaxAge <= 0 {
		return fmt.Errorf("max_age must be > 0 (got %s)", s.MaxAge)
	}
	if s.CheckPeriod <= 0 {
		return fmt.Errorf("check_period must be > 0 (got %s)", s.CheckPeriod)
	}
	if !slices.Contains([]string{SessionStoreMemory, SessionStoreRedis}, s.Store) {
		return fmt.Errorf("store must be memory or redis (got %q)", s.Store)
	}
	if s.Store == SessionStoreRedis && s.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when store is redis")
	}
	return nil
}

func (a *AuthConfig) validate() error {
	if !slices.Contains([]string{"plain", "bcrypt"}, a.PasswordMode) {
		return fmt.Errorf("password_mode must be plain or bcrypt (got %q)", a.PasswordMode)
	}
	if !slices.Contains([]string{"demo", "strict"}, a.Policy) {
		return fmt.Errorf("policy must be demo or strict (got %q)", a.Policy)
	}
	if a.Policy == "demo" && a.DemoUsername == "" {
		return fmt.Errorf("demo_username is required for the demo policy")
	}
	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case StorageMemory:
		return nil
	case StoragePostgres:
		if s.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
		if s.Database.MinConns > s.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", s.Database.MinConns, s.Database.MaxConns)
		}
		return nil
	default:
		return fmt.Errorf("driver must be memory or postgres (got %q)", s.Driver)
	}
}
