package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Session   SessionConfig   `yaml:"session"`
	Auth      AuthConfig      `yaml:"auth"`
	API       APIConfig       `yaml:"api"`
	Storage   StorageConfig   `yaml:"storage"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Demo      DemoConfig      `yaml:"demo"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SessionConfig holds cookie session settings.
type SessionConfig struct {
	Secret      string        `yaml:"secret"       env:"SESSION_SECRET"       env-default:"alfred-development-session-secret-change-me"`
	CookieName  string        `yaml:"cookie_name"  env:"SESSION_COOKIE_NAME"  env-default:"alfred.sid"`
	MaxAge      time.Duration `yaml:"max_age"      env:"SESSION_MAX_AGE"      env-default:"8h"`
	CheckPeriod time.Duration `yaml:"check_period" env:"SESSION_CHECK_PERIOD" env-default:"24h"`
	Secure      bool          `yaml:"secure"       env:"SESSION_SECURE"       env-default:"false"`
	Store       string        `yaml:"store"        env:"SESSION_STORE"        env-default:"memory"`
	Redis       RedisConfig   `yaml:"redis"`
}

// RedisConfig holds the connection settings of the shared session store.
type RedisConfig struct {
	Addr      string `yaml:"addr"       env:"SESSION_REDIS_ADDR"       env-default:"localhost:6379"`
	Password  string `yaml:"password"   env:"SESSION_REDIS_PASSWORD"`
	DB        int    `yaml:"db"         env:"SESSION_REDIS_DB"         env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env:"SESSION_REDIS_KEY_PREFIX" env-default:"alfred:session:"`
}

// AuthConfig holds login settings.
type AuthConfig struct {
	PasswordMode string `yaml:"password_mode" env:"AUTH_PASSWORD_MODE" env-default:"plain"`
	BcryptCost   int    `yaml:"bcrypt_cost"   env:"AUTH_BCRYPT_COST"   env-default:"10"`
	Policy       string `yaml:"policy"        env:"AUTH_POLICY"        env-default:"demo"`
	DemoUsername string `yaml:"demo_username" env:"AUTH_DEMO_USERNAME" env-default:"demo"`
	Issuer       string `yaml:"issuer"        env:"AUTH_ISSUER"        env-default:"alfred"`
}

// APIConfig toggles stricter resource contracts.
type APIConfig struct {
	StrictPatch      bool `yaml:"strict_patch"      env:"API_STRICT_PATCH"      env-default:"false"`
	EnforceOwnership bool `yaml:"enforce_ownership" env:"API_ENFORCE_OWNERSHIP" env-default:"false"`
}

// Storage drivers and session stores.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// StorageConfig selects the record storage backend.
type StorageConfig struct {
	Driver   string         `yaml:"driver"   env:"STORAGE_DRIVER" env-default:"memory"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// RateLimitConfig holds login throttling settings.
type RateLimitConfig struct {
	LoginPerMinute int           `yaml:"login_per_minute" env:"RATELIMIT_LOGIN_PER_MINUTE" env-default:"20"`
	CleanupPeriod  time.Duration `yaml:"cleanup_period"   env:"RATELIMIT_CLEANUP_PERIOD"   env-default:"5m"`
}

// DemoConfig controls the demo data seeded on boot.
type DemoConfig struct {
	Seed bool `yaml:"seed" env:"DEMO_SEED" env-default:"true"`
}
