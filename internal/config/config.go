package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort           = "8080"
	defaultBackendURL     = "http://localhost:5000"
	defaultBackendTimeout = "15s"
	defaultSessionSecret  = "change-me-session-secret"
	defaultSessionTTL     = "24h"
	defaultSessionStore   = StoreDB
	defaultDatabaseURL    = "tattooparlor.db"
	defaultRedisAddr      = "localhost:6379"
	defaultTimezone       = "Local"
	defaultSearchDebounce = "300ms"
	defaultLogLevel       = "info"

	StoreDB    = "db"
	StoreRedis = "redis"
)

type Config struct {
	AppEnv         string
	Port           string
	BackendBaseURL string
	BackendTimeout time.Duration
	SessionSecret  string
	SessionTTL     time.Duration
	SessionStore   string
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	Timezone       *time.Location
	SearchDebounce time.Duration
	LogLevel       string
	CORSOrigins    []string
	MetricsToken   string
}

// Load reads the configuration from the environment. Call godotenv first
// if a .env file should be honoured.
func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.BackendBaseURL = strings.TrimRight(strings.TrimSpace(getEnv("BACKEND_BASE_URL", defaultBackendURL)), "/")
	cfg.SessionSecret = strings.TrimSpace(getEnv("SESSION_SECRET", defaultSessionSecret))
	cfg.SessionStore = strings.ToLower(strings.TrimSpace(getEnv("SESSION_STORE", defaultSessionStore)))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.RedisAddr = strings.TrimSpace(getEnv("REDIS_ADDR", defaultRedisAddr))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.LogLevel = strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel))
	cfg.CORSOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))
	cfg.MetricsToken = strings.TrimSpace(os.Getenv("METRICS_TOKEN"))

	var err error
	cfg.BackendTimeout, err = parseDurationEnv("BACKEND_TIMEOUT", defaultBackendTimeout)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.SearchDebounce, err = parseDurationEnv("SEARCH_DEBOUNCE", defaultSearchDebounce)
	if err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(getEnv("PARLOR_TIMEZONE", defaultTimezone))
	cfg.Timezone, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid PARLOR_TIMEZONE value %q: %w", tz, err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.BackendBaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL must not be empty")
	}
	if !strings.HasPrefix(cfg.BackendBaseURL, "http://") && !strings.HasPrefix(cfg.BackendBaseURL, "https://") {
		return fmt.Errorf("BACKEND_BASE_URL must start with http:// or https://")
	}
	if cfg.BackendTimeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be > 0")
	}
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.SearchDebounce <= 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE must be > 0")
	}
	switch cfg.SessionStore {
	case StoreDB:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must not be empty when SESSION_STORE=db")
		}
	case StoreRedis:
		if cfg.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR must not be empty when SESSION_STORE=redis")
		}
	default:
		return fmt.Errorf("SESSION_STORE must be one of: db, redis")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.SessionSecret, defaultSessionSecret) {
			return fmt.Errorf("in prod/release SESSION_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.BackendBaseURL, defaultBackendURL) {
			return fmt.Errorf("in prod/release BACKEND_BASE_URL must be set and not default")
		}
	}

	return nil
}

// IsProd reports whether the app runs in a production-like environment.
func (c *Config) IsProd() bool {
	return isProdLike(c.AppEnv)
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
