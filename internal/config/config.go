package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL    = "http://localhost:8080"
	defaultHost          = "0.0.0.0"
	defaultPort          = "3000"
	defaultSessionDBPath = "./gigdesk.db"
	defaultSessionTTL    = "168h"
	defaultAPITimeout    = "15s"
	defaultSessionSecret = "change-me-session-secret"
	defaultCookieSecure  = "false"
)

type Config struct {
	AppEnv        string
	APIBaseURL    string
	Host          string
	Port          string
	SessionSecret string
	SessionDBPath string
	SessionTTL    time.Duration
	APITimeout    time.Duration
	CookieSecure  bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	c := &Config{
		AppEnv:        strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "dev"))),
		APIBaseURL:    getEnv("API_BASE_URL", defaultAPIBaseURL),
		Host:          getEnv("HOST", defaultHost),
		Port:          getEnv("PORT", defaultPort),
		SessionSecret: strings.TrimSpace(getEnv("SESSION_SECRET", defaultSessionSecret)),
		SessionDBPath: getEnv("SESSION_DB_PATH", defaultSessionDBPath),
		CookieSecure:  parseBoolEnv("COOKIE_SECURE", defaultCookieSecure),
	}

	var err error
	c.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	c.APITimeout, err = parseDurationEnv("API_TIMEOUT", defaultAPITimeout)
	if err != nil {
		return nil, err
	}

	if err := validate(c); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func validate(c *Config) error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be > 0")
	}
	if IsProdLike(c.AppEnv) {
		if c.SessionSecret == "" || c.SessionSecret == defaultSessionSecret {
			return fmt.Errorf("in prod/release SESSION_SECRET must be set and not default")
		}
		if !c.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
	}
	return nil
}

// IsProdLike reports whether the environment name demands hardened defaults.
func IsProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
