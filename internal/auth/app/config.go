package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
)

type Config struct {
	SessionSecret   string           // Required: HMAC secret shared by every runtime
	SessionTTL      time.Duration    // Session lifetime (default: 336h)
	SessionBackend  sessionx.Backend // Issuer signer backend: native, edge, auto (default: auto)
	CookieName      string           // Session cookie name (default: session)
	GatewayPrefixes []string         // Path prefixes guarded at the edge (default: /app/)
	LoginPath       string           // Redirect target for rejected gateway requests (default: /login)

	DatabaseFile        string        // Path to SQLite database file (default: goalpost.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	// backendErr keeps a bad SESSION_BACKEND for Validate.
	backendErr error
}

func LoadConfig() Config {
	cfg := Config{
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		SessionTTL:      getEnvDurationOrDefault("SESSION_TTL", sessionx.DefaultTTL),
		CookieName:      getEnvOrDefault("SESSION_COOKIE_NAME", "session"),
		GatewayPrefixes: splitList(getEnvOrDefault("GATEWAY_PREFIXES", "/app/")),
		LoginPath:       getEnvOrDefault("LOGIN_PATH", "/login"),

		DatabaseFile:        getEnvOrDefault("AUTH_DATABASE_FILE", "goalpost.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	cfg.SessionBackend, cfg.backendErr = sessionx.ParseBackend(os.Getenv("SESSION_BACKEND"))

	return cfg
}

// Validate reports configuration the service must not start with.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.SessionSecret) == "" {
		errs = append(errs, fmt.Errorf("SESSION_SECRET: %w", sessionx.ErrMissingSecret))
	}
	if c.SessionTTL < time.Second {
		errs = append(errs, fmt.Errorf("SESSION_TTL: %w", sessionx.ErrInvalidTTL))
	}
	if c.backendErr != nil {
		errs = append(errs, fmt.Errorf("SESSION_BACKEND: %w", c.backendErr))
	}
	for _, p := range c.GatewayPrefixes {
		if !strings.HasPrefix(p, "/") || p == "/" {
			errs = append(errs, fmt.Errorf("GATEWAY_PREFIXES: %q must be a path below /", p))
		}
	}
	if !strings.HasPrefix(c.LoginPath, "/") {
		errs = append(errs, fmt.Errorf("LOGIN_PATH: %q must be an absolute path", c.LoginPath))
	}

	return errors.Join(errs...)
}

// SecureCookies is false only in dev, where the service runs on plain http.
func (c Config) SecureCookies() bool {
	return c.Env != "dev"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

// splitList parses a comma separated list, dropping blanks and duplicates.
func splitList(s string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}
