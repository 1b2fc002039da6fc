package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mt2web/mt2web/internal/logger"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

const (
	minJWTSecretLength = 32
	envProd            = "prod"
)

// Placeholder values shipped in the example .env
var placeholderSecrets = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"API_KEY":     "generate_with_openssl_rand_hex_32",
	"JWT_SECRET":  "generate_with_openssl_rand_hex_32",
}

// Validate checks the loaded settings against what the game server can run with.
// Settings that would break startup or the work queue are returned joined as one
// error. Settings that run but are unsafe come back as warnings.
func (c *Config) Validate() ([]string, error) {
	var errs []error

	if c.EnvSchemaVersion != "" && c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated",
			ExpectedEnvSchemaVersion, c.EnvSchemaVersion))
	}
	if c.LogFormat != logger.LogFormatText && c.LogFormat != logger.LogFormatJSON {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", logger.LogFormatText, logger.LogFormatJSON, c.LogFormat))
	}
	if c.MaxTravelTime <= 0 {
		errs = append(errs, fmt.Errorf("MAX_TRAVEL_TIME must be positive, got %v", c.MaxTravelTime))
	}
	if c.DBMaxConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be at least 1, got %d", c.DBMaxConns))
	}
	if c.DBLockTimeout < 0 {
		errs = append(errs, fmt.Errorf("DB_LOCK_TIMEOUT must not be negative, got %v", c.DBLockTimeout))
	}
	if c.WorkerCount < 1 || c.WorkerQueueSize < 1 {
		errs = append(errs, fmt.Errorf("WORKER_COUNT and WORKER_QUEUE_SIZE must be at least 1, got %d and %d",
			c.WorkerCount, c.WorkerQueueSize))
	}
	if c.CharacterCacheSize < 1 {
		errs = append(errs, fmt.Errorf("CHARACTER_CACHE_SIZE must be at least 1, got %d", c.CharacterCacheSize))
	}
	if c.EventMaxRetries < 0 {
		errs = append(errs, fmt.Errorf("EVENT_MAX_RETRIES must not be negative, got %d", c.EventMaxRetries))
	}
	if info, err := os.Stat(c.MobCatalogPath); err != nil {
		errs = append(errs, fmt.Errorf("MOB_CATALOG_PATH: %w", err))
	} else if info.IsDir() {
		errs = append(errs, fmt.Errorf("MOB_CATALOG_PATH %s is a directory", c.MobCatalogPath))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c.warnings(), nil
}

func (c *Config) warnings() []string {
	var warnings []string

	if c.EnvSchemaVersion == "" {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is not set (expected %s)", ExpectedEnvSchemaVersion))
	}

	secrets := map[string]string{"DB_PASSWORD": c.DBPassword, "API_KEY": c.APIKey, "JWT_SECRET": c.JWTSecret}
	for _, name := range []string{"DB_PASSWORD", "API_KEY", "JWT_SECRET"} {
		if secrets[name] == placeholderSecrets[name] {
			warnings = append(warnings, name+" appears to be using the example value - generate one with: openssl rand -hex 32")
		}
	}

	if len(c.JWTSecret) < minJWTSecretLength {
		warnings = append(warnings, fmt.Sprintf("JWT_SECRET is shorter than %d bytes - player tokens are easy to forge", minJWTSecretLength))
	}

	if c.Environment == envProd {
		if c.DBPassword == "postgres" {
			warnings = append(warnings, "DB_PASSWORD is the postgres default in prod")
		}
		if len(c.WSAllowedOrigins) == 0 {
			warnings = append(warnings, "WS_ALLOWED_ORIGINS is empty - the live feed accepts any origin")
		}
	}

	if c.EventMaxRetries == 0 {
		warnings = append(warnings, "EVENT_MAX_RETRIES is 0 - a failed feed publish goes straight to the dead-letter file")
	}

	return warnings
}
