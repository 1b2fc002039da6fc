package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns settings that pass Validate without warnings
func validConfig(t *testing.T) *Config {
	t.Helper()
	catalog := filepath.Join(t.TempDir(), "mobs.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte("version: test\nmobs: []\n"), 0o600))

	return &Config{
		EnvSchemaVersion:   ExpectedEnvSchemaVersion,
		LogFormat:          "text",
		Environment:        "dev",
		DBPassword:         "s3cret",
		DBMaxConns:         20,
		DBLockTimeout:      5 * time.Second,
		APIKey:             "admin-key",
		JWTSecret:          "0123456789abcdef0123456789abcdef",
		MobCatalogPath:     catalog,
		TravelSpeed:        10,
		MaxTravelTime:      2 * time.Minute,
		CharacterCacheSize: 1024,
		WorkerCount:        4,
		WorkerQueueSize:    100,
		EventMaxRetries:    5,
	}
}

func TestValidate_Clean(t *testing.T) {
	warnings, err := validConfig(t).Validate()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"Schema Mismatch", func(c *Config) { c.EnvSchemaVersion = "0.9" }, "expected 1.0, got 0.9"},
		{"Unknown Log Format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"Zero Travel Cap", func(c *Config) { c.MaxTravelTime = 0 }, "MAX_TRAVEL_TIME"},
		{"No DB Connections", func(c *Config) { c.DBMaxConns = 0 }, "DB_MAX_CONNS"},
		{"Negative Lock Timeout", func(c *Config) { c.DBLockTimeout = -time.Second }, "DB_LOCK_TIMEOUT"},
		{"No Workers", func(c *Config) { c.WorkerCount = 0 }, "WORKER_COUNT"},
		{"No Character Cache", func(c *Config) { c.CharacterCacheSize = 0 }, "CHARACTER_CACHE_SIZE"},
		{"Negative Retries", func(c *Config) { c.EventMaxRetries = -1 }, "EVENT_MAX_RETRIES"},
		{"Missing Mob Catalog", func(c *Config) { c.MobCatalogPath = filepath.Join(t.TempDir(), "nope.yaml") }, "MOB_CATALOG_PATH"},
		{"Mob Catalog Is Directory", func(c *Config) { c.MobCatalogPath = t.TempDir() }, "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			warnings, err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, warnings)
		})
	}
}

func TestValidate_JoinsEveryError(t *testing.T) {
	cfg := validConfig(t)
	cfg.DBMaxConns = 0
	cfg.WorkerQueueSize = 0

	_, err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")
	assert.Contains(t, err.Error(), "WORKER_QUEUE_SIZE")
}

func TestValidate_Warnings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		wantWarn []string
	}{
		{
			name:     "Missing Schema Version",
			mutate:   func(c *Config) { c.EnvSchemaVersion = "" },
			wantWarn: []string{"ENV_SCHEMA_VERSION is not set"},
		},
		{
			name: "Example Secrets",
			mutate: func(c *Config) {
				c.DBPassword = "change_this_secure_password"
				c.APIKey = "generate_with_openssl_rand_hex_32"
			},
			wantWarn: []string{"DB_PASSWORD appears", "API_KEY appears"},
		},
		{
			name:     "Short JWT Secret",
			mutate:   func(c *Config) { c.JWTSecret = "short" },
			wantWarn: []string{"JWT_SECRET is shorter than 32 bytes"},
		},
		{
			name: "Open Prod Deployment",
			mutate: func(c *Config) {
				c.Environment = "prod"
				c.DBPassword = "postgres"
			},
			wantWarn: []string{"postgres default in prod", "WS_ALLOWED_ORIGINS is empty"},
		},
		{
			name:     "Origins Only Matter In Prod",
			mutate:   func(c *Config) { c.WSAllowedOrigins = nil },
			wantWarn: nil,
		},
		{
			name:     "Retries Disabled",
			mutate:   func(c *Config) { c.EventMaxRetries = 0 },
			wantWarn: []string{"EVENT_MAX_RETRIES is 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			warnings, err := cfg.Validate()

			require.NoError(t, err)
			require.Len(t, warnings, len(tt.wantWarn))
			for i, want := range tt.wantWarn {
				assert.Contains(t, warnings[i], want)
			}
		})
	}
}
