package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"mt2web"`
	Version     string `env:"VERSION" envDefault:"dev"`

	EnvSchemaVersion string `env:"ENV_SCHEMA_VERSION"`

	// Database
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"mt2web"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`
	DBLockTimeout     time.Duration `env:"DB_LOCK_TIMEOUT" envDefault:"5s"` // Wait for a character row lock before failing

	// Security
	APIKey         string   `env:"API_KEY"`    // Admin API key
	JWTSecret      string   `env:"JWT_SECRET"` // HS256 secret for player tokens
	JWTIssuer      string   `env:"JWT_ISSUER" envDefault:"mt2web-auth"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
	RateLimit      int      `env:"RATE_LIMIT" envDefault:"1000"` // Requests per IP per window
	MaxBodyBytes   int64    `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// Live feed
	WSAllowedOrigins []string `env:"WS_ALLOWED_ORIGINS" envSeparator:","`

	// Game data
	MobCatalogPath string        `env:"MOB_CATALOG_PATH" envDefault:"configs/mobs.yaml"`
	TravelSpeed    float64       `env:"TRAVEL_SPEED" envDefault:"10"` // Map units per second
	MaxTravelTime  time.Duration `env:"MAX_TRAVEL_TIME" envDefault:"2m"`

	// Caching
	CharacterCacheSize int           `env:"CHARACTER_CACHE_SIZE" envDefault:"1024"`
	CharacterCacheTTL  time.Duration `env:"CHARACTER_CACHE_TTL" envDefault:"5m"`

	// Background work
	WorkerCount     int           `env:"WORKER_COUNT" envDefault:"4"`
	WorkerQueueSize int           `env:"WORKER_QUEUE_SIZE" envDefault:"100"`
	EventMaxRetries int           `env:"EVENT_MAX_RETRIES" envDefault:"5"`
	EventRetryDelay time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, errors.New("API_KEY environment variable must be set for security")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable must be set for security")
	}
	if cfg.TravelSpeed <= 0 {
		return nil, fmt.Errorf("TRAVEL_SPEED must be positive, got %v", cfg.TravelSpeed)
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// DeadLetterPath is where events that could not be delivered are appended
func (c *Config) DeadLetterPath() string {
	return c.LogDir + "/" + DeadLetterFileName
}
