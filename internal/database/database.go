package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolConfig describes the pool behind the character, work and report stores
type PoolConfig struct {
	ConnString      string
	ApplicationName string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
	// LockTimeout bounds how long a work transaction waits on a character row
	// held by another request. Zero leaves the server default.
	LockTimeout time.Duration
}

// pgxConfig converts c into a pgxpool config without connecting
func (c PoolConfig) pgxConfig() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(c.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := c.MaxConns
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	if maxConns < DefaultMinConnections {
		maxConns = DefaultMinConnections
	}
	config.MaxConns = int32(maxConns) //nolint:gosec // clamped above
	config.MinConns = DefaultMinConnections
	config.MaxConnLifetime = c.MaxConnLifetime
	config.MaxConnIdleTime = c.MaxConnIdleTime

	params := config.ConnConfig.RuntimeParams
	params[RuntimeParamApplicationName] = DefaultApplicationName
	if c.ApplicationName != "" {
		params[RuntimeParamApplicationName] = c.ApplicationName
	}
	if c.LockTimeout > 0 {
		params[RuntimeParamLockTimeout] = strconv.FormatInt(c.LockTimeout.Milliseconds(), 10)
	}
	return config, nil
}

// NewPool connects a PostgreSQL pool and verifies it with a ping
func NewPool(ctx context.Context, c PoolConfig) (*pgxpool.Pool, error) {
	config, err := c.pgxConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", config.MaxConns,
		"application_name", config.ConnConfig.RuntimeParams[RuntimeParamApplicationName])
	return pool, nil
}
