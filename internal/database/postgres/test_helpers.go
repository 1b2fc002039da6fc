package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mt2web/mt2web/internal/database"
	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/leveling"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	code := run(m)
	os.Exit(code)
}

func run(m *testing.M) int {
	flag.Parse()
	if testing.Short() {
		return m.Run()
	}

	ctx := context.Background()
	connStr, terminate := setupContainer(ctx)
	defer terminate()

	if connStr != "" {
		pool, err := database.NewPool(ctx, database.PoolConfig{
			ConnString:      connStr,
			MaxConns:        10,
			MaxConnIdleTime: time.Minute,
			MaxConnLifetime: 5 * time.Minute,
		})
		if err != nil {
			fmt.Printf("WARNING: Failed to connect to test database: %v\n", err)
		} else if _, err := database.Migrate(ctx, pool); err != nil {
			fmt.Printf("WARNING: Failed to apply migrations: %v\n", err)
			pool.Close()
		} else {
			testPool = pool
			defer pool.Close()
		}
	}

	return m.Run()
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

// requireDB skips the test when no database container is available
func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	return testPool
}

// newTestCharacter returns a fresh level 1 character with a unique name
func newTestCharacter(prefix string) *domain.Character {
	c := &domain.Character{
		ID:    uuid.New(),
		Name:  fmt.Sprintf("%s%s", prefix, uuid.NewString()[:6]),
		Level: leveling.MinLevel,
	}
	leveling.NewCharacterStats(c)
	return c
}
