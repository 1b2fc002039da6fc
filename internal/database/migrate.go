package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies every pending goose migration embedded in the binary.
// It returns the schema version after the run.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect(MigrationsDialect); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}

	if err := goose.UpContext(ctx, db, MigrationsDir); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToReadVersion, err)
	}

	slog.Default().Info(LogMsgMigrationsApplied, "version", version)
	return version, nil
}
