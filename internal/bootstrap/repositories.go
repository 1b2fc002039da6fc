package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mt2web/mt2web/internal/database/postgres"
)

// Repositories holds all repository implementations used by the application.
// Works is concrete because it also opens the per-character transactions the
// character service needs.
type Repositories struct {
	Characters *postgres.CharacterRepository
	Works      *postgres.WorkRepository
	Reports    *postgres.ReportRepository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Characters: postgres.NewCharacterRepository(dbPool),
		Works:      postgres.NewWorkRepository(dbPool),
		Reports:    postgres.NewReportRepository(dbPool),
	}
}
