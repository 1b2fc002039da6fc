package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/leveling"
	"github.com/mt2web/mt2web/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

// hashLockKey creates a consistent int64 hash of namespace + key for advisory locking
func hashLockKey(namespace, key string) int64 {
	h := sha256.Sum256([]byte(namespace + HashSeparator + key))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64) //nolint:gosec // masked to 63 bits
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation
}

// ---- Row mappers ----

func scanCharacter(row scanner) (*domain.Character, error) {
	var c domain.Character
	var equipment []byte
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Level,
		&c.Experience.Current,
		&c.HP.Current,
		&c.HP.Max,
		&c.Stamina.Current,
		&c.Stamina.Max,
		&c.Attack,
		&c.Defense,
		&c.Money.Cash,
		&c.Money.Bank,
		&c.DuelsWon,
		&c.DuelsLost,
		&c.Position.X,
		&c.Position.Y,
		&equipment,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Equipment, err = domain.UnmarshalEquipment(equipment)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal equipment: %w", err)
	}

	// Required and percentage are derived from level, never stored
	c.Experience.Required = leveling.RequiredExperience(c.Level)
	c.Experience.Percentage = leveling.ExperiencePercentage(c.Experience.Current, c.Level)
	return &c, nil
}

func scanCharacters(rows pgx.Rows) ([]domain.Character, error) {
	defer rows.Close()

	characters := []domain.Character{}
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		characters = append(characters, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return characters, nil
}

func scanWork(row scanner) (*domain.Work, error) {
	var w domain.Work
	var target, opponent []byte
	var travelMs, jobMs int64
	err := row.Scan(
		&w.ID,
		&w.CharacterID,
		&w.Kind,
		&w.Type,
		&target,
		&opponent,
		&travelMs,
		&jobMs,
		&w.TravelEndTime,
		&w.JobEndTime,
		&w.StaminaCost,
		&w.IsInProgress,
		&w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	w.TravelDuration = time.Duration(travelMs) * time.Millisecond
	w.JobDuration = time.Duration(jobMs) * time.Millisecond

	if w.Target, err = domain.UnmarshalMobSnapshot(target); err != nil {
		return nil, fmt.Errorf("failed to unmarshal work target: %w", err)
	}

	// A broken opponent payload is surfaced at completion, not here
	if w.Opponent, err = domain.UnmarshalOpponentSnapshot(opponent); err != nil {
		logger.Info("Unreadable opponent snapshot", "work_id", w.ID, "error", err)
		w.Opponent = nil
	}
	return &w, nil
}

func scanWorks(rows pgx.Rows) ([]domain.Work, error) {
	defer rows.Close()

	works := []domain.Work{}
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work: %w", err)
		}
		works = append(works, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return works, nil
}

func scanReport(row scanner) (*domain.Report, error) {
	var r domain.Report
	var stats []byte
	err := row.Scan(
		&r.ID,
		&r.CharacterID,
		&r.Type,
		&r.Subject,
		&r.Content,
		&r.Read,
		&stats,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if r.Stats, err = domain.UnmarshalCombatStats(stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report stats: %w", err)
	}
	return &r, nil
}

// ---- Shared statements, usable on the pool or inside a transaction ----

func getCharacter(ctx context.Context, q querier, query string, arg any) (*domain.Character, error) {
	c, err := scanCharacter(q.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCharacterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return c, nil
}

func updateCharacter(ctx context.Context, q querier, c *domain.Character) error {
	equipment, err := domain.MarshalEquipment(c.Equipment)
	if err != nil {
		return fmt.Errorf("failed to marshal equipment: %w", err)
	}

	c.UpdatedAt = time.Now().UTC()
	tag, err := q.Exec(ctx, SQLUpdateCharacter,
		c.ID,
		c.Level,
		c.Experience.Current,
		c.HP.Current,
		c.HP.Max,
		c.Stamina.Current,
		c.Stamina.Max,
		c.Attack,
		c.Defense,
		c.Money.Cash,
		c.Money.Bank,
		c.DuelsWon,
		c.DuelsLost,
		c.Position.X,
		c.Position.Y,
		equipment,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

func listWorks(ctx context.Context, q querier, characterID any) ([]domain.Work, error) {
	rows, err := q.Query(ctx, SQLListWorks, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query works: %w", err)
	}
	return scanWorks(rows)
}

func updateWork(ctx context.Context, q querier, w *domain.Work) error {
	tag, err := q.Exec(ctx, SQLUpdateWork,
		w.ID,
		w.Type,
		w.TravelDuration.Milliseconds(),
		w.JobDuration.Milliseconds(),
		w.TravelEndTime,
		w.JobEndTime,
		w.StaminaCost,
		w.IsInProgress,
	)
	if err != nil {
		return fmt.Errorf("failed to update work: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWorkNotFound
	}
	return nil
}

func insertReport(ctx context.Context, q querier, r *domain.Report) error {
	stats, err := domain.MarshalCombatStats(r.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal report stats: %w", err)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err = q.Exec(ctx, SQLInsertReport,
		r.ID,
		r.CharacterID,
		r.Type,
		r.Subject,
		r.Content,
		r.Read,
		stats,
		r.CreatedAt,
	)
	if isForeignKeyViolation(err) {
		return domain.ErrCharacterNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}
