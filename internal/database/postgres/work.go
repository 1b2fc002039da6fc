package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/repository"
)

// WorkRepository implements repository.Work for PostgreSQL
type WorkRepository struct {
	db *pgxpool.Pool
}

// NewWorkRepository creates a new WorkRepository
func NewWorkRepository(db *pgxpool.Pool) *WorkRepository {
	return &WorkRepository{db: db}
}

// GetWork retrieves a single work by ID
func (r *WorkRepository) GetWork(ctx context.Context, id uuid.UUID) (*domain.Work, error) {
	w, err := scanWork(r.db.QueryRow(ctx, SQLSelectWorkByID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrWorkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work: %w", err)
	}
	return w, nil
}

// ListWorks returns the character's queue in creation order without locking it
func (r *WorkRepository) ListWorks(ctx context.Context, characterID uuid.UUID) ([]domain.Work, error) {
	return listWorks(ctx, r.db, characterID)
}

// UpdateWork persists the mutable fields of a work outside of a queue transaction
func (r *WorkRepository) UpdateWork(ctx context.Context, w *domain.Work) error {
	return updateWork(ctx, r.db, w)
}

// BeginWorkTx opens a transaction holding the character's advisory queue lock.
// The lock is released automatically at commit or rollback.
func (r *WorkRepository) BeginWorkTx(ctx context.Context, characterID uuid.UUID) (repository.WorkTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}

	lockKey := hashLockKey(LockNamespaceWorkQueue, characterID.String())
	if _, err := tx.Exec(ctx, SQLAdvisoryLock, lockKey); err != nil {
		SafeRollback(ctx, tx)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAcquireLock, err)
	}

	return &workTx{tx: tx, characterID: characterID}, nil
}

// workTx implements repository.WorkTx on top of a pgx transaction
type workTx struct {
	tx          pgx.Tx
	characterID uuid.UUID
}

func (t *workTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *workTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *workTx) GetCharacterForUpdate(ctx context.Context) (*domain.Character, error) {
	return getCharacter(ctx, t.tx, SQLSelectCharacterByIDForUpdate, t.characterID)
}

func (t *workTx) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	if c.ID != t.characterID {
		return fmt.Errorf("%w: character %s is not locked by this transaction", domain.ErrInvalidInput, c.ID)
	}
	return updateCharacter(ctx, t.tx, c)
}

func (t *workTx) ListWorks(ctx context.Context) ([]domain.Work, error) {
	return listWorks(ctx, t.tx, t.characterID)
}

func (t *workTx) CreateWork(ctx context.Context, w *domain.Work) error {
	target, err := domain.MarshalMobSnapshot(w.Target)
	if err != nil {
		return fmt.Errorf("failed to marshal work target: %w", err)
	}
	opponent, err := domain.MarshalOpponentSnapshot(w.Opponent)
	if err != nil {
		return fmt.Errorf("failed to marshal opponent snapshot: %w", err)
	}

	_, err = t.tx.Exec(ctx, SQLInsertWork,
		w.ID,
		t.characterID,
		w.Kind,
		w.Type,
		target,
		opponent,
		w.TravelDuration.Milliseconds(),
		w.JobDuration.Milliseconds(),
		w.TravelEndTime,
		w.JobEndTime,
		w.StaminaCost,
		w.IsInProgress,
		w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert work: %w", err)
	}
	return nil
}

func (t *workTx) UpdateWork(ctx context.Context, w *domain.Work) error {
	return updateWork(ctx, t.tx, w)
}

func (t *workTx) DeleteWork(ctx context.Context, id uuid.UUID) error {
	tag, err := t.tx.Exec(ctx, SQLDeleteWork, id, t.characterID)
	if err != nil {
		return fmt.Errorf("failed to delete work: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWorkNotFound
	}
	return nil
}

func (t *workTx) CreateReport(ctx context.Context, r *domain.Report) error {
	return insertReport(ctx, t.tx, r)
}

var _ repository.Work = (*WorkRepository)(nil)
