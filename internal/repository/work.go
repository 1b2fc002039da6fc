package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mt2web/mt2web/internal/domain"
)

// Work defines the interface for work queue data access
type Work interface {
	GetWork(ctx context.Context, id uuid.UUID) (*domain.Work, error)
	ListWorks(ctx context.Context, characterID uuid.UUID) ([]domain.Work, error)
	UpdateWork(ctx context.Context, w *domain.Work) error

	// BeginWorkTx opens a transaction that holds the character's queue lock
	// until Commit or Rollback.
	BeginWorkTx(ctx context.Context, characterID uuid.UUID) (WorkTx, error)
}

// Tx is the commit/rollback half of a store transaction
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// WorkTx extends Tx with the read-modify-write operations of the work lifecycle.
// All calls operate on the character the transaction was opened for.
type WorkTx interface {
	Tx // Commit, Rollback

	GetCharacterForUpdate(ctx context.Context) (*domain.Character, error)
	UpdateCharacter(ctx context.Context, c *domain.Character) error

	// ListWorks returns the queue in creation order
	ListWorks(ctx context.Context) ([]domain.Work, error)
	CreateWork(ctx context.Context, w *domain.Work) error
	UpdateWork(ctx context.Context, w *domain.Work) error
	DeleteWork(ctx context.Context, id uuid.UUID) error

	CreateReport(ctx context.Context, r *domain.Report) error
}
