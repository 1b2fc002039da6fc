package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mt2web/mt2web/internal/domain"
)

// Character defines the interface for character data access
type Character interface {
	CreateCharacter(ctx context.Context, c *domain.Character) error
	GetCharacter(ctx context.Context, id uuid.UUID) (*domain.Character, error)
	// GetCharacterByName matches the name exactly
	GetCharacterByName(ctx context.Context, name string) (*domain.Character, error)
	// FindCharactersByFoldedName returns characters whose case-folded name equals folded
	FindCharactersByFoldedName(ctx context.Context, folded string) ([]domain.Character, error)
	ListCharacters(ctx context.Context, limit, offset int) ([]domain.Character, error)
	UpdateCharacter(ctx context.Context, c *domain.Character) error
	DeleteCharacter(ctx context.Context, id uuid.UUID) error
	IncrementDuelCounters(ctx context.Context, id uuid.UUID, won, lost int) error
}
