package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/repository"
)

// CharacterRepository implements repository.Character for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// CreateCharacter inserts a new character
func (r *CharacterRepository) CreateCharacter(ctx context.Context, c *domain.Character) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	equipment, err := domain.MarshalEquipment(c.Equipment)
	if err != nil {
		return fmt.Errorf("failed to marshal equipment: %w", err)
	}

	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now

	_, err = r.db.Exec(ctx, SQLInsertCharacter,
		c.ID,
		c.Name,
		domain.FoldName(c.Name),
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
		c.CreatedAt,
		c.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrNameTaken, c.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to insert character: %w", err)
	}
	return nil
}

// GetCharacter retrieves a character by ID
func (r *CharacterRepository) GetCharacter(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	return getCharacter(ctx, r.db, SQLSelectCharacterByID, id)
}

// GetCharacterByName retrieves a character by its exact name
func (r *CharacterRepository) GetCharacterByName(ctx context.Context, name string) (*domain.Character, error) {
	return getCharacter(ctx, r.db, SQLSelectCharacterByName, name)
}

// FindCharactersByFoldedName returns every character whose folded name matches
func (r *CharacterRepository) FindCharactersByFoldedName(ctx context.Context, folded string) ([]domain.Character, error) {
	rows, err := r.db.Query(ctx, SQLSelectCharactersByFoldedName, folded)
	if err != nil {
		return nil, fmt.Errorf("failed to query characters by name: %w", err)
	}
	return scanCharacters(rows)
}

// ListCharacters returns characters ranked by level then experience
func (r *CharacterRepository) ListCharacters(ctx context.Context, limit, offset int) ([]domain.Character, error) {
	rows, err := r.db.Query(ctx, SQLListCharacters, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query characters: %w", err)
	}
	return scanCharacters(rows)
}

// UpdateCharacter persists every mutable field of the character
func (r *CharacterRepository) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	return updateCharacter(ctx, r.db, c)
}

// DeleteCharacter removes a character together with its works and reports
func (r *CharacterRepository) DeleteCharacter(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, SQLDeleteCharacter, id)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// IncrementDuelCounters adds to the character's duel tallies in a single statement
func (r *CharacterRepository) IncrementDuelCounters(ctx context.Context, id uuid.UUID, won, lost int) error {
	tag, err := r.db.Exec(ctx, SQLIncrementDuelCounters, id, won, lost)
	if err != nil {
		return fmt.Errorf("failed to increment duel counters: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

var _ repository.Character = (*CharacterRepository)(nil)
