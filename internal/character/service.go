package character

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mt2web/mt2web/internal/concurrency"
	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/leveling"
	"github.com/mt2web/mt2web/internal/logger"
	"github.com/mt2web/mt2web/internal/repository"
)

// TxBeginner opens a transaction holding a character's queue lock. Character
// mutations go through it so they serialize with work resolution.
type TxBeginner interface {
	BeginWorkTx(ctx context.Context, characterID uuid.UUID) (repository.WorkTx, error)
}

// Service defines the character operations outside the work lifecycle
type Service interface {
	Create(ctx context.Context, name string) (*domain.Character, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Character, error)
	// GetByName tries the exact name first, then a case-insensitive match
	GetByName(ctx context.Context, name string) (*domain.Character, error)
	List(ctx context.Context, limit, offset int) ([]domain.Character, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Deposit(ctx context.Context, id uuid.UUID, amount int64) (*domain.Character, error)
	Withdraw(ctx context.Context, id uuid.UUID, amount int64) (*domain.Character, error)

	Equip(ctx context.Context, id uuid.UUID, slot domain.EquipmentSlot, delta domain.StatDelta) (*domain.Character, error)
	Unequip(ctx context.Context, id uuid.UUID, slot domain.EquipmentSlot) (*domain.Character, error)

	GetCacheStats() CacheStats
}

type service struct {
	repo  repository.Character
	txs   TxBeginner
	locks *concurrency.LockManager
	cache *nameCache
	now   func() time.Time
}

// NewService creates a new character service
func NewService(repo repository.Character, txs TxBeginner, locks *concurrency.LockManager, cacheCfg CacheConfig) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:  repo,
		txs:   txs,
		locks: locks,
		cache: newNameCache(cacheCfg),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create registers a level 1 character at the spawn point
func (s *service) Create(ctx context.Context, name string) (*domain.Character, error) {
	name = strings.TrimSpace(name)
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	now := s.now()
	c := &domain.Character{
		ID:        uuid.New(),
		Name:      name,
		Equipment: domain.Equipment{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	leveling.NewCharacterStats(c)

	if err := s.repo.CreateCharacter(ctx, c); err != nil {
		return nil, err
	}
	s.cache.Set(c.Name, c.ID)

	logger.FromContext(ctx).Info(LogMsgCharacterCreated, "character_id", c.ID, "name", c.Name)
	return c, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	return s.repo.GetCharacter(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (*domain.Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrCharacterNotFound
	}

	if id, ok := s.cache.Get(name); ok {
		c, err := s.repo.GetCharacter(ctx, id)
		if err == nil && c.Name == name {
			return c, nil
		}
		if err != nil && !errors.Is(err, domain.ErrCharacterNotFound) {
			return nil, err
		}
		s.cache.Invalidate(name)
	}

	c, err := s.repo.GetCharacterByName(ctx, name)
	if err == nil {
		s.cache.Set(name, c.ID)
		return c, nil
	}
	if !errors.Is(err, domain.ErrCharacterNotFound) {
		return nil, err
	}

	matches, err := s.repo.FindCharactersByFoldedName(ctx, domain.FoldName(name))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domain.ErrCharacterNotFound
	}
	if len(matches) > 1 {
		logger.FromContext(ctx).Warn(LogMsgAmbiguousName, "name", name, "matches", len(matches))
	}
	return &matches[0], nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]domain.Character, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListCharacters(ctx, limit, offset)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	unlock := s.locks.Lock(id.String())
	defer unlock()

	c, err := s.repo.GetCharacter(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteCharacter(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(c.Name)

	logger.FromContext(ctx).Info(LogMsgCharacterDeleted, "character_id", id, "name", c.Name)
	return nil
}

// Deposit moves cash into the bank, where it survives death
func (s *service) Deposit(ctx context.Context, id uuid.UUID, amount int64) (*domain.Character, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	c, err := s.mutate(ctx, id, func(c *domain.Character) error {
		if c.Money.Cash < amount {
			return fmt.Errorf("%w: carrying %d", domain.ErrInsufficientFunds, c.Money.Cash)
		}
		c.Money.Cash -= amount
		c.Money.Bank += amount
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgBankDeposit, "character_id", id, "amount", amount)
	return c, nil
}

// Withdraw moves money from the bank back into cash
func (s *service) Withdraw(ctx context.Context, id uuid.UUID, amount int64) (*domain.Character, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	c, err := s.mutate(ctx, id, func(c *domain.Character) error {
		if c.Money.Bank < amount {
			return fmt.Errorf("%w: bank holds %d", domain.ErrInsufficientFunds, c.Money.Bank)
		}
		c.Money.Bank -= amount
		c.Money.Cash += amount
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgBankWithdraw, "character_id", id, "amount", amount)
	return c, nil
}

// Equip sets the bonus of a slot, replacing whatever was there
func (s *service) Equip(ctx context.Context, id uuid.UUID, slot domain.EquipmentSlot, delta domain.StatDelta) (*domain.Character, error) {
	if _, err := domain.ParseEquipmentSlot(string(slot)); err != nil {
		return nil, err
	}
	if err := delta.Validate(); err != nil {
		return nil, err
	}
	c, err := s.mutate(ctx, id, func(c *domain.Character) error {
		if c.Equipment == nil {
			c.Equipment = domain.Equipment{}
		}
		c.Equipment[slot] = delta
		leveling.ApplyStats(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgEquipped, "character_id", id, "slot", slot)
	return c, nil
}

// Unequip clears a slot. Clearing an empty slot is not an error.
func (s *service) Unequip(ctx context.Context, id uuid.UUID, slot domain.EquipmentSlot) (*domain.Character, error) {
	if _, err := domain.ParseEquipmentSlot(string(slot)); err != nil {
		return nil, err
	}
	c, err := s.mutate(ctx, id, func(c *domain.Character) error {
		delete(c.Equipment, slot)
		leveling.ApplyStats(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgUnequipped, "character_id", id, "slot", slot)
	return c, nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.GetStats()
}

// mutate runs fn against a locked copy of the character and persists the result
func (s *service) mutate(ctx context.Context, id uuid.UUID, fn func(*domain.Character) error) (*domain.Character, error) {
	unlock := s.locks.Lock(id.String())
	defer unlock()

	tx, err := s.txs.BeginWorkTx(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	c, err := tx.GetCharacterForUpdate(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := tx.UpdateCharacter(ctx, c); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return c, nil
}
