package character

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/leveling"
)

func setupService() (*service, *MockRepository, *MockTxBeginner) {
	repo := new(MockRepository)
	txs := new(MockTxBeginner)
	svc := NewService(repo, txs, nil, CacheConfig{Size: 10, TTL: time.Minute}).(*service)
	return svc, repo, txs
}

func newCharacter(name string) *domain.Character {
	c := &domain.Character{ID: uuid.New(), Name: name, Equipment: domain.Equipment{}}
	leveling.NewCharacterStats(c)
	return c
}

// expectTx wires a transaction that hands out c and commits
func expectTx(txs *MockTxBeginner, c *domain.Character) *MockWorkTx {
	tx := new(MockWorkTx)
	txs.On("BeginWorkTx", mock.Anything, c.ID).Return(tx, nil)
	tx.On("GetCharacterForUpdate", mock.Anything).Return(c, nil)
	tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))
	return tx
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("starts at level 1 at spawn", func(t *testing.T) {
		svc, repo, _ := setupService()
		repo.On("CreateCharacter", ctx, mock.AnythingOfType("*domain.Character")).Return(nil)

		c, err := svc.Create(ctx, "  Warrior ")
		require.NoError(t, err)
		assert.Equal(t, "Warrior", c.Name)
		assert.Equal(t, 1, c.Level)
		assert.Equal(t, 100, c.Experience.Required)
		assert.Equal(t, c.HP.Max, c.HP.Current)
		assert.Equal(t, c.Stamina.Max, c.Stamina.Current)
		assert.Equal(t, domain.Position{}, c.Position)
		assert.Zero(t, c.Money.Cash)
		repo.AssertExpectations(t)
	})

	t.Run("invalid name never reaches the repository", func(t *testing.T) {
		svc, repo, _ := setupService()
		_, err := svc.Create(ctx, "ab")
		assert.ErrorIs(t, err, domain.ErrInvalidName)
		repo.AssertNotCalled(t, "CreateCharacter", mock.Anything, mock.Anything)
	})

	t.Run("name taken", func(t *testing.T) {
		svc, repo, _ := setupService()
		repo.On("CreateCharacter", ctx, mock.Anything).Return(domain.ErrNameTaken)
		_, err := svc.Create(ctx, "Warrior")
		assert.ErrorIs(t, err, domain.ErrNameTaken)
	})
}

func TestGetByName(t *testing.T) {
	ctx := context.Background()

	t.Run("exact match is cached", func(t *testing.T) {
		svc, repo, _ := setupService()
		c := newCharacter("Ninja")
		repo.On("GetCharacterByName", ctx, "Ninja").Return(c, nil).Once()
		repo.On("GetCharacter", ctx, c.ID).Return(c, nil).Once()

		got, err := svc.GetByName(ctx, "Ninja")
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)

		got, err = svc.GetByName(ctx, "Ninja")
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)

		stats := svc.GetCacheStats()
		assert.Equal(t, int64(1), stats.Hits)
		assert.Equal(t, int64(1), stats.Misses)
		repo.AssertExpectations(t)
	})

	t.Run("falls back to folded match", func(t *testing.T) {
		svc, repo, _ := setupService()
		old := newCharacter("Shaman")
		newer := newCharacter("SHAMAN")
		repo.On("GetCharacterByName", ctx, "shaman").Return(nil, domain.ErrCharacterNotFound)
		repo.On("FindCharactersByFoldedName", ctx, "shaman").Return([]domain.Character{*old, *newer}, nil)

		got, err := svc.GetByName(ctx, "shaman")
		require.NoError(t, err)
		assert.Equal(t, old.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _ := setupService()
		repo.On("GetCharacterByName", ctx, "Nobody").Return(nil, domain.ErrCharacterNotFound)
		repo.On("FindCharactersByFoldedName", ctx, "nobody").Return([]domain.Character{}, nil)

		_, err := svc.GetByName(ctx, "Nobody")
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	})

	t.Run("stale cache entry is dropped", func(t *testing.T) {
		svc, repo, _ := setupService()
		gone := uuid.New()
		svc.cache.Set("Ghost", gone)
		c := newCharacter("Ghost")
		repo.On("GetCharacter", ctx, gone).Return(nil, domain.ErrCharacterNotFound)
		repo.On("GetCharacterByName", ctx, "Ghost").Return(c, nil)

		got, err := svc.GetByName(ctx, "Ghost")
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
		id, ok := svc.cache.Get("Ghost")
		assert.True(t, ok)
		assert.Equal(t, c.ID, id)
	})
}

func TestList_ClampsPaging(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := setupService()
	repo.On("ListCharacters", ctx, DefaultListLimit, 0).Return([]domain.Character{}, nil)
	repo.On("ListCharacters", ctx, MaxListLimit, 5).Return([]domain.Character{}, nil)

	_, err := svc.List(ctx, 0, -3)
	require.NoError(t, err)
	_, err = svc.List(ctx, 1000, 5)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBank(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit moves cash to bank", func(t *testing.T) {
		svc, _, txs := setupService()
		c := newCharacter("Banker")
		c.Money = domain.Money{Cash: 300, Bank: 50}
		tx := expectTx(txs, c)
		tx.On("UpdateCharacter", ctx, c).Return(nil)
		tx.On("Commit", ctx).Return(nil)

		got, err := svc.Deposit(ctx, c.ID, 200)
		require.NoError(t, err)
		assert.Equal(t, domain.Money{Cash: 100, Bank: 250}, got.Money)
		tx.AssertExpectations(t)
	})

	t.Run("withdraw moves bank to cash", func(t *testing.T) {
		svc, _, txs := setupService()
		c := newCharacter("Banker")
		c.Money = domain.Money{Cash: 0, Bank: 80}
		tx := expectTx(txs, c)
		tx.On("UpdateCharacter", ctx, c).Return(nil)
		tx.On("Commit", ctx).Return(nil)

		got, err := svc.Withdraw(ctx, c.ID, 80)
		require.NoError(t, err)
		assert.Equal(t, domain.Money{Cash: 80, Bank: 0}, got.Money)
	})

	t.Run("insufficient funds rolls back", func(t *testing.T) {
		svc, _, txs := setupService()
		c := newCharacter("Broke")
		c.Money = domain.Money{Cash: 10}
		tx := expectTx(txs, c)

		_, err := svc.Deposit(ctx, c.ID, 11)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		tx.AssertNotCalled(t, "UpdateCharacter", mock.Anything, mock.Anything)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
		tx.AssertCalled(t, "Rollback", mock.Anything)
	})

	t.Run("non positive amounts", func(t *testing.T) {
		svc, _, txs := setupService()
		_, err := svc.Deposit(ctx, uuid.New(), 0)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		_, err = svc.Withdraw(ctx, uuid.New(), -5)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		txs.AssertNotCalled(t, "BeginWorkTx", mock.Anything, mock.Anything)
	})
}

func TestEquip(t *testing.T) {
	ctx := context.Background()

	t.Run("bonus is added to base stats", func(t *testing.T) {
		svc, _, txs := setupService()
		c := newCharacter("Knight")
		tx := expectTx(txs, c)
		tx.On("UpdateCharacter", ctx, c).Return(nil)
		tx.On("Commit", ctx).Return(nil)

		got, err := svc.Equip(ctx, c.ID, domain.SlotWeapon, domain.StatDelta{Attack: 15, MaxHP: 50})
		require.NoError(t, err)
		base := leveling.StatsForLevel(1)
		assert.Equal(t, base.Attack+15, got.Attack)
		assert.Equal(t, base.MaxHP+50, got.HP.Max)
		assert.Equal(t, base.MaxHP, got.HP.Current, "equipping does not heal")
	})

	t.Run("unequip clamps current gauges", func(t *testing.T) {
		svc, _, txs := setupService()
		c := newCharacter("Knight")
		c.Equipment[domain.SlotArmor] = domain.StatDelta{MaxHP: 100}
		leveling.ApplyStats(c)
		c.HP.Restore()
		tx := expectTx(txs, c)
		tx.On("UpdateCharacter", ctx, c).Return(nil)
		tx.On("Commit", ctx).Return(nil)

		got, err := svc.Unequip(ctx, c.ID, domain.SlotArmor)
		require.NoError(t, err)
		assert.Equal(t, got.HP.Max, got.HP.Current)
		assert.Empty(t, got.Equipment)
	})

	t.Run("rejects bad input before locking", func(t *testing.T) {
		svc, _, txs := setupService()
		_, err := svc.Equip(ctx, uuid.New(), "cape", domain.StatDelta{})
		assert.ErrorIs(t, err, domain.ErrInvalidSlot)
		_, err = svc.Equip(ctx, uuid.New(), domain.SlotBoots, domain.StatDelta{Defense: 5000})
		assert.ErrorIs(t, err, domain.ErrInvalidStatDelta)
		txs.AssertNotCalled(t, "BeginWorkTx", mock.Anything, mock.Anything)
	})
}

func TestDelete_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := setupService()
	c := newCharacter("Temp")
	svc.cache.Set(c.Name, c.ID)
	repo.On("GetCharacter", ctx, c.ID).Return(c, nil)
	repo.On("DeleteCharacter", ctx, c.ID).Return(nil)

	require.NoError(t, svc.Delete(ctx, c.ID))
	_, ok := svc.cache.Get(c.Name)
	assert.False(t, ok)
}
