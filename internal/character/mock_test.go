package character

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/repository"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateCharacter(ctx context.Context, c *domain.Character) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) GetCharacter(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockRepository) GetCharacterByName(ctx context.Context, name string) (*domain.Character, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockRepository) FindCharactersByFoldedName(ctx context.Context, folded string) ([]domain.Character, error) {
	args := m.Called(ctx, folded)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Character), args.Error(1)
}

func (m *MockRepository) ListCharacters(ctx context.Context, limit, offset int) ([]domain.Character, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Character), args.Error(1)
}

func (m *MockRepository) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) DeleteCharacter(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) IncrementDuelCounters(ctx context.Context, id uuid.UUID, won, lost int) error {
	args := m.Called(ctx, id, won, lost)
	return args.Error(0)
}

// MockTxBeginner
type MockTxBeginner struct {
	mock.Mock
}

func (m *MockTxBeginner) BeginWorkTx(ctx context.Context, characterID uuid.UUID) (repository.WorkTx, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.WorkTx), args.Error(1)
}

// MockWorkTx
type MockWorkTx struct {
	mock.Mock
}

func (m *MockWorkTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkTx) GetCharacterForUpdate(ctx context.Context) (*domain.Character, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockWorkTx) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockWorkTx) ListWorks(ctx context.Context) ([]domain.Work, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Work), args.Error(1)
}

func (m *MockWorkTx) CreateWork(ctx context.Context, w *domain.Work) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkTx) UpdateWork(ctx context.Context, w *domain.Work) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkTx) DeleteWork(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkTx) CreateReport(ctx context.Context, r *domain.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
