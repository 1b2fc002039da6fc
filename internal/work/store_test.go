package work

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/repository"
)

// memStore is an in-memory stand-in for the postgres repositories. Work
// transactions operate on a private copy that replaces the store on commit.
type memStore struct {
	mu         sync.Mutex
	characters map[uuid.UUID]domain.Character
	works      map[uuid.UUID]domain.Work
	reports    []domain.Report
	commits    int
	duelCalls  []duelCall
}

type duelCall struct {
	id        uuid.UUID
	won, lost int
}

func newMemStore() *memStore {
	return &memStore{
		characters: map[uuid.UUID]domain.Character{},
		works:      map[uuid.UUID]domain.Work{},
	}
}

func (m *memStore) put(c domain.Character) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.characters[c.ID] = c
}

func (m *memStore) character(id uuid.UUID) domain.Character {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.characters[id]
}

func (m *memStore) reportsFor(id uuid.UUID) []domain.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Report
	for _, r := range m.reports {
		if r.CharacterID == id {
			out = append(out, r)
		}
	}
	return out
}

func (m *memStore) queue(id uuid.UUID) []domain.Work {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedWorks(m.works, id)
}

func sortedWorks(works map[uuid.UUID]domain.Work, characterID uuid.UUID) []domain.Work {
	out := []domain.Work{}
	for _, w := range works {
		if w.CharacterID == characterID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// repository.Character

func (m *memStore) CreateCharacter(_ context.Context, c *domain.Character) error {
	m.put(*c)
	return nil
}

func (m *memStore) GetCharacter(_ context.Context, id uuid.UUID) (*domain.Character, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.characters[id]
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	return &c, nil
}

func (m *memStore) GetCharacterByName(_ context.Context, name string) (*domain.Character, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.characters {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, domain.ErrCharacterNotFound
}

func (m *memStore) FindCharactersByFoldedName(_ context.Context, folded string) ([]domain.Character, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Character
	for _, c := range m.characters {
		if domain.FoldName(c.Name) == folded {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) ListCharacters(_ context.Context, _, _ int) ([]domain.Character, error) {
	return nil, nil
}

func (m *memStore) UpdateCharacter(_ context.Context, c *domain.Character) error {
	m.put(*c)
	return nil
}

func (m *memStore) DeleteCharacter(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.characters, id)
	return nil
}

func (m *memStore) IncrementDuelCounters(_ context.Context, id uuid.UUID, won, lost int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.characters[id]
	if !ok {
		return domain.ErrCharacterNotFound
	}
	c.DuelsWon += won
	c.DuelsLost += lost
	m.characters[id] = c
	m.duelCalls = append(m.duelCalls, duelCall{id: id, won: won, lost: lost})
	return nil
}

// repository.Work

func (m *memStore) GetWork(_ context.Context, id uuid.UUID) (*domain.Work, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.works[id]
	if !ok {
		return nil, domain.ErrWorkNotFound
	}
	return &w, nil
}

func (m *memStore) ListWorks(_ context.Context, characterID uuid.UUID) ([]domain.Work, error) {
	return m.queue(characterID), nil
}

func (m *memStore) UpdateWork(_ context.Context, w *domain.Work) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.works[w.ID]; !ok {
		return domain.ErrWorkNotFound
	}
	m.works[w.ID] = *w
	return nil
}

func (m *memStore) BeginWorkTx(_ context.Context, characterID uuid.UUID) (repository.WorkTx, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &memTx{
		store:       m,
		characterID: characterID,
		characters:  map[uuid.UUID]domain.Character{},
		works:       map[uuid.UUID]domain.Work{},
	}
	for k, v := range m.characters {
		tx.characters[k] = v
	}
	for k, v := range m.works {
		tx.works[k] = v
	}
	return tx, nil
}

type memTx struct {
	store       *memStore
	characterID uuid.UUID
	characters  map[uuid.UUID]domain.Character
	works       map[uuid.UUID]domain.Work
	reports     []domain.Report
	done        bool
}

func (t *memTx) Commit(_ context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.characters = t.characters
	t.store.works = t.works
	t.store.reports = append(t.store.reports, t.reports...)
	t.store.commits++
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true
	return nil
}

func (t *memTx) GetCharacterForUpdate(_ context.Context) (*domain.Character, error) {
	c, ok := t.characters[t.characterID]
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	return &c, nil
}

func (t *memTx) UpdateCharacter(_ context.Context, c *domain.Character) error {
	if c.ID != t.characterID {
		return domain.ErrInvalidInput
	}
	t.characters[c.ID] = *c
	return nil
}

func (t *memTx) ListWorks(_ context.Context) ([]domain.Work, error) {
	return sortedWorks(t.works, t.characterID), nil
}

func (t *memTx) CreateWork(_ context.Context, w *domain.Work) error {
	t.works[w.ID] = *w
	return nil
}

func (t *memTx) UpdateWork(_ context.Context, w *domain.Work) error {
	if _, ok := t.works[w.ID]; !ok {
		return domain.ErrWorkNotFound
	}
	t.works[w.ID] = *w
	return nil
}

func (t *memTx) DeleteWork(_ context.Context, id uuid.UUID) error {
	if _, ok := t.works[id]; !ok {
		return domain.ErrWorkNotFound
	}
	delete(t.works, id)
	return nil
}

func (t *memTx) CreateReport(_ context.Context, r *domain.Report) error {
	t.reports = append(t.reports, *r)
	return nil
}

type txClosedError struct{}

func (txClosedError) Error() string { return domain.ErrMsgTxClosed }

var errTxClosed error = txClosedError{}

var (
	_ repository.Work      = (*memStore)(nil)
	_ repository.Character = (*memStore)(nil)
	_ repository.WorkTx    = (*memTx)(nil)
)
