package gambler_repo

import (
	"context"
	"roulette/internal/model"
	"roulette/internal/repository"
	"sync"

	"github.com/google/uuid"
)

type record struct {
	id       uuid.UUID
	name     string
	bankroll int
}

type memRepo struct {
	mu     sync.Mutex
	byName map[string]*record
	byID   map[uuid.UUID]*record
}

// NewMemoryRepository keeps gamblers for the lifetime of the process only
func NewMemoryRepository() repository.GamblerRepository {
	return &memRepo{
		byName: make(map[string]*record),
		byID:   make(map[uuid.UUID]*record),
	}
}

func (r *memRepo) GetByName(_ context.Context, name string) (*model.Gambler, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byName[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return model.RestoreGambler(rec.id, rec.name, rec.bankroll), nil
}

func (r *memRepo) Create(_ context.Context, gambler *model.Gambler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := &record{id: gambler.ID(), name: gambler.Name(), bankroll: gambler.Bankroll()}
	r.byName[rec.name] = rec
	r.byID[rec.id] = rec
	return nil
}

func (r *memRepo) UpdateBankroll(_ context.Context, id uuid.UUID, bankroll int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	rec.bankroll = bankroll
	return nil
}
