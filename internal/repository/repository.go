package repository

import (
	"context"
	"errors"
	"roulette/internal/model"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("gambler not found")

// GamblerRepository keeps a gambler's current bankroll between runs.
// Rounds themselves are not stored.
type GamblerRepository interface {
	GetByName(ctx context.Context, name string) (*model.Gambler, error)
	Create(ctx context.Context, gambler *model.Gambler) error
	UpdateBankroll(ctx context.Context, id uuid.UUID, bankroll int) error
}
