package game

import (
	"errors"
	"log/slog"
	"roulette/internal/service"
)

var (
	ErrUnknownBet = errors.New("bet index out of catalog range")
	ErrInsolvent  = errors.New("gambler has no bankroll left")
	ErrNoCatalog  = errors.New("bet catalog is empty")
)

type serv struct {
	name    string
	wheel   service.Wheel
	catalog []service.Bet
	in      service.Prompter
	out     service.Printer
	log     *slog.Logger
}

// NewGameService creates a game owning wheel and the ordered bet catalog
func NewGameService(
	name string,
	wheel service.Wheel,
	catalog []service.Bet,
	in service.Prompter,
	out service.Printer,
	log *slog.Logger,
) (service.GameService, error) {
	if len(catalog) == 0 {
		return nil, ErrNoCatalog
	}

	bets := make([]service.Bet, len(catalog))
	copy(bets, catalog)

	return &serv{
		name:    name,
		wheel:   wheel,
		catalog: bets,
		in:      in,
		out:     out,
		log:     log,
	}, nil
}

func (s *serv) Name() string {
	return s.name
}

// bet returns the catalog entry at a zero-based index
func (s *serv) bet(index int) (service.Bet, error) {
	if index < 0 || index >= len(s.catalog) {
		return nil, ErrUnknownBet
	}
	return s.catalog[index], nil
}
