package session

import (
	"log/slog"
	"roulette/internal/config"
	"roulette/internal/repository"
	"roulette/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       config.GameConfig
	game      service.GameService
	repo      repository.GamblerRepository
	txManager trm.Manager
	out       service.Printer
	log       *slog.Logger
}

// NewSessionService creates the loop that keeps playing rounds while the
// gambler can still pay
func NewSessionService(
	cfg config.GameConfig,
	game service.GameService,
	repo repository.GamblerRepository,
	txManager trm.Manager,
	out service.Printer,
	log *slog.Logger,
) service.SessionService {
	return &serv{
		cfg:       cfg,
		game:      game,
		repo:      repo,
		txManager: txManager,
		out:       out,
		log:       log,
	}
}
