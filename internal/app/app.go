package app

import (
	"context"
	"log/slog"
	"roulette/internal/config"
	"roulette/internal/lib/logger/sl"
	"sync"
)

type App struct {
	mu              sync.Mutex
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() *ServiceProvider {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ServiceProvider = newServiceProvider()
	return s.ServiceProvider
}

func (s *App) Run(ctx context.Context) error {
	err := config.Load(".env")
	sp := s.initServiceProvider()

	log := sp.Logger()
	if err != nil {
		log.Debug("no .env file loaded", sl.Err(err))
	}
	defer sp.Close()

	log.Info("starting session", slog.String("game", sp.GameCfg().GameName()))

	return sp.SessionService(ctx).Run(ctx)
}

// Close releases what the provider opened. Safe to call from another
// goroutine while Run is blocked on input.
func (s *App) Close() {
	s.mu.Lock()
	sp := s.ServiceProvider
	s.mu.Unlock()

	if sp != nil {
		sp.Close()
	}
}
