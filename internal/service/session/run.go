package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"roulette/internal/lib/logger/sl"
	"roulette/internal/model"
	"roulette/internal/repository"
	"roulette/internal/service"
)

// Run greets the gambler, plays rounds until the bankroll is gone or the
// input runs out, and says goodbye.
func (s *serv) Run(ctx context.Context) error {
	const op = "service.session.Run"

	gambler, err := s.loadGambler(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log := s.log.With(
		slog.String("gambler", gambler.ID().String()),
		slog.String("name", gambler.Name()),
	)
	log.Info("session started", slog.Int("bankroll", gambler.Bankroll()))

	s.out.Printf("Hello %s, let's play %s!\n\n", gambler.Name(), s.game.Name())

	rounds := 0
	for gambler.IsSolvent() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		res, err := s.game.Play(ctx, gambler)
		if err != nil {
			if errors.Is(err, service.ErrNoInput) {
				log.Info("input closed, leaving the table")
				break
			}
			log.Error("round failed", sl.Op(op), sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
		rounds++

		err = s.txManager.Do(ctx, func(txCtx context.Context) error {
			return s.repo.UpdateBankroll(txCtx, gambler.ID(), res.Bankroll)
		})
		if err != nil {
			log.Error("failed to save bankroll", sl.Op(op), sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}

		s.out.Printf("Your bankroll is now %d\n\n", res.Bankroll)
	}

	log.Info("session ended", slog.Int("rounds", rounds), slog.Int("bankroll", gambler.Bankroll()))

	s.out.Println()
	s.out.Printf("\nGoodbye %s, thanks for playing!\n", gambler.Name())

	return nil
}

// loadGambler fetches the configured player or seats a new one. A stored
// player who went broke gets the starting bankroll again.
func (s *serv) loadGambler(ctx context.Context) (*model.Gambler, error) {
	var gambler *model.Gambler

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		g, err := s.repo.GetByName(txCtx, s.cfg.PlayerName())
		if errors.Is(err, repository.ErrNotFound) {
			g = model.NewGambler(s.cfg.PlayerName(), s.cfg.StartingBankroll())
			if err := s.repo.Create(txCtx, g); err != nil {
				return fmt.Errorf("create gambler: %w", err)
			}
			gambler = g
			return nil
		}
		if err != nil {
			return fmt.Errorf("get gambler: %w", err)
		}

		if !g.IsSolvent() {
			s.log.Info("reseeding broke gambler",
				slog.String("name", g.Name()),
				slog.Int("bankroll", g.Bankroll()),
			)
			g.UpdateBankroll(s.cfg.StartingBankroll() - g.Bankroll())
			if err := s.repo.UpdateBankroll(txCtx, g.ID(), g.Bankroll()); err != nil {
				return fmt.Errorf("reseed gambler: %w", err)
			}
		}
		gambler = g
		return nil
	})
	if err != nil {
		return nil, err
	}

	return gambler, nil
}
