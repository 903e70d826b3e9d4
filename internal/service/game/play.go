package game

import (
	"context"
	"fmt"
	"log/slog"
	"roulette/internal/model"

	"github.com/google/uuid"
)

// Play runs one round: wager, bet selection, bet choice, spin, settlement.
func (s *serv) Play(ctx context.Context, gambler *model.Gambler) (*model.RoundResult, error) {
	const op = "service.game.Play"

	if !gambler.IsSolvent() {
		return nil, fmt.Errorf("%s: %w", op, ErrInsolvent)
	}

	amount, err := s.in.PromptRange("How much do you want to bet", 0, gambler.Bankroll())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	whichBet, err := s.promptForBet()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bet, err := s.bet(whichBet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	choice, err := bet.PlaceBet(s.in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.out.Println()
	s.out.Println()
	s.out.Println()

	s.out.Printf("Spinning ...")
	outcome := s.wheel.Spin()
	s.out.Printf("Dropped into %s %s\n", outcome.Color, outcome.Label())

	won := bet.IsMade(outcome, choice)
	if won {
		s.out.Println("*** Congratulations :) You win ***")
	} else {
		s.out.Println("*** Sorry :( You lose ***")
	}

	delta := Settle(amount, bet.Odds(), won)
	gambler.UpdateBankroll(delta)

	res := &model.RoundResult{
		ID:       uuid.New(),
		Stake:    amount,
		Bet:      bet.Description(),
		Choice:   choice,
		Outcome:  outcome,
		Won:      won,
		Delta:    delta,
		Bankroll: gambler.Bankroll(),
	}

	s.log.DebugContext(ctx, "round settled",
		slog.String("round", res.ID.String()),
		slog.String("bet", res.Bet),
		slog.String("choice", res.Choice),
		slog.Int("number", outcome.Number),
		slog.String("color", string(outcome.Color)),
		slog.Int("delta", delta),
		slog.Int("bankroll", res.Bankroll),
	)

	return res, nil
}

// promptForBet shows the menu and returns the zero-based index of the pick
func (s *serv) promptForBet() (int, error) {
	s.out.Println("You can make one of the following types of bets:")
	for k, b := range s.catalog {
		s.out.Printf("%d) %s\n", k+1, b.Description())
	}

	choice, err := s.in.PromptRange("Please make a choice", 1, len(s.catalog))
	if err != nil {
		return 0, err
	}
	return choice - 1, nil
}

// Settle returns the bankroll change for a round: the stake times the odds on
// a win, the whole stake on a loss.
func Settle(stake, odds int, won bool) int {
	if won {
		return stake * odds
	}
	return -stake
}
