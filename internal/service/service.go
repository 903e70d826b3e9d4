package service

import (
	"context"
	"errors"
	"roulette/internal/model"
)

// ErrNoInput is returned by a Prompter whose input has run out
var ErrNoInput = errors.New("no more input")

// Prompter is the input provider. Each call blocks until the player supplies a
// valid value; malformed input is re-prompted inside the implementation. An
// error means the input itself is gone.
type Prompter interface {
	PromptRange(prompt string, low, high int) (int, error)
	PromptOneOf(prompt string, choices ...string) (string, error)
}

// Printer is the output sink for human-readable lines
type Printer interface {
	Println(a ...any)
	Printf(format string, a ...any)
}

// Bet is one wagering strategy offered in the catalog
type Bet interface {
	Description() string
	Odds() int
	// PlaceBet asks the player for the bet's choice
	PlaceBet(in Prompter) (string, error)
	// IsMade reports whether choice wins against outcome
	IsMade(outcome model.Outcome, choice string) bool
}

type Wheel interface {
	Spin() model.Outcome
}

type GameService interface {
	Name() string
	Play(ctx context.Context, gambler *model.Gambler) (*model.RoundResult, error)
}

type SessionService interface {
	Run(ctx context.Context) error
}
