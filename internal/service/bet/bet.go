// Package bet holds the wager variants offered at the table.
package bet

import (
	"errors"
	"fmt"
	"roulette/internal/model"
	"roulette/internal/service"
	"roulette/internal/wheel"
	"strconv"
)

const (
	Even = "even"
	Odd  = "odd"

	// runLength is how many consecutive numbers a three-run bet covers
	runLength = 3
)

var ErrUnknownKind = errors.New("unknown bet kind")

type base struct {
	description string
	odds        int
}

func (b base) Description() string {
	return b.description
}

func (b base) Odds() int {
	return b.odds
}

// New builds the bet variant named by the catalog entry
func New(entry model.CatalogEntry) (service.Bet, error) {
	b := base{description: entry.Description, odds: entry.Odds}

	switch entry.Kind {
	case model.BetColor:
		return &colorBet{base: b}, nil
	case model.BetParity:
		return &parityBet{base: b}, nil
	case model.BetThree:
		return &threeBet{base: b, maxStart: wheel.NumSpots - runLength}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, entry.Kind)
	}
}

// NewCatalog builds bets for every entry, keeping menu order
func NewCatalog(entries []model.CatalogEntry) ([]service.Bet, error) {
	bets := make([]service.Bet, 0, len(entries))
	for i, e := range entries {
		b, err := New(e)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i+1, err)
		}
		bets = append(bets, b)
	}
	return bets, nil
}

// colorBet wins when the ball lands on the chosen color
type colorBet struct {
	base
}

func (b *colorBet) PlaceBet(in service.Prompter) (string, error) {
	return in.PromptOneOf("Please bet", string(model.Black), string(model.Red))
}

func (b *colorBet) IsMade(outcome model.Outcome, choice string) bool {
	return string(outcome.Color) == choice
}

// parityBet wins on the chosen parity; 0 counts as even
type parityBet struct {
	base
}

func (b *parityBet) PlaceBet(in service.Prompter) (string, error) {
	return in.PromptOneOf("Please bet", Even, Odd)
}

func (b *parityBet) IsMade(outcome model.Outcome, choice string) bool {
	even := outcome.Number%2 == 0
	return (even && choice == Even) || (!even && choice == Odd)
}

// threeBet wins when the ball lands in the run starting at the chosen number
type threeBet struct {
	base
	maxStart int
}

func (b *threeBet) PlaceBet(in service.Prompter) (string, error) {
	start, err := in.PromptRange("Enter first of three consecutive numbers", 1, b.maxStart)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(start), nil
}

func (b *threeBet) IsMade(outcome model.Outcome, choice string) bool {
	start, err := strconv.Atoi(choice)
	if err != nil {
		return false
	}
	return start <= outcome.Number && outcome.Number < start+runLength
}
