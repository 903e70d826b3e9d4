package model

import "github.com/google/uuid"

type BetKind string

const (
	BetColor  BetKind = "color"
	BetParity BetKind = "parity"
	BetThree  BetKind = "three"
)

// CatalogEntry describes one wager offered in the menu
type CatalogEntry struct {
	Kind        BetKind
	Description string
	Odds        int
}

// RoundResult is what a single round of play produced
type RoundResult struct {
	ID       uuid.UUID
	Stake    int
	Bet      string
	Choice   string
	Outcome  Outcome
	Won      bool
	Delta    int
	Bankroll int
}
