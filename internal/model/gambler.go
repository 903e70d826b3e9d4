package model

import "github.com/google/uuid"

// Gambler holds a player's identity and running bankroll.
// The bankroll changes only through UpdateBankroll.
type Gambler struct {
	id       uuid.UUID
	name     string
	bankroll int
}

func NewGambler(name string, bankroll int) *Gambler {
	return &Gambler{
		id:       uuid.New(),
		name:     name,
		bankroll: bankroll,
	}
}

// RestoreGambler rebuilds a gambler read back from a store
func RestoreGambler(id uuid.UUID, name string, bankroll int) *Gambler {
	return &Gambler{
		id:       id,
		name:     name,
		bankroll: bankroll,
	}
}

func (g *Gambler) ID() uuid.UUID {
	return g.id
}

func (g *Gambler) Name() string {
	return g.name
}

func (g *Gambler) Bankroll() int {
	return g.bankroll
}

// IsSolvent reports whether the gambler still has money to play with
func (g *Gambler) IsSolvent() bool {
	return g.bankroll > 0
}

// UpdateBankroll adds delta to the bankroll. No clamping: the bankroll may
// reach zero or go negative.
func (g *Gambler) UpdateBankroll(delta int) {
	g.bankroll += delta
}
