package bet

import (
	"errors"
	"roulette/internal/model"
	"roulette/internal/service"
	"roulette/internal/wheel"
	"strconv"
	"testing"
)

// stubPrompter answers every prompt with fixed values and records what was asked.
type stubPrompter struct {
	number  int
	word    string
	low     int
	high    int
	choices []string
}

func (p *stubPrompter) PromptRange(_ string, low, high int) (int, error) {
	p.low, p.high = low, high
	return p.number, nil
}

func (p *stubPrompter) PromptOneOf(_ string, choices ...string) (string, error) {
	p.choices = choices
	return p.word, nil
}

func mustNew(t *testing.T, kind model.BetKind, odds int) service.Bet {
	t.Helper()
	b, err := New(model.CatalogEntry{Kind: kind, Description: string(kind), Odds: odds})
	if err != nil {
		t.Fatalf("New(%s) error: %v", kind, err)
	}
	return b
}

func outcome(n int) model.Outcome {
	return model.Outcome{Number: n, Color: wheel.ColorOf(n)}
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New(model.CatalogEntry{Kind: "dozen", Description: "First Dozen", Odds: 2})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want %v", err, ErrUnknownKind)
	}
}

func TestNewCatalogKeepsOrder(t *testing.T) {
	entries := []model.CatalogEntry{
		{Kind: model.BetThree, Description: "Three in a Row", Odds: 33},
		{Kind: model.BetColor, Description: "Red or Black", Odds: 10},
	}

	bets, err := NewCatalog(entries)
	if err != nil {
		t.Fatalf("NewCatalog error: %v", err)
	}
	for i, b := range bets {
		if b.Description() != entries[i].Description || b.Odds() != entries[i].Odds {
			t.Errorf("bets[%d] = (%q, %d), want (%q, %d)", i, b.Description(), b.Odds(), entries[i].Description, entries[i].Odds)
		}
	}

	entries = append(entries, model.CatalogEntry{Kind: "split", Description: "Split", Odds: 17})
	if _, err := NewCatalog(entries); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want %v", err, ErrUnknownKind)
	}
}

func TestColorBet(t *testing.T) {
	b := mustNew(t, model.BetColor, 10)
	choices := []string{string(model.Red), string(model.Black), string(model.Green), "PURPLE", ""}

	for n := 0; n < wheel.NumSpots; n++ {
		o := outcome(n)
		for _, c := range choices {
			want := c == string(o.Color)
			if got := b.IsMade(o, c); got != want {
				t.Errorf("IsMade(%d %s, %q) = %v, want %v", n, o.Color, c, got, want)
			}
		}
	}
}

func TestColorBetPlace(t *testing.T) {
	b, _ := New(model.CatalogEntry{Kind: model.BetColor, Description: "Red or Black", Odds: 10})
	in := &stubPrompter{word: "RED"}

	choice, err := b.PlaceBet(in)
	if err != nil {
		t.Fatalf("PlaceBet error: %v", err)
	}
	if choice != "RED" {
		t.Errorf("choice = %q, want RED", choice)
	}
	if len(in.choices) != 2 || in.choices[0] != "BLACK" || in.choices[1] != "RED" {
		t.Errorf("offered choices = %v, want [BLACK RED]", in.choices)
	}
}

func TestParityBet(t *testing.T) {
	b := mustNew(t, model.BetParity, 50)

	for n := 0; n < wheel.NumSpots; n++ {
		o := outcome(n)
		even := n%2 == 0
		if got := b.IsMade(o, Even); got != even {
			t.Errorf("IsMade(%d, even) = %v, want %v", n, got, even)
		}
		if got := b.IsMade(o, Odd); got != !even {
			t.Errorf("IsMade(%d, odd) = %v, want %v", n, got, !even)
		}
	}

	if !b.IsMade(outcome(0), Even) {
		t.Errorf("0 must count as even")
	}
	if b.IsMade(outcome(3), "EVEN") {
		t.Errorf("unknown choice must not win")
	}
}

func TestParityBetPlace(t *testing.T) {
	b, _ := New(model.CatalogEntry{Kind: model.BetParity, Description: "Even or Odd", Odds: 50})
	in := &stubPrompter{word: Odd}

	choice, err := b.PlaceBet(in)
	if err != nil {
		t.Fatalf("PlaceBet error: %v", err)
	}
	if choice != Odd {
		t.Errorf("choice = %q, want %q", choice, Odd)
	}
	if len(in.choices) != 2 || in.choices[0] != Even || in.choices[1] != Odd {
		t.Errorf("offered choices = %v, want [even odd]", in.choices)
	}
}

func TestThreeBet(t *testing.T) {
	b := mustNew(t, model.BetThree, 33)

	for s := 1; s <= wheel.NumSpots-3; s++ {
		choice := strconv.Itoa(s)
		for m := 0; m < wheel.NumSpots; m++ {
			want := s <= m && m < s+3
			if got := b.IsMade(outcome(m), choice); got != want {
				t.Errorf("IsMade(%d, start %d) = %v, want %v", m, s, got, want)
			}
		}
		if !b.IsMade(outcome(s), choice) {
			t.Errorf("start %d: m == s must win", s)
		}
		if s+3 < wheel.NumSpots && b.IsMade(outcome(s+3), choice) {
			t.Errorf("start %d: m == s+3 must lose", s)
		}
	}

	if !b.IsMade(outcome(model.DoubleZero), strconv.Itoa(wheel.NumSpots-3)) {
		t.Errorf("last run must cover 00")
	}

	if b.IsMade(outcome(5), "five") {
		t.Errorf("unparseable choice must not win")
	}
}

func TestThreeBetPlace(t *testing.T) {
	b, _ := New(model.CatalogEntry{Kind: model.BetThree, Description: "Three in a Row", Odds: 33})
	in := &stubPrompter{number: 12}

	choice, err := b.PlaceBet(in)
	if err != nil {
		t.Fatalf("PlaceBet error: %v", err)
	}
	if choice != "12" {
		t.Errorf("choice = %q, want %q", choice, "12")
	}
	if in.low != 1 || in.high != wheel.NumSpots-3 {
		t.Errorf("range = [%d, %d], want [1, %d]", in.low, in.high, wheel.NumSpots-3)
	}
}
