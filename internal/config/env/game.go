package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"roulette/internal/config"
	"roulette/internal/model"

	"gopkg.in/yaml.v3"
)

const (
	gameConfigPathName = "ROULETTE_CONFIG"
	defaultConfigPath  = "config.yaml"

	defaultGameName         = "Roulette"
	defaultPlayerName       = "Robert"
	defaultStartingBankroll = 1000
)

var defaultCatalog = []model.CatalogEntry{
	{Kind: model.BetColor, Description: "Red or Black", Odds: 10},
	{Kind: model.BetParity, Description: "Even or Odd", Odds: 50},
	{Kind: model.BetThree, Description: "Three in a Row", Odds: 33},
}

type betYAML struct {
	Kind        string `yaml:"kind"`
	Description string `yaml:"description"`
	Odds        int    `yaml:"odds"`
}

type gameYAML struct {
	Game struct {
		Name             string `yaml:"name"`
		Player           string `yaml:"player"`
		StartingBankroll int    `yaml:"starting_bankroll"`
	} `yaml:"game"`
	Bets []betYAML `yaml:"bets"`
}

type gameConfig struct {
	gameName         string
	playerName       string
	startingBankroll int
	catalog          []model.CatalogEntry
}

// GameConfigPath returns the config file path from ROULETTE_CONFIG or the default
func GameConfigPath() string {
	if p := os.Getenv(gameConfigPathName); p != "" {
		return p
	}
	return defaultConfigPath
}

// NewGameConfigFromYAML reads the game settings and bet catalog from path.
// A missing file yields the built-in defaults.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewGameConfig(defaultGameName, defaultPlayerName, defaultStartingBankroll, defaultCatalog)
		}
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	return ParseGameConfig(data)
}

// ParseGameConfig decodes YAML game settings, filling unset fields with defaults
func ParseGameConfig(data []byte) (config.GameConfig, error) {
	var raw gameYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}

	name := raw.Game.Name
	if name == "" {
		name = defaultGameName
	}
	player := raw.Game.Player
	if player == "" {
		player = defaultPlayerName
	}
	bankroll := raw.Game.StartingBankroll
	if bankroll == 0 {
		bankroll = defaultStartingBankroll
	}

	catalog := defaultCatalog
	if len(raw.Bets) > 0 {
		catalog = make([]model.CatalogEntry, 0, len(raw.Bets))
		for _, b := range raw.Bets {
			catalog = append(catalog, model.CatalogEntry{
				Kind:        model.BetKind(b.Kind),
				Description: b.Description,
				Odds:        b.Odds,
			})
		}
	}

	return NewGameConfig(name, player, bankroll, catalog)
}

// NewGameConfig validates and builds a game config from explicit values
func NewGameConfig(gameName, playerName string, startingBankroll int, catalog []model.CatalogEntry) (config.GameConfig, error) {
	if startingBankroll <= 0 {
		return nil, fmt.Errorf("starting bankroll must be positive, got %d", startingBankroll)
	}
	if len(catalog) == 0 {
		return nil, errors.New("bet catalog is empty")
	}
	for i, e := range catalog {
		switch e.Kind {
		case model.BetColor, model.BetParity, model.BetThree:
		default:
			return nil, fmt.Errorf("bet %d: unknown kind %q", i+1, e.Kind)
		}
		if e.Odds <= 0 {
			return nil, fmt.Errorf("bet %d: odds must be positive, got %d", i+1, e.Odds)
		}
		if e.Description == "" {
			return nil, fmt.Errorf("bet %d: description is empty", i+1)
		}
	}

	entries := make([]model.CatalogEntry, len(catalog))
	copy(entries, catalog)

	return &gameConfig{
		gameName:         gameName,
		playerName:       playerName,
		startingBankroll: startingBankroll,
		catalog:          entries,
	}, nil
}

func (cfg *gameConfig) GameName() string {
	return cfg.gameName
}

func (cfg *gameConfig) PlayerName() string {
	return cfg.playerName
}

func (cfg *gameConfig) StartingBankroll() int {
	return cfg.startingBankroll
}

// Catalog returns a copy of the ordered bet catalog
func (cfg *gameConfig) Catalog() []model.CatalogEntry {
	out := make([]model.CatalogEntry, len(cfg.catalog))
	copy(out, cfg.catalog)
	return out
}
