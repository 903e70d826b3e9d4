package config

import (
	"log/slog"
	"roulette/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GameConfig interface {
	GameName() string
	PlayerName() string
	StartingBankroll() int
	Catalog() []model.CatalogEntry
}

type PGConfig interface {
	DSN() string
}

type LogConfig interface {
	Level() slog.Level
}
