package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"roulette/internal/config"
	"roulette/internal/config/env"
	"roulette/internal/console"
	"roulette/internal/repository"
	"roulette/internal/repository/gambler_repo"
	"roulette/internal/repository/txmanager"
	"roulette/internal/service"
	"roulette/internal/service/bet"
	"roulette/internal/service/game"
	"roulette/internal/service/session"
	"roulette/internal/wheel"
	"sync"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	// Console
	in     io.Reader
	out    io.Writer
	logOut io.Writer

	// Logging
	logCfg config.LogConfig
	logger *slog.Logger

	//TXManager
	txManager trm.Manager

	// Database, only when PG_DSN is set
	pgConfig  config.PGConfig
	dbMu      sync.Mutex
	dbClient  *pgxpool.Pool
	closeOnce sync.Once

	// Gambler bits
	gamblerRepo repository.GamblerRepository

	// Table bits
	gameCfg     config.GameConfig
	prompter    service.Prompter
	printer     service.Printer
	catalog     []service.Bet
	gameServ    service.GameService
	sessionServ service.SessionService
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{
		in:     os.Stdin,
		out:    os.Stdout,
		logOut: os.Stderr,
	}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *slog.Logger {
	if sp.logger == nil {
		sp.logger = slog.New(slog.NewTextHandler(sp.logOut, &slog.HandlerOptions{
			Level: sp.LogCfg().Level(),
		}))
	}
	return sp.logger
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

// usePostgres reports whether bankrolls go to Postgres instead of memory
func (sp *ServiceProvider) usePostgres() bool {
	return sp.PgConfig().DSN() != ""
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	sp.dbMu.Lock()
	defer sp.dbMu.Unlock()

	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = gambler_repo.Migrate(ctx, dbc)
		if err != nil {
			panic("failed to migrate db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if !sp.usePostgres() {
			sp.txManager = txmanager.NewPassThrough()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) GamblerRepo(ctx context.Context) repository.GamblerRepository {
	if sp.gamblerRepo == nil {
		if sp.usePostgres() {
			sp.gamblerRepo = gambler_repo.NewGamblerRepository(sp.DBClient(ctx))
		} else {
			sp.Logger().Debug("PG_DSN not set, bankroll kept in memory")
			sp.gamblerRepo = gambler_repo.NewMemoryRepository()
		}
	}
	return sp.gamblerRepo
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(env.GameConfigPath())
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) Printer() service.Printer {
	if sp.printer == nil {
		sp.printer = console.NewPrinter(sp.out)
	}
	return sp.printer
}

func (sp *ServiceProvider) Prompter() service.Prompter {
	if sp.prompter == nil {
		sp.prompter = console.NewPrompter(sp.in, sp.out)
	}
	return sp.prompter
}

func (sp *ServiceProvider) Catalog() []service.Bet {
	if sp.catalog == nil {
		bets, err := bet.NewCatalog(sp.GameCfg().Catalog())
		if err != nil {
			panic("failed to build bet catalog: " + err.Error())
		}
		sp.catalog = bets
	}
	return sp.catalog
}

func (sp *ServiceProvider) GameService() service.GameService {
	if sp.gameServ == nil {
		g, err := game.NewGameService(
			sp.GameCfg().GameName(),
			wheel.New(nil),
			sp.Catalog(),
			sp.Prompter(),
			sp.Printer(),
			sp.Logger(),
		)
		if err != nil {
			panic("failed to create game: " + err.Error())
		}
		sp.gameServ = g
	}
	return sp.gameServ
}

func (sp *ServiceProvider) SessionService(ctx context.Context) service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = session.NewSessionService(
			sp.GameCfg(),
			sp.GameService(),
			sp.GamblerRepo(ctx),
			sp.TXManager(ctx),
			sp.Printer(),
			sp.Logger(),
		)
	}
	return sp.sessionServ
}

// Close releases the database pool if one was opened
func (sp *ServiceProvider) Close() {
	sp.closeOnce.Do(func() {
		sp.dbMu.Lock()
		defer sp.dbMu.Unlock()

		if sp.dbClient != nil {
			sp.dbClient.Close()
		}
	})
}
