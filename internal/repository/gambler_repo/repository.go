package gambler_repo

import (
	"context"
	"errors"
	"fmt"
	"roulette/internal/model"
	"roulette/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table       = "gamblers"
	colID       = "id"
	colName     = "name"
	colBankroll = "bankroll"
)

const schema = `CREATE TABLE IF NOT EXISTS gamblers (
	id       UUID PRIMARY KEY,
	name     TEXT NOT NULL UNIQUE,
	bankroll BIGINT NOT NULL
)`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

// NewGamblerRepository stores bankrolls in Postgres. Calls made inside a
// transaction manager's Do run on that transaction.
func NewGamblerRepository(dbc *pgxpool.Pool) repository.GamblerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Migrate creates the gamblers table if it is missing
func Migrate(ctx context.Context, dbc *pgxpool.Pool) error {
	if _, err := dbc.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create %s table: %w", table, err)
	}
	return nil
}

func selectByName(name string) sq.SelectBuilder {
	return psql.Select(colID, colName, colBankroll).
		From(table).
		Where(sq.Eq{colName: name})
}

func insertGambler(g *model.Gambler) sq.InsertBuilder {
	return psql.Insert(table).
		Columns(colID, colName, colBankroll).
		Values(g.ID().String(), g.Name(), int64(g.Bankroll()))
}

func updateBankroll(id uuid.UUID, bankroll int) sq.UpdateBuilder {
	return psql.Update(table).
		Set(colBankroll, int64(bankroll)).
		Where(sq.Eq{colID: id.String()})
}

// GetByName - returns the gambler stored under name
func (r *repo) GetByName(ctx context.Context, name string) (*model.Gambler, error) {
	sqlStr, args, err := selectByName(name).ToSql()
	if err != nil {
		return nil, err
	}

	var (
		rawID    string
		stored   string
		bankroll int64
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&rawID, &stored, &bankroll)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("bad gambler id %q: %w", rawID, err)
	}

	return model.RestoreGambler(id, stored, int(bankroll)), nil
}

// Create - inserts a new gambler
func (r *repo) Create(ctx context.Context, gambler *model.Gambler) error {
	sqlStr, args, err := insertGambler(gambler).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// UpdateBankroll - overwrites the stored bankroll
func (r *repo) UpdateBankroll(ctx context.Context, id uuid.UUID, bankroll int) error {
	sqlStr, args, err := updateBankroll(id, bankroll).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}
