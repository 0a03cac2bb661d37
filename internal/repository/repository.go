// Package repository holds the SQL for users, accounts and transactions.
//
// Repositories run every call through an injected DBTX (the shared pool in
// production). Storage failures are translated once into *errs.HTTPError by
// sqlerr.HandleError; the driver error itself is only logged.
package repository

import (
	"context"
	"errors"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DBTX is the subset of *pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type base struct {
	db     DBTX
	logger *zerolog.Logger
}

// fail translates err and logs the original cause. Client-side failures
// (4xx) are logged at warn, everything else at error.
func (b *base) fail(operation string, err error) error {
	httpErr := sqlerr.HandleError(err)

	event := b.logger.Error()
	if httpErr.Status < 500 {
		event = b.logger.Warn()
	}
	event.Stack().
		Err(pkgerrors.WithStack(err)).
		Str("operation", operation).
		Str("error_code", httpErr.Code()).
		Msg("repository call failed")

	return httpErr
}

// one maps a single-row scan onto an Optional.
func one[T any](v T, err error) (model.Optional[T], error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return model.NotFound[T](), nil
	}
	if err != nil {
		return model.NotFound[T](), err
	}
	return model.Found(v), nil
}

// collect scans every row with scan, closing rows on all paths.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func rollback(ctx context.Context, tx pgx.Tx, logger *zerolog.Logger) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.Error().Err(err).Msg("failed to roll back transaction")
	}
}
