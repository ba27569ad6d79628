package core

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

type (
	DBExecutor interface {
		Exec(query string, args ...interface{}) (sql.Result, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
		Query(query string, args ...interface{}) (*sql.Rows, error)
		QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
		QueryRow(query string, args ...interface{}) *sql.Row
		QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	}

	DBTransactor interface {
		DBExecutor

		Commit() error
		Rollback() error
	}

	// DB is a store able to open transactions. Repositories accept the
	// returned DBTransactor as their optional executor.
	DB interface {
		DBExecutor

		Begin(ctx context.Context) (DBTransactor, error)
	}
)

// WithTx runs fn inside a transaction, committed when fn returns nil and rolled back otherwise.
func WithTx(ctx context.Context, db DB, fn func(exec DBExecutor) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "starting transaction")
	}
	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return errors.Wrap(tx.Commit(), "committing transaction")
}
