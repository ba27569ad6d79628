package database

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/housepoints/core"
)

type txDB struct {
	*sqlx.DB
}

var _ core.DB = txDB{}

// NewDB adapts db to core.DB. Its transactions are *sqlx.Tx, which the sqlx repositories run on.
func NewDB(db *sqlx.DB) core.DB {
	return txDB{db}
}

func (db txDB) Begin(ctx context.Context) (core.DBTransactor, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
