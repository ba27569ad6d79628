package sqlxrepos

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/storage/database"
)

func newID() string {
	return uuid.NewString()
}

// getExec returns the caller's executor when one is given, db otherwise.
// A given executor must be a sqlx handle, as opened by database.NewDB.
func getExec(db *sqlx.DB, exec []core.DBExecutor) (sqlx.ExtContext, error) {
	if len(exec) == 0 || exec[0] == nil {
		return db, nil
	}
	ext, ok := exec[0].(sqlx.ExtContext)
	if !ok {
		return nil, errors.Errorf("unsupported executor %T", exec[0])
	}
	return ext, nil
}

// trapErr maps driver errors onto domain errors:
// no rows -> notFound, unique violation -> core.ErrConflict, missing table -> core.ErrSchemaMissing.
func trapErr(err error, notFound error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Cause(err) == sql.ErrNoRows && notFound != nil:
		return notFound
	case database.IsUniqueViolation(err):
		return errors.Wrap(core.ErrConflict, msg)
	case database.IsUndefinedTable(err):
		return errors.Wrap(core.ErrSchemaMissing, msg)
	default:
		return errors.Wrap(err, msg)
	}
}

// checkAffected returns notFound when res touched no row.
func checkAffected(res sql.Result, notFound error, msg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, msg)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
