package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/term"
	"github.com/trezcool/housepoints/storage/database"
)

type termRepository struct {
	db *sqlx.DB
}

var _ term.Repository = (*termRepository)(nil)

func NewTermRepository(db *sqlx.DB) term.Repository {
	return &termRepository{db: db}
}

const termColumns = `id, name, start_date, end_date, is_active, created_at, updated_at`

func (repo *termRepository) CreateTerm(ctx context.Context, t term.Term, exec ...core.DBExecutor) (term.Term, error) {
	exe, err := getExec(repo.db, exec)
	if err != nil {
		return term.Term{}, err
	}

	t.ID = newID()
	q := exe.Rebind(`
		INSERT INTO terms (id, name, start_date, end_date, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if _, err = exe.ExecContext(ctx, q, t.ID, t.Name, t.StartDate, t.EndDate, false, t.CreatedAt, t.UpdatedAt); err != nil {
		return term.Term{}, trapErr(err, nil, "inserting term")
	}
	return repo.GetTerm(ctx, t.ID, exec...)
}

func (repo *termRepository) QueryTerms(ctx context.Context) ([]term.Term, error) {
	terms := make([]term.Term, 0)
	q := `SELECT ` + termColumns + ` FROM terms ORDER BY start_date DESC`
	if err := repo.db.SelectContext(ctx, &terms, q); err != nil {
		return nil, trapErr(err, nil, "selecting terms")
	}
	return terms, nil
}

func (repo *termRepository) GetTerm(ctx context.Context, id string, exec ...core.DBExecutor) (term.Term, error) {
	exe, err := getExec(repo.db, exec)
	if err != nil {
		return term.Term{}, err
	}

	var t term.Term
	q := exe.Rebind(`SELECT ` + termColumns + ` FROM terms WHERE id = ?`)
	if err = sqlx.GetContext(ctx, exe, &t, q, id); err != nil {
		return term.Term{}, trapErr(err, term.ErrNotFound, "selecting term")
	}
	return t, nil
}

func (repo *termRepository) GetActiveTerm(ctx context.Context) (term.Term, error) {
	var t term.Term
	q := repo.db.Rebind(`SELECT ` + termColumns + ` FROM terms WHERE is_active = ? ORDER BY updated_at DESC LIMIT 1`)
	if err := repo.db.GetContext(ctx, &t, q, true); err != nil {
		return term.Term{}, trapErr(err, term.ErrNoActiveTerm, "selecting active term")
	}
	return t, nil
}

func (repo *termRepository) UpdateTerm(ctx context.Context, t term.Term, exec ...core.DBExecutor) (term.Term, error) {
	exe, err := getExec(repo.db, exec)
	if err != nil {
		return term.Term{}, err
	}

	q := exe.Rebind(`UPDATE terms SET name = ?, start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`)
	res, err := exe.ExecContext(ctx, q, t.Name, t.StartDate, t.EndDate, t.UpdatedAt, t.ID)
	if err != nil {
		return term.Term{}, trapErr(err, nil, "updating term")
	}
	if err = checkAffected(res, term.ErrNotFound, "updating term"); err != nil {
		return term.Term{}, err
	}
	return repo.GetTerm(ctx, t.ID, exec...)
}

// ActivateTerm runs on exec when given, in a transaction of its own otherwise.
func (repo *termRepository) ActivateTerm(ctx context.Context, id string, updatedAt time.Time, exec ...core.DBExecutor) (term.Term, error) {
	if len(exec) == 0 {
		var t term.Term
		err := core.WithTx(ctx, database.NewDB(repo.db), func(tx core.DBExecutor) (err error) {
			t, err = repo.ActivateTerm(ctx, id, updatedAt, tx)
			return err
		})
		return t, err
	}

	exe, err := getExec(repo.db, exec)
	if err != nil {
		return term.Term{}, err
	}

	q := exe.Rebind(`UPDATE terms SET is_active = ?, updated_at = ? WHERE id = ?`)
	res, err := exe.ExecContext(ctx, q, true, updatedAt, id)
	if err != nil {
		return term.Term{}, trapErr(err, nil, "activating term")
	}
	if err = checkAffected(res, term.ErrNotFound, "activating term"); err != nil {
		return term.Term{}, err
	}

	q = exe.Rebind(`UPDATE terms SET is_active = ?, updated_at = ? WHERE id <> ? AND is_active = ?`)
	if _, err = exe.ExecContext(ctx, q, false, updatedAt, id, true); err != nil {
		return term.Term{}, trapErr(err, nil, "deactivating other terms")
	}
	return repo.GetTerm(ctx, id, exec...)
}

func (repo *termRepository) DeleteTerm(ctx context.Context, id string) error {
	q := repo.db.Rebind(`DELETE FROM terms WHERE id = ?`)
	res, err := repo.db.ExecContext(ctx, q, id)
	if err != nil {
		return trapErr(err, nil, "deleting term")
	}
	return checkAffected(res, term.ErrNotFound, "deleting term")
}
