package sqlxrepos

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/week"
)

type weekRepository struct {
	db *sqlx.DB
}

var _ week.Repository = (*weekRepository)(nil)

func NewWeekRepository(db *sqlx.DB) week.Repository {
	return &weekRepository{db: db}
}

const weekColumns = `id, week_start, deadline_at, created_at`

func (repo *weekRepository) InsertWeekIfAbsent(ctx context.Context, wk week.Week) error {
	q := repo.db.Rebind(`
		INSERT INTO weeks (id, week_start, deadline_at, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (week_start) DO NOTHING`)
	_, err := repo.db.ExecContext(ctx, q, newID(), wk.WeekStart, wk.DeadlineAt.UTC(), wk.CreatedAt.UTC())
	return trapErr(err, nil, "inserting week")
}

func (repo *weekRepository) GetWeekByStart(ctx context.Context, start core.Date) (week.Week, error) {
	var wk week.Week
	q := repo.db.Rebind(`SELECT ` + weekColumns + ` FROM weeks WHERE week_start = ?`)
	if err := repo.db.GetContext(ctx, &wk, q, start); err != nil {
		return week.Week{}, trapErr(err, week.ErrNotFound, "selecting week")
	}
	return wk, nil
}

func (repo *weekRepository) GetWeekByID(ctx context.Context, id string) (week.Week, error) {
	var wk week.Week
	q := repo.db.Rebind(`SELECT ` + weekColumns + ` FROM weeks WHERE id = ?`)
	if err := repo.db.GetContext(ctx, &wk, q, id); err != nil {
		return week.Week{}, trapErr(err, week.ErrNotFound, "selecting week")
	}
	return wk, nil
}

func (repo *weekRepository) QueryWeeks(ctx context.Context, filter week.Filter) ([]week.Week, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.From != nil {
		where = append(where, `week_start >= ?`)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where = append(where, `week_start <= ?`)
		args = append(args, *filter.To)
	}

	q := `SELECT ` + weekColumns + ` FROM weeks`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, ` AND `)
	}
	q += ` ORDER BY week_start DESC`

	weeks := make([]week.Week, 0)
	if err := repo.db.SelectContext(ctx, &weeks, repo.db.Rebind(q), args...); err != nil {
		return nil, trapErr(err, nil, "selecting weeks")
	}
	return weeks, nil
}
