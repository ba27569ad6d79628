package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/housepoints/core/calendar"
	"github.com/trezcool/housepoints/core/entry"
)

type entryRepository struct {
	db *sqlx.DB
}

var _ entry.Repository = (*entryRepository)(nil)

func NewEntryRepository(db *sqlx.DB) entry.Repository {
	return &entryRepository{db: db}
}

const entrySelect = `
	SELECT e.id, e.week_id, w.week_start, e.class_id, e.house_id, e.points,
	       e.notes, e.category, e.submitted_by, e.submitted_at
	FROM entries e
	JOIN weeks w ON w.id = e.week_id`

func (repo *entryRepository) UpsertEntry(ctx context.Context, e entry.Entry) (entry.Entry, error) {
	q := repo.db.Rebind(`
		INSERT INTO entries (id, week_id, class_id, house_id, points, notes, category, submitted_by, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (week_id, class_id, house_id) DO UPDATE SET
			points = excluded.points,
			notes = excluded.notes,
			category = excluded.category,
			submitted_by = excluded.submitted_by,
			submitted_at = excluded.submitted_at`)
	_, err := repo.db.ExecContext(ctx, q,
		newID(), e.WeekID, e.ClassID, e.HouseID, e.Points, e.Notes, e.Category, e.SubmittedBy, e.SubmittedAt.UTC(),
	)
	if err != nil {
		return entry.Entry{}, trapErr(err, nil, "upserting entry")
	}

	// the id is the existing row's on conflict
	var stored entry.Entry
	q = repo.db.Rebind(entrySelect + ` WHERE e.week_id = ? AND e.class_id = ? AND e.house_id = ?`)
	if err = repo.db.GetContext(ctx, &stored, q, e.WeekID, e.ClassID, e.HouseID); err != nil {
		return entry.Entry{}, trapErr(err, entry.ErrNotFound, "selecting upserted entry")
	}
	return stored, nil
}

func (repo *entryRepository) QueryEntries(ctx context.Context, filter entry.Filter) ([]entry.Entry, error) {
	var (
		q    = entrySelect + ` WHERE 1 = 1`
		args []interface{}
	)
	if filter.WeekID != "" {
		q += ` AND e.week_id = ?`
		args = append(args, filter.WeekID)
	}
	if filter.ClassID != "" {
		q += ` AND e.class_id = ?`
		args = append(args, filter.ClassID)
	}
	if filter.HouseID != "" {
		q += ` AND e.house_id = ?`
		args = append(args, filter.HouseID)
	}
	q += ` ORDER BY w.week_start DESC, e.submitted_at DESC`

	entries := make([]entry.Entry, 0)
	if err := repo.db.SelectContext(ctx, &entries, repo.db.Rebind(q), args...); err != nil {
		return nil, trapErr(err, nil, "selecting entries")
	}
	return entries, nil
}

func (repo *entryRepository) GetEntry(ctx context.Context, id string) (entry.Entry, error) {
	var e entry.Entry
	q := repo.db.Rebind(entrySelect + ` WHERE e.id = ?`)
	if err := repo.db.GetContext(ctx, &e, q, id); err != nil {
		return entry.Entry{}, trapErr(err, entry.ErrNotFound, "selecting entry")
	}
	return e, nil
}

func (repo *entryRepository) DeleteEntriesByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	q, args, err := sqlx.In(`DELETE FROM entries WHERE id IN (?)`, ids)
	if err != nil {
		return trapErr(err, nil, "building delete query")
	}
	res, err := repo.db.ExecContext(ctx, repo.db.Rebind(q), args...)
	if err != nil {
		return trapErr(err, nil, "deleting entries")
	}
	return checkAffected(res, entry.ErrNotFound, "deleting entries")
}

func (repo *entryRepository) HouseTotals(ctx context.Context, rg calendar.Range) ([]entry.HouseTotal, error) {
	q := repo.db.Rebind(`
		SELECT h.id AS house_id, h.name, h.colour,
		       COALESCE(SUM(t.points), 0) AS points,
		       COUNT(t.id) AS entries
		FROM houses h
		LEFT JOIN (
			SELECT e.id, e.house_id, e.points
			FROM entries e
			JOIN weeks w ON w.id = e.week_id
			WHERE w.week_start BETWEEN ? AND ?
		) t ON t.house_id = h.id
		GROUP BY h.id, h.name, h.colour
		ORDER BY points DESC, h.name`)

	totals := make([]entry.HouseTotal, 0)
	if err := repo.db.SelectContext(ctx, &totals, q, rg.Start, rg.End); err != nil {
		return nil, trapErr(err, nil, "summing house points")
	}
	return totals, nil
}
