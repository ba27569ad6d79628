package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/housepoints/core/classroom"
)

type classRepository struct {
	db *sqlx.DB
}

var _ classroom.Repository = (*classRepository)(nil)

func NewClassRepository(db *sqlx.DB) classroom.Repository {
	return &classRepository{db: db}
}

func (repo *classRepository) CreateClass(ctx context.Context, c classroom.Class) (classroom.Class, error) {
	c.ID = newID()
	q := repo.db.Rebind(`INSERT INTO classes (id, name, teacher_email, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`)
	if _, err := repo.db.ExecContext(ctx, q, c.ID, c.Name, c.TeacherEmail, c.CreatedAt, c.UpdatedAt); err != nil {
		return classroom.Class{}, trapErr(err, nil, "inserting class")
	}
	return repo.GetClass(ctx, c.ID)
}

func (repo *classRepository) QueryClasses(ctx context.Context) ([]classroom.Class, error) {
	classes := make([]classroom.Class, 0)
	q := `SELECT id, name, teacher_email, created_at, updated_at FROM classes ORDER BY name`
	if err := repo.db.SelectContext(ctx, &classes, q); err != nil {
		return nil, trapErr(err, nil, "selecting classes")
	}
	return classes, nil
}

func (repo *classRepository) GetClass(ctx context.Context, id string) (classroom.Class, error) {
	var c classroom.Class
	q := repo.db.Rebind(`SELECT id, name, teacher_email, created_at, updated_at FROM classes WHERE id = ?`)
	if err := repo.db.GetContext(ctx, &c, q, id); err != nil {
		return classroom.Class{}, trapErr(err, classroom.ErrNotFound, "selecting class")
	}
	return c, nil
}

func (repo *classRepository) UpdateClass(ctx context.Context, c classroom.Class) (classroom.Class, error) {
	q := repo.db.Rebind(`UPDATE classes SET name = ?, teacher_email = ?, updated_at = ? WHERE id = ?`)
	res, err := repo.db.ExecContext(ctx, q, c.Name, c.TeacherEmail, c.UpdatedAt, c.ID)
	if err != nil {
		return classroom.Class{}, trapErr(err, nil, "updating class")
	}
	if err = checkAffected(res, classroom.ErrNotFound, "updating class"); err != nil {
		return classroom.Class{}, err
	}
	return repo.GetClass(ctx, c.ID)
}

func (repo *classRepository) DeleteClass(ctx context.Context, id string) error {
	q := repo.db.Rebind(`DELETE FROM classes WHERE id = ?`)
	res, err := repo.db.ExecContext(ctx, q, id)
	if err != nil {
		return trapErr(err, nil, "deleting class")
	}
	return checkAffected(res, classroom.ErrNotFound, "deleting class")
}
