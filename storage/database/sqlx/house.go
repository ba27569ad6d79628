package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/housepoints/core/house"
)

type houseRepository struct {
	db *sqlx.DB
}

var _ house.Repository = (*houseRepository)(nil)

func NewHouseRepository(db *sqlx.DB) house.Repository {
	return &houseRepository{db: db}
}

func (repo *houseRepository) CreateHouse(ctx context.Context, h house.House) (house.House, error) {
	h.ID = newID()
	q := repo.db.Rebind(`INSERT INTO houses (id, name, colour, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`)
	if _, err := repo.db.ExecContext(ctx, q, h.ID, h.Name, h.Colour, h.CreatedAt, h.UpdatedAt); err != nil {
		return house.House{}, trapErr(err, nil, "inserting house")
	}
	return repo.GetHouse(ctx, h.ID)
}

func (repo *houseRepository) QueryHouses(ctx context.Context) ([]house.House, error) {
	houses := make([]house.House, 0)
	q := `SELECT id, name, colour, created_at, updated_at FROM houses ORDER BY name`
	if err := repo.db.SelectContext(ctx, &houses, q); err != nil {
		return nil, trapErr(err, nil, "selecting houses")
	}
	return houses, nil
}

func (repo *houseRepository) GetHouse(ctx context.Context, id string) (house.House, error) {
	var h house.House
	q := repo.db.Rebind(`SELECT id, name, colour, created_at, updated_at FROM houses WHERE id = ?`)
	if err := repo.db.GetContext(ctx, &h, q, id); err != nil {
		return house.House{}, trapErr(err, house.ErrNotFound, "selecting house")
	}
	return h, nil
}

func (repo *houseRepository) UpdateHouse(ctx context.Context, h house.House) (house.House, error) {
	q := repo.db.Rebind(`UPDATE houses SET name = ?, colour = ?, updated_at = ? WHERE id = ?`)
	res, err := repo.db.ExecContext(ctx, q, h.Name, h.Colour, h.UpdatedAt, h.ID)
	if err != nil {
		return house.House{}, trapErr(err, nil, "updating house")
	}
	if err = checkAffected(res, house.ErrNotFound, "updating house"); err != nil {
		return house.House{}, err
	}
	return repo.GetHouse(ctx, h.ID)
}

func (repo *houseRepository) DeleteHouse(ctx context.Context, id string) error {
	q := repo.db.Rebind(`DELETE FROM houses WHERE id = ?`)
	res, err := repo.db.ExecContext(ctx, q, id)
	if err != nil {
		return trapErr(err, nil, "deleting house")
	}
	return checkAffected(res, house.ErrNotFound, "deleting house")
}
