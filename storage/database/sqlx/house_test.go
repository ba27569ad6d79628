package sqlxrepos_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/classroom"
	"github.com/trezcool/housepoints/core/house"
	"github.com/trezcool/housepoints/storage/database"
	sqlxrepos "github.com/trezcool/housepoints/storage/database/sqlx"
	testutil "github.com/trezcool/housepoints/tests"
)

func TestHouseRepository(t *testing.T) {
	ctx := context.Background()
	repo := sqlxrepos.NewHouseRepository(testutil.PrepareDB(t))

	red := testutil.CreateHouse(t, repo, "Phoenix", "red")
	blue := testutil.CreateHouse(t, repo, "Kraken", "blue")
	assert.NotEmpty(t, red.ID)
	assert.NotEqual(t, red.ID, blue.ID)

	houses, err := repo.QueryHouses(ctx)
	require.NoError(t, err)
	if assert.Len(t, houses, 2) {
		assert.Equal(t, "Kraken", houses[0].Name) // ordered by name
		assert.Equal(t, "Phoenix", houses[1].Name)
	}

	got, err := repo.GetHouse(ctx, red.ID)
	require.NoError(t, err)
	assert.Equal(t, "red", got.Colour)

	t.Run("duplicate name", func(t *testing.T) {
		now := time.Now().UTC()
		_, err := repo.CreateHouse(ctx, house.House{Name: "Phoenix", CreatedAt: now, UpdatedAt: now})
		assert.True(t, core.IsConflict(err), "got %v", err)

		blue.Name = "Phoenix"
		_, err = repo.UpdateHouse(ctx, blue)
		assert.True(t, core.IsConflict(err), "got %v", err)
	})

	t.Run("update", func(t *testing.T) {
		red.Colour = "crimson"
		red.UpdatedAt = time.Now().UTC()
		updated, err := repo.UpdateHouse(ctx, red)
		require.NoError(t, err)
		assert.Equal(t, "crimson", updated.Colour)
		assert.Equal(t, "Phoenix", updated.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetHouse(ctx, "nope")
		assert.Equal(t, house.ErrNotFound, errors.Cause(err))

		_, err = repo.UpdateHouse(ctx, house.House{ID: "nope", Name: "x"})
		assert.Equal(t, house.ErrNotFound, errors.Cause(err))

		assert.Equal(t, house.ErrNotFound, errors.Cause(repo.DeleteHouse(ctx, "nope")))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteHouse(ctx, blue.ID))
		_, err := repo.GetHouse(ctx, blue.ID)
		assert.Equal(t, house.ErrNotFound, errors.Cause(err))
	})
}

func TestClassRepository(t *testing.T) {
	ctx := context.Background()
	repo := sqlxrepos.NewClassRepository(testutil.PrepareDB(t))

	c := testutil.CreateClass(t, repo, "7B", "teacher@school.test")

	got, err := repo.GetClass(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "teacher@school.test", got.TeacherEmail)

	now := time.Now().UTC()
	_, err = repo.CreateClass(ctx, classroom.Class{Name: "7B", CreatedAt: now, UpdatedAt: now})
	assert.True(t, core.IsConflict(err), "got %v", err)

	classes, err := repo.QueryClasses(ctx)
	require.NoError(t, err)
	assert.Len(t, classes, 1)

	require.NoError(t, repo.DeleteClass(ctx, c.ID))
	_, err = repo.GetClass(ctx, c.ID)
	assert.Equal(t, classroom.ErrNotFound, errors.Cause(err))
}

func TestSchemaMissing(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(":memory:") // not migrated
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = sqlxrepos.NewHouseRepository(db).QueryHouses(ctx)
	assert.True(t, core.IsSchemaMissing(err), "got %v", err)

	_, err = sqlxrepos.NewClassRepository(db).GetClass(ctx, "x")
	assert.True(t, core.IsSchemaMissing(err), "got %v", err)

	_, err = sqlxrepos.NewTermRepository(db).GetActiveTerm(ctx)
	assert.True(t, core.IsSchemaMissing(err), "got %v", err)
}
