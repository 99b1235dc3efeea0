package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/neko-list/internal/models"
	"github.com/sbilibin2017/neko-list/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := storage.OpenSQLite(ctx, filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.Migrate(ctx, db))

	return db
}

func TestRepositories_SQLite(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	userWrite := NewUserWriteRepository(db, nil)
	userRead := NewUserReadRepository(db, nil)
	catWrite := NewCatWriteRepository(db, nil)
	catRead := NewCatReadRepository(db, nil)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	owner, err := userWrite.Save(ctx, &models.UserDB{
		Name:         "Taro",
		Email:        "taro@example.com",
		PasswordHash: "digest",
		Country:      strPtr("Japan"),
		CreatedAt:    base,
		UpdatedAt:    base,
	})
	require.NoError(t, err)
	assert.Positive(t, owner.ID)

	_, err = userWrite.Save(ctx, &models.UserDB{
		Name:         "Taro 2",
		Email:        "taro@example.com",
		PasswordHash: "digest",
		CreatedAt:    base,
		UpdatedAt:    base,
	})
	assert.ErrorIs(t, err, ErrDuplicate)

	byEmail, err := userRead.GetByEmail(ctx, "taro@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, owner.ID, byEmail.ID)
	assert.True(t, base.Equal(byEmail.CreatedAt))

	missing, err := userRead.GetByID(ctx, 999)
	assert.NoError(t, err)
	assert.Nil(t, missing)

	cats, err := catRead.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)

	var ids []int64
	for i, name := range []string{"Tama", "Kuro", "Mike"} {
		ts := base.Add(time.Duration(i) * time.Minute)
		id, err := catWrite.Save(ctx, &models.CatDB{
			Name:        name,
			Breed:       "Mix",
			Personality: "calm",
			UserID:      owner.ID,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	cats, err = catRead.List(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, []string{"Mike", "Kuro", "Tama"}, []string{cats[0].Name, cats[1].Name, cats[2].Name})
	assert.Equal(t, models.UserSummary{ID: owner.ID, Name: "Taro", Country: strPtr("Japan")}, cats[0].Owner)

	cat, err := catRead.GetByID(ctx, ids[0])
	require.NoError(t, err)
	require.NotNil(t, cat)

	age := 5
	weight := 4.5
	cat.Age = &age
	cat.Weight = &weight
	cat.UpdatedAt = base.Add(time.Hour)
	require.NoError(t, catWrite.Update(ctx, cat))

	updated, err := catRead.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 5, *updated.Age)
	assert.Equal(t, 4.5, *updated.Weight)
	assert.Equal(t, "Tama", updated.Name)
	assert.True(t, base.Equal(updated.CreatedAt))
	assert.True(t, base.Add(time.Hour).Equal(updated.UpdatedAt))

	require.NoError(t, catWrite.Delete(ctx, ids[0]))
	gone, err := catRead.GetByID(ctx, ids[0])
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRepositories_SQLite_TxRollback(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	tx, err := db.Beginx()
	require.NoError(t, err)

	txGetter := func(ctx context.Context) *sqlx.Tx { return tx }
	userWrite := NewUserWriteRepository(db, txGetter)
	userRead := NewUserReadRepository(db, txGetter)

	now := time.Now().UTC()
	saved, err := userWrite.Save(ctx, &models.UserDB{
		Name:         "Hana",
		Email:        "hana@example.com",
		PasswordHash: "digest",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	inTx, err := userRead.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.NotNil(t, inTx)

	require.NoError(t, tx.Rollback())

	after, err := NewUserReadRepository(db, nil).GetByID(ctx, saved.ID)
	assert.NoError(t, err)
	assert.Nil(t, after)
}
