package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/neko-list/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catRowColumns = []string{
	"id", "name", "breed", "personality", "origin", "age", "color", "weight",
	"description", "user_id", "created_at", "updated_at",
	"owner.id", "owner.name", "owner.country",
}

func TestCatReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .* FROM cats c JOIN users u ON u.id = c.user_id ORDER BY c.created_at DESC, c.id DESC`).
		WillReturnRows(sqlmock.NewRows(catRowColumns).
			AddRow(2, "Kuro", "Bombay", "bold", nil, 2, "black", 3.5, nil, 1, now, now, 1, "Taro", "Japan").
			AddRow(1, "Tama", "Mix", "calm", nil, nil, nil, nil, nil, 1, now, now, 1, "Taro", "Japan"))

	repo := NewCatReadRepository(db, nil)
	cats, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)

	assert.Equal(t, int64(2), cats[0].ID)
	assert.Equal(t, 2, *cats[0].Age)
	assert.Equal(t, 3.5, *cats[0].Weight)
	assert.Equal(t, models.UserSummary{ID: 1, Name: "Taro", Country: strPtr("Japan")}, cats[0].Owner)
	assert.Nil(t, cats[1].Age)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatReadRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM cats`).
		WillReturnRows(sqlmock.NewRows(catRowColumns))

	repo := NewCatReadRepository(db, nil)
	cats, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cats)
	assert.Empty(t, cats)
}

func TestCatReadRepository_GetByID(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name string
		mockFn  func(m sqlmock.Sqlmock)
		wantNil bool
		wantErr bool
	}{
		{
			name: "found",
			mockFn: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT .* WHERE c.id = \?`).
					WithArgs(int64(5)).
					WillReturnRows(sqlmock.NewRows(catRowColumns).
						AddRow(5, "Tama", "Mix", "calm", "Tokyo", 3, "white", 4.2, "fluffy", 1, now, now, 1, "Taro", nil))
			},
		},
		{
			name: "not found",
			mockFn: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT .* WHERE c.id = \?`).
					WithArgs(int64(5)).
					WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "db error",
			mockFn: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT .* WHERE c.id = \?`).
					WithArgs(int64(5)).
					WillReturnError(errors.New("boom"))
			},
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mockFn(mock)

			repo := NewCatReadRepository(db, nil)
			cat, err := repo.GetByID(context.Background(), 5)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, cat)
			} else {
				require.NotNil(t, cat)
				assert.Equal(t, "Tama", cat.Name)
				assert.Equal(t, "Tokyo", *cat.Origin)
				assert.Equal(t, "Taro", cat.Owner.Name)
				assert.Nil(t, cat.Owner.Country)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCatWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC()
	age := 3

	cat := &models.CatDB{
		Name:        "Tama",
		Breed:       "Mix",
		Personality: "calm",
		Age:         &age,
		UserID:      1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectQuery(`INSERT INTO cats .* RETURNING id`).
		WithArgs("Tama", "Mix", "calm", nil, &age, nil, nil, nil, int64(1), now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	repo := NewCatWriteRepository(db, nil)
	id, err := repo.Save(context.Background(), cat)
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC()

	cat := &models.CatDB{ID: 4, Name: "Tama", Breed: "Mix", Personality: "lazy", UpdatedAt: now}

	mock.ExpectExec(`UPDATE cats SET .* WHERE id = \?`).
		WithArgs("Tama", "Mix", "lazy", nil, nil, nil, nil, nil, now, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCatWriteRepository(db, nil)
	assert.NoError(t, repo.Update(context.Background(), cat))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatWriteRepository_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`DELETE FROM cats WHERE id = \?`).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewCatWriteRepository(db, nil)
		assert.NoError(t, repo.Delete(context.Background(), 4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`DELETE FROM cats WHERE id = \?`).
			WithArgs(int64(4)).
			WillReturnError(errors.New("locked"))

		repo := NewCatWriteRepository(db, nil)
		assert.Error(t, repo.Delete(context.Background(), 4))
	})
}
