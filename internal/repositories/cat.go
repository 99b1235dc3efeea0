package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/neko-list/internal/models"
)

// catSelect joins every cat with the summary of its owner.
const catSelect = `
	SELECT c.id, c.name, c.breed, c.personality, c.origin, c.age, c.color, c.weight,
	       c.description, c.user_id, c.created_at, c.updated_at,
	       u.id AS "owner.id", u.name AS "owner.name", u.country AS "owner.country"
	FROM cats c
	JOIN users u ON u.id = c.user_id
`

type CatReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCatReadRepository(db *sqlx.DB, txGetter TxGetter) *CatReadRepository {
	return &CatReadRepository{db: db, txGetter: txGetter}
}

// List returns all cats, newest first.
func (r *CatReadRepository) List(ctx context.Context) ([]models.CatDB, error) {
	query := catSelect + ` ORDER BY c.created_at DESC, c.id DESC`

	ex := executor(ctx, r.db, r.txGetter)

	cats := []models.CatDB{}
	err := sqlx.SelectContext(ctx, ex, &cats, ex.Rebind(query))

	logQuery(query, nil, len(cats), err)

	if err != nil {
		return nil, fmt.Errorf("list cats: %w", err)
	}
	return cats, nil
}

// GetByID returns the cat with the given id, or nil.
func (r *CatReadRepository) GetByID(ctx context.Context, id int64) (*models.CatDB, error) {
	query := catSelect + ` WHERE c.id = ?`

	ex := executor(ctx, r.db, r.txGetter)

	var cat models.CatDB
	err := sqlx.GetContext(ctx, ex, &cat, ex.Rebind(query), id)

	logQuery(query, []any{id}, cat.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cat: %w", err)
	}
	return &cat, nil
}

type CatWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCatWriteRepository(db *sqlx.DB, txGetter TxGetter) *CatWriteRepository {
	return &CatWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts cat and returns its generated id.
func (r *CatWriteRepository) Save(ctx context.Context, cat *models.CatDB) (int64, error) {
	const query = `
		INSERT INTO cats (name, breed, personality, origin, age, color, weight, description, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	args := []any{
		cat.Name, cat.Breed, cat.Personality, cat.Origin, cat.Age, cat.Color,
		cat.Weight, cat.Description, cat.UserID, cat.CreatedAt, cat.UpdatedAt,
	}

	ex := executor(ctx, r.db, r.txGetter)

	var id int64
	err := sqlx.GetContext(ctx, ex, &id, ex.Rebind(query), args...)

	logQuery(query, args, id, err)

	if err != nil {
		return 0, fmt.Errorf("save cat: %w", err)
	}
	return id, nil
}

// Update overwrites the writable fields of the cat with cat.ID.
func (r *CatWriteRepository) Update(ctx context.Context, cat *models.CatDB) error {
	const query = `
		UPDATE cats
		SET name = ?, breed = ?, personality = ?, origin = ?, age = ?, color = ?,
		    weight = ?, description = ?, updated_at = ?
		WHERE id = ?
	`
	args := []any{
		cat.Name, cat.Breed, cat.Personality, cat.Origin, cat.Age, cat.Color,
		cat.Weight, cat.Description, cat.UpdatedAt, cat.ID,
	}

	ex := executor(ctx, r.db, r.txGetter)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("update cat: %w", err)
	}
	return nil
}

// Delete removes the cat with the given id.
func (r *CatWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM cats WHERE id = ?`

	ex := executor(ctx, r.db, r.txGetter)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("delete cat: %w", err)
	}
	return nil
}
