package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/neko-list/internal/models"
	"github.com/sbilibin2017/neko-list/internal/storage"
)

const userColumns = `id, name, email, password_hash, country, hobby, created_at, updated_at`

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with the given normalized email, or nil.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? LIMIT 1`
	return r.get(ctx, query, email)
}

// GetByID returns the user with the given id, or nil.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.get(ctx, query, id)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	ex := executor(ctx, r.db, r.txGetter)

	var user models.UserDB
	err := sqlx.GetContext(ctx, ex, &user, ex.Rebind(query), arg)

	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts user and returns it with the generated id.
// A taken email is reported as ErrDuplicate.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, country, hobby, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	args := []any{user.Name, user.Email, user.PasswordHash, user.Country, user.Hobby, user.CreatedAt, user.UpdatedAt}

	ex := executor(ctx, r.db, r.txGetter)

	var id int64
	err := sqlx.GetContext(ctx, ex, &id, ex.Rebind(query), args...)

	// The digest is left out of the log.
	logQuery(query, []any{user.Name, user.Email, user.Country, user.Hobby}, id, err)

	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("save user: %w", err)
	}

	saved := *user
	saved.ID = id
	return &saved, nil
}
