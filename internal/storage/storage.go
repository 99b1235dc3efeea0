// Package storage opens the relational store and keeps its schema current.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/neko-list/internal/config"
	"github.com/sbilibin2017/neko-list/internal/logger"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// Open connects to the store selected by cfg.DBDriver.
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return OpenPostgres(ctx, cfg.PostgresDSN(), cfg.PGMaxOpenConns, cfg.PGMaxIdleConns)
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", cfg.DBDriver)
	}
}

// OpenPostgres connects through the pgx stdlib driver.
func OpenPostgres(ctx context.Context, dsn string, maxOpen, maxIdle int) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, config.DriverPostgres, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: connect postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	return db, nil
}

// OpenSQLite opens (creating if needed) the database file at path.
// SQLite allows one writer, so the pool is limited to a single connection
// and requests serialize on it.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create sqlite dir: %w", err)
		}
	}

	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite", path)
	db, err := sqlx.ConnectContext(ctx, config.DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		country VARCHAR(100),
		hobby VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_email ON users (email)`,
	`CREATE TABLE IF NOT EXISTS cats (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		breed VARCHAR(100) NOT NULL,
		personality VARCHAR(255) NOT NULL,
		origin VARCHAR(100),
		age INTEGER,
		color VARCHAR(50),
		weight DOUBLE PRECISION,
		description TEXT,
		user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS ix_cats_created_at ON cats (created_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS ix_cats_user_id ON cats (user_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		country TEXT,
		hobby TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_email ON users (email)`,
	`CREATE TABLE IF NOT EXISTS cats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		breed TEXT NOT NULL,
		personality TEXT NOT NULL,
		origin TEXT,
		age INTEGER,
		color TEXT,
		weight REAL,
		description TEXT,
		user_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS ix_cats_created_at ON cats (created_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS ix_cats_user_id ON cats (user_id)`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var schema []string
	switch db.DriverName() {
	case config.DriverPostgres:
		schema = postgresSchema
	case config.DriverSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("storage: no schema for driver %q", db.DriverName())
	}

	for _, stmt := range schema {
		_, err := db.ExecContext(ctx, stmt)

		logger.Log.Infow("migrate",
			"query", strings.Join(strings.Fields(stmt), " "),
			"error", err,
		)

		if err != nil {
			return fmt.Errorf("storage: migrate: %w", err)
		}
	}
	return nil
}

// IsUniqueViolation reports whether err was raised by a unique index.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
