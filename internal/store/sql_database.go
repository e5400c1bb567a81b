package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// DB wraps *sql.DB together with the dialect it was opened with so that
// repositories and migrations stay backend-agnostic.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// NewConnect opens the database backend selected by the DSN scheme:
// "postgres://" and "postgresql://" DSNs use the pgx driver, anything else
// is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Dialect returns the goose dialect name of the underlying backend
// ("pgx" or "sqlite3").
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return errors.Is(sqliteErr.ExtendedCode, sqlite3.ErrConstraintUnique) ||
			errors.Is(sqliteErr.ExtendedCode, sqlite3.ErrConstraintPrimaryKey)
	}

	return false
}
