package db

import (
	"context"
	"errors"
	"fmt"

	"newsdesk/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// UniqueViolation returns the name of the violated unique constraint, if any.
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// Migrate applies every pending migration. An empty path selects the
// migrations embedded in the binary.
func Migrate(connString string, path string) (applied bool, err error) {
	var m *migrate.Migrate
	if path == "" {
		source, err := iofs.New(migrations.FS, ".")
		if err != nil {
			return false, fmt.Errorf("could not open embedded migrations: %w", err)
		}
		m, err = migrate.NewWithSourceInstance("iofs", source, connString)
		if err != nil {
			return false, fmt.Errorf("could not prepare migrations: %w", err)
		}
	} else {
		m, err = migrate.New("file://"+path, connString)
		if err != nil {
			return false, fmt.Errorf("could not prepare migrations: %w", err)
		}
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not apply migrations: %w", err)
	}
	return true, nil
}
