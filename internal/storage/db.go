// Package storage opens the local SQLite vault database, applies embedded
// goose migrations, and wires up the repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/passvault-app/passvault/internal/repositories/credentials"
	"github.com/passvault-app/passvault/internal/repositories/users"
	"github.com/passvault-app/passvault/internal/storage/migrations"
)

// Repositories bundles the vault's persistence layer around one database
// handle.
type Repositories struct {
	Users       users.Repository
	Credentials credentials.Repository
	DB          *sql.DB
}

// RunMigrations applies all embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the vault database at path,
// enables foreign-key enforcement, runs migrations, and returns the
// repositories. Pass ":memory:" for an in-memory database in tests.
//
// The pool is capped at one connection: the vault has a single logical user
// session, and a single writer preserves the cascade-delete and uniqueness
// invariants without long-held locks.
func InitDatabase(ctx context.Context, path string) (*Repositories, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repositories{
		Users:       users.NewSQLiteRepository(db),
		Credentials: credentials.NewSQLiteRepository(db),
		DB:          db,
	}, nil
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	return r.DB.Close()
}
