// Package storage opens the user store, applies embedded schema
// migrations, and hands out the repositories bound to it.
package storage

import (
	"context"
	"database/sql"
	"strings"

	"github.com/plakawatch/provision/internal/dbx"
	"github.com/plakawatch/provision/internal/repositories/accounts"
	"github.com/plakawatch/provision/internal/repositories/prefs"
)

// RepositoryManager owns the database handle for one backend and
// constructs repositories over any DBTX, so callers can bind them either
// to the shared connection or to a transaction.
type RepositoryManager interface {
	Conn() *sql.DB
	Ping(ctx context.Context) error
	RunMigrations(ctx context.Context) error
	Accounts(db dbx.DBTX) accounts.Repository
	Prefs(db dbx.DBTX) prefs.Repository
	Close() error
}

// Open selects a backend from the DSN shape: postgres:// or postgresql://
// URLs open PostgreSQL via pgx, anything else is treated as a SQLite
// database file path. Migrations run before the manager is returned.
func Open(ctx context.Context, dsn string) (RepositoryManager, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return NewPostgresRepositoryManager(ctx, dsn)
	}
	return NewSQLiteRepositoryManager(ctx, dsn)
}
