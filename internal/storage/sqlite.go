package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/plakawatch/provision/internal/dbx"
	"github.com/plakawatch/provision/internal/repositories/accounts"
	"github.com/plakawatch/provision/internal/repositories/prefs"
	migrations "github.com/plakawatch/provision/internal/storage/migrations/sqlite"
)

type SQLiteRepositoryManager struct {
	db *sql.DB
}

func NewSQLiteRepositoryManager(ctx context.Context, dsn string) (*SQLiteRepositoryManager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// Single connection: this tool is the only writer, and it keeps
	// in-memory databases (used in tests) on one handle.
	db.SetMaxOpenConns(1)

	m := &SQLiteRepositoryManager{db: db}
	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return m, nil
}

func (m *SQLiteRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *SQLiteRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, ".")
}

func (m *SQLiteRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Prefs(db dbx.DBTX) prefs.Repository {
	return prefs.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}
