package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/plakawatch/provision/internal/common"
	"github.com/plakawatch/provision/internal/dbx"
	"github.com/plakawatch/provision/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, email, password, name, role, created_at FROM users
		 WHERE email = ?
		 `
	return scanAccount(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query :=
		`SELECT id, email, password, name, role, created_at FROM users
		 WHERE id = ?
		 `
	return scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) Create(ctx context.Context, account *models.Account) error {
	query :=
		`INSERT INTO users (id, email, password, name, role, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 `
	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Email, account.Password, account.Name, string(account.Role), account.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateByEmail(ctx context.Context, email, password, name string, role models.Role) error {
	query :=
		`UPDATE users SET password = ?, name = ?, role = ?
		 WHERE email = ?
		 `
	if _, err := r.db.ExecContext(ctx, query, password, name, string(role), email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateByID(ctx context.Context, id, email, password, name string, role models.Role) error {
	query :=
		`UPDATE users SET email = ?, password = ?, name = ?, role = ?
		 WHERE id = ?
		 `
	if _, err := r.db.ExecContext(ctx, query, email, password, name, string(role), id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	var role string
	err := row.Scan(&account.ID, &account.Email, &account.Password, &account.Name, &role, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	account.Role = models.Role(role)
	return account, nil
}
