package accounts

import (
	"context"
	"fmt"

	"github.com/plakawatch/provision/internal/dbx"
	"github.com/plakawatch/provision/internal/models"
)

// PostgresRepository implements Repository against PostgreSQL.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, email, password, name, role, created_at FROM users
		 WHERE email = $1
		 `
	return scanAccount(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query :=
		`SELECT id, email, password, name, role, created_at FROM users
		 WHERE id = $1
		 `
	return scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) error {
	query :=
		`INSERT INTO users (id, email, password, name, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `
	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Email, account.Password, account.Name, string(account.Role), account.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateByEmail(ctx context.Context, email, password, name string, role models.Role) error {
	query :=
		`UPDATE users SET password = $1, name = $2, role = $3
		 WHERE email = $4
		 `
	if _, err := r.db.ExecContext(ctx, query, password, name, string(role), email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateByID(ctx context.Context, id, email, password, name string, role models.Role) error {
	query :=
		`UPDATE users SET email = $1, password = $2, name = $3, role = $4
		 WHERE id = $5
		 `
	if _, err := r.db.ExecContext(ctx, query, email, password, name, string(role), id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
