// Package accounts persists login accounts in the users table.
package accounts

import (
	"context"

	"github.com/plakawatch/provision/internal/models"
)

// Repository is the storage contract for login accounts. Lookups return
// common.ErrorNotFound when no row matches; updates never change id or
// created_at.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	UpdateByEmail(ctx context.Context, email, password, name string, role models.Role) error
	UpdateByID(ctx context.Context, id, email, password, name string, role models.Role) error
}
