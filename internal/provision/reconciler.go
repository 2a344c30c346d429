// Package provision converges the user store to a desired set of login
// accounts: one administrator plus any number of guards. Every operation
// is idempotent, so a run can be repeated or resumed safely.
package provision

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/plakawatch/provision/internal/common"
	"github.com/plakawatch/provision/internal/cryptox"
	"github.com/plakawatch/provision/internal/dbx"
	"github.com/plakawatch/provision/internal/idgen"
	"github.com/plakawatch/provision/internal/models"
	"github.com/plakawatch/provision/internal/storage"
)

// Outcome reports what a reconcile call did to the store.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
)

// NormalizeEmail trims surrounding whitespace and lower-cases an address.
// All store lookups and writes use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LocalPart returns the part of an email address before the '@', used as
// the default display name for guards.
func LocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// Reconciler applies the minimal create/update mutation per account.
type Reconciler struct {
	store storage.RepositoryManager
	alloc *idgen.Allocator
	hash  func(string) string
	now   func() time.Time
}

// NewReconciler wires a Reconciler with the real clock, crypto/rand backed
// id allocation, and the store's digest format.
func NewReconciler(store storage.RepositoryManager) *Reconciler {
	return NewReconcilerWith(store, idgen.NewAllocator(), cryptox.Digest, time.Now)
}

// NewReconcilerWith lets tests supply a fixed clock and allocator.
func NewReconcilerWith(store storage.RepositoryManager, alloc *idgen.Allocator, hash func(string) string, now func() time.Time) *Reconciler {
	return &Reconciler{store: store, alloc: alloc, hash: hash, now: now}
}

// ReconcileAdmin converges the singleton administrator account. Matching
// tries the normalized email first, then the fixed admin id, so an email
// change still lands on the same row. Creation seeds the default
// notification preferences in the same transaction.
func (r *Reconciler) ReconcileAdmin(ctx context.Context, email, password, name string) (Outcome, error) {
	emailNorm := NormalizeEmail(email)
	digest := r.hash(password)
	if name == "" {
		name = "Admin"
	}

	repo := r.store.Accounts(r.store.Conn())

	_, err := repo.GetByEmail(ctx, emailNorm)
	switch {
	case err == nil:
		if err := repo.UpdateByEmail(ctx, emailNorm, digest, name, models.RoleAdmin); err != nil {
			return "", fmt.Errorf("updating admin: %w", err)
		}
		return OutcomeUpdated, nil
	case !errors.Is(err, common.ErrorNotFound):
		return "", fmt.Errorf("looking up admin by email: %w", err)
	}

	_, err = repo.GetByID(ctx, idgen.AdminID)
	switch {
	case err == nil:
		if err := repo.UpdateByID(ctx, idgen.AdminID, emailNorm, digest, name, models.RoleAdmin); err != nil {
			return "", fmt.Errorf("updating admin: %w", err)
		}
		return OutcomeUpdated, nil
	case !errors.Is(err, common.ErrorNotFound):
		return "", fmt.Errorf("looking up admin by id: %w", err)
	}

	account := &models.Account{
		ID:        idgen.AdminID,
		Email:     emailNorm,
		Password:  digest,
		Name:      name,
		Role:      models.RoleAdmin,
		CreatedAt: r.now().UTC(),
	}
	if err := r.create(ctx, account); err != nil {
		return "", fmt.Errorf("creating admin: %w", err)
	}
	return OutcomeCreated, nil
}

// ReconcileGuard converges one guard account. Guards are identified by
// normalized email only; the id generated at creation is preserved across
// every later update.
func (r *Reconciler) ReconcileGuard(ctx context.Context, email, password, name string) (Outcome, error) {
	emailNorm := NormalizeEmail(email)
	digest := r.hash(password)
	if name == "" {
		name = LocalPart(emailNorm)
	}

	repo := r.store.Accounts(r.store.Conn())

	existing, err := repo.GetByEmail(ctx, emailNorm)
	switch {
	case err == nil:
		if err := repo.UpdateByID(ctx, existing.ID, emailNorm, digest, name, models.RoleGuard); err != nil {
			return "", fmt.Errorf("updating guard: %w", err)
		}
		return OutcomeUpdated, nil
	case !errors.Is(err, common.ErrorNotFound):
		return "", fmt.Errorf("looking up guard: %w", err)
	}

	id, err := r.alloc.GuardID()
	if err != nil {
		return "", fmt.Errorf("allocating guard id: %w", err)
	}

	account := &models.Account{
		ID:        id,
		Email:     emailNorm,
		Password:  digest,
		Name:      name,
		Role:      models.RoleGuard,
		CreatedAt: r.now().UTC(),
	}
	if err := r.create(ctx, account); err != nil {
		return "", fmt.Errorf("creating guard: %w", err)
	}
	return OutcomeCreated, nil
}

// create inserts the account and seeds its default notification
// preferences atomically, so a killed run never leaves an account without
// a preference row.
func (r *Reconciler) create(ctx context.Context, account *models.Account) error {
	return dbx.WithTx(ctx, r.store.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.store.Accounts(tx).Create(ctx, account); err != nil {
			return err
		}
		return r.store.Prefs(tx).EnsureDefault(ctx, account.ID, account.CreatedAt)
	})
}
