// Package prefs persists per-account notification preferences.
package prefs

import (
	"context"
	"time"

	"github.com/plakawatch/provision/internal/models"
)

// Repository is the storage contract for notification preferences.
//
// EnsureDefault is an atomic insert-if-absent: it inserts a row with all
// four alert flags enabled, or silently does nothing when one already
// exists, so an operator's later changes are never overwritten.
type Repository interface {
	EnsureDefault(ctx context.Context, userID string, now time.Time) error
	Get(ctx context.Context, userID string) (*models.NotificationPreference, error)
}
