package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/plakawatch/provision/internal/common"
	"github.com/plakawatch/provision/internal/dbx"
	"github.com/plakawatch/provision/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// EnsureDefault inserts the default preference row for userID unless one
// already exists. The conflict clause makes check-and-insert atomic.
func (r *SQLiteRepository) EnsureDefault(ctx context.Context, userID string, now time.Time) error {
	query :=
		`INSERT INTO notification_preferences
		     (user_id, plate_not_visible, warning_expired, vehicle_detected, incident_created, updated_at)
		 VALUES (?, 1, 1, 1, 1, ?)
		 ON CONFLICT(user_id) DO NOTHING
		 `
	if _, err := r.db.ExecContext(ctx, query, userID, now); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, userID string) (*models.NotificationPreference, error) {
	query :=
		`SELECT user_id, plate_not_visible, warning_expired, vehicle_detected, incident_created, updated_at
		 FROM notification_preferences
		 WHERE user_id = ?
		 `
	p := &models.NotificationPreference{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.PlateNotVisible, &p.WarningExpired, &p.VehicleDetected, &p.IncidentCreated, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}
