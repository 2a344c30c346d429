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

// PostgresRepository implements Repository against PostgreSQL.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) EnsureDefault(ctx context.Context, userID string, now time.Time) error {
	query :=
		`INSERT INTO notification_preferences
		     (user_id, plate_not_visible, warning_expired, vehicle_detected, incident_created, updated_at)
		 VALUES ($1, TRUE, TRUE, TRUE, TRUE, $2)
		 ON CONFLICT (user_id) DO NOTHING
		 `
	if _, err := r.db.ExecContext(ctx, query, userID, now); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.NotificationPreference, error) {
	query :=
		`SELECT user_id, plate_not_visible, warning_expired, vehicle_detected, incident_created, updated_at
		 FROM notification_preferences
		 WHERE user_id = $1
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
