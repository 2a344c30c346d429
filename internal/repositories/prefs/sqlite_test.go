package prefs

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/plakawatch/provision/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE notification_preferences (
  user_id           TEXT PRIMARY KEY,
  plate_not_visible BOOLEAN NOT NULL DEFAULT 1,
  warning_expired   BOOLEAN NOT NULL DEFAULT 1,
  vehicle_detected  BOOLEAN NOT NULL DEFAULT 1,
  incident_created  BOOLEAN NOT NULL DEFAULT 1,
  updated_at        TIMESTAMP NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestEnsureDefault_InsertsAllFlagsEnabled(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, r.EnsureDefault(ctx, "USER-1", now))

	p, err := r.Get(ctx, "USER-1")
	require.NoError(t, err)
	assert.True(t, p.PlateNotVisible)
	assert.True(t, p.WarningExpired)
	assert.True(t, p.VehicleDetected)
	assert.True(t, p.IncidentCreated)
	assert.True(t, p.UpdatedAt.Equal(now))
}

func TestEnsureDefault_IsIdempotentNoOp(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, r.EnsureDefault(ctx, "USER-1", now))

	// the operator flips a flag between runs
	_, err := db.Exec(`UPDATE notification_preferences SET warning_expired = 0 WHERE user_id = 'USER-1'`)
	require.NoError(t, err)

	require.NoError(t, r.EnsureDefault(ctx, "USER-1", now.Add(time.Hour)))

	p, err := r.Get(ctx, "USER-1")
	require.NoError(t, err)
	assert.False(t, p.WarningExpired, "existing row must not be overwritten")
	assert.True(t, p.UpdatedAt.Equal(now))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM notification_preferences`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestGet_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.Get(context.Background(), "USER-GHOST")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
