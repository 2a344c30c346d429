package accounts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/plakawatch/provision/internal/common"
	"github.com/plakawatch/provision/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id         TEXT PRIMARY KEY,
  email      TEXT NOT NULL UNIQUE,
  password   TEXT NOT NULL,
  name       TEXT NOT NULL,
  role       TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func testAccount(id, email string) *models.Account {
	return &models.Account{
		ID:        id,
		Email:     email,
		Password:  "digest",
		Name:      "Name",
		Role:      models.RoleGuard,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateAndGetByEmail(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, testAccount("USER-1", "g@x.com")))

	got, err := r.GetByEmail(ctx, "g@x.com")
	require.NoError(t, err)
	assert.Equal(t, "USER-1", got.ID)
	assert.Equal(t, models.RoleGuard, got.Role)
}

func TestGetByEmail_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByEmail(context.Background(), "ghost@x.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByID(context.Background(), "USER-GHOST")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate_DuplicateEmailFails(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, testAccount("USER-1", "g@x.com")))
	err := r.Create(ctx, testAccount("USER-2", "g@x.com"))
	require.Error(t, err, "email unique constraint must hold")
}

func TestUpdateByEmail_LeavesIDAndEmailAlone(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, testAccount("USER-1", "g@x.com")))
	require.NoError(t, r.UpdateByEmail(ctx, "g@x.com", "digest2", "New Name", models.RoleAdmin))

	got, err := r.GetByEmail(ctx, "g@x.com")
	require.NoError(t, err)
	assert.Equal(t, "USER-1", got.ID)
	assert.Equal(t, "digest2", got.Password)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, models.RoleAdmin, got.Role)
}

func TestUpdateByID_ChangesEmail(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, testAccount("USER-1", "old@x.com")))
	require.NoError(t, r.UpdateByID(ctx, "USER-1", "new@x.com", "digest2", "Name", models.RoleAdmin))

	got, err := r.GetByID(ctx, "USER-1")
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", got.Email)

	_, err = r.GetByEmail(ctx, "old@x.com")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}
