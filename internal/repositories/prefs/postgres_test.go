package prefs

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestPostgresEnsureDefault_UsesConflictClause(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+notification_preferences.*VALUES\s*\(\$1,\s*TRUE,\s*TRUE,\s*TRUE,\s*TRUE,\s*\$2\)\s*ON\s+CONFLICT\s*\(user_id\)\s+DO\s+NOTHING\s*$`

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(q).
		WithArgs("USER-1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.EnsureDefault(context.Background(), "USER-1", now); err != nil {
		t.Fatalf("EnsureDefault error: %v", err)
	}
}

func TestPostgresEnsureDefault_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+notification_preferences.*$`

	mock.ExpectExec(q).WillReturnError(errors.New("db down"))

	err := repo.EnsureDefault(context.Background(), "USER-1", time.Now())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
