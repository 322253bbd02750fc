package challenges

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var day = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestIncrement(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO challenge_progress .* amount = challenge_progress\.amount \+ EXCLUDED\.amount`).
		WithArgs("p1", day, "pp_stolen", int64(40)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Increment(context.Background(), "p1", day, "pp_stolen", 40))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrement_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO challenge_progress`).WillReturnError(errors.New("boom"))

	assert.Error(t, repo.Increment(context.Background(), "p1", day, "attacks", 1))
}

func TestProgress(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT event_type, amount FROM challenge_progress`).
		WithArgs("p1", day).
		WillReturnRows(sqlmock.NewRows([]string{"event_type", "amount"}).
			AddRow("attacks", 2).AddRow("pp_stolen", 55))

	got, err := repo.Progress(context.Background(), "p1", day)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"attacks": 2, "pp_stolen": 55}, got)
}
