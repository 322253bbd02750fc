package dbx

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var errStale = errors.New("stale")

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS vaults (player_id TEXT PRIMARY KEY, current_pp INTEGER, version INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO vaults VALUES ('p1', 100, 1)`)
	require.NoError(t, err)
	return db
}

func currentPP(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	var pp int64
	require.NoError(t, db.QueryRow(`SELECT current_pp FROM vaults WHERE player_id = 'p1'`).Scan(&pp))
	return pp
}

const stealPP = `UPDATE vaults SET current_pp = current_pp - ?, version = version + 1 WHERE player_id = ? AND version = ?`

func TestWithTx_CommitsGuardedWrite(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return ExecGuarded(ctx, tx, errStale, stealPP, 30, "p1", 1)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(70), currentPP(t, db))
}

func TestWithTx_StaleVersionRollsBack(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if err := ExecGuarded(ctx, tx, errStale, stealPP, 30, "p1", 1); err != nil {
			return err
		}
		return ExecGuarded(ctx, tx, errStale, stealPP, 30, "p1", 1)
	})
	assert.ErrorIs(t, err, errStale)
	assert.Equal(t, int64(100), currentPP(t, db), "first write must be rolled back")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupDB(t)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		assert.Equal(t, int64(100), currentPP(t, db), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, ExecGuarded(ctx, tx, errStale, stealPP, 30, "p1", 1))
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		t.Fatal("fn must not run without a transaction")
		return nil
	})
	assert.ErrorContains(t, err, "begin tx")
}

func TestWithTx_CommitAndRollbackErrors(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error { return nil })
		assert.ErrorContains(t, err, "commit tx: serialization failure")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback is joined onto fn error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(errors.New("connection reset"))

		err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error { return errStale })
		assert.ErrorIs(t, err, errStale)
		assert.ErrorContains(t, err, "rollback tx: connection reset")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestExecGuarded(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	const consume = `UPDATE player_cards SET uses_remaining = uses_remaining - 1 WHERE player_id = $1`
	q := regexp.QuoteMeta(consume)

	mock.ExpectExec(q).WithArgs("p1").WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, ExecGuarded(ctx, db, errStale, consume, "p1"))

	mock.ExpectExec(q).WithArgs("p1").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, ExecGuarded(ctx, db, errStale, consume, "p1"), errStale)

	mock.ExpectExec(q).WithArgs("p1").WillReturnError(errors.New("boom"))
	assert.ErrorContains(t, ExecGuarded(ctx, db, errStale, consume, "p1"), "db error: boom")

	mock.ExpectExec(q).WithArgs("p1").WillReturnResult(sqlmock.NewErrorResult(errors.New("no count")))
	assert.ErrorContains(t, ExecGuarded(ctx, db, errStale, consume, "p1"), "rows affected error")

	assert.NoError(t, mock.ExpectationsWereMet())
}
