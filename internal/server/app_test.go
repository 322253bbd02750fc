package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
	"github.com/dmitrijs2005/vaultsiege/internal/logging"
	"github.com/dmitrijs2005/vaultsiege/internal/server/config"
	"github.com/dmitrijs2005/vaultsiege/internal/server/notify"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/vaults"
	"github.com/dmitrijs2005/vaultsiege/internal/telemetry"
)

type fakeRepoManager struct {
	repomanager.RepositoryManager
	migrateErr error
	migrated   bool
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error {
	m.migrated = true
	return m.migrateErr
}

func (m *fakeRepoManager) Vaults(dbx.DBTX) vaults.Repository         { return nil }
func (m *fakeRepoManager) Challenges(dbx.DBTX) challenges.Repository { return nil }

func noTelemetry(t *testing.T) {
	t.Helper()
	orig := setupTelemetry
	t.Cleanup(func() { setupTelemetry = orig })
	setupTelemetry = func(context.Context, string, string) (telemetry.ShutdownFunc, error) {
		return func(context.Context) error { return nil }, nil
	}
}

func newTestApp(t *testing.T, rm repomanager.RepositoryManager) (*App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrGRPC = "127.0.0.1:0"

	return &App{config: cfg, logger: logging.Nop{}, db: db, rm: rm}, mock
}

func TestNewApp_OpenError(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })
	openDB = func(string, string) (*sql.DB, error) { return nil, errors.New("bad dsn") }

	cfg := &config.Config{}
	cfg.LoadDefaults()

	_, err := NewApp(cfg)
	assert.ErrorContains(t, err, "db open error")
}

func TestRun_MigrationError(t *testing.T) {
	noTelemetry(t)
	rm := &fakeRepoManager{migrateErr: errors.New("dirty")}
	app, _ := newTestApp(t, rm)

	err := app.Run(context.Background())
	assert.ErrorContains(t, err, "migration error")
	assert.True(t, rm.migrated)
}

func TestRun_TelemetryError(t *testing.T) {
	orig := setupTelemetry
	t.Cleanup(func() { setupTelemetry = orig })
	setupTelemetry = func(context.Context, string, string) (telemetry.ShutdownFunc, error) {
		return nil, errors.New("exporter")
	}

	rm := &fakeRepoManager{}
	app, _ := newTestApp(t, rm)

	err := app.Run(context.Background())
	assert.ErrorContains(t, err, "telemetry init error")
	assert.False(t, rm.migrated)
}

func TestRun_StopsOnCancel(t *testing.T) {
	noTelemetry(t)
	app, mock := newTestApp(t, &fakeRepoManager{})
	mock.ExpectClose()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(150 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildSink(t *testing.T) {
	app, _ := newTestApp(t, &fakeRepoManager{})

	sink, closeFn, err := app.buildSink(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &notify.LogSink{}, sink)
	assert.NoError(t, closeFn())

	orig := dialRedis
	t.Cleanup(func() { dialRedis = orig })
	dialRedis = func(context.Context, string, string) (*notify.RedisSink, error) {
		return nil, errors.New("redis ping: refused")
	}

	app.config.RedisAddr = "127.0.0.1:6379"
	_, _, err = app.buildSink(context.Background())
	assert.ErrorContains(t, err, "refused")
}
