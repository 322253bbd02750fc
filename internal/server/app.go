// Package server wires configuration, storage, notification sinks and the
// siege services into a running gRPC server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/vaultsiege/internal/logging"
	"github.com/dmitrijs2005/vaultsiege/internal/server/config"
	"github.com/dmitrijs2005/vaultsiege/internal/server/currency"
	"github.com/dmitrijs2005/vaultsiege/internal/server/notify"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vaultsiege/internal/server/services"
	"github.com/dmitrijs2005/vaultsiege/internal/telemetry"

	gs "github.com/dmitrijs2005/vaultsiege/internal/server/grpc"
)

const (
	serviceName     = "vaultsiege"
	shutdownTimeout = 10 * time.Second
)

var (
	openDB         = sql.Open
	newRepoManager = repomanager.NewPostgresRepositoryManager
	dialRedis      = notify.DialRedis
	setupTelemetry = telemetry.Setup
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	rm     repomanager.RepositoryManager
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := openDB("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &App{config: c, logger: logger, db: db, rm: newRepoManager()}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// buildSink logs every notification and also publishes to Redis when an
// address is configured. The returned close func is never nil.
func (app *App) buildSink(ctx context.Context) (notify.Sink, func() error, error) {
	logSink := notify.NewLogSink(app.logger)
	if app.config.RedisAddr == "" {
		return logSink, func() error { return nil }, nil
	}

	rs, err := dialRedis(ctx, app.config.RedisAddr, app.config.RedisChannel)
	if err != nil {
		return nil, nil, err
	}
	return notify.Multi{logSink, rs}, rs.Close, nil
}

// Run blocks until the context is cancelled, a signal arrives or the gRPC
// server fails. Pending currency corrections are flushed before returning.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	shutdownTracing, err := setupTelemetry(ctx, serviceName, app.config.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("telemetry init error: %w", err)
	}

	if err := app.rm.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	sink, closeSink, err := app.buildSink(ctx)
	if err != nil {
		return fmt.Errorf("notification sink error: %w", err)
	}

	// Corrections outlive the request and serving contexts so Close can
	// still flush them during shutdown.
	syncer := currency.NewSyncer(context.WithoutCancel(ctx), app.rm.Vaults(app.db), app.config.CurrencySyncDelay, app.logger)

	env, err := services.NewEnv(app.config, syncer, sink, app.logger)
	if err != nil {
		return fmt.Errorf("service env error: %w", err)
	}

	srv := gs.NewGRPCServer(
		app.config.EndpointAddrGRPC,
		app.logger,
		services.NewVaultService(app.db, app.rm, env),
		services.NewSiegeService(app.db, app.rm, env),
		services.NewMasteryService(app.db, app.rm, env),
		app.config.SecretKey,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	runErr := g.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	syncer.Close(shutdownCtx)
	err = errors.Join(runErr, closeSink(), shutdownTracing(shutdownCtx), app.db.Close())

	app.logger.Info(shutdownCtx, "App stopped")
	return err
}
