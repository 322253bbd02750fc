// Package services contains server-side business logic. Each service owns a
// *sql.DB, a RepositoryManager and the shared game Env, and persists the
// results of the pure vault, combat and mastery rules.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dmitrijs2005/vaultsiege/internal/clock"
	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
	"github.com/dmitrijs2005/vaultsiege/internal/logging"
	"github.com/dmitrijs2005/vaultsiege/internal/random"
	"github.com/dmitrijs2005/vaultsiege/internal/server/catalog"
	"github.com/dmitrijs2005/vaultsiege/internal/server/config"
	"github.com/dmitrijs2005/vaultsiege/internal/server/currency"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
	"github.com/dmitrijs2005/vaultsiege/internal/server/notify"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vaultsiege/internal/server/vault"
)

var tracer = otel.Tracer("github.com/dmitrijs2005/vaultsiege/internal/server/services")

// maxConflictRetries bounds how often a read-modify-write is replayed after
// losing a version race.
const maxConflictRetries = 3

// sideEffectTimeout bounds one batch of notifications and challenge
// increments.
const sideEffectTimeout = 2 * time.Second

// dispatch runs best-effort work off the request path.
var dispatch = func(f func()) { go f() }

// background hands f a context that survives the request's cancellation but
// expires after sideEffectTimeout.
func background(ctx context.Context, f func(ctx context.Context)) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	dispatch(func() {
		defer cancel()
		f(ctx)
	})
}

// Env bundles the collaborators shared by the game services.
type Env struct {
	Clock           clock.Clock
	Day             clock.DayClock
	Params          vault.Params
	Catalog         *catalog.Catalog
	Rng             random.Source
	MasteryBaseCost int64

	// Syncer debounces vault currency corrections. When nil, corrections are
	// written immediately.
	Syncer   *currency.Syncer
	Notifier notify.Sink
	Logger   logging.Logger
}

// NewEnv builds an Env from server configuration using the real clock, the
// default catalog and a freshly seeded random source.
func NewEnv(cfg *config.Config, syncer *currency.Syncer, sink notify.Sink, log logging.Logger) (*Env, error) {
	dc, err := clock.NewDayClock(cfg.DayTimezone, cfg.DayStartHour)
	if err != nil {
		return nil, err
	}
	seed, err := random.NewSeed()
	if err != nil {
		return nil, fmt.Errorf("error seeding random source: %w", err)
	}

	params := vault.DefaultParams()
	if cfg.MaxMovesPerDay > 0 {
		params.MaxMovesPerDay = cfg.MaxMovesPerDay
	}
	if cfg.CooldownDuration > 0 {
		params.CooldownDuration = cfg.CooldownDuration
	}

	if log == nil {
		log = logging.Nop{}
	}
	if sink == nil {
		sink = notify.NewLogSink(log)
	}

	return &Env{
		Clock:           clock.RealClock{},
		Day:             dc,
		Params:          params,
		Catalog:         catalog.Default(),
		Rng:             random.New(seed),
		MasteryBaseCost: cfg.MasteryBaseCost,
		Syncer:          syncer,
		Notifier:        sink,
		Logger:          log,
	}, nil
}

// loadedVault is a vault after read-repair plus the profile it was
// reconciled against.
type loadedVault struct {
	vault    *models.Vault
	profile  *models.Profile
	storedPP int64
	// dirty means regeneration changed persisted state.
	dirty bool
}

// desynced reports whether the stored vault copy of the balance differs from
// the profile.
func (l *loadedVault) desynced() bool {
	return l.profile != nil && l.storedPP != l.profile.Balance
}

// loadVault reads a player's vault, creating it from the profile balance when
// create is set, mirrors the authoritative profile balance and runs the daily
// regeneration. Nothing is written except a freshly created vault.
func loadVault(ctx context.Context, rm repomanager.RepositoryManager, db dbx.DBTX, env *Env, playerID string, now time.Time, create bool) (*loadedVault, error) {
	var (
		profile *models.Profile
		err     error
	)
	if create {
		profile, err = rm.Profiles(db).Ensure(ctx, playerID)
	} else {
		profile, err = rm.Profiles(db).Get(ctx, playerID)
		if errors.Is(err, common.ErrorNotFound) {
			profile, err = nil, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("error loading profile: %w", err)
	}

	repo := rm.Vaults(db)
	v, err := repo.Get(ctx, playerID)
	switch {
	case errors.Is(err, common.ErrorNotFound) && create:
		var balance int64
		if profile != nil {
			balance = profile.Balance
		}
		v = vault.New(playerID, balance, now, env.Day, env.Params)
		created, cerr := repo.Create(ctx, v)
		if cerr != nil {
			return nil, fmt.Errorf("error creating vault: %w", cerr)
		}
		if !created {
			// lost the race to a concurrent first read
			return nil, common.ErrVersionConflict
		}
	case err != nil:
		return nil, err
	}

	lv := &loadedVault{vault: v, profile: profile, storedPP: v.CurrentPP}
	if profile != nil {
		vault.ApplyCurrency(v, profile.Balance)
	}
	lv.dirty = vault.Regenerate(v, now, env.Day, env.Params.CooldownDuration)
	return lv, nil
}

// retryOnConflict replays fn while it fails with a version conflict.
func retryOnConflict(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if err = fn(); !errors.Is(err, common.ErrVersionConflict) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return err
}
