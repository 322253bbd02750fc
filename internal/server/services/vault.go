package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
	"github.com/dmitrijs2005/vaultsiege/internal/logging"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
	"github.com/dmitrijs2005/vaultsiege/internal/server/notify"
	"github.com/dmitrijs2005/vaultsiege/internal/server/quota"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/events"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vaultsiege/internal/server/vault"
)

// VaultStatus is a repaired vault together with derived read-only values.
type VaultStatus struct {
	Vault             *models.Vault
	Balance           int64
	XP                int64
	MovesRemaining    int64
	CooldownRemaining time.Duration
	Rates             vault.Rates
}

// VaultService reads vaults with lazy regeneration and applies economy
// operations paid from the profile balance.
type VaultService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	env         *Env
	log         logging.Logger
}

// NewVaultService constructs a VaultService.
func NewVaultService(db *sql.DB, m repomanager.RepositoryManager, env *Env) *VaultService {
	return &VaultService{
		db:          db,
		repomanager: m,
		env:         env,
		log:         env.Logger.With("module", "vault_service"),
	}
}

// GetVault returns the player's vault, creating it on first access. Daily
// resets, generator payout and cooldown expiry are applied and persisted
// before returning. A currency mismatch against the profile is corrected in
// the returned value and written back through the debounced syncer.
func (s *VaultService) GetVault(ctx context.Context, playerID string) (*VaultStatus, error) {
	ctx, span := tracer.Start(ctx, "VaultService.GetVault")
	defer span.End()

	var status *VaultStatus
	err := retryOnConflict(ctx, func() error {
		now := s.env.Clock.Now()
		lv, err := loadVault(ctx, s.repomanager, s.db, s.env, playerID, now, true)
		if err != nil {
			return err
		}
		remaining, err := remainingMoves(ctx, s.repomanager.Events(s.db), s.env, playerID, now)
		if err != nil {
			return err
		}
		if syncQuota(lv.vault, remaining, s.env.Params.MaxMovesPerDay) {
			lv.dirty = true
		}

		if lv.dirty {
			if err := s.repomanager.Vaults(s.db).Update(ctx, lv.vault); err != nil {
				return err
			}
		} else if lv.desynced() {
			s.syncCurrency(ctx, playerID, lv.storedPP, lv.profile.Balance)
		}

		status = newVaultStatus(lv, remaining, now, s.env)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return status, nil
}

// CollectGenerator moves the generator's pending pool into the profile
// balance and returns the amount collected.
func (s *VaultService) CollectGenerator(ctx context.Context, playerID string) (*VaultStatus, int64, error) {
	ctx, span := tracer.Start(ctx, "VaultService.CollectGenerator")
	defer span.End()

	var (
		status    *VaultStatus
		collected int64
	)
	err := retryOnConflict(ctx, func() error {
		now := s.env.Clock.Now()
		return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			lv, err := loadVault(ctx, s.repomanager, tx, s.env, playerID, now, true)
			if err != nil {
				return err
			}

			collected = vault.CollectGenerator(lv.vault)
			if collected > 0 {
				p, err := s.repomanager.Profiles(tx).Credit(ctx, playerID, collected, 0)
				if err != nil {
					return fmt.Errorf("error crediting profile: %w", err)
				}
				lv.profile = p
				vault.ApplyCurrency(lv.vault, p.Balance)
				lv.dirty = true
			}

			remaining, err := remainingMoves(ctx, s.repomanager.Events(tx), s.env, playerID, now)
			if err != nil {
				return err
			}
			if syncQuota(lv.vault, remaining, s.env.Params.MaxMovesPerDay) || lv.desynced() {
				lv.dirty = true
			}
			if lv.dirty {
				if err := s.repomanager.Vaults(tx).Update(ctx, lv.vault); err != nil {
					return err
				}
			}
			status = newVaultStatus(lv, remaining, now, s.env)
			return nil
		})
	})
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	if collected > 0 {
		s.notify(ctx, notify.Notification{
			Type:     notify.TypeCurrency,
			PlayerID: playerID,
			Payload:  map[string]any{"source": "generator", "amount": collected, "balance": status.Balance},
		})
	}
	return status, collected, nil
}

// UpgradeVault debits the next step of an upgrade track from the profile and
// applies it. It returns the price paid. Insufficient funds leave everything
// untouched.
func (s *VaultService) UpgradeVault(ctx context.Context, playerID string, kind vault.UpgradeKind) (*VaultStatus, int64, error) {
	ctx, span := tracer.Start(ctx, "VaultService.UpgradeVault")
	defer span.End()

	var (
		status *VaultStatus
		cost   int64
	)
	err := retryOnConflict(ctx, func() error {
		now := s.env.Clock.Now()
		return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			lv, err := loadVault(ctx, s.repomanager, tx, s.env, playerID, now, true)
			if err != nil {
				return err
			}

			cost, err = vault.UpgradeCost(lv.vault, kind)
			if err != nil {
				return err
			}
			p, err := s.repomanager.Profiles(tx).Debit(ctx, playerID, cost)
			if err != nil {
				return err
			}
			lv.profile = p
			if err := vault.ApplyUpgrade(lv.vault, kind); err != nil {
				return err
			}
			vault.ApplyCurrency(lv.vault, p.Balance)

			remaining, err := remainingMoves(ctx, s.repomanager.Events(tx), s.env, playerID, now)
			if err != nil {
				return err
			}
			syncQuota(lv.vault, remaining, s.env.Params.MaxMovesPerDay)
			if err := s.repomanager.Vaults(tx).Update(ctx, lv.vault); err != nil {
				return err
			}
			status = newVaultStatus(lv, remaining, now, s.env)
			return nil
		})
	})
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	s.notify(ctx, notify.Notification{
		Type:     notify.TypeMilestone,
		PlayerID: playerID,
		Payload:  map[string]any{"upgrade": string(kind), "cost": cost},
	})
	return status, cost, nil
}

func (s *VaultService) syncCurrency(ctx context.Context, playerID string, stored, balance int64) {
	if s.env.Syncer != nil {
		if _, err := s.env.Syncer.Observe(playerID, stored, balance); err == nil {
			return
		}
	}
	if err := s.repomanager.Vaults(s.db).SyncCurrency(ctx, playerID, balance); err != nil {
		s.log.Warn(ctx, "currency sync failed", "player", playerID, "error", err)
	}
}

func (s *VaultService) notify(ctx context.Context, n notify.Notification) {
	n.At = s.env.Clock.Now()
	background(ctx, func(ctx context.Context) {
		if err := s.env.Notifier.Notify(ctx, n); err != nil {
			s.log.Warn(ctx, "notification dropped", "type", n.Type, "player", n.PlayerID, "error", err)
		}
	})
}

// remainingMoves replays today's events of the player.
func remainingMoves(ctx context.Context, repo events.Repository, env *Env, playerID string, now time.Time) (int64, error) {
	evs, err := repo.ListByAttackerSince(ctx, playerID, env.Day.DayStart(now))
	if err != nil {
		return 0, fmt.Errorf("error listing events: %w", err)
	}
	return quota.Remaining(playerID, evs, now, env.Day, env.Params.MaxMovesPerDay), nil
}

// syncQuota refreshes the cached move counter from the replayed quota.
func syncQuota(v *models.Vault, remaining, limit int64) bool {
	if v.MaxMovesPerDay == limit && v.MovesRemaining == remaining {
		return false
	}
	v.MaxMovesPerDay = limit
	v.MovesRemaining = remaining
	return true
}

func newVaultStatus(lv *loadedVault, remaining int64, now time.Time, env *Env) *VaultStatus {
	st := &VaultStatus{
		Vault:             lv.vault,
		Balance:           lv.vault.CurrentPP,
		MovesRemaining:    remaining,
		CooldownRemaining: vault.CooldownRemaining(lv.vault, now, env.Params.CooldownDuration),
		Rates:             vault.GeneratorRates(lv.vault.GeneratorLevel),
	}
	if lv.profile != nil {
		st.Balance = lv.profile.Balance
		st.XP = lv.profile.XP
	}
	return st
}
