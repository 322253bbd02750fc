// Package vaults provides the PostgreSQL-backed vault store. Every write is
// guarded by the row version so racing writers surface as
// common.ErrVersionConflict instead of overwriting each other.
package vaults

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

const columns = `player_id, capacity, current_pp, vault_health, max_vault_health,
	shield_strength, max_shield_strength, overshield,
	generator_level, generator_pending_pp, generator_last_reset,
	moves_remaining, max_moves_per_day, last_move_reset, vault_health_cooldown,
	capacity_upgrades, shield_upgrades, generator_upgrades,
	version, created_at, updated_at`

// PostgresRepository implements vault storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get loads a vault. Missing vaults return common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, playerID string) (*models.Vault, error) {
	query := `SELECT ` + columns + ` FROM vaults WHERE player_id = $1`

	v, err := scanVault(r.db.QueryRowContext(ctx, query, playerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

// Create inserts v unless the player already has a vault. It reports
// whether the row was inserted; a concurrent first access loses quietly.
func (r *PostgresRepository) Create(ctx context.Context, v *models.Vault) (bool, error) {
	query := `
		INSERT INTO vaults (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, 1, $19, $19)
		ON CONFLICT (player_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query,
		v.PlayerID, v.Capacity, v.CurrentPP, v.VaultHealth, v.MaxVaultHealth,
		v.ShieldStrength, v.MaxShieldStrength, v.Overshield,
		v.GeneratorLevel, v.GeneratorPendingPP, v.GeneratorLastReset,
		v.MovesRemaining, v.MaxMovesPerDay, v.LastMoveReset, nullTime(v.VaultHealthCooldown),
		v.CapacityUpgrades, v.ShieldUpgrades, v.GeneratorUpgrades,
		v.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	if n == 1 {
		v.Version = 1
		v.UpdatedAt = v.CreatedAt
	}
	return n == 1, nil
}

// Update writes every mutable field if the stored version still matches
// v.Version, then bumps v.Version. A stale version returns
// common.ErrVersionConflict and writes nothing.
func (r *PostgresRepository) Update(ctx context.Context, v *models.Vault) error {
	query := `
		UPDATE vaults SET
			capacity = $3, current_pp = $4, vault_health = $5, max_vault_health = $6,
			shield_strength = $7, max_shield_strength = $8, overshield = $9,
			generator_level = $10, generator_pending_pp = $11, generator_last_reset = $12,
			moves_remaining = $13, max_moves_per_day = $14, last_move_reset = $15,
			vault_health_cooldown = $16,
			capacity_upgrades = $17, shield_upgrades = $18, generator_upgrades = $19,
			version = version + 1, updated_at = $20
		WHERE player_id = $1 AND version = $2`

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		v.PlayerID, v.Version,
		v.Capacity, v.CurrentPP, v.VaultHealth, v.MaxVaultHealth,
		v.ShieldStrength, v.MaxShieldStrength, v.Overshield,
		v.GeneratorLevel, v.GeneratorPendingPP, v.GeneratorLastReset,
		v.MovesRemaining, v.MaxMovesPerDay, v.LastMoveReset,
		nullTime(v.VaultHealthCooldown),
		v.CapacityUpgrades, v.ShieldUpgrades, v.GeneratorUpgrades,
		now)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		v.Version++
		v.UpdatedAt = now
		return nil
	case 0:
		return common.ErrVersionConflict
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// SyncCurrency mirrors the profile balance into the vault in one
// conditional statement, re-clamping vault health. It is a no-op when the
// copies already agree.
func (r *PostgresRepository) SyncCurrency(ctx context.Context, playerID string, balance int64) error {
	query := `
		UPDATE vaults SET
			current_pp = $2,
			vault_health = LEAST(vault_health, $2, max_vault_health),
			version = version + 1,
			updated_at = now()
		WHERE player_id = $1 AND current_pp <> $2`

	if _, err := r.db.ExecContext(ctx, query, playerID, balance); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func scanVault(row *sql.Row) (*models.Vault, error) {
	var (
		v        models.Vault
		cooldown sql.NullTime
	)
	err := row.Scan(
		&v.PlayerID, &v.Capacity, &v.CurrentPP, &v.VaultHealth, &v.MaxVaultHealth,
		&v.ShieldStrength, &v.MaxShieldStrength, &v.Overshield,
		&v.GeneratorLevel, &v.GeneratorPendingPP, &v.GeneratorLastReset,
		&v.MovesRemaining, &v.MaxMovesPerDay, &v.LastMoveReset, &cooldown,
		&v.CapacityUpgrades, &v.ShieldUpgrades, &v.GeneratorUpgrades,
		&v.Version, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if cooldown.Valid {
		t := cooldown.Time
		v.VaultHealthCooldown = &t
	}
	return &v, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
