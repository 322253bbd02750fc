// Package moves persists each player's mastery overlay over catalog moves.
package moves

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

const columns = `player_id, move_id, unlocked, mastery_level,
	damage, pp_steal, shield_boost, healing, debuff_strength, buff_strength`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, playerID string) ([]models.PlayerMove, error) {
	query := `SELECT ` + columns + ` FROM player_moves WHERE player_id = $1 ORDER BY move_id`

	rows, err := r.db.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.PlayerMove
	for rows.Next() {
		var m models.PlayerMove
		if err := rows.Scan(scanTargets(&m)...); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, playerID, moveID string) (*models.PlayerMove, error) {
	query := `SELECT ` + columns + ` FROM player_moves WHERE player_id = $1 AND move_id = $2`

	var m models.PlayerMove
	if err := r.db.QueryRowContext(ctx, query, playerID, moveID).Scan(scanTargets(&m)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &m, nil
}

// Save upserts the overlay. Unlock state is monotonic: a stored true is
// never overwritten by false.
func (r *PostgresRepository) Save(ctx context.Context, m *models.PlayerMove) error {
	query := `
		INSERT INTO player_moves (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (player_id, move_id) DO UPDATE SET
			unlocked = player_moves.unlocked OR EXCLUDED.unlocked,
			mastery_level = EXCLUDED.mastery_level,
			damage = EXCLUDED.damage,
			pp_steal = EXCLUDED.pp_steal,
			shield_boost = EXCLUDED.shield_boost,
			healing = EXCLUDED.healing,
			debuff_strength = EXCLUDED.debuff_strength,
			buff_strength = EXCLUDED.buff_strength`

	s := m.Stats
	_, err := r.db.ExecContext(ctx, query,
		m.PlayerID, m.MoveID, m.Unlocked, m.MasteryLevel,
		s.Damage, s.PPSteal, s.ShieldBoost, s.Healing, s.DebuffStrength, s.BuffStrength)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// UpdateLevel writes an upgraded overlay only if the stored mastery level is
// still fromLevel. A missing row is inserted. A lost race returns
// common.ErrVersionConflict.
func (r *PostgresRepository) UpdateLevel(ctx context.Context, m *models.PlayerMove, fromLevel int) error {
	query := `
		INSERT INTO player_moves (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (player_id, move_id) DO UPDATE SET
			unlocked = player_moves.unlocked OR EXCLUDED.unlocked,
			mastery_level = EXCLUDED.mastery_level,
			damage = EXCLUDED.damage,
			pp_steal = EXCLUDED.pp_steal,
			shield_boost = EXCLUDED.shield_boost,
			healing = EXCLUDED.healing,
			debuff_strength = EXCLUDED.debuff_strength,
			buff_strength = EXCLUDED.buff_strength
		WHERE player_moves.mastery_level = $11`

	s := m.Stats
	return dbx.ExecGuarded(ctx, r.db, common.ErrVersionConflict, query,
		m.PlayerID, m.MoveID, m.Unlocked, m.MasteryLevel,
		s.Damage, s.PPSteal, s.ShieldBoost, s.Healing, s.DebuffStrength, s.BuffStrength,
		fromLevel)
}

// Unlock flips an existing overlay to unlocked. Missing rows return
// common.ErrorNotFound so the caller can seed one with Save.
func (r *PostgresRepository) Unlock(ctx context.Context, playerID, moveID string) error {
	query := `UPDATE player_moves SET unlocked = TRUE WHERE player_id = $1 AND move_id = $2`

	return dbx.ExecGuarded(ctx, r.db, common.ErrorNotFound, query, playerID, moveID)
}

func scanTargets(m *models.PlayerMove) []any {
	return []any{
		&m.PlayerID, &m.MoveID, &m.Unlocked, &m.MasteryLevel,
		&m.Stats.Damage, &m.Stats.PPSteal, &m.Stats.ShieldBoost,
		&m.Stats.Healing, &m.Stats.DebuffStrength, &m.Stats.BuffStrength,
	}
}
