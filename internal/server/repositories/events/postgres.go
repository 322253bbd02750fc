// Package events stores the append-only Attack Event log.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

const columns = `id, kind, attacker_id, target_id, move_id, card_id,
	total_damage, shield_damage, vault_health_damage, pp_stolen,
	overshield_absorbed, xp_gained, target_before, target_after, at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Append inserts ev, assigning an ID when it has none. Rows are never
// updated afterwards.
func (r *PostgresRepository) Append(ctx context.Context, ev *models.AttackEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	before, err := encodeDefenses(ev.TargetBefore)
	if err != nil {
		return err
	}
	after, err := encodeDefenses(ev.TargetAfter)
	if err != nil {
		return err
	}

	query := `INSERT INTO attack_events (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = r.db.ExecContext(ctx, query,
		ev.ID, string(ev.Kind), ev.AttackerID,
		nullString(ev.TargetID), nullString(ev.MoveID), nullString(ev.CardID),
		ev.TotalDamage, ev.ShieldDamage, ev.VaultHealthDamage, ev.PPStolen,
		ev.OvershieldAbsorbed, ev.XPGained, before, after, ev.At)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByAttackerSince returns the attacker's events at or after since.
func (r *PostgresRepository) ListByAttackerSince(ctx context.Context, attackerID string, since time.Time) ([]models.AttackEvent, error) {
	query := `SELECT ` + columns + ` FROM attack_events
		WHERE attacker_id = $1 AND at >= $2
		ORDER BY at`
	return r.list(ctx, query, attackerID, since)
}

// ListBetween returns all events in [from, to).
func (r *PostgresRepository) ListBetween(ctx context.Context, from, to time.Time) ([]models.AttackEvent, error) {
	query := `SELECT ` + columns + ` FROM attack_events
		WHERE at >= $1 AND at < $2
		ORDER BY at, id`
	return r.list(ctx, query, from, to)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.AttackEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.AttackEvent
	for rows.Next() {
		var (
			ev                    models.AttackEvent
			kind                  string
			target, move, card    sql.NullString
			beforeJSON, afterJSON []byte
		)
		if err := rows.Scan(
			&ev.ID, &kind, &ev.AttackerID, &target, &move, &card,
			&ev.TotalDamage, &ev.ShieldDamage, &ev.VaultHealthDamage, &ev.PPStolen,
			&ev.OvershieldAbsorbed, &ev.XPGained, &beforeJSON, &afterJSON, &ev.At,
		); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		ev.Kind = models.EventKind(kind)
		ev.TargetID, ev.MoveID, ev.CardID = target.String, move.String, card.String
		if ev.TargetBefore, err = decodeDefenses(beforeJSON); err != nil {
			return nil, err
		}
		if ev.TargetAfter, err = decodeDefenses(afterJSON); err != nil {
			return nil, err
		}
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func encodeDefenses(d *models.Defenses) (any, error) {
	if d == nil {
		return nil, nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode defenses: %w", err)
	}
	return string(b), nil
}

func decodeDefenses(b []byte) (*models.Defenses, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var d models.Defenses
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("decode defenses: %w", err)
	}
	return &d, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
