// Package challenges accumulates daily-challenge progress counters.
package challenges

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Increment adds amount to the counter for (player, game day, event type).
func (r *PostgresRepository) Increment(ctx context.Context, playerID string, day time.Time, eventType string, amount int64) error {
	query := `
		INSERT INTO challenge_progress (player_id, day, event_type, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id, day, event_type) DO UPDATE SET
			amount = challenge_progress.amount + EXCLUDED.amount`

	if _, err := r.db.ExecContext(ctx, query, playerID, day, eventType, amount); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Progress returns the counters of one game day keyed by event type.
func (r *PostgresRepository) Progress(ctx context.Context, playerID string, day time.Time) (map[string]int64, error) {
	query := `SELECT event_type, amount FROM challenge_progress WHERE player_id = $1 AND day = $2`

	rows, err := r.db.QueryContext(ctx, query, playerID, day)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			kind   string
			amount int64
		)
		if err := rows.Scan(&kind, &amount); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		out[kind] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
