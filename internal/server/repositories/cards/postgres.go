// Package cards tracks action card unlocks and remaining uses.
package cards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, playerID, cardID string) (*models.PlayerCard, error) {
	query := `SELECT player_id, card_id, unlocked, uses_remaining FROM player_cards
		WHERE player_id = $1 AND card_id = $2`

	c := &models.PlayerCard{}
	err := r.db.QueryRowContext(ctx, query, playerID, cardID).Scan(&c.PlayerID, &c.CardID, &c.Unlocked, &c.UsesRemaining)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

// Grant unlocks the card and adds uses.
func (r *PostgresRepository) Grant(ctx context.Context, playerID, cardID string, uses int64) error {
	query := `
		INSERT INTO player_cards (player_id, card_id, unlocked, uses_remaining)
		VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (player_id, card_id) DO UPDATE SET
			unlocked = TRUE,
			uses_remaining = player_cards.uses_remaining + EXCLUDED.uses_remaining`

	if _, err := r.db.ExecContext(ctx, query, playerID, cardID, uses); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ConsumeUse decrements one use if the card is unlocked and has uses left,
// otherwise it returns common.ErrCardUnavailable.
func (r *PostgresRepository) ConsumeUse(ctx context.Context, playerID, cardID string) error {
	query := `
		UPDATE player_cards SET uses_remaining = uses_remaining - 1
		WHERE player_id = $1 AND card_id = $2 AND unlocked AND uses_remaining > 0`

	return dbx.ExecGuarded(ctx, r.db, common.ErrCardUnavailable, query, playerID, cardID)
}
