// Package profiles accesses the authoritative currency record of a player.
// Balance changes are single atomic statements, never read-modify-write.
package profiles

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

func (r *PostgresRepository) Get(ctx context.Context, playerID string) (*models.Profile, error) {
	query := `SELECT player_id, balance, xp FROM profiles WHERE player_id = $1`
	return r.one(ctx, query, common.ErrorNotFound, playerID)
}

// Ensure returns the profile, creating an empty one on first access.
func (r *PostgresRepository) Ensure(ctx context.Context, playerID string) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (player_id) VALUES ($1)
		ON CONFLICT (player_id) DO UPDATE SET player_id = EXCLUDED.player_id
		RETURNING player_id, balance, xp`
	return r.one(ctx, query, common.ErrorNotFound, playerID)
}

// Credit adds currency and experience atomically.
func (r *PostgresRepository) Credit(ctx context.Context, playerID string, amount, xp int64) (*models.Profile, error) {
	query := `
		UPDATE profiles SET balance = balance + $2, xp = xp + $3, updated_at = now()
		WHERE player_id = $1
		RETURNING player_id, balance, xp`
	return r.one(ctx, query, common.ErrorNotFound, playerID, amount, xp)
}

// Debit subtracts amount only if the balance covers it; otherwise nothing
// changes and common.ErrInsufficientFunds is returned.
func (r *PostgresRepository) Debit(ctx context.Context, playerID string, amount int64) (*models.Profile, error) {
	query := `
		UPDATE profiles SET balance = balance - $2, updated_at = now()
		WHERE player_id = $1 AND balance >= $2
		RETURNING player_id, balance, xp`
	p, err := r.one(ctx, query, common.ErrInsufficientFunds, playerID, amount)
	if !errors.Is(err, common.ErrInsufficientFunds) {
		return p, err
	}

	// the conditional update cannot tell a poor player from a missing one
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE player_id = $1)`, playerID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if !exists {
		return nil, common.ErrorNotFound
	}
	return nil, common.ErrInsufficientFunds
}

func (r *PostgresRepository) one(ctx context.Context, query string, noRows error, args ...any) (*models.Profile, error) {
	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.PlayerID, &p.Balance, &p.XP)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, noRows
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}
