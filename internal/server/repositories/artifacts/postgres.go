// Package artifacts stores which artifacts a player has equipped.
package artifacts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Equipped(ctx context.Context, playerID string) ([]string, error) {
	query := `SELECT artifact_id FROM equipped_artifacts WHERE player_id = $1 ORDER BY artifact_id`

	rows, err := r.db.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ids, nil
}

func (r *PostgresRepository) Equip(ctx context.Context, playerID, artifactID string) error {
	query := `INSERT INTO equipped_artifacts (player_id, artifact_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, playerID, artifactID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Unequip(ctx context.Context, playerID, artifactID string) error {
	query := `DELETE FROM equipped_artifacts WHERE player_id = $1 AND artifact_id = $2`
	if _, err := r.db.ExecContext(ctx, query, playerID, artifactID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
