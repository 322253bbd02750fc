package moves

import (
	"context"

	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, playerID string) ([]models.PlayerMove, error)
	Get(ctx context.Context, playerID, moveID string) (*models.PlayerMove, error)
	Save(ctx context.Context, m *models.PlayerMove) error
	UpdateLevel(ctx context.Context, m *models.PlayerMove, fromLevel int) error
	Unlock(ctx context.Context, playerID, moveID string) error
}
