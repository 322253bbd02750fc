package cards

import (
	"context"

	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, playerID, cardID string) (*models.PlayerCard, error)
	Grant(ctx context.Context, playerID, cardID string, uses int64) error
	ConsumeUse(ctx context.Context, playerID, cardID string) error
}
