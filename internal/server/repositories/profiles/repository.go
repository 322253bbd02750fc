package profiles

import (
	"context"

	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, playerID string) (*models.Profile, error)
	Ensure(ctx context.Context, playerID string) (*models.Profile, error)
	Credit(ctx context.Context, playerID string, amount, xp int64) (*models.Profile, error)
	Debit(ctx context.Context, playerID string, amount int64) (*models.Profile, error)
}
