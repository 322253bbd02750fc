package vaults

import (
	"context"

	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, playerID string) (*models.Vault, error)
	Create(ctx context.Context, v *models.Vault) (bool, error)
	Update(ctx context.Context, v *models.Vault) error
	SyncCurrency(ctx context.Context, playerID string, balance int64) error
}
