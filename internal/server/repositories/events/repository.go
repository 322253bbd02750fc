package events

import (
	"context"
	"time"

	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

type Repository interface {
	Append(ctx context.Context, ev *models.AttackEvent) error
	ListByAttackerSince(ctx context.Context, attackerID string, since time.Time) ([]models.AttackEvent, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]models.AttackEvent, error)
}
