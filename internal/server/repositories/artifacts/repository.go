package artifacts

import "context"

type Repository interface {
	Equipped(ctx context.Context, playerID string) ([]string, error)
	Equip(ctx context.Context, playerID, artifactID string) error
	Unequip(ctx context.Context, playerID, artifactID string) error
}
