package challenges

import (
	"context"
	"time"
)

type Repository interface {
	Increment(ctx context.Context, playerID string, day time.Time, eventType string, amount int64) error
	Progress(ctx context.Context, playerID string, day time.Time) (map[string]int64, error)
}
