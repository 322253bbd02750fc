// Package notify delivers fire-and-forget player notifications.
package notify

import (
	"context"
	"time"

	"github.com/dmitrijs2005/vaultsiege/internal/logging"
)

// Type classifies a notification for the UI.
type Type string

const (
	TypeAttacked   Type = "attacked"
	TypeCurrency   Type = "currency"
	TypeCooldown   Type = "cooldown"
	TypeMilestone  Type = "milestone"
	TypeShieldDown Type = "shield_down"
)

// Notification is one event for one player.
type Notification struct {
	Type     Type           `json:"type"`
	PlayerID string         `json:"player_id"`
	Payload  map[string]any `json:"payload,omitempty"`
	At       time.Time      `json:"at"`
}

// Sink accepts notifications. Delivery is not guaranteed; callers log and
// drop errors.
type Sink interface {
	Notify(ctx context.Context, n Notification) error
}

// LogSink writes notifications to the logger only.
type LogSink struct {
	log logging.Logger
}

func NewLogSink(log logging.Logger) *LogSink {
	return &LogSink{log: log.With("module", "notify")}
}

func (s *LogSink) Notify(ctx context.Context, n Notification) error {
	s.log.Info(ctx, "notification", "type", n.Type, "player", n.PlayerID, "payload", n.Payload)
	return nil
}

// Multi fans out to every sink and returns the first error after trying all.
type Multi []Sink

func (m Multi) Notify(ctx context.Context, n Notification) error {
	var first error
	for _, s := range m {
		if err := s.Notify(ctx, n); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ProgressSink records daily-challenge progress. Failures never roll back
// the action that produced them.
type ProgressSink interface {
	Increment(ctx context.Context, playerID string, day time.Time, eventType string, amount int64) error
}
