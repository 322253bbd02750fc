package models

import "time"

// EventKind classifies Attack Events for quota replay.
type EventKind string

const (
	// EventAttack is a resolved siege attack against another vault.
	EventAttack EventKind = "attack"
	// EventDefend is a resolved self-targeted action (shield boost, heal, ward).
	EventDefend EventKind = "defend"
	// EventRestore gives back one daily move.
	EventRestore EventKind = "restore"
)

// ConsumesMove reports whether the event uses a daily quota slot.
func (k EventKind) ConsumesMove() bool {
	return k == EventAttack || k == EventDefend
}

// AttackEvent is the append-only audit record of a resolved action. It is
// the source of truth for the daily move quota.
type AttackEvent struct {
	ID         string    `json:"id"`
	Kind       EventKind `json:"kind"`
	AttackerID string    `json:"attacker_id"`
	TargetID   string    `json:"target_id,omitempty"`
	MoveID     string    `json:"move_id,omitempty"`
	CardID     string    `json:"card_id,omitempty"`

	TotalDamage        int64 `json:"total_damage"`
	ShieldDamage       int64 `json:"shield_damage"`
	VaultHealthDamage  int64 `json:"vault_health_damage"`
	PPStolen           int64 `json:"pp_stolen"`
	OvershieldAbsorbed bool  `json:"overshield_absorbed"`
	XPGained           int64 `json:"xp_gained"`

	TargetBefore *Defenses `json:"target_before,omitempty"`
	TargetAfter  *Defenses `json:"target_after,omitempty"`

	At time.Time `json:"at"`
}
