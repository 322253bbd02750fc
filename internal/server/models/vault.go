// Package models defines server-side data models persisted in the database.
package models

import "time"

// Vault is a player's persistent defensive/economic resource record.
type Vault struct {
	PlayerID string

	Capacity       int64
	CurrentPP      int64
	VaultHealth    int64
	MaxVaultHealth int64

	ShieldStrength    int64
	MaxShieldStrength int64
	// Overshield is a single full-absorption charge, always 0 or 1.
	Overshield int64

	GeneratorLevel     int64
	GeneratorPendingPP int64
	GeneratorLastReset time.Time

	MovesRemaining int64
	MaxMovesPerDay int64
	LastMoveReset  time.Time

	// VaultHealthCooldown is set while the vault is protected after depletion.
	VaultHealthCooldown *time.Time

	CapacityUpgrades  int64
	ShieldUpgrades    int64
	GeneratorUpgrades int64

	// Version is the optimistic concurrency token, bumped on every write.
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy so callers can keep a before-snapshot.
func (v *Vault) Clone() *Vault {
	if v == nil {
		return nil
	}
	c := *v
	if v.VaultHealthCooldown != nil {
		t := *v.VaultHealthCooldown
		c.VaultHealthCooldown = &t
	}
	return &c
}

// Defenses is the subset of a vault an attack routes through.
type Defenses struct {
	ShieldStrength int64 `json:"shield_strength"`
	VaultHealth    int64 `json:"vault_health"`
	Overshield     int64 `json:"overshield"`
}

// Defenses extracts the routing-relevant fields.
func (v *Vault) Defenses() Defenses {
	return Defenses{
		ShieldStrength: v.ShieldStrength,
		VaultHealth:    v.VaultHealth,
		Overshield:     v.Overshield,
	}
}

// Profile is the authoritative external currency record of a player.
type Profile struct {
	PlayerID string
	Balance  int64
	XP       int64
}
