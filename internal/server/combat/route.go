// Package combat resolves siege actions between two vaults. It is pure: the
// caller loads state, calls Resolve and persists the returned snapshots.
package combat

import "github.com/dmitrijs2005/vaultsiege/internal/server/models"

// Routing is how one damage value split across a target's defenses.
type Routing struct {
	ShieldDamage       int64
	VaultHealthDamage  int64
	OvershieldAbsorbed bool
}

// Route sends damage through the overshield, then the shield, then vault
// health. An active overshield absorbs everything. Damage beyond vault
// health is lost.
func Route(damage int64, d models.Defenses) Routing {
	if damage <= 0 {
		return Routing{}
	}
	if d.Overshield > 0 {
		return Routing{OvershieldAbsorbed: true}
	}
	shield := min(damage, max(d.ShieldStrength, 0))
	rest := damage - shield
	return Routing{
		ShieldDamage:      shield,
		VaultHealthDamage: min(rest, max(d.VaultHealth, 0)),
	}
}
