package vault

import (
	"time"

	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

// OnCooldown reports whether the vault is protected at now.
func OnCooldown(v *models.Vault, now time.Time, cooldown time.Duration) bool {
	return CooldownRemaining(v, now, cooldown) > 0
}

// CooldownRemaining is the protection left at now, or 0.
func CooldownRemaining(v *models.Vault, now time.Time, cooldown time.Duration) time.Duration {
	if v.VaultHealthCooldown == nil {
		return 0
	}
	left := v.VaultHealthCooldown.Add(cooldown).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// StartCooldown moves Absent -> Active when an attack has just drained a
// positive vault health to zero.
func StartCooldown(v *models.Vault, healthBefore int64, at time.Time) bool {
	if healthBefore <= 0 || v.VaultHealth != 0 {
		return false
	}
	t := at
	v.VaultHealthCooldown = &t
	return true
}

// ExpireCooldown moves Active -> Absent once the window has elapsed and
// restores vault health.
func ExpireCooldown(v *models.Vault, now time.Time, cooldown time.Duration) bool {
	if v.VaultHealthCooldown == nil || now.Before(v.VaultHealthCooldown.Add(cooldown)) {
		return false
	}
	clearCooldown(v)
	return true
}

// ForfeitCooldown moves Active -> Absent when the owner attacks someone else.
func ForfeitCooldown(v *models.Vault) bool {
	if v.VaultHealthCooldown == nil {
		return false
	}
	clearCooldown(v)
	return true
}

func clearCooldown(v *models.Vault) {
	v.VaultHealthCooldown = nil
	v.VaultHealth = HealthCeiling(v)
}
