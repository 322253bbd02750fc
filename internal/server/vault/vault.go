// Package vault holds the pure state rules of a player's vault: creation,
// invariant enforcement, the lazy daily regeneration and the vault-health
// cooldown state machine. Nothing here touches storage.
package vault

import (
	"time"

	"github.com/dmitrijs2005/vaultsiege/internal/clock"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

// Params are the tunables used to seed and regenerate vaults.
type Params struct {
	DefaultCapacity  int64
	DefaultMaxShield int64
	MaxMovesPerDay   int64
	CooldownDuration time.Duration
	InitialGenerator int64
}

// DefaultParams matches the server defaults.
func DefaultParams() Params {
	return Params{
		DefaultCapacity:  1000,
		DefaultMaxShield: 100,
		MaxMovesPerDay:   4,
		CooldownDuration: 4 * time.Hour,
		InitialGenerator: 1,
	}
}

// MaxVaultHealthFor is floor(capacity * 0.1).
func MaxVaultHealthFor(capacity int64) int64 {
	if capacity <= 0 {
		return 0
	}
	return capacity / 10
}

// New seeds a vault from the player's current profile balance.
func New(playerID string, balance int64, now time.Time, dc clock.DayClock, p Params) *models.Vault {
	capacity := p.DefaultCapacity
	if balance > capacity {
		capacity = balance
	}
	today := dc.DayStart(now)
	v := &models.Vault{
		PlayerID:           playerID,
		Capacity:           capacity,
		CurrentPP:          balance,
		MaxShieldStrength:  p.DefaultMaxShield,
		GeneratorLevel:     p.InitialGenerator,
		GeneratorLastReset: today,
		MaxMovesPerDay:     p.MaxMovesPerDay,
		MovesRemaining:     p.MaxMovesPerDay,
		LastMoveReset:      today,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	v.MaxVaultHealth = MaxVaultHealthFor(capacity)
	v.VaultHealth = HealthCeiling(v)
	Normalize(v)
	return v
}

// HealthCeiling is min(currentPP, maxVaultHealth), never negative.
func HealthCeiling(v *models.Vault) int64 {
	c := v.MaxVaultHealth
	if v.CurrentPP < c {
		c = v.CurrentPP
	}
	if c < 0 {
		return 0
	}
	return c
}

// Normalize enforces the vault invariants in place and reports whether
// anything changed. Every write path calls it before persisting.
func Normalize(v *models.Vault) bool {
	before := *v

	if v.Capacity < 0 {
		v.Capacity = 0
	}
	v.MaxVaultHealth = MaxVaultHealthFor(v.Capacity)
	if v.CurrentPP < 0 {
		v.CurrentPP = 0
	}
	v.VaultHealth = clamp(v.VaultHealth, 0, HealthCeiling(v))

	if v.MaxShieldStrength < 0 {
		v.MaxShieldStrength = 0
	}
	v.ShieldStrength = clamp(v.ShieldStrength, 0, v.MaxShieldStrength)
	v.Overshield = clamp(v.Overshield, 0, 1)

	if v.MaxMovesPerDay < 0 {
		v.MaxMovesPerDay = 0
	}
	v.MovesRemaining = clamp(v.MovesRemaining, 0, v.MaxMovesPerDay)
	if v.GeneratorPendingPP < 0 {
		v.GeneratorPendingPP = 0
	}

	return !sameScalars(&before, v)
}

// ApplyCurrency mirrors the authoritative profile balance into the vault.
// Health is re-clamped against the new balance. It reports a change.
func ApplyCurrency(v *models.Vault, balance int64) bool {
	if v.CurrentPP == balance {
		return false
	}
	v.CurrentPP = balance
	Normalize(v)
	return true
}

// Rates is the generator output per game day.
type Rates struct {
	PPPerDay      int64
	ShieldsPerDay int64
}

// GeneratorRates grows linearly with the generator level.
func GeneratorRates(level int64) Rates {
	if level < 1 {
		return Rates{}
	}
	return Rates{PPPerDay: 25 * level, ShieldsPerDay: 10 * level}
}

// Regenerate is the read-repair step run before every vault read. It resets
// the daily move cache and pays out the generator once per game day, expires
// the cooldown and re-clamps vault health. Applying it twice for the same
// day is a no-op. It reports whether the vault must be persisted.
func Regenerate(v *models.Vault, now time.Time, dc clock.DayClock, cooldown time.Duration) bool {
	changed := false
	today := dc.DayStart(now)

	if v.LastMoveReset.Before(today) {
		v.MovesRemaining = v.MaxMovesPerDay
		v.LastMoveReset = today
		changed = true
	}

	if v.GeneratorLastReset.Before(today) {
		r := GeneratorRates(v.GeneratorLevel)
		v.GeneratorPendingPP += r.PPPerDay
		v.ShieldStrength = min(v.MaxShieldStrength, v.ShieldStrength+r.ShieldsPerDay)
		v.GeneratorLastReset = today
		changed = true
	}

	if ExpireCooldown(v, now, cooldown) {
		changed = true
	}

	if Normalize(v) {
		changed = true
	}
	return changed
}

func clamp(v, lo, hi int64) int64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sameScalars(a, b *models.Vault) bool {
	return a.Capacity == b.Capacity &&
		a.CurrentPP == b.CurrentPP &&
		a.VaultHealth == b.VaultHealth &&
		a.MaxVaultHealth == b.MaxVaultHealth &&
		a.ShieldStrength == b.ShieldStrength &&
		a.MaxShieldStrength == b.MaxShieldStrength &&
		a.Overshield == b.Overshield &&
		a.MovesRemaining == b.MovesRemaining &&
		a.MaxMovesPerDay == b.MaxMovesPerDay &&
		a.GeneratorPendingPP == b.GeneratorPendingPP
}
