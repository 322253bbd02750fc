// Package mastery implements the per-move upgrade curve and the damage roll.
//
// Upgrades compound: each step multiplies the move's current stats, never the
// catalog base, so a move at level 3 carries floor(floor(b*m1)*m2).
package mastery

import (
	"fmt"
	"math"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/random"
	"github.com/dmitrijs2005/vaultsiege/internal/server/catalog"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

// Band is the multiplier range drawn for one level transition.
type Band struct {
	Min float64
	Max float64
}

var (
	highBand = Band{Min: 2.0, Max: 2.5}
	lowBand  = Band{Min: 1.25, Max: 1.6}
	peakBand = Band{Min: 3.0, Max: 3.5}
)

// UpgradeBand returns the multiplier range for reaching target.
func UpgradeBand(target int) (Band, error) {
	switch target {
	case 2, 5, 6, 9:
		return highBand, nil
	case 3, 4, 7, 8:
		return lowBand, nil
	case 10:
		return peakBand, nil
	default:
		return Band{}, fmt.Errorf("no upgrade to mastery level %d", target)
	}
}

// Draw picks a multiplier uniformly inside the band.
func (b Band) Draw(rng random.Source) float64 {
	return b.Min + rng.Float64()*(b.Max-b.Min)
}

// Upgrade raises a move one mastery level. It returns the new stats and the
// multiplier drawn. Zero stats stay zero.
func Upgrade(stats models.MoveStats, level int, rng random.Source) (models.MoveStats, float64, error) {
	if level >= models.MaxMastery {
		return stats, 0, common.ErrMaxMastery
	}
	if level < models.MinMastery {
		level = models.MinMastery
	}
	band, err := UpgradeBand(level + 1)
	if err != nil {
		return stats, 0, err
	}
	m := band.Draw(rng)
	return Scale(stats, m), m, nil
}

// Scale multiplies every stat by m and floors the result.
func Scale(stats models.MoveStats, m float64) models.MoveStats {
	return models.MoveStats{
		Damage:         scaleStat(stats.Damage, m),
		PPSteal:        scaleStat(stats.PPSteal, m),
		ShieldBoost:    scaleStat(stats.ShieldBoost, m),
		Healing:        scaleStat(stats.Healing, m),
		DebuffStrength: scaleStat(stats.DebuffStrength, m),
		BuffStrength:   scaleStat(stats.BuffStrength, m),
	}
}

func scaleStat(v int64, m float64) int64 {
	if v == 0 {
		return 0
	}
	return int64(math.Floor(float64(v) * m))
}

// UpgradeCost is base·2^(target-2): base for level 2, doubling after.
func UpgradeCost(base int64, target int) int64 {
	if target <= models.MinMastery {
		return 0
	}
	return base << uint(target-2)
}

// Reset returns a level-1 overlay built from the catalog base stats.
func Reset(playerID string, move catalog.Move, unlocked bool) models.PlayerMove {
	return models.PlayerMove{
		PlayerID:     playerID,
		MoveID:       move.ID,
		Unlocked:     unlocked,
		MasteryLevel: models.MinMastery,
		Stats:        move.Base,
	}
}

// EffectiveLevel combines the stored mastery with an artifact override.
func EffectiveLevel(stored, bonus int) int {
	lvl := stored
	if bonus > lvl {
		lvl = bonus
	}
	if lvl < models.MinMastery {
		lvl = models.MinMastery
	}
	if lvl > models.MaxMastery {
		lvl = models.MaxMastery
	}
	return lvl
}

// rollSpread is how far above the floor a roll can land.
const rollSpread = 1.25

// DamageRange returns the inclusive roll range. Both bounds grow with the
// catalog tier and the effective mastery.
func DamageRange(base int64, moveLevel, mastery int) (int64, int64) {
	if base <= 0 {
		return 0, 0
	}
	if moveLevel < 1 {
		moveLevel = 1
	}
	if mastery < models.MinMastery {
		mastery = models.MinMastery
	}
	scale := 1 + 0.1*float64(moveLevel-1) + 0.05*float64(mastery-1)
	lo := int64(math.Floor(float64(base) * scale))
	hi := int64(math.Floor(float64(base) * scale * rollSpread))
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// RollDamage draws an integer inside DamageRange.
func RollDamage(rng random.Source, base int64, moveLevel, mastery int) int64 {
	lo, hi := DamageRange(base, moveLevel, mastery)
	if hi <= lo {
		return lo
	}
	return lo + int64(rng.Intn(int(hi-lo+1)))
}

// ApplyMultiplier scales a rolled damage by an artifact multiplier.
func ApplyMultiplier(damage int64, mult float64) int64 {
	if mult <= 0 || mult == 1 {
		return damage
	}
	return int64(math.Floor(float64(damage) * mult))
}
